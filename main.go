package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-splendor/const_data"
	"go-splendor/controller"
	"go-splendor/logger"
	"go-splendor/repository"
	"go-splendor/router"
	"go-splendor/service"
	"go-splendor/ws"
)

func main() {
	release := gin.Mode() == gin.ReleaseMode
	log, err := logger.New(release)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// 卡池坏了没法开局，直接退出
	if err := const_data.Check(); err != nil {
		log.Fatal("卡池校验失败", zap.Error(err))
	}

	ctx := context.Background()

	// Redis / MySQL 都是可选的：不配就纯内存跑
	rdb, err := repository.NewRedis(ctx)
	if err != nil {
		log.Fatal("Redis 初始化失败", zap.Error(err))
	}
	if rdb != nil {
		log.Info("✅ Redis 连接成功")
	}

	db, err := repository.NewMySQL(ctx)
	if err != nil {
		log.Fatal("MySQL 初始化失败", zap.Error(err))
	}
	archive, err := repository.NewArchive(ctx, db)
	if err != nil {
		log.Fatal("归档表初始化失败", zap.Error(err))
	}
	if archive != nil {
		log.Info("✅ MySQL 归档已启用")
	}

	store := repository.NewMemoryStore()
	index := repository.NewRoomIndex(rdb)
	manager := service.NewManager(store, index, archive, log, 0)
	hub := ws.NewHub(manager, log)
	ctl := controller.New(manager, hub, log)

	r := gin.Default()

	// CORS：允许所有来源，前端单独部署
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.InitRouter(r, ctl, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Info("服务启动", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("服务退出", zap.Error(err))
	}
}
