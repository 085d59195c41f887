package router

import (
	"github.com/gin-gonic/gin"

	"go-splendor/controller"
	"go-splendor/middleware"
	"go-splendor/ws"
)

func InitRouter(r *gin.Engine, ctl *controller.Controller, hub *ws.Hub) {
	r.GET("/health", ctl.Health)

	// 对局接口路由
	api := r.Group("/api/games")
	{
		api.POST("", ctl.CreateGame)
		api.GET("", ctl.ListGames)
		api.GET("/:gameID", ctl.GetGame)
		api.POST("/:gameID/join", ctl.JoinGame)

		// 下面的都要带令牌
		auth := api.Group("", middleware.AuthMiddleware())
		{
			auth.POST("/:gameID/leave", ctl.LeaveGame)
			auth.POST("/:gameID/actions/take-tokens", ctl.TakeTokens)
			auth.POST("/:gameID/actions/purchase-card", ctl.PurchaseCard)
			auth.POST("/:gameID/actions/reserve-card", ctl.ReserveCard)
			auth.POST("/:gameID/actions/purchase-reserved-card", ctl.PurchaseReservedCard)
			auth.POST("/:gameID/actions/end-game", ctl.EndGame)
		}
	}

	// WebSocket 路由
	r.GET("/ws", hub.HandleWebSocket)
}
