package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/service"
	"go-splendor/utils"
	"go-splendor/ws"
)

// Controller HTTP 入口，只做参数绑定和错误翻译，规则全在引擎里
type Controller struct {
	manager *service.Manager
	hub     *ws.Hub
	log     *zap.Logger
}

func New(manager *service.Manager, hub *ws.Hub, log *zap.Logger) *Controller {
	return &Controller{manager: manager, hub: hub, log: log}
}

// statusOf 规则错误 → HTTP 状态码
func statusOf(err error) int {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrOutOfTurn):
		return http.StatusForbidden
	case errors.Is(err, engine.ErrGameNotActive), errors.Is(err, service.ErrGameFull):
		return http.StatusConflict
	case errors.Is(err, engine.ErrInvalidSelection),
		errors.Is(err, engine.ErrInsufficientGems),
		errors.Is(err, engine.ErrReserveLimit):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusOf(err), gin.H{"error": err.Error()})
}

func (ctl *Controller) CreateGame(c *gin.Context) {
	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少必要字段"})
		return
	}

	game, playerID, err := ctl.manager.CreateGame(c.Request.Context(), req.PlayerName)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := utils.GenerateAccessToken(playerID)
	if err != nil {
		ctl.log.Error("签发令牌失败", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "签发令牌失败"})
		return
	}

	c.JSON(http.StatusCreated, dto.GameResponse{
		Game:        game,
		PlayerID:    playerID,
		AccessToken: token,
	})
}

func (ctl *Controller) JoinGame(c *gin.Context) {
	var req dto.JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少必要字段"})
		return
	}

	gameID := c.Param("gameID")
	game, playerID, err := ctl.manager.JoinGame(c.Request.Context(), gameID, req.PlayerName)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := utils.GenerateAccessToken(playerID)
	if err != nil {
		ctl.log.Error("签发令牌失败", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "签发令牌失败"})
		return
	}

	ctl.hub.BroadcastSnapshot(gameID)
	c.JSON(http.StatusOK, dto.GameResponse{
		Game:        game,
		PlayerID:    playerID,
		AccessToken: token,
	})
}

func (ctl *Controller) LeaveGame(c *gin.Context) {
	gameID := c.Param("gameID")
	playerID := c.GetString("playerID")

	if err := ctl.manager.LeaveGame(c.Request.Context(), gameID, playerID); err != nil {
		fail(c, err)
		return
	}
	ctl.hub.BroadcastSnapshot(gameID)
	c.JSON(http.StatusOK, gin.H{"msg": "已离开对局"})
}

func (ctl *Controller) GetGame(c *gin.Context) {
	game, err := ctl.manager.GetGame(c.Param("gameID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": game})
}

func (ctl *Controller) ListGames(c *gin.Context) {
	rooms, err := ctl.manager.ListGames(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if rooms == nil {
		rooms = []entities.RoomSummary{}
	}
	c.JSON(http.StatusOK, dto.ListGamesResponse{Rooms: rooms})
}

func (ctl *Controller) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().Format(time.RFC3339)})
}
