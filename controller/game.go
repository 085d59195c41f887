package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-splendor/dto"
)

// 动作类 REST 接口：和 WebSocket 动作共用 Session Manager 的
// 同一条 ApplyAction 路径，成功后同样推快照给全房间。

func (ctl *Controller) TakeTokens(c *gin.Context) {
	ctl.applyAction(c, dto.ActionTakeTokens)
}

func (ctl *Controller) PurchaseCard(c *gin.Context) {
	ctl.applyAction(c, dto.ActionPurchaseCard)
}

func (ctl *Controller) ReserveCard(c *gin.Context) {
	ctl.applyAction(c, dto.ActionReserveCard)
}

func (ctl *Controller) PurchaseReservedCard(c *gin.Context) {
	ctl.applyAction(c, dto.ActionPurchaseReserved)
}

func (ctl *Controller) EndGame(c *gin.Context) {
	ctl.applyAction(c, dto.ActionEndGame)
}

func (ctl *Controller) applyAction(c *gin.Context, kind string) {
	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil && kind != dto.ActionEndGame {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误"})
		return
	}

	gameID := c.Param("gameID")
	playerID := c.GetString("playerID")

	game, err := ctl.manager.ApplyAction(c.Request.Context(), gameID, playerID, kind, dto.ActionPayload{
		CardID:  req.CardID,
		Gems:    req.Gems,
		Payment: req.Payment,
	})
	if err != nil {
		fail(c, err)
		return
	}

	ctl.hub.BroadcastSnapshot(gameID)
	c.JSON(http.StatusOK, gin.H{"game": game})
}
