package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-splendor/dto"
	"go-splendor/service"
)

// Hub 广播网关：维护每个对局的在线连接，把入站动作转交
// Session Manager，再把成功后的快照推给同局所有人。
// 状态本身不在这里，这里只有连接。
type Hub struct {
	manager *service.Manager
	log     *zap.Logger

	mu    sync.Mutex
	rooms map[string][]*dto.PlayerConn
}

func NewHub(manager *service.Manager, log *zap.Logger) *Hub {
	return &Hub{
		manager: manager,
		log:     log,
		rooms:   make(map[string][]*dto.PlayerConn),
	}
}

// register 将连接挂进房间；同一 playerID 再次连接视为重连，替换旧连接
func (h *Hub) register(roomID, playerID string, conn dto.ConnInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, pc := range h.rooms[roomID] {
		if pc.PlayerID == playerID {
			if pc.Conn != nil {
				pc.Conn.Close()
			}
			pc.Conn = conn
			pc.Online = true
			h.log.Info("玩家重连成功",
				zap.String("roomID", roomID), zap.String("playerID", playerID))
			return
		}
	}
	h.rooms[roomID] = append(h.rooms[roomID], &dto.PlayerConn{
		PlayerID: playerID,
		Conn:     conn,
		Online:   true,
	})
}

// cleanupOnDisconnect 断开后标记离线，连接置空方便回收；不退座。
// 只有当前挂着的连接断开才算掉线：被重连替换掉的旧连接
// 清理时什么都不做，不能把刚重连上来的玩家打成离线。
func (h *Hub) cleanupOnDisconnect(roomID, playerID string, conn dto.ConnInterface) {
	h.mu.Lock()
	matched := false
	for _, pc := range h.rooms[roomID] {
		if pc.PlayerID == playerID && pc.Conn == conn {
			pc.Online = false
			pc.Conn = nil
			matched = true
			break
		}
	}
	h.mu.Unlock()
	if !matched {
		return
	}

	h.manager.SetPlayerOnline(roomID, playerID, false)
	h.log.Info("玩家掉线", zap.String("roomID", roomID), zap.String("playerID", playerID))
	h.BroadcastSnapshot(roomID)
}

// removeConn 玩家显式离开，连接从房间里彻底移除
func (h *Hub) removeConn(roomID, playerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.rooms[roomID]
	for i, pc := range conns {
		if pc.PlayerID == playerID {
			if pc.Conn != nil {
				pc.Conn.Close()
			}
			h.rooms[roomID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.rooms[roomID]) == 0 {
		delete(h.rooms, roomID)
	}
}

// 动作消息类型 → Session Manager 动作种类，全部走同一条 ApplyAction 路径
var actionKinds = map[string]bool{
	dto.ActionTakeTokens:       true,
	dto.ActionReserveCard:      true,
	dto.ActionPurchaseCard:     true,
	dto.ActionPurchaseReserved: true,
	dto.ActionEndGame:          true,
}

// listenMessages 持续读取该连接的消息直到断开
func (h *Hub) listenMessages(conn ReadWriteConn, roomID, playerID string) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg dto.WsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.log.Warn("消息解析失败", zap.String("roomID", roomID), zap.Error(err))
			h.sendError(conn, "消息格式错误")
			continue
		}

		switch {
		case actionKinds[msg.Type]:
			h.handleAction(conn, roomID, playerID, msg)
		case msg.Type == "leave-game":
			h.handleLeave(conn, roomID, playerID)
			return
		default:
			h.log.Warn("未知的消息类型",
				zap.String("roomID", roomID), zap.String("type", msg.Type))
			h.sendError(conn, "未知的消息类型: "+msg.Type)
		}
	}
}

// handleAction 动作统一入口：校验失败只回给提交者，成功则全房广播
func (h *Hub) handleAction(conn ReadWriteConn, roomID, playerID string, msg dto.WsMessage) {
	payload, err := decodeActionPayload(msg.Payload)
	if err != nil {
		h.sendError(conn, "参数格式错误: "+err.Error())
		return
	}

	snapshot, err := h.manager.ApplyAction(context.Background(), roomID, playerID, msg.Type, payload)
	if err != nil {
		h.sendError(conn, err.Error())
		return
	}
	h.broadcastGameState(roomID, snapshot)
}

func (h *Hub) handleLeave(conn ReadWriteConn, roomID, playerID string) {
	if err := h.manager.LeaveGame(context.Background(), roomID, playerID); err != nil {
		h.sendError(conn, err.Error())
		return
	}
	h.removeConn(roomID, playerID)
	h.broadcastEvent(roomID, "player-left", map[string]interface{}{"playerId": playerID})
	h.BroadcastSnapshot(roomID)
}

// HandleWebSocket WebSocket 主入口（处理每个连接）
func (h *Hub) HandleWebSocket(c *gin.Context) {
	roomID := c.Query("roomID")
	playerID := c.Query("userID")
	if roomID == "" || playerID == "" {
		c.String(400, "缺少 roomID 或 userID")
		return
	}

	// 只有在座玩家才能挂连接
	g, err := h.manager.GetGame(roomID)
	if err != nil {
		c.String(404, "对局不存在")
		return
	}
	if g.PlayerByID(playerID) == nil {
		c.String(403, "玩家不在该对局中")
		return
	}

	rawConn, err := upgradeConnection(c)
	if err != nil {
		h.log.Warn("WebSocket 升级失败", zap.Error(err))
		return
	}
	conn := &dto.RealConn{Conn: rawConn}
	defer conn.Close()

	h.register(roomID, playerID, conn)
	h.manager.SetPlayerOnline(roomID, playerID, true)

	h.sendInitMessage(conn, playerID)
	h.broadcastEvent(roomID, "player-joined", map[string]interface{}{"playerId": playerID})
	h.BroadcastSnapshot(roomID)

	defer h.cleanupOnDisconnect(roomID, playerID, conn)
	h.listenMessages(conn, roomID, playerID)
}

// ReadWriteConn 真实客户端连接的读写接口
type ReadWriteConn interface {
	dto.ConnInterface
	ReadMessage() (messageType int, p []byte, err error)
}

var _ ReadWriteConn = (*dto.RealConn)(nil)
