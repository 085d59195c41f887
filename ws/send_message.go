package ws

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"go-splendor/dto"
	"go-splendor/entities"
)

// buildMessage 构建一条统一格式的消息（type + 数据字段）
func buildMessage(msgType string, data map[string]interface{}) []byte {
	if data == nil {
		data = make(map[string]interface{})
	}
	data["type"] = msgType
	msg, _ := json.Marshal(data)
	return msg
}

// sendInitMessage 向单个客户端发送初始化消息（告知自己的 playerId）
func (h *Hub) sendInitMessage(conn dto.ConnInterface, playerID string) {
	msg := buildMessage("init", map[string]interface{}{"playerId": playerID})
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		h.log.Warn("发送初始化消息失败", zap.String("playerID", playerID), zap.Error(err))
	}
}

// sendError 规则错误只回给提交动作的玩家，其他人看不到任何变化
func (h *Hub) sendError(conn dto.ConnInterface, message string) {
	msg := buildMessage("error", map[string]interface{}{"message": message})
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		h.log.Warn("发送错误消息失败", zap.Error(err))
	}
}

// broadcastEvent 轻量事件广播（player-joined / player-left）
func (h *Hub) broadcastEvent(roomID, event string, data map[string]interface{}) {
	h.broadcastRaw(roomID, buildMessage(event, data))
}

// broadcastGameState 把完整对局快照推给全房间
func (h *Hub) broadcastGameState(roomID string, g *entities.Game) {
	h.broadcastRaw(roomID, buildMessage("game-state", map[string]interface{}{"game": g}))
}

// BroadcastSnapshot 现场拉一份最新快照再广播；对局已销毁就清掉房间连接
func (h *Hub) BroadcastSnapshot(roomID string) {
	g, err := h.manager.GetGame(roomID)
	if err != nil {
		h.mu.Lock()
		for _, pc := range h.rooms[roomID] {
			if pc.Conn != nil {
				pc.Conn.Close()
			}
		}
		delete(h.rooms, roomID)
		h.mu.Unlock()
		return
	}
	h.broadcastGameState(roomID, g)
}

// broadcastRaw 发给房间内所有在线连接，写失败的连接标记离线，
// 并同步到 Session Manager，快照里不再声称该玩家在线
func (h *Hub) broadcastRaw(roomID string, msg []byte) {
	h.mu.Lock()
	var dropped []string
	for _, pc := range h.rooms[roomID] {
		if !pc.Online || pc.Conn == nil {
			continue
		}
		if err := pc.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.log.Warn("广播失败，标记连接离线",
				zap.String("roomID", roomID), zap.String("playerID", pc.PlayerID))
			pc.Conn.Close()
			pc.Conn = nil
			pc.Online = false
			dropped = append(dropped, pc.PlayerID)
		}
	}
	h.mu.Unlock()

	for _, playerID := range dropped {
		h.manager.SetPlayerOnline(roomID, playerID, false)
	}
}
