package dto

import "github.com/gorilla/websocket"

// ConnInterface 抽出写接口，方便测试里塞假连接
type ConnInterface interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type RealConn struct {
	*websocket.Conn
}

func (r *RealConn) WriteMessage(messageType int, data []byte) error {
	return r.Conn.WriteMessage(messageType, data)
}

func (r *RealConn) Close() error {
	return r.Conn.Close()
}

// PlayerConn 玩家连接对象
type PlayerConn struct {
	PlayerID string
	Conn     ConnInterface
	Online   bool // 断线标记，重连时恢复
}
