package entities

// RoomSummary 房间目录里的一条摘要，供大厅列表使用
type RoomSummary struct {
	GameID      string    `json:"gameId"`
	HostName    string    `json:"hostName"`
	PlayerCount int       `json:"playerCount"`
	State       GameState `json:"state"`
	WinnerID    string    `json:"winnerId,omitempty"`
}
