package dto

import "go-splendor/entities"

type CreateGameRequest struct {
	PlayerName string `json:"playerName" binding:"required"`
}

type JoinGameRequest struct {
	PlayerName string `json:"playerName" binding:"required"`
}

type LeaveGameRequest struct {
	PlayerID string `json:"playerId"`
}

// GameResponse 建房/加入的应答：对局快照 + 本人身份和令牌
type GameResponse struct {
	Game        *entities.Game `json:"game"`
	PlayerID    string         `json:"playerId"`
	AccessToken string         `json:"accessToken,omitempty"`
}

type ListGamesResponse struct {
	Rooms []entities.RoomSummary `json:"rooms"`
}
