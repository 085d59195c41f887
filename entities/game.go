package entities

import (
	"encoding/json"
	"time"
)

// GameState 对局生命周期
type GameState string

const (
	GameStateForming  GameState = "forming"  // 等待玩家加入
	GameStateActive   GameState = "active"   // 对局进行中
	GameStateFinished GameState = "finished" // 已结束
)

const (
	MaxPlayers      = 4
	MinPlayers      = 2
	MaxReserveCards = 3
	WinPoints       = 15
	TierCount       = 3
	RevealedPerTier = 4
)

// Player 对局内的玩家
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Gems     GemBank  `json:"gems"`
	Cards    []Card   `json:"cards"` // 按购买顺序
	Reserved []Card   `json:"reserved"`
	Nobles   []Noble  `json:"nobles"`
	Points   int      `json:"points"` // 缓存值，始终等于卡牌分 + 贵族分
	Online   bool     `json:"online"`
}

// BonusCount 按颜色统计已购卡牌提供的折扣数量
func (p *Player) BonusCount() GemBank {
	var bonus GemBank
	for _, c := range p.Cards {
		bonus[c.Bonus]++
	}
	return bonus
}

// Board 桌面：每个等级的翻开卡位与牌堆、贵族、宝石供应
type Board struct {
	Revealed [TierCount][]Card `json:"revealed"` // 每级最多 4 张翻开
	Decks    [TierCount][]Card `json:"-"`        // 剩余牌堆不下发，只下发数量
	Nobles   []Noble           `json:"nobles"`
	Gems     GemBank           `json:"gems"`
}

// DeckCounts 各级牌堆剩余数量，随快照下发
func (b *Board) DeckCounts() [TierCount]int {
	var counts [TierCount]int
	for i := range b.Decks {
		counts[i] = len(b.Decks[i])
	}
	return counts
}

// MarshalJSON 牌堆内容不外发，只带上各级剩余数量
func (b Board) MarshalJSON() ([]byte, error) {
	type boardAlias Board
	return json.Marshal(struct {
		boardAlias
		DeckCounts [TierCount]int `json:"deckCounts"`
	}{boardAlias(b), b.DeckCounts()})
}

// Game 一局对局的全部权威状态
type Game struct {
	ID                 string    `json:"id"`
	Players            []*Player `json:"players"`
	CurrentPlayerIndex int       `json:"currentPlayerIndex"`
	State              GameState `json:"state"`
	Board              Board     `json:"board"`
	WinnerID           string    `json:"winnerId,omitempty"`
	Version            int64     `json:"version"` // 每次成功变更单调递增
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// PlayerByID 在对局中查找玩家，找不到返回 nil
func (g *Game) PlayerByID(playerID string) *Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// CurrentPlayer 当前回合的玩家
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.CurrentPlayerIndex]
}

// Touch 记录一次成功的状态变更
func (g *Game) Touch() {
	g.Version++
	g.UpdatedAt = time.Now()
}

// Clone 深拷贝整个对局状态，供引擎在副本上执行、失败即丢弃
func (g *Game) Clone() *Game {
	cp := *g
	cp.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		pc := *p
		pc.Cards = append([]Card(nil), p.Cards...)
		pc.Reserved = append([]Card(nil), p.Reserved...)
		pc.Nobles = append([]Noble(nil), p.Nobles...)
		cp.Players[i] = &pc
	}
	for i := range g.Board.Revealed {
		cp.Board.Revealed[i] = append([]Card(nil), g.Board.Revealed[i]...)
		cp.Board.Decks[i] = append([]Card(nil), g.Board.Decks[i]...)
	}
	cp.Board.Nobles = append([]Noble(nil), g.Board.Nobles...)
	return &cp
}
