package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-splendor/engine"
	"go-splendor/entities"
)

// newGameID 生成 8 位房间号
func newGameID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

func newPlayer(name string) *entities.Player {
	return &entities.Player{
		ID:       uuid.New().String(),
		Name:     name,
		Cards:    []entities.Card{},
		Reserved: []entities.Card{},
		Nobles:   []entities.Noble{},
		Online:   true,
	}
}

// CreateGame 首位玩家建房。桌面先按默认人数洗好，
// 供应和贵族在人数确定后刷新。
func (m *Manager) CreateGame(ctx context.Context, hostName string) (*entities.Game, string, error) {
	if strings.TrimSpace(hostName) == "" {
		return nil, "", fmt.Errorf("玩家名不能为空: %w", engine.ErrInvalidSelection)
	}

	host := newPlayer(hostName)
	now := time.Now()

	m.rngMu.Lock()
	board := engine.InitBoard(m.rng, entities.MaxPlayers)
	m.rngMu.Unlock()

	g := &entities.Game{
		ID:        newGameID(),
		Players:   []*entities.Player{host},
		State:     entities.GameStateForming,
		Board:     board,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.sessions[g.ID] = &session{}
	m.mu.Unlock()

	if err := m.store.Save(g); err != nil {
		return nil, "", fmt.Errorf("保存对局失败: %w", err)
	}

	m.log.Info("对局已创建",
		zap.String("roomID", g.ID),
		zap.String("hostID", host.ID),
		zap.String("hostName", host.Name))
	m.syncDirectory(ctx, g)

	return g.Clone(), host.ID, nil
}

// JoinGame 加入对局。第 2 位玩家加入即转 active；
// 只要还没有人行动过，3、4 号玩家仍可加入，
// 每次加入都按当前人数重设供应和贵族。开打之后谢绝加入。
func (m *Manager) JoinGame(ctx context.Context, gameID, playerName string) (*entities.Game, string, error) {
	if strings.TrimSpace(playerName) == "" {
		return nil, "", fmt.Errorf("玩家名不能为空: %w", engine.ErrInvalidSelection)
	}
	sess, err := m.session(gameID)
	if err != nil {
		return nil, "", err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	stored, err := m.store.Get(gameID)
	if err != nil {
		return nil, "", fmt.Errorf("对局 %s: %w", gameID, engine.ErrNotFound)
	}
	g := stored.Clone()

	if g.State == entities.GameStateFinished {
		return nil, "", fmt.Errorf("对局已结束: %w", engine.ErrGameNotActive)
	}
	if len(g.Players) >= entities.MaxPlayers {
		return nil, "", fmt.Errorf("%w: %s", ErrGameFull, gameID)
	}
	if g.State == entities.GameStateActive && !boardUntouched(g) {
		return nil, "", fmt.Errorf("对局已开打，不能再加入: %w", engine.ErrGameNotActive)
	}

	p := newPlayer(playerName)
	g.Players = append(g.Players, p)

	if len(g.Players) >= entities.MinPlayers {
		g.State = entities.GameStateActive
		// 只有完全没动过的桌面才按人数重置供应和贵族；
		// 中途掉回 forming 再补人的对局，桌面原样接着打，
		// 否则重置供应会凭空多出宝石
		if boardUntouched(g) {
			m.refitBoard(g)
		}
	}
	g.Touch()

	if err := m.store.Save(g); err != nil {
		return nil, "", fmt.Errorf("保存对局失败: %w", err)
	}

	m.log.Info("玩家加入对局",
		zap.String("roomID", gameID),
		zap.String("playerID", p.ID),
		zap.String("playerName", p.Name),
		zap.Int("playerCount", len(g.Players)))
	m.syncDirectory(ctx, g)

	return g.Clone(), p.ID, nil
}

// refitBoard 人数变化且尚未开打时，按新人数重设宝石供应并重选贵族
func (m *Manager) refitBoard(g *entities.Game) {
	playerCount := len(g.Players)
	m.rngMu.Lock()
	defer m.rngMu.Unlock()

	fresh := engine.InitBoard(m.rng, playerCount)
	g.Board.Gems = fresh.Gems
	g.Board.Nobles = engine.SelectNobles(m.rng, playerCount)
}

// boardUntouched 还没有任何玩家拿过宝石、买过或保留过卡
func boardUntouched(g *entities.Game) bool {
	for _, p := range g.Players {
		if !p.Gems.IsZero() || len(p.Cards) > 0 || len(p.Reserved) > 0 {
			return false
		}
	}
	return true
}

// LeaveGame 离开对局。空了即销毁；活跃局掉到 1 人退回 forming。
func (m *Manager) LeaveGame(ctx context.Context, gameID, playerID string) error {
	sess, err := m.session(gameID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	stored, err := m.store.Get(gameID)
	if err != nil {
		return fmt.Errorf("对局 %s: %w", gameID, engine.ErrNotFound)
	}
	g := stored.Clone()

	idx := -1
	for i, p := range g.Players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("玩家 %s 不在对局中: %w", playerID, engine.ErrNotFound)
	}

	leaver := g.Players[idx]
	g.Players = append(g.Players[:idx], g.Players[idx+1:]...)

	// 离座者手里的宝石（含金色）回到供应，桌面令牌总量不变；
	// 已购和保留的卡牌随人带走
	g.Board.Gems.Add(leaver.Gems)

	if len(g.Players) == 0 {
		// 最后一人离开，整个会话销毁
		if err := m.store.Delete(gameID); err != nil {
			return err
		}
		m.mu.Lock()
		delete(m.sessions, gameID)
		m.mu.Unlock()
		if m.index != nil {
			if err := m.index.Delete(ctx, gameID); err != nil {
				m.log.Warn("删除房间目录失败", zap.String("roomID", gameID), zap.Error(err))
			}
		}
		m.log.Info("对局已销毁", zap.String("roomID", gameID))
		return nil
	}

	// 回合指针跟着收缩，不能越界
	if idx < g.CurrentPlayerIndex {
		g.CurrentPlayerIndex--
	}
	if g.CurrentPlayerIndex >= len(g.Players) {
		g.CurrentPlayerIndex = 0
	}
	if g.State == entities.GameStateActive && len(g.Players) < entities.MinPlayers {
		g.State = entities.GameStateForming
	}
	g.Touch()

	if err := m.store.Save(g); err != nil {
		return fmt.Errorf("保存对局失败: %w", err)
	}

	m.log.Info("玩家离开对局",
		zap.String("roomID", gameID),
		zap.String("playerID", playerID),
		zap.Int("playerCount", len(g.Players)))
	m.syncDirectory(ctx, g)
	return nil
}

// GetGame 返回可安全并发读取的快照
func (m *Manager) GetGame(gameID string) (*entities.Game, error) {
	sess, err := m.session(gameID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	g, err := m.store.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("对局 %s: %w", gameID, engine.ErrNotFound)
	}
	return g.Clone(), nil
}

// ListGames 大厅列表。优先走 Redis 目录，没挂 Redis 就直接扫内存。
func (m *Manager) ListGames(ctx context.Context) ([]entities.RoomSummary, error) {
	if m.index != nil {
		return m.index.List(ctx)
	}

	games := m.store.List()
	out := make([]entities.RoomSummary, 0, len(games))
	for _, g := range games {
		summary := entities.RoomSummary{
			GameID:      g.ID,
			PlayerCount: len(g.Players),
			State:       g.State,
			WinnerID:    g.WinnerID,
		}
		if len(g.Players) > 0 {
			summary.HostName = g.Players[0].Name
		}
		out = append(out, summary)
	}
	return out, nil
}

// SetPlayerOnline 标记在线状态：断线不退座，重连恢复
func (m *Manager) SetPlayerOnline(gameID, playerID string, online bool) {
	sess, err := m.session(gameID)
	if err != nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	stored, err := m.store.Get(gameID)
	if err != nil {
		return
	}
	g := stored.Clone()
	p := g.PlayerByID(playerID)
	if p == nil || p.Online == online {
		return
	}
	p.Online = online
	g.Touch()
	if err := m.store.Save(g); err != nil {
		m.log.Warn("保存在线状态失败", zap.String("roomID", gameID), zap.Error(err))
	}
}
