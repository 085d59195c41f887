package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"go-splendor/dto"
	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/repository"
)

// 会话级错误（规则错误见 engine 包）
var (
	ErrGameFull = errors.New("房间已满")
)

// Manager 会话管理器：持有全部在线对局，是唯一的状态变更入口。
// 每个会话配一把互斥锁，同一会话的动作严格串行，
// 不同会话之间完全并行。
type Manager struct {
	store   repository.GameStore
	index   *repository.RoomIndex
	archive *repository.Archive
	log     *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	mu       sync.RWMutex
	sessions map[string]*session
}

// session 单个对局的串行化通道：锁住它才能读改写该对局
type session struct {
	mu sync.Mutex
}

func NewManager(store repository.GameStore, index *repository.RoomIndex, archive *repository.Archive, log *zap.Logger, seed uint64) *Manager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Manager{
		store:    store,
		index:    index,
		archive:  archive,
		log:      log,
		rng:      rand.New(rand.NewSource(seed)),
		sessions: make(map[string]*session),
	}
}

func (m *Manager) session(gameID string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("对局 %s: %w", gameID, engine.ErrNotFound)
	}
	return sess, nil
}

// ApplyAction 唯一的对局变更路径：锁定会话、克隆状态、
// 在副本上执行规则、校验不变量、提交并返回快照。
// 规则错误时副本整个丢弃，原状态不发生任何变化。
func (m *Manager) ApplyAction(ctx context.Context, gameID, playerID, kind string, payload dto.ActionPayload) (*entities.Game, error) {
	sess, err := m.session(gameID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	stored, err := m.store.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("对局 %s: %w", gameID, engine.ErrNotFound)
	}
	g := stored.Clone()

	switch kind {
	case dto.ActionTakeTokens:
		take, bankErr := entities.BankFromMap(payload.Gems)
		if bankErr != nil {
			return nil, fmt.Errorf("%v: %w", bankErr, engine.ErrInvalidSelection)
		}
		err = engine.TakeGems(g, playerID, take)
	case dto.ActionReserveCard:
		err = engine.ReserveCard(g, playerID, payload.CardID)
	case dto.ActionPurchaseCard:
		var payment *entities.GemBank
		if payment, err = paymentFromMap(payload.Payment); err == nil {
			err = engine.BuyCard(g, playerID, payload.CardID, payment)
		}
	case dto.ActionPurchaseReserved:
		var payment *entities.GemBank
		if payment, err = paymentFromMap(payload.Payment); err == nil {
			err = engine.BuyReservedCard(g, playerID, payload.CardID, payment)
		}
	case dto.ActionEndGame:
		err = engine.EndGame(g, playerID)
	default:
		err = fmt.Errorf("未知的动作类型 %q: %w", kind, engine.ErrInvalidSelection)
	}
	if err != nil {
		m.log.Info("动作被拒绝",
			zap.String("roomID", gameID),
			zap.String("playerID", playerID),
			zap.String("action", kind),
			zap.Error(err))
		return nil, err
	}

	// 不变量兜底：这里失败说明引擎自身有 bug，
	// 防御性结束该对局，不让问题扩散到进程
	if invErr := engine.CheckInvariants(g); invErr != nil {
		m.log.Error("对局不变量被破坏，防御性结束",
			zap.String("roomID", gameID),
			zap.Error(invErr))
		g.State = entities.GameStateFinished
		g.Touch()
		if saveErr := m.store.Save(g); saveErr != nil {
			m.log.Error("保存防御性结束状态失败", zap.Error(saveErr))
		}
		return nil, fmt.Errorf("对局内部状态异常，已强制结束")
	}

	if err := m.store.Save(g); err != nil {
		return nil, fmt.Errorf("保存对局失败: %w", err)
	}

	m.log.Info("动作已提交",
		zap.String("roomID", gameID),
		zap.String("playerID", playerID),
		zap.String("action", kind),
		zap.Int64("version", g.Version))

	m.syncDirectory(ctx, g)
	if g.State == entities.GameStateFinished {
		m.archiveResult(ctx, g)
	}

	return g.Clone(), nil
}

// paymentFromMap 空 map 视为未指定，由引擎自动计算最小支付
func paymentFromMap(m map[string]int) (*entities.GemBank, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bank, err := entities.BankFromMap(m)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, engine.ErrInvalidSelection)
	}
	return &bank, nil
}

// syncDirectory 大厅目录尽力而为地刷新，失败只记日志
func (m *Manager) syncDirectory(ctx context.Context, g *entities.Game) {
	if m.index == nil {
		return
	}
	summary := entities.RoomSummary{
		GameID:      g.ID,
		PlayerCount: len(g.Players),
		State:       g.State,
		WinnerID:    g.WinnerID,
	}
	if len(g.Players) > 0 {
		summary.HostName = g.Players[0].Name
	}
	if err := m.index.Put(ctx, summary); err != nil {
		m.log.Warn("刷新房间目录失败", zap.String("roomID", g.ID), zap.Error(err))
	}
}

// archiveResult 结束的对局写入归档，失败只记日志
func (m *Manager) archiveResult(ctx context.Context, g *entities.Game) {
	if m.archive == nil {
		return
	}
	result := repository.GameResult{
		GameID:      g.ID,
		PlayerCount: len(g.Players),
		FinishedAt:  g.UpdatedAt,
	}
	if winner := g.PlayerByID(g.WinnerID); winner != nil {
		result.WinnerID = winner.ID
		result.WinnerName = winner.Name
		result.Points = winner.Points
	}
	if err := m.archive.SaveResult(ctx, result); err != nil {
		m.log.Warn("归档对局结果失败", zap.String("roomID", g.ID), zap.Error(err))
	}
}
