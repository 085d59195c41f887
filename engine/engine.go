package engine

import (
	"fmt"

	"go-splendor/entities"
)

// 引擎全部是纯规则函数：在 Session Manager 传入的副本上执行，
// 成功则副本成为新状态，失败则整个副本丢弃，原状态不受影响。

// beginAction 动作公共前置检查：对局进行中、玩家在局内、轮到该玩家
func beginAction(g *entities.Game, playerID string) (*entities.Player, error) {
	if g.State != entities.GameStateActive {
		return nil, fmt.Errorf("当前状态 %s: %w", g.State, ErrGameNotActive)
	}
	p := g.PlayerByID(playerID)
	if p == nil {
		return nil, fmt.Errorf("玩家 %s: %w", playerID, ErrNotFound)
	}
	if g.CurrentPlayer().ID != playerID {
		return nil, fmt.Errorf("玩家 %s: %w", playerID, ErrOutOfTurn)
	}
	return p, nil
}

// TakeGems 拿取宝石。合法形状只有两种：
// 三种不同彩色各 1 个（每种供应 ≥1），或同一彩色 2 个（该色供应 ≥4）。
// 金色永远不能直接拿取。
func TakeGems(g *entities.Game, playerID string, take entities.GemBank) error {
	p, err := beginAction(g, playerID)
	if err != nil {
		return err
	}

	if take.Get(entities.Gold) != 0 {
		return fmt.Errorf("金色不能直接拿取: %w", ErrInvalidSelection)
	}

	var kinds []entities.GemType
	for _, t := range entities.ColoredGems {
		if take.Get(t) > 0 {
			kinds = append(kinds, t)
		}
	}

	switch len(kinds) {
	case 3:
		for _, t := range kinds {
			if take.Get(t) != 1 {
				return fmt.Errorf("三色拿取时每种只能拿 1 个: %w", ErrInvalidSelection)
			}
			if g.Board.Gems.Get(t) < 1 {
				return fmt.Errorf("%s 供应不足: %w", t, ErrInvalidSelection)
			}
		}
	case 1:
		t := kinds[0]
		if take.Get(t) != 2 {
			return fmt.Errorf("单色拿取时必须拿 2 个: %w", ErrInvalidSelection)
		}
		if g.Board.Gems.Get(t) < 4 {
			return fmt.Errorf("%s 供应不足 4 个，不能拿 2 个: %w", t, ErrInvalidSelection)
		}
	default:
		return fmt.Errorf("拿取形状非法: %w", ErrInvalidSelection)
	}

	if err := g.Board.Gems.Sub(take); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidSelection)
	}
	p.Gems.Add(take)

	AdvanceTurn(g)
	g.Touch()
	return nil
}

// ReserveCard 保留一张翻开的卡牌，上限 3 张。
// 桌面还有金色时附赠 1 个金色；金色耗尽保留依然成立，只是没有赠币。
func ReserveCard(g *entities.Game, playerID string, cardID string) error {
	p, err := beginAction(g, playerID)
	if err != nil {
		return err
	}

	if len(p.Reserved) >= entities.MaxReserveCards {
		return fmt.Errorf("最多保留 %d 张: %w", entities.MaxReserveCards, ErrReserveLimit)
	}

	card, err := takeRevealed(g, cardID)
	if err != nil {
		return err
	}
	p.Reserved = append(p.Reserved, card)

	if g.Board.Gems.Get(entities.Gold) > 0 {
		g.Board.Gems[entities.Gold]--
		p.Gems[entities.Gold]++
	}

	AdvanceTurn(g)
	g.Touch()
	return nil
}

// BuyCard 购买一张翻开的卡牌。payment 为 nil 时引擎自动计算最小支付：
// 折扣先抵扣，剩余用同色宝石，再不够用金色补。
func BuyCard(g *entities.Game, playerID string, cardID string, payment *entities.GemBank) error {
	p, err := beginAction(g, playerID)
	if err != nil {
		return err
	}

	card, ok := findRevealed(g, cardID)
	if !ok {
		return fmt.Errorf("卡牌 %s 不在桌面: %w", cardID, ErrNotFound)
	}

	pay, err := resolvePayment(p, card, payment)
	if err != nil {
		return err
	}

	if err := p.Gems.Sub(pay); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInsufficientGems)
	}
	g.Board.Gems.Add(pay)

	if _, err := takeRevealed(g, cardID); err != nil {
		return err
	}
	settlePurchase(g, p, card)
	return nil
}

// BuyReservedCard 购买自己保留的卡牌，支付规则与 BuyCard 完全一致，
// 只是卡牌来自保留区，也不需要补牌。
func BuyReservedCard(g *entities.Game, playerID string, cardID string, payment *entities.GemBank) error {
	p, err := beginAction(g, playerID)
	if err != nil {
		return err
	}

	idx := -1
	for i, c := range p.Reserved {
		if c.ID == cardID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("卡牌 %s 不在保留区: %w", cardID, ErrNotFound)
	}
	card := p.Reserved[idx]

	pay, err := resolvePayment(p, card, payment)
	if err != nil {
		return err
	}

	if err := p.Gems.Sub(pay); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInsufficientGems)
	}
	g.Board.Gems.Add(pay)

	p.Reserved = append(p.Reserved[:idx], p.Reserved[idx+1:]...)
	settlePurchase(g, p, card)
	return nil
}

// settlePurchase 购买成功后的公共结算：收卡、计分、贵族来访、胜利判定、切换回合
func settlePurchase(g *entities.Game, p *entities.Player, card entities.Card) {
	p.Cards = append(p.Cards, card)
	p.Points += card.Points

	awardNoble(g, p)

	if p.Points >= entities.WinPoints {
		g.State = entities.GameStateFinished
		g.WinnerID = p.ID
	}

	AdvanceTurn(g)
	g.Touch()
}

// EndGame 任意在座玩家可以强制结束对局，不产生胜者
func EndGame(g *entities.Game, playerID string) error {
	if g.State == entities.GameStateFinished {
		return fmt.Errorf("对局已结束: %w", ErrGameNotActive)
	}
	if g.PlayerByID(playerID) == nil {
		return fmt.Errorf("玩家 %s: %w", playerID, ErrNotFound)
	}
	g.State = entities.GameStateFinished
	g.Touch()
	return nil
}

// AdvanceTurn 回合指针循环前进，对局结束后不再变动
func AdvanceTurn(g *entities.Game) {
	if g.State == entities.GameStateFinished || len(g.Players) == 0 {
		return
	}
	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + 1) % len(g.Players)
}

// findRevealed 在桌面翻开的卡位里查找卡牌
func findRevealed(g *entities.Game, cardID string) (entities.Card, bool) {
	for tier := range g.Board.Revealed {
		for _, c := range g.Board.Revealed[tier] {
			if c.ID == cardID {
				return c, true
			}
		}
	}
	return entities.Card{}, false
}

// takeRevealed 从卡位上取走卡牌，牌堆有牌则立即补上，否则该级卡位缺一张
func takeRevealed(g *entities.Game, cardID string) (entities.Card, error) {
	for tier := range g.Board.Revealed {
		for i, c := range g.Board.Revealed[tier] {
			if c.ID != cardID {
				continue
			}
			row := g.Board.Revealed[tier]
			if len(g.Board.Decks[tier]) > 0 {
				row[i] = g.Board.Decks[tier][0]
				g.Board.Decks[tier] = g.Board.Decks[tier][1:]
			} else {
				g.Board.Revealed[tier] = append(row[:i], row[i+1:]...)
			}
			return c, nil
		}
	}
	return entities.Card{}, fmt.Errorf("卡牌 %s 不在桌面: %w", cardID, ErrNotFound)
}

// CheckInvariants 兜底校验：任何地方出现负数说明引擎内部出了问题，
// Session Manager 据此把对局防御性结束而不是让进程崩掉。
func CheckInvariants(g *entities.Game) error {
	for _, n := range g.Board.Gems {
		if n < 0 {
			return fmt.Errorf("桌面宝石出现负数: %v", g.Board.Gems)
		}
	}
	for _, p := range g.Players {
		for _, n := range p.Gems {
			if n < 0 {
				return fmt.Errorf("玩家 %s 宝石出现负数: %v", p.ID, p.Gems)
			}
		}
		want := 0
		for _, c := range p.Cards {
			want += c.Points
		}
		for _, nb := range p.Nobles {
			want += nb.Points
		}
		if p.Points != want {
			return fmt.Errorf("玩家 %s 分数缓存不一致: %d != %d", p.ID, p.Points, want)
		}
	}
	return nil
}
