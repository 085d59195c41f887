package engine

import "go-splendor/entities"

// awardNoble 每次购买事件最多招揽一位贵族：按桌面顺序取第一位
// 满足条件的，其余这次不发（之后的购买若仍满足可再来访）。
func awardNoble(g *entities.Game, p *entities.Player) {
	bonus := p.BonusCount()

	for i, noble := range g.Board.Nobles {
		if !nobleEligible(noble, bonus) {
			continue
		}
		g.Board.Nobles = append(g.Board.Nobles[:i], g.Board.Nobles[i+1:]...)
		p.Nobles = append(p.Nobles, noble)
		p.Points += noble.Points
		return
	}
}

func nobleEligible(noble entities.Noble, bonus entities.GemBank) bool {
	for _, t := range entities.ColoredGems {
		if bonus.Get(t) < noble.Requirement.Get(t) {
			return false
		}
	}
	return true
}
