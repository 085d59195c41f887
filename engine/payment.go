package engine

import (
	"fmt"

	"go-splendor/entities"
)

// resolvePayment 支付裁决：payment 为 nil 时自动算最小支付，
// 否则校验玩家给出的支付方案
func resolvePayment(p *entities.Player, card entities.Card, payment *entities.GemBank) (entities.GemBank, error) {
	if payment == nil {
		return minimumPayment(p, card)
	}
	if err := validatePayment(p, card, *payment); err != nil {
		return entities.GemBank{}, err
	}
	return *payment, nil
}

// minimumPayment 每种颜色先用折扣抵扣，剩余用同色宝石一换一，
// 同色宝石耗尽后缺口全部由金色补足；金色也不够则买不起
func minimumPayment(p *entities.Player, card entities.Card) (entities.GemBank, error) {
	bonus := p.BonusCount()

	var pay entities.GemBank
	goldNeed := 0
	for _, t := range entities.ColoredGems {
		residual := card.Cost.Get(t) - bonus.Get(t)
		if residual <= 0 {
			continue
		}
		fromTokens := residual
		if held := p.Gems.Get(t); held < fromTokens {
			fromTokens = held
		}
		pay[t] = fromTokens
		goldNeed += residual - fromTokens
	}

	if goldNeed > p.Gems.Get(entities.Gold) {
		return entities.GemBank{}, fmt.Errorf("缺口 %d 个金色，持有 %d: %w",
			goldNeed, p.Gems.Get(entities.Gold), ErrInsufficientGems)
	}
	pay[entities.Gold] = goldNeed
	return pay, nil
}

// validatePayment 显式支付必须自洽（每项不超过持有量）且足额
// （折扣后每色缺口，同色支付不够的部分要由金色补齐）
func validatePayment(p *entities.Player, card entities.Card, pay entities.GemBank) error {
	if !p.Gems.CanSub(pay) {
		return fmt.Errorf("支付超出持有量: %w", ErrInvalidSelection)
	}

	bonus := p.BonusCount()
	goldNeed := 0
	for _, t := range entities.ColoredGems {
		residual := card.Cost.Get(t) - bonus.Get(t)
		if residual <= 0 {
			continue
		}
		if short := residual - pay.Get(t); short > 0 {
			goldNeed += short
		}
	}
	if goldNeed > pay.Get(entities.Gold) {
		return fmt.Errorf("支付不足，还差 %d 个金色: %w",
			goldNeed-pay.Get(entities.Gold), ErrInsufficientGems)
	}
	return nil
}
