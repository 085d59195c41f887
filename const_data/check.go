package const_data

import (
	"fmt"

	"go.uber.org/multierr"

	"go-splendor/entities"
)

// Check 启动时校验卡池完整性，所有问题一次性汇总返回
func Check() error {
	var err error

	seen := make(map[string]bool, len(Cards)+len(Nobles))
	tierCounts := make(map[int]int)

	for _, c := range Cards {
		if seen[c.ID] {
			err = multierr.Append(err, fmt.Errorf("卡牌 ID 重复: %s", c.ID))
		}
		seen[c.ID] = true

		if c.Tier < 1 || c.Tier > entities.TierCount {
			err = multierr.Append(err, fmt.Errorf("卡牌 %s 等级非法: %d", c.ID, c.Tier))
		} else {
			tierCounts[c.Tier]++
		}
		if c.Points < 0 {
			err = multierr.Append(err, fmt.Errorf("卡牌 %s 分数为负: %d", c.ID, c.Points))
		}
		if c.Bonus < 0 || c.Bonus >= entities.GemTypeCount || c.Bonus == entities.Gold {
			err = multierr.Append(err, fmt.Errorf("卡牌 %s 折扣颜色非法: %v", c.ID, c.Bonus))
		}
		if c.Cost.Get(entities.Gold) != 0 {
			err = multierr.Append(err, fmt.Errorf("卡牌 %s 费用不能包含金色", c.ID))
		}
		if c.Cost.IsZero() {
			err = multierr.Append(err, fmt.Errorf("卡牌 %s 费用为空", c.ID))
		}
	}

	// 标准卡池：一级 40、二级 30、三级 20
	wantTier := map[int]int{1: 40, 2: 30, 3: 20}
	for tier, want := range wantTier {
		if tierCounts[tier] != want {
			err = multierr.Append(err, fmt.Errorf("%d 级卡数量应为 %d，实际 %d", tier, want, tierCounts[tier]))
		}
	}

	for _, n := range Nobles {
		if seen[n.ID] {
			err = multierr.Append(err, fmt.Errorf("贵族 ID 重复: %s", n.ID))
		}
		seen[n.ID] = true

		if n.Points <= 0 {
			err = multierr.Append(err, fmt.Errorf("贵族 %s 分数非法: %d", n.ID, n.Points))
		}
		if n.Requirement.Get(entities.Gold) != 0 {
			err = multierr.Append(err, fmt.Errorf("贵族 %s 要求不能包含金色", n.ID))
		}
		if n.Requirement.IsZero() {
			err = multierr.Append(err, fmt.Errorf("贵族 %s 要求为空", n.ID))
		}
	}

	return err
}
