package engine

import (
	"golang.org/x/exp/rand"

	"go-splendor/const_data"
	"go-splendor/entities"
)

// coloredSupply 彩色宝石供应量按人数：2 人 4 个、3 人 5 个、4 人 7 个
func coloredSupply(playerCount int) int {
	switch playerCount {
	case 2:
		return 4
	case 3:
		return 5
	default:
		return 7
	}
}

// nobleCount 贵族数量按人数：2 人 3 位、3 人 4 位、4 人 5 位
func nobleCount(playerCount int) int {
	switch playerCount {
	case 2:
		return 3
	case 3:
		return 4
	default:
		return 5
	}
}

// InitBoard 初始化桌面：三级牌堆各自独立洗牌，每级翻开 4 张，
// 宝石供应按人数设置，贵族留空（人数确定后再选）。
func InitBoard(rng *rand.Rand, playerCount int) entities.Board {
	var board entities.Board

	var tiers [entities.TierCount][]entities.Card
	for _, c := range const_data.Cards {
		tiers[c.Tier-1] = append(tiers[c.Tier-1], c)
	}

	for i := range tiers {
		cards := tiers[i]
		rng.Shuffle(len(cards), func(a, b int) {
			cards[a], cards[b] = cards[b], cards[a]
		})
		reveal := entities.RevealedPerTier
		if reveal > len(cards) {
			reveal = len(cards)
		}
		board.Revealed[i] = append([]entities.Card(nil), cards[:reveal]...)
		board.Decks[i] = append([]entities.Card(nil), cards[reveal:]...)
	}

	supply := coloredSupply(playerCount)
	for _, t := range entities.ColoredGems {
		board.Gems[t] = supply
	}
	board.Gems[entities.Gold] = 5

	return board
}

// SelectNobles 洗牌后按人数选出贵族
func SelectNobles(rng *rand.Rand, playerCount int) []entities.Noble {
	pool := append([]entities.Noble(nil), const_data.Nobles...)
	rng.Shuffle(len(pool), func(a, b int) {
		pool[a], pool[b] = pool[b], pool[a]
	})
	count := nobleCount(playerCount)
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}
