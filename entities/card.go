package entities

// Card 发展卡，静态卡池数据，加载后只读
type Card struct {
	ID     string  `json:"id"`
	Tier   int     `json:"tier"`   // 1/2/3
	Points int     `json:"points"` // 荣誉分
	Bonus  GemType `json:"bonus"`  // 购得后永久提供的折扣颜色
	Cost   GemBank `json:"cost"`
}

// Noble 贵族，达到折扣卡数量要求后自动来访
type Noble struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Points      int     `json:"points"`
	Requirement GemBank `json:"requirement"` // 按颜色统计的折扣卡数量要求
}
