package entities

import (
	"encoding/json"
	"fmt"
)

// GemType 宝石种类，固定六种：五种彩色 + 金色（万能）
type GemType int

const (
	Diamond GemType = iota
	Sapphire
	Emerald
	Ruby
	Onyx
	Gold // 万能宝石，只能通过保留卡牌获得

	GemTypeCount = 6
)

var gemNames = [GemTypeCount]string{"diamond", "sapphire", "emerald", "ruby", "onyx", "gold"}

// ColoredGems 五种彩色宝石（不含金色）
var ColoredGems = []GemType{Diamond, Sapphire, Emerald, Ruby, Onyx}

func (t GemType) String() string {
	if t < 0 || t >= GemTypeCount {
		return fmt.Sprintf("gem(%d)", int(t))
	}
	return gemNames[t]
}

// ParseGemType 将字符串转换成 GemType，非法名字返回错误
func ParseGemType(name string) (GemType, error) {
	for i, n := range gemNames {
		if n == name {
			return GemType(i), nil
		}
	}
	return 0, fmt.Errorf("未知的宝石种类: %q", name)
}

func (t GemType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *GemType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseGemType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// GemBank 固定长度的宝石计数，按 GemType 下标索引。
// 既表示桌面供应，也表示玩家持有、卡牌费用、贵族要求。
type GemBank [GemTypeCount]int

func (b GemBank) Get(t GemType) int {
	return b[t]
}

func (b *GemBank) Add(other GemBank) {
	for i := range b {
		b[i] += other[i]
	}
}

// CanSub 判断逐项扣减是否会出现负数
func (b GemBank) CanSub(other GemBank) bool {
	for i := range b {
		if b[i] < other[i] {
			return false
		}
	}
	return true
}

// Sub 逐项扣减，任何一项不足立即报错，计数永不为负
func (b *GemBank) Sub(other GemBank) error {
	if !b.CanSub(other) {
		return fmt.Errorf("宝石数量不足，无法扣减")
	}
	for i := range b {
		b[i] -= other[i]
	}
	return nil
}

func (b GemBank) Total() int {
	sum := 0
	for _, n := range b {
		sum += n
	}
	return sum
}

func (b GemBank) IsZero() bool {
	return b.Total() == 0
}

func (b GemBank) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, GemTypeCount)
	for i, n := range b {
		m[gemNames[i]] = n
	}
	return json.Marshal(m)
}

func (b *GemBank) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	bank, err := BankFromMap(m)
	if err != nil {
		return err
	}
	*b = bank
	return nil
}

// BankFromMap 将前端传来的宝石 map 转成 GemBank。
// 未出现的种类按 0 处理，未知种类或负数直接报错。
func BankFromMap(m map[string]int) (GemBank, error) {
	var bank GemBank
	for name, count := range m {
		t, err := ParseGemType(name)
		if err != nil {
			return GemBank{}, err
		}
		if count < 0 {
			return GemBank{}, fmt.Errorf("宝石 %s 数量不能为负: %d", name, count)
		}
		bank[t] = count
	}
	return bank, nil
}
