package dto

// 动作类型，HTTP 路由和 WebSocket 消息共用同一套
const (
	ActionTakeTokens       = "take-tokens"
	ActionReserveCard      = "reserve-card"
	ActionPurchaseCard     = "purchase-card"
	ActionPurchaseReserved = "purchase-reserved-card"
	ActionEndGame          = "end-game"
)

// ActionPayload 动作参数。前端传的宝石和支付都是松散的
// 颜色名→数量 map，由 Session Manager 转成 GemBank 再校验。
type ActionPayload struct {
	CardID  string         `json:"cardId"`
	Gems    map[string]int `json:"gems"`
	Payment map[string]int `json:"payment"`
}

// ActionRequest REST 动作请求体（playerID 由鉴权中间件注入，不走请求体）
type ActionRequest struct {
	CardID  string         `json:"cardId"`
	Gems    map[string]int `json:"gems"`
	Payment map[string]int `json:"payment"`
}

// WsMessage WebSocket 入站消息统一格式
type WsMessage struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}
