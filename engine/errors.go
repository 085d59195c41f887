package engine

import "errors"

// 规则错误，引擎内部从不吞掉，原样抛给 Session Manager，
// 只回给提交动作的玩家，不广播。
var (
	ErrNotFound         = errors.New("目标不存在")
	ErrOutOfTurn        = errors.New("还没轮到该玩家")
	ErrInvalidSelection = errors.New("非法的选择")
	ErrInsufficientGems = errors.New("宝石不足")
	ErrReserveLimit     = errors.New("保留卡已达上限")
	ErrGameNotActive    = errors.New("对局不在进行中")
)
