package hive

import "errors"

// 结构性错误：还没进规则判定就能拒绝
var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameFinished = errors.New("game is finished")
)

// RuleError 规则校验错误：动作非法，状态未被改动，改正后可以重试。
type RuleError struct {
	Reason string
}

func (e *RuleError) Error() string { return e.Reason }

func ruleErr(reason string) error { return &RuleError{Reason: reason} }

// IsRuleViolation 是否规则校验错误（HTTP 层映射 400 用）
func IsRuleViolation(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}
