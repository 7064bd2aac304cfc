package validator

import (
	"bytes"
	"strconv"
)

// Validator 类型中存放校验错误
type Validator struct {
	Errors map[string]string
}

// New 构造函数，返回新的 Validator 实例
func New() *Validator {
	return &Validator{
		Errors: make(map[string]string),
	}
}

// Valid 函数在 errors 为空时返回 true
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError map 中新增一条错误信息
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check 在校验未通过时增加一条错误消息
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Truthy 按 JavaScript 的真值规则判断一个原始 JSON 值
//
// 缺失、null、false、0 和 "" 为假，其它值（包括 "0"、[] 和 {}）为真。
func Truthy(raw []byte) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return false
	}

	switch v[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		return len(v) > 2
	}

	// 数字：溢出为 ±Inf 时为真，下溢为 0 时为假
	f, _ := strconv.ParseFloat(string(v), 64)
	return f != 0
}

// Defined 只检查字段是否出现，null、0 和空字符串也算通过
func Defined(raw []byte) bool {
	return len(bytes.TrimSpace(raw)) > 0
}
