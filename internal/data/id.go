package data

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidID 路径中的 id 不是整数
var ErrInvalidID = errors.New("invalid id")

// maxSafeID 超过这个值 float64 无法精确表示整数
const maxSafeID = 1<<53 - 1

// ParseID 把 URL 中的 id 片段转换为整数
//
// 支持十进制（含 "3.0"、"1e1" 这类整数值）以及 0x/0o/0b 前缀，首尾空白会被忽略。
// 其它输入返回 ErrInvalidID，调用方应将其当作记录不存在处理。
func ParseID(segment string) (int64, error) {
	s := strings.TrimSpace(segment)
	if s == "" {
		return 0, ErrInvalidID
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			if strings.Contains(s, "_") {
				return 0, ErrInvalidID
			}
			i, err := strconv.ParseInt(strings.ToLower(s), 0, 64)
			if err != nil {
				return 0, ErrInvalidID
			}
			return i, nil
		}
	}

	if strings.Contains(s, "_") {
		return 0, ErrInvalidID
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidID
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > maxSafeID {
		return 0, ErrInvalidID
	}

	return int64(f), nil
}
