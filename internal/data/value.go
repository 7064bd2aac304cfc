package data

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Value 原样保存请求里某个字段的 JSON 值
//
// 长度为 0 表示字段没有出现，显式的 null 会保存为 "null"。
// 不做类型检查，字符串、数字、数组都按客户端发送的内容写回。
type Value json.RawMessage

// MarshalJSON 原样输出，配合 omitempty 使用时缺失的字段不会出现
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

// UnmarshalJSON 复制解码器给出的原始字节
func (v *Value) UnmarshalJSON(b []byte) error {
	*v = append((*v)[0:0], b...)
	return nil
}

// UnmarshalYAML 把种子文件里的标量转换成等价的 JSON
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var x interface{}
	if err := node.Decode(&x); err != nil {
		return err
	}

	b, err := json.Marshal(x)
	if err != nil {
		return err
	}

	*v = b
	return nil
}

// String 方便测试和日志输出
func (v Value) String() string {
	return string(v)
}

// JSONValue 把 Go 值编码成 Value
func JSONValue(x interface{}) Value {
	b, err := json.Marshal(x)
	if err != nil {
		panic(err)
	}
	return b
}
