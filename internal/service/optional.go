package service

import "encoding/json"

// Optional PATCH 请求中的可选槽位：请求体缺省时 Set 为 false，字段不变；
// 显式出现（包括显式 null）时 Set 为 true，按 Value 覆盖。
type Optional[T any] struct {
	Set   bool
	Value T
}

// UnmarshalJSON 只要字段在请求体中出现即标记 Set
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	return json.Unmarshal(b, &o.Value)
}

// MarshalJSON 按内部值输出
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}
