package models

import "encoding/json"

// OptionalString JSONボディで「キーなし」「明示的な null」「値あり」を
// 区別するための三値文字列
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON キーが存在した場合のみ呼ばれる
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON 値がなければ null を返す
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// NewOptionalString 値ありのOptionalStringを作成
func NewOptionalString(value string) OptionalString {
	return OptionalString{Set: true, Value: &value}
}

// NullOptionalString 明示的な null のOptionalStringを作成
func NullOptionalString() OptionalString {
	return OptionalString{Set: true}
}
