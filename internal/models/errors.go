package models

import "fmt"

// ValidationError 必須フィールド欠落・タイムスタンプ解析失敗
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConstraintViolation 一意制約違反（タグ名の重複など）
type ConstraintViolation struct {
	Message string
}

func (e *ConstraintViolation) Error() string {
	return e.Message
}

// NotFoundError 存在しないIDへの操作
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%sが見つかりません: ID=%d", e.Entity, e.ID)
}
