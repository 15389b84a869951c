package models

import (
	"fmt"

	"github.com/bookie/bookie_server/internal/utils"
)

// Tag タグモデル
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`

	// リレーション（再帰を避けるためPreloadしない。必要なら明示的に取得する）
	Bookmarks []Bookmark `json:"bookmarks,omitempty" gorm:"many2many:bookmark_and_bookmark_tag_association;"`
}

// TableName テーブル名指定
func (Tag) TableName() string {
	return "tag"
}

// NewTag 名前を検証して新しいタグを構築
func NewTag(name string) (*Tag, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "タグ名は必須です"}
	}
	return &Tag{Name: name}, nil
}

// Dump 外部向けのマップ表現を生成
//
// bookmarks は再帰的にダンプせず、空のときはキーごと省略される。
func (t *Tag) Dump() map[string]any {
	return utils.FilterMap(
		map[string]any{
			"id":        t.ID,
			"name":      t.Name,
			"bookmarks": t.Bookmarks,
		},
		"bookmarks",
	)
}

// String ログ用の短い表現
func (t *Tag) String() string {
	return fmt.Sprintf("<name=%q, bookmarks=(%d bookmarks)>", t.Name, len(t.Bookmarks))
}
