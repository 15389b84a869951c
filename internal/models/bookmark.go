package models

import (
	"fmt"
	"time"

	"github.com/bookie/bookie_server/internal/utils"
)

// Bookmark ブックマークモデル
type Bookmark struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	Title    string     `json:"title" gorm:"type:text;not null"`
	URL      string     `json:"url" gorm:"type:text;not null"`
	Notes    string     `json:"notes" gorm:"type:text;not null"`
	Modified time.Time  `json:"modified" gorm:"column:_modified;not null"`
	Created  *time.Time `json:"created" gorm:"column:_created"`

	// リレーション（読み込み時は常にPreloadする）
	Tags []Tag `json:"tags,omitempty" gorm:"many2many:bookmark_and_bookmark_tag_association;"`
}

// TableName テーブル名指定
func (Bookmark) TableName() string {
	return "bookmark"
}

// BookmarkInput ブックマーク構築時の入力
//
// Modified が nil の場合は現在時刻（UTC）になる。
// Created は三値: 未指定なら現在時刻、明示的な null なら未設定のまま、
// 文字列ならISO-8601として解析する。modified と created の非対称性は
// 元のデータモデルの仕様なので揃えないこと。
type BookmarkInput struct {
	Title    string
	URL      string
	Notes    string
	Modified *string
	Created  OptionalString
	Tags     []string
}

// NewBookmark 入力を検証して新しいブックマークを構築
func NewBookmark(in BookmarkInput) (*Bookmark, error) {
	if in.Title == "" {
		return nil, &ValidationError{Field: "title", Message: "タイトルは必須です"}
	}
	if in.URL == "" {
		return nil, &ValidationError{Field: "url", Message: "URLは必須です"}
	}

	b := &Bookmark{
		Title: in.Title,
		URL:   in.URL,
		Notes: in.Notes,
	}

	// modified: 指定があれば解析、なければ現在時刻
	if in.Modified != nil {
		t, err := utils.ParseISO8601(*in.Modified)
		if err != nil {
			return nil, &ValidationError{Field: "modified", Message: fmt.Sprintf("タイムスタンプを解析できません: %v", err)}
		}
		b.Modified = t
	} else {
		b.Modified = time.Now().UTC()
	}

	// created: 未指定なら現在時刻、明示的な null なら未設定
	switch {
	case !in.Created.Set:
		now := time.Now().UTC()
		b.Created = &now
	case in.Created.Value == nil:
		b.Created = nil
	default:
		t, err := utils.ParseISO8601(*in.Created.Value)
		if err != nil {
			return nil, &ValidationError{Field: "created", Message: fmt.Sprintf("タイムスタンプを解析できません: %v", err)}
		}
		b.Created = &t
	}

	return b, nil
}

// Dump 外部向けのマップ表現を生成
//
// notes は空文字列のとき、tags は空のときキーごと省略される。
// タイムスタンプはUTCのISO-8601文字列、未設定なら null。
func (b *Bookmark) Dump() map[string]any {
	tags := make([]map[string]any, 0, len(b.Tags))
	for i := range b.Tags {
		tags = append(tags, b.Tags[i].Dump())
	}

	var created any
	if b.Created != nil {
		created = utils.FormatISO8601(*b.Created)
	}

	return utils.FilterMap(
		map[string]any{
			"id":       b.ID,
			"title":    b.Title,
			"url":      b.URL,
			"notes":    b.Notes,
			"modified": utils.FormatISO8601(b.Modified),
			"created":  created,
			"tags":     tags,
		},
		"tags",
		"notes",
	)
}

// String ログ用の短い表現
func (b *Bookmark) String() string {
	const truncateLen = 10
	return fmt.Sprintf("<title=%q, url=%q, modified=(%s), created=(%v), tags=(%d tags)>",
		utils.TruncateString(b.Title, truncateLen),
		utils.TruncateString(b.URL, truncateLen),
		b.Modified,
		b.Created,
		len(b.Tags))
}

// BookmarkTag ブックマークとタグの中間テーブル
type BookmarkTag struct {
	BookmarkID uint `gorm:"primaryKey"`
	TagID      uint `gorm:"primaryKey"`
}

// TableName テーブル名指定
func (BookmarkTag) TableName() string {
	return "bookmark_and_bookmark_tag_association"
}
