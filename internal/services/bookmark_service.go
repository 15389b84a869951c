package services

import (
	"time"

	"github.com/bookie/bookie_server/internal/models"
	"github.com/bookie/bookie_server/internal/repository"
	"github.com/bookie/bookie_server/internal/utils"
)

// BookmarkService ブックマークに関するサービスインターフェース
type BookmarkService interface {
	Create(input models.BookmarkInput) (*models.Bookmark, error)
	GetByID(id uint) (*models.Bookmark, error)
	Update(id uint, input models.BookmarkInput) (*models.Bookmark, error)
	Delete(id uint) error
	List(page, limit int, search, tag string) ([]models.Bookmark, int64, int, error)
}

// bookmarkService BookmarkServiceの実装
type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	tagRepo      repository.TagRepository
}

// NewBookmarkService BookmarkServiceを作成
func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, tagRepo repository.TagRepository) BookmarkService {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		tagRepo:      tagRepo,
	}
}

// Create 新しいブックマークを作成
func (s *bookmarkService) Create(input models.BookmarkInput) (*models.Bookmark, error) {
	bookmark, err := models.NewBookmark(input)
	if err != nil {
		return nil, err
	}

	// タグ名を解決してから保存
	tagIDs, err := s.resolveTagIDs(input.Tags)
	if err != nil {
		return nil, err
	}

	if err := s.bookmarkRepo.Create(bookmark, tagIDs); err != nil {
		return nil, err
	}

	// タグを読み込んだ状態で返す
	return s.bookmarkRepo.FindByID(bookmark.ID)
}

// GetByID IDでブックマークを取得
func (s *bookmarkService) GetByID(id uint) (*models.Bookmark, error) {
	return s.bookmarkRepo.FindByID(id)
}

// Update ブックマークを更新
func (s *bookmarkService) Update(id uint, input models.BookmarkInput) (*models.Bookmark, error) {
	bookmark, err := s.bookmarkRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, &models.ValidationError{Field: "title", Message: "タイトルは必須です"}
	}
	if input.URL == "" {
		return nil, &models.ValidationError{Field: "url", Message: "URLは必須です"}
	}

	bookmark.Title = input.Title
	bookmark.URL = input.URL
	bookmark.Notes = input.Notes

	// modified: 指定があれば解析、なければ更新時刻
	if input.Modified != nil {
		t, err := utils.ParseISO8601(*input.Modified)
		if err != nil {
			return nil, &models.ValidationError{Field: "modified", Message: "タイムスタンプを解析できません"}
		}
		bookmark.Modified = t
	} else {
		bookmark.Modified = time.Now().UTC()
	}

	// created: 指定があった場合のみ変更する
	if input.Created.Set {
		if input.Created.Value == nil {
			bookmark.Created = nil
		} else {
			t, err := utils.ParseISO8601(*input.Created.Value)
			if err != nil {
				return nil, &models.ValidationError{Field: "created", Message: "タイムスタンプを解析できません"}
			}
			bookmark.Created = &t
		}
	}

	tagIDs, err := s.resolveTagIDs(input.Tags)
	if err != nil {
		return nil, err
	}

	if err := s.bookmarkRepo.Update(bookmark, tagIDs); err != nil {
		return nil, err
	}

	return s.bookmarkRepo.FindByID(id)
}

// Delete ブックマークを削除
func (s *bookmarkService) Delete(id uint) error {
	return s.bookmarkRepo.Delete(id)
}

// List ブックマーク一覧を取得
func (s *bookmarkService) List(page, limit int, search, tag string) ([]models.Bookmark, int64, int, error) {
	bookmarks, total, err := s.bookmarkRepo.List(page, limit, search, tag)
	if err != nil {
		return nil, 0, 0, err
	}

	// 合計ページ数を計算
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return bookmarks, total, totalPages, nil
}

// resolveTagIDs タグ名のリストをIDのリストに解決（存在しないタグは作成）
func (s *bookmarkService) resolveTagIDs(names []string) ([]uint, error) {
	var tagIDs []uint
	seen := make(map[uint]bool, len(names))
	for _, name := range names {
		tag, err := s.tagRepo.FindOrCreate(name)
		if err != nil {
			return nil, err
		}
		if !seen[tag.ID] {
			seen[tag.ID] = true
			tagIDs = append(tagIDs, tag.ID)
		}
	}
	return tagIDs, nil
}
