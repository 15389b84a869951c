package services

import (
	"github.com/bookie/bookie_server/internal/models"
	"github.com/bookie/bookie_server/internal/repository"
)

// TagService タグに関するサービスインターフェース
type TagService interface {
	Create(name string) (*models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	List(search string, limit int) ([]models.Tag, error)
	ListBookmarks(id uint) ([]models.Bookmark, error)
	Delete(id uint) error
}

// tagService TagServiceの実装
type tagService struct {
	tagRepo repository.TagRepository
}

// NewTagService TagServiceを作成
func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{
		tagRepo: tagRepo,
	}
}

// Create 新しいタグを作成
func (s *tagService) Create(name string) (*models.Tag, error) {
	tag, err := models.NewTag(name)
	if err != nil {
		return nil, err
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// GetByID IDでタグを取得（ブックマーク側は読み込まない）
func (s *tagService) GetByID(id uint) (*models.Tag, error) {
	return s.tagRepo.FindByID(id)
}

// List タグ一覧を取得
func (s *tagService) List(search string, limit int) ([]models.Tag, error) {
	return s.tagRepo.List(search, limit)
}

// ListBookmarks タグに関連付けられたブックマークを取得
func (s *tagService) ListBookmarks(id uint) ([]models.Bookmark, error) {
	return s.tagRepo.ListBookmarks(id)
}

// Delete タグを削除
func (s *tagService) Delete(id uint) error {
	return s.tagRepo.Delete(id)
}
