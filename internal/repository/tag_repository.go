package repository

import (
	"errors"
	"strings"

	"github.com/bookie/bookie_server/internal/models"

	"gorm.io/gorm"
)

// TagRepository タグに関するデータベース操作を行うインターフェース
type TagRepository interface {
	Create(tag *models.Tag) error
	FindOrCreate(name string) (*models.Tag, error)
	FindByID(id uint) (*models.Tag, error)
	FindByName(name string) (*models.Tag, error)
	List(search string, limit int) ([]models.Tag, error)
	ListBookmarks(tagID uint) ([]models.Bookmark, error)
	Delete(id uint) error
}

// tagRepository TagRepositoryの実装
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository TagRepositoryを作成
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// Create 新しいタグを作成
func (r *tagRepository) Create(tag *models.Tag) error {
	return translateDBError(r.db.Create(tag).Error)
}

// FindOrCreate タグを検索または作成
func (r *tagRepository) FindOrCreate(name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Message: "タグ名は空にできません"}
	}

	var tag models.Tag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// タグが見つからない場合は新規作成
			tag.Name = name
			if err := r.db.Create(&tag).Error; err != nil {
				return nil, translateDBError(err)
			}
			return &tag, nil
		}
		return nil, err
	}
	return &tag, nil
}

// FindByID IDでタグを検索（ブックマーク側は読み込まない）
func (r *tagRepository) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "タグ", ID: id}
		}
		return nil, err
	}
	return &tag, nil
}

// FindByName 名前でタグを検索
func (r *tagRepository) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// List タグ一覧を取得
func (r *tagRepository) List(search string, limit int) ([]models.Tag, error) {
	var tags []models.Tag
	query := r.db.Model(&models.Tag{})

	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.
		Limit(limit).
		Order("name ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}

	return tags, nil
}

// ListBookmarks タグに関連付けられたブックマークを明示的に取得
func (r *tagRepository) ListBookmarks(tagID uint) ([]models.Bookmark, error) {
	if _, err := r.FindByID(tagID); err != nil {
		return nil, err
	}

	var bookmarks []models.Bookmark
	if err := r.db.Model(&models.Bookmark{}).
		Joins("JOIN bookmark_and_bookmark_tag_association ON bookmark.id = bookmark_and_bookmark_tag_association.bookmark_id").
		Where("bookmark_and_bookmark_tag_association.tag_id = ?", tagID).
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Delete タグと関連付けの行を削除（ブックマーク自体は削除しない）
func (r *tagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Tag{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &models.NotFoundError{Entity: "タグ", ID: id}
		}
		return tx.Where("tag_id = ?", id).Delete(&models.BookmarkTag{}).Error
	})
}
