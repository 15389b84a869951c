package repository

import (
	"errors"

	"github.com/bookie/bookie_server/internal/models"

	"gorm.io/gorm"
)

// BookmarkRepository ブックマークに関するデータベース操作を行うインターフェース
type BookmarkRepository interface {
	Create(bookmark *models.Bookmark, tagIDs []uint) error
	FindByID(id uint) (*models.Bookmark, error)
	Update(bookmark *models.Bookmark, tagIDs []uint) error
	Delete(id uint) error
	List(page, limit int, search, tag string) ([]models.Bookmark, int64, error)
}

// bookmarkRepository BookmarkRepositoryの実装
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository BookmarkRepositoryを作成
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Create 新しいブックマークと関連付けをトランザクション内で作成
func (r *bookmarkRepository) Create(bookmark *models.Bookmark, tagIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(bookmark).Error; err != nil {
			return err
		}
		return replaceAssociations(tx, bookmark.ID, tagIDs)
	})
	return translateDBError(err)
}

// FindByID IDでブックマークを検索（タグも一緒に読み込む）
func (r *bookmarkRepository) FindByID(id uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.Preload("Tags").First(&bookmark, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "ブックマーク", ID: id}
		}
		return nil, err
	}
	return &bookmark, nil
}

// Update ブックマークと関連付けをトランザクション内で更新
func (r *bookmarkRepository) Update(bookmark *models.Bookmark, tagIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Save(bookmark).Error; err != nil {
			return err
		}
		if err := tx.Where("bookmark_id = ?", bookmark.ID).Delete(&models.BookmarkTag{}).Error; err != nil {
			return err
		}
		return replaceAssociations(tx, bookmark.ID, tagIDs)
	})
	return translateDBError(err)
}

// Delete ブックマークと関連付けの行を削除（タグ自体は削除しない）
func (r *bookmarkRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Bookmark{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &models.NotFoundError{Entity: "ブックマーク", ID: id}
		}
		return tx.Where("bookmark_id = ?", id).Delete(&models.BookmarkTag{}).Error
	})
}

// List ブックマーク一覧を取得
func (r *bookmarkRepository) List(page, limit int, search, tag string) ([]models.Bookmark, int64, error) {
	var bookmarks []models.Bookmark
	var total int64

	offset := (page - 1) * limit

	query := r.db.Model(&models.Bookmark{}).Preload("Tags")

	// 検索条件を適用
	if search != "" {
		query = query.Where("title LIKE ? OR url LIKE ? OR notes LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	// タグでフィルタリング
	if tag != "" {
		query = query.
			Joins("JOIN bookmark_and_bookmark_tag_association ON bookmark.id = bookmark_and_bookmark_tag_association.bookmark_id").
			Joins("JOIN tag ON bookmark_and_bookmark_tag_association.tag_id = tag.id").
			Where("tag.name = ?", tag)
	}

	// 合計数を取得
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// データを取得（新しい順）
	if err := query.
		Order("_modified DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookmarks).Error; err != nil {
		return nil, 0, err
	}

	return bookmarks, total, nil
}

// replaceAssociations 中間テーブルの行を作成（重複は作らない）
func replaceAssociations(tx *gorm.DB, bookmarkID uint, tagIDs []uint) error {
	seen := make(map[uint]bool, len(tagIDs))
	for _, tagID := range tagIDs {
		if seen[tagID] {
			continue
		}
		seen[tagID] = true
		if err := tx.Create(&models.BookmarkTag{BookmarkID: bookmarkID, TagID: tagID}).Error; err != nil {
			return err
		}
	}
	return nil
}
