package repository

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/bookie/bookie_server/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// MySQLへの接続をテストする（環境変数が設定されている場合のみ実行）
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("BOOKIE_TEST_DSN")
	if dsn == "" {
		t.Skip("BOOKIE_TEST_DSN が設定されていないため、テストをスキップします")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("データベース接続に失敗しました: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Tag{}, &models.Bookmark{}); err != nil {
		t.Fatalf("マイグレーションに失敗しました: %v", err)
	}

	return db
}

// テストごとに一意な名前を作る
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestBookmarkRepositoryCRUD(t *testing.T) {
	db := openTestDB(t)
	bookmarkRepo := NewBookmarkRepository(db)
	tagRepo := NewTagRepository(db)

	tag, err := tagRepo.FindOrCreate(uniqueName("work"))
	if err != nil {
		t.Fatalf("タグの作成に失敗しました: %v", err)
	}

	bookmark, err := models.NewBookmark(models.BookmarkInput{
		Title: "example",
		URL:   "https://example.com",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := bookmarkRepo.Create(bookmark, []uint{tag.ID}); err != nil {
		t.Fatalf("作成に失敗しました: %v", err)
	}

	// タグを一緒に読み込む
	loaded, err := bookmarkRepo.FindByID(bookmark.ID)
	if err != nil {
		t.Fatalf("取得に失敗しました: %v", err)
	}
	if len(loaded.Tags) != 1 || loaded.Tags[0].ID != tag.ID {
		t.Errorf("タグが読み込まれていません: %v", loaded.Tags)
	}

	// タグ側からもブックマークが見える
	bookmarks, err := tagRepo.ListBookmarks(tag.ID)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, b := range bookmarks {
		if b.ID == bookmark.ID {
			found = true
		}
	}
	if !found {
		t.Error("タグ側の関連付けが見つかりません")
	}

	// 削除しても関連するタグ自体は残る
	if err := bookmarkRepo.Delete(bookmark.ID); err != nil {
		t.Fatalf("削除に失敗しました: %v", err)
	}
	if _, err := tagRepo.FindByID(tag.ID); err != nil {
		t.Errorf("タグは削除されないべきです: %v", err)
	}

	var notFoundErr *models.NotFoundError
	if _, err := bookmarkRepo.FindByID(bookmark.ID); !errors.As(err, &notFoundErr) {
		t.Errorf("削除後の取得はNotFoundErrorになるべきです: %v", err)
	}
	if err := bookmarkRepo.Delete(bookmark.ID); !errors.As(err, &notFoundErr) {
		t.Errorf("二重削除はNotFoundErrorになるべきです: %v", err)
	}
}

// 一意制約違反がConstraintViolationに変換されることを確認する
func TestTagRepositoryUniqueConstraint(t *testing.T) {
	db := openTestDB(t)
	tagRepo := NewTagRepository(db)

	name := uniqueName("dup")
	if err := tagRepo.Create(&models.Tag{Name: name}); err != nil {
		t.Fatalf("1つ目の作成に失敗しました: %v", err)
	}

	var constraintErr *models.ConstraintViolation
	err := tagRepo.Create(&models.Tag{Name: name})
	if !errors.As(err, &constraintErr) {
		t.Errorf("重複した名前はConstraintViolationになるべきです: %v", err)
	}
}

// タイムスタンプがUTCで保存・取得されることを確認する
func TestBookmarkRepositoryTimestamps(t *testing.T) {
	db := openTestDB(t)
	bookmarkRepo := NewBookmarkRepository(db)

	created := "2021-01-01T00:00:00-05:00"
	bookmark, err := models.NewBookmark(models.BookmarkInput{
		Title:   "ts",
		URL:     "https://example.com",
		Created: models.NewOptionalString(created),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := bookmarkRepo.Create(bookmark, nil); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = bookmarkRepo.Delete(bookmark.ID) }()

	loaded, err := bookmarkRepo.FindByID(bookmark.ID)
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2021, 1, 1, 5, 0, 0, 0, time.UTC)
	if loaded.Created == nil || !loaded.Created.Equal(want) {
		t.Errorf("created = %v, want %v", loaded.Created, want)
	}
}
