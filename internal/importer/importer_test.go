package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bookie/bookie_server/internal/models"
)

// fakeBookmarkService 受け取った入力を記録するだけのフェイク
type fakeBookmarkService struct {
	inputs []models.BookmarkInput
}

func (s *fakeBookmarkService) Create(input models.BookmarkInput) (*models.Bookmark, error) {
	s.inputs = append(s.inputs, input)
	return models.NewBookmark(input)
}

func (s *fakeBookmarkService) GetByID(id uint) (*models.Bookmark, error) { return nil, nil }
func (s *fakeBookmarkService) Update(id uint, input models.BookmarkInput) (*models.Bookmark, error) {
	return nil, nil
}
func (s *fakeBookmarkService) Delete(id uint) error { return nil }
func (s *fakeBookmarkService) List(page, limit int, search, tag string) ([]models.Bookmark, int64, int, error) {
	return nil, 0, 0, nil
}

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportBookmarks(t *testing.T) {
	path := writeTestFile(t, `{
		"bookmarks": [
			{"url": "https://go.dev", "title": "Go", "description": "公式サイト", "tags": ["golang", "docs"], "created_at": 1609477200},
			{"url": "https://example.com", "title": ""},
			{"title": "URLなし"}
		]
	}`)

	svc := &fakeBookmarkService{}
	result, err := ImportBookmarks(svc, path)
	if err != nil {
		t.Fatalf("インポートに失敗しました: %v", err)
	}

	if result.Imported != 2 || result.Skipped != 1 || result.Failed != 0 {
		t.Errorf("result = %+v", result)
	}
	if len(svc.inputs) != 2 {
		t.Fatalf("作成された件数 = %d", len(svc.inputs))
	}

	first := svc.inputs[0]
	if first.Title != "Go" || first.URL != "https://go.dev" || first.Notes != "公式サイト" {
		t.Errorf("input = %+v", first)
	}
	if len(first.Tags) != 2 {
		t.Errorf("tags = %v", first.Tags)
	}
	// created_at (UNIX秒) がUTCのISO-8601に変換される
	if !first.Created.Set || first.Created.Value == nil || *first.Created.Value != "2021-01-01T05:00:00+00:00" {
		t.Errorf("created = %+v", first.Created)
	}

	// タイトルのないエントリはURLがタイトルになる
	if svc.inputs[1].Title != "https://example.com" {
		t.Errorf("title = %q", svc.inputs[1].Title)
	}
}

func TestImportBookmarksEmptyFile(t *testing.T) {
	path := writeTestFile(t, `{"bookmarks": []}`)

	svc := &fakeBookmarkService{}
	if _, err := ImportBookmarks(svc, path); err == nil {
		t.Error("空のファイルはエラーになるべきです")
	}
}

func TestImportBookmarksMissingFile(t *testing.T) {
	svc := &fakeBookmarkService{}
	if _, err := ImportBookmarks(svc, "/no/such/file.json"); err == nil {
		t.Error("存在しないファイルはエラーになるべきです")
	}
}
