package services

import (
	"sort"
	"strings"

	"github.com/bookie/bookie_server/internal/models"
)

// fakeStore テスト用のインメモリストア。リポジトリと同じ整合性規則
// （中間テーブル経由の対称な関連付け、削除時の関連行の掃除）に従う
type fakeStore struct {
	bookmarks      map[uint]models.Bookmark
	tags           map[uint]models.Tag
	assoc          map[uint]map[uint]bool // bookmarkID -> tagIDの集合
	nextBookmarkID uint
	nextTagID      uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookmarks: make(map[uint]models.Bookmark),
		tags:      make(map[uint]models.Tag),
		assoc:     make(map[uint]map[uint]bool),
	}
}

func (s *fakeStore) tagIDsFor(bookmarkID uint) []uint {
	var ids []uint
	for tagID := range s.assoc[bookmarkID] {
		ids = append(ids, tagID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// fakeBookmarkRepo repository.BookmarkRepositoryのインメモリ実装
type fakeBookmarkRepo struct {
	store *fakeStore
}

func (r *fakeBookmarkRepo) Create(bookmark *models.Bookmark, tagIDs []uint) error {
	r.store.nextBookmarkID++
	bookmark.ID = r.store.nextBookmarkID

	stored := *bookmark
	stored.Tags = nil
	r.store.bookmarks[bookmark.ID] = stored

	r.store.assoc[bookmark.ID] = make(map[uint]bool)
	for _, tagID := range tagIDs {
		r.store.assoc[bookmark.ID][tagID] = true
	}
	return nil
}

func (r *fakeBookmarkRepo) FindByID(id uint) (*models.Bookmark, error) {
	stored, ok := r.store.bookmarks[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "ブックマーク", ID: id}
	}

	// タグを一緒に読み込む
	bookmark := stored
	for _, tagID := range r.store.tagIDsFor(id) {
		bookmark.Tags = append(bookmark.Tags, r.store.tags[tagID])
	}
	return &bookmark, nil
}

func (r *fakeBookmarkRepo) Update(bookmark *models.Bookmark, tagIDs []uint) error {
	if _, ok := r.store.bookmarks[bookmark.ID]; !ok {
		return &models.NotFoundError{Entity: "ブックマーク", ID: bookmark.ID}
	}

	stored := *bookmark
	stored.Tags = nil
	r.store.bookmarks[bookmark.ID] = stored

	r.store.assoc[bookmark.ID] = make(map[uint]bool)
	for _, tagID := range tagIDs {
		r.store.assoc[bookmark.ID][tagID] = true
	}
	return nil
}

func (r *fakeBookmarkRepo) Delete(id uint) error {
	if _, ok := r.store.bookmarks[id]; !ok {
		return &models.NotFoundError{Entity: "ブックマーク", ID: id}
	}
	delete(r.store.bookmarks, id)
	delete(r.store.assoc, id)
	return nil
}

func (r *fakeBookmarkRepo) List(page, limit int, search, tag string) ([]models.Bookmark, int64, error) {
	var result []models.Bookmark
	for id := range r.store.bookmarks {
		bookmark, _ := r.FindByID(id)
		if search != "" && !strings.Contains(bookmark.Title, search) &&
			!strings.Contains(bookmark.URL, search) && !strings.Contains(bookmark.Notes, search) {
			continue
		}
		if tag != "" {
			found := false
			for _, t := range bookmark.Tags {
				if t.Name == tag {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		result = append(result, *bookmark)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// fakeTagRepo repository.TagRepositoryのインメモリ実装
type fakeTagRepo struct {
	store *fakeStore
}

func (r *fakeTagRepo) Create(tag *models.Tag) error {
	for _, existing := range r.store.tags {
		if existing.Name == tag.Name {
			return &models.ConstraintViolation{Message: "一意制約に違反しています: " + tag.Name}
		}
	}
	r.store.nextTagID++
	tag.ID = r.store.nextTagID
	r.store.tags[tag.ID] = models.Tag{ID: tag.ID, Name: tag.Name}
	return nil
}

func (r *fakeTagRepo) FindOrCreate(name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Message: "タグ名は空にできません"}
	}
	for _, existing := range r.store.tags {
		if existing.Name == name {
			tag := existing
			return &tag, nil
		}
	}
	tag := &models.Tag{Name: name}
	if err := r.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *fakeTagRepo) FindByID(id uint) (*models.Tag, error) {
	tag, ok := r.store.tags[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "タグ", ID: id}
	}
	result := tag
	return &result, nil
}

func (r *fakeTagRepo) FindByName(name string) (*models.Tag, error) {
	for _, tag := range r.store.tags {
		if tag.Name == name {
			result := tag
			return &result, nil
		}
	}
	return nil, &models.NotFoundError{Entity: "タグ"}
}

func (r *fakeTagRepo) List(search string, limit int) ([]models.Tag, error) {
	var tags []models.Tag
	for _, tag := range r.store.tags {
		if search != "" && !strings.Contains(tag.Name, search) {
			continue
		}
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}

func (r *fakeTagRepo) ListBookmarks(tagID uint) ([]models.Bookmark, error) {
	if _, ok := r.store.tags[tagID]; !ok {
		return nil, &models.NotFoundError{Entity: "タグ", ID: tagID}
	}
	var bookmarks []models.Bookmark
	for bookmarkID, tagIDs := range r.store.assoc {
		if tagIDs[tagID] {
			bookmarks = append(bookmarks, r.store.bookmarks[bookmarkID])
		}
	}
	sort.Slice(bookmarks, func(i, j int) bool { return bookmarks[i].ID < bookmarks[j].ID })
	return bookmarks, nil
}

func (r *fakeTagRepo) Delete(id uint) error {
	if _, ok := r.store.tags[id]; !ok {
		return &models.NotFoundError{Entity: "タグ", ID: id}
	}
	delete(r.store.tags, id)
	for _, tagIDs := range r.store.assoc {
		delete(tagIDs, id)
	}
	return nil
}

// newTestServices フェイクリポジトリで組み立てたサービス一式を返す
func newTestServices() (BookmarkService, TagService, *fakeStore) {
	store := newFakeStore()
	bookmarkRepo := &fakeBookmarkRepo{store: store}
	tagRepo := &fakeTagRepo{store: store}
	return NewBookmarkService(bookmarkRepo, tagRepo), NewTagService(tagRepo), store
}
