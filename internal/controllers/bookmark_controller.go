package controllers

import (
	"net/http"
	"strconv"

	"github.com/bookie/bookie_server/internal/models"
	"github.com/bookie/bookie_server/internal/services"

	"github.com/gin-gonic/gin"
)

// BookmarkController ブックマークに関するコントローラー
type BookmarkController struct {
	bookmarkService services.BookmarkService
}

// NewBookmarkController BookmarkControllerを作成
func NewBookmarkController(bookmarkService services.BookmarkService) *BookmarkController {
	return &BookmarkController{
		bookmarkService: bookmarkService,
	}
}

// BookmarkRequest ブックマークの作成・更新リクエスト
//
// created は「キーなし」「null」「文字列」を区別する
type BookmarkRequest struct {
	Title    string                `json:"title"`
	URL      string                `json:"url"`
	Notes    string                `json:"notes"`
	Modified *string               `json:"modified"`
	Created  models.OptionalString `json:"created"`
	Tags     []string              `json:"tags"`
}

// toInput リクエストを構築入力に変換
func (r *BookmarkRequest) toInput() models.BookmarkInput {
	return models.BookmarkInput{
		Title:    r.Title,
		URL:      r.URL,
		Notes:    r.Notes,
		Modified: r.Modified,
		Created:  r.Created,
		Tags:     r.Tags,
	}
}

// Create 新しいブックマークを作成
func (c *BookmarkController) Create(ctx *gin.Context) {
	var req BookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの解析に失敗しました"})
		return
	}

	bookmark, err := c.bookmarkService.Create(req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, bookmark.Dump())
}

// GetByID IDでブックマークを取得
func (c *BookmarkController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	bookmark, err := c.bookmarkService.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, bookmark.Dump())
}

// List ブックマーク一覧を取得
func (c *BookmarkController) List(ctx *gin.Context) {
	// クエリパラメータを取得
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	search := ctx.Query("search")
	tag := ctx.Query("tag")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	bookmarks, total, pages, err := c.bookmarkService.List(page, limit, search, tag)
	if err != nil {
		respondError(ctx, err)
		return
	}

	dumps := make([]map[string]any, 0, len(bookmarks))
	for i := range bookmarks {
		dumps = append(dumps, bookmarks[i].Dump())
	}

	ctx.JSON(http.StatusOK, gin.H{
		"bookmarks": dumps,
		"total":     total,
		"pages":     pages,
		"page":      page,
	})
}

// Update ブックマークを更新
func (c *BookmarkController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req BookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの解析に失敗しました"})
		return
	}

	bookmark, err := c.bookmarkService.Update(id, req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, bookmark.Dump())
}

// Delete ブックマークを削除
func (c *BookmarkController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	if err := c.bookmarkService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseIDParam パスパラメータのIDを解析（失敗時はレスポンス済み）
func parseIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return 0, err
	}
	return uint(id), nil
}
