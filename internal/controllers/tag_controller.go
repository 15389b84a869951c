package controllers

import (
	"net/http"
	"strconv"

	"github.com/bookie/bookie_server/internal/services"

	"github.com/gin-gonic/gin"
)

// TagController タグに関するコントローラー
type TagController struct {
	tagService services.TagService
}

// NewTagController TagControllerを作成
func NewTagController(tagService services.TagService) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// TagRequest タグ作成リクエスト
type TagRequest struct {
	Name string `json:"name"`
}

// Create 新しいタグを作成
func (c *TagController) Create(ctx *gin.Context) {
	var req TagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの解析に失敗しました"})
		return
	}

	tag, err := c.tagService.Create(req.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, tag.Dump())
}

// GetByID IDでタグを取得
func (c *TagController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	tag, err := c.tagService.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tag.Dump())
}

// List タグ一覧を取得
func (c *TagController) List(ctx *gin.Context) {
	// クエリパラメータを取得
	search := ctx.Query("search")
	limitStr := ctx.DefaultQuery("limit", "50")

	// リミットを解析
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 200 {
		limit = 50
	}

	tags, err := c.tagService.List(search, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	dumps := make([]map[string]any, 0, len(tags))
	for i := range tags {
		dumps = append(dumps, tags[i].Dump())
	}

	ctx.JSON(http.StatusOK, dumps)
}

// ListBookmarks タグに関連付けられたブックマークを取得
func (c *TagController) ListBookmarks(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	bookmarks, err := c.tagService.ListBookmarks(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	dumps := make([]map[string]any, 0, len(bookmarks))
	for i := range bookmarks {
		dumps = append(dumps, bookmarks[i].Dump())
	}

	ctx.JSON(http.StatusOK, dumps)
}

// Delete タグを削除
func (c *TagController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	if err := c.tagService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
