package controllers

import (
	"errors"
	"net/http"

	"github.com/bookie/bookie_server/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError ドメインエラーをHTTPステータスに変換して返す
func respondError(ctx *gin.Context, err error) {
	var validationErr *models.ValidationError
	var constraintErr *models.ConstraintViolation
	var notFoundErr *models.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &constraintErr):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
