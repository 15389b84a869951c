package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController ヘルスチェックに関するコントローラー
type HealthController struct {
	db        *gorm.DB
	startTime time.Time
}

// NewHealthController HealthControllerを作成
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{
		db:        db,
		startTime: time.Now(),
	}
}

// HealthStatus ヘルスステータスレスポンス
type HealthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// Check ヘルスチェック
func (c *HealthController) Check(ctx *gin.Context) {
	status := "ok"
	database := "ok"

	// データベース接続を確認
	sqlDB, err := c.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		database = "unreachable"
	}

	healthStatus := &HealthStatus{
		Status:    status,
		Database:  database,
		Uptime:    time.Since(c.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	ctx.JSON(code, healthStatus)
}
