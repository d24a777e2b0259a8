package handler

import (
	"net/http"
	"time"

	"github.com/agvc-system/fleet-management/internal/config"
	"github.com/agvc-system/fleet-management/pkg/utils"
	"github.com/gin-gonic/gin"
)

// SystemHandler 系统信息处理器
type SystemHandler struct {
	cfg *config.Config
}

// NewSystemHandler 创建系统信息处理器
func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{cfg: cfg}
}

// Root 服务元信息
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    h.cfg.Server.Name,
		"version": h.cfg.Server.Version,
		"status":  "running",
	})
}

// Health 健康检查
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// SlowQuery 慢查询调试端点
// 阻塞指定秒数后返回，用于人工验证并发请求不会被单个慢请求卡住
func (h *SystemHandler) SlowQuery(c *gin.Context) {
	seconds := utils.ParseInt(c.DefaultQuery("seconds", "10"), 10)

	startTime := time.Now()
	time.Sleep(time.Duration(seconds) * time.Second)
	endTime := time.Now()

	c.JSON(http.StatusOK, gin.H{
		"message":         "slow query finished",
		"start_time":      startTime.Format("2006-01-02 15:04:05"),
		"end_time":        endTime.Format("2006-01-02 15:04:05"),
		"elapsed_seconds": endTime.Sub(startTime).Seconds(),
	})
}
