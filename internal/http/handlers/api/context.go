package api

import (
	"strconv"

	"github.com/ipsum-store/internal/http/response"
	"github.com/ipsum-store/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// pathID 读取路径参数 :id。无法解析为正整数时返回 400 并终止处理。
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid identifier")
		return 0, false
	}
	return uint(id), true
}

// requestLog 提供携带 request_id 的日志实例
func requestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}
