package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 成功响应直接输出序列化实体，错误响应输出 ErrorBody 包装。
// 状态码走真实 HTTP 状态，不做业务码信封。

// ErrorBody 错误响应结构
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Fields    []string `json:"fields,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// OK 200 响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 空响应
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应
func Error(c *gin.Context, status int, code, msg string) {
	ErrorWithFields(c, status, code, msg, nil)
}

// ErrorWithFields 错误响应（带字段清单，用于校验错误）
func ErrorWithFields(c *gin.Context, status int, code, msg string, fields []string) {
	c.JSON(status, ErrorBody{
		Error: ErrorDetail{
			Code:      code,
			Message:   msg,
			Fields:    fields,
			RequestID: requestID(c),
		},
	})
}

// NotFound 404 响应
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, "not_found", msg)
}

// Unauthorized 401 响应
func Unauthorized(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, "authentication_error", msg)
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, "validation_error", msg)
}

// Conflict 409 响应
func Conflict(c *gin.Context, msg string) {
	Error(c, http.StatusConflict, "conflict_error", msg)
}

// Internal 500 响应
func Internal(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, "internal_error", msg)
}

func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
