package api

import (
	"errors"
	"net/http"

	"github.com/ipsum-store/internal/http/response"
	"github.com/ipsum-store/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	status int
	code   string
	msg    string
}

var resourceErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, status: http.StatusNotFound, code: "not_found", msg: "record not found"},
	{target: service.ErrUsernameExists, status: http.StatusConflict, code: "conflict_error", msg: "username already taken"},
	{target: service.ErrPasswordTooShort, status: http.StatusBadRequest, code: "validation_error", msg: "password too short"},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, code: "authentication_error", msg: "invalid credentials"},
	{target: service.ErrTokenInvalid, status: http.StatusUnauthorized, code: "authentication_error", msg: "invalid or expired token"},
}

// respondServiceError 将 service 层错误转换为结构化错误响应。
// 校验错误携带缺失字段清单；未映射的错误按 500 处理并记录日志。
func respondServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		response.ErrorWithFields(c, http.StatusBadRequest, "validation_error", validationErr.Error(), validationErr.Fields)
		return
	}
	for _, rule := range resourceErrorRules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.status, rule.code, rule.msg)
			return
		}
	}
	requestLog(c).Errorw("handler_error",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	response.Internal(c, "internal error")
}

// respondBindError 请求体解析失败的统一响应
func respondBindError(c *gin.Context, err error) {
	requestLog(c).Debugw("request_body_bind_failed", "error", err)
	response.BadRequest(c, "invalid request body")
}
