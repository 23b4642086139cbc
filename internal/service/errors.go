package service

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrUsernameExists 登录名已被占用
	ErrUsernameExists = errors.New("登录名已存在")
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	// ErrTokenInvalid 无效或过期的 token
	ErrTokenInvalid = errors.New("无效的 token")
	// ErrPasswordTooShort 密码长度不满足策略
	ErrPasswordTooShort = errors.New("密码长度不足")
)

// ValidationError 创建/更新请求缺少必填字段
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// newValidationError 收集缺失字段；无缺失时返回 nil
func newValidationError(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
