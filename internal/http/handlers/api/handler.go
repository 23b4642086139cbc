package api

import "github.com/ipsum-store/internal/provider"

// Handler API 处理器入口，持有依赖容器
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
