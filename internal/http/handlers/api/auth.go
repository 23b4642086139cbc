package api

import (
	"time"

	"github.com/ipsum-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// TokenRequest 签发 Token 请求
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 签发 Token 响应
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserView  `json:"user"`
}

// CreateToken 用户名密码换取限时签名 Token
func (h *Handler) CreateToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("token_issued", "user_id", user.ID, "username", user.Username)
	response.OK(c, TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      NewUserView(user),
	})
}
