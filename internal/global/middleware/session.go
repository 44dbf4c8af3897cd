package middleware

import (
	"strings"

	"volunteer-board/internal/global/jwt"
	"volunteer-board/internal/global/response"

	"github.com/gin-gonic/gin"
)

// Session 校验 Bearer 会话令牌，把会话信息放进 gin.Context
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			response.Fail(c, response.ErrTokenInvalid)
			return
		}
		payload, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			return
		}
		jwt.SetPayload(c, payload)
		c.Next()
	}
}
