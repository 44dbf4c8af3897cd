package middleware

import (
	"volunteer-board/internal/global/response"
	"volunteer-board/internal/global/sentry"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer response.Recovery(c)
		c.Next()
	}
}

// ReportErrors 请求结束后把记录在 gin.Context 中的服务端错误上报到 Sentry
func ReportErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if v, ok := c.Get(response.ErrorContextKey); ok {
			if err, ok := v.(error); ok {
				sentry.CaptureException(c, err)
			}
		}
	}
}
