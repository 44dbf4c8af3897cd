package middleware

import (
	"errors"

	"volunteer-board/config"
	"volunteer-board/internal/global/response"

	"github.com/gin-gonic/gin"
)

type SetupStatus struct {
	SetupRequired bool     `json:"setup_required"`
	Missing       []string `json:"missing"`
}

// SetupGate 配置不完整时拦截所有请求，不会访问数据后端
func SetupGate(cfg *config.Config) gin.HandlerFunc {
	err := cfg.Validate()
	return func(c *gin.Context) {
		if err == nil {
			c.Next()
			return
		}
		status := SetupStatus{SetupRequired: true}
		var setupErr *config.SetupError
		if errors.As(err, &setupErr) {
			status.Missing = setupErr.Missing
		}
		response.FailWithData(c, response.ErrSetupRequired, status)
	}
}
