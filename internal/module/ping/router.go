package ping

import (
	"volunteer-board/config"
	"volunteer-board/internal/global/response"

	"github.com/gin-gonic/gin"
)

// InitRouter /ping 不经过配置检查，用于探活和查看是否需要完成配置
func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) {
		err := config.Get().Validate()
		if err != nil {
			log.Debug("ping: 配置不完整", "error", err)
		}
		response.Success(c, gin.H{
			"message":        "pong",
			"version":        "1.0.0",
			"setup_required": err != nil,
		})
	})
}
