package bulletin

import (
	"volunteer-board/config"
	"volunteer-board/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleBulletin) InitRouter(r *gin.RouterGroup) {
	Register(r, config.Get(), handler)
}

// Register 所有接口都先经过配置检查，配置不完整时 h 可以为 nil
func Register(r *gin.RouterGroup, cfg *config.Config, h *Handler) {
	g := r.Group("/bulletin", middleware.SetupGate(cfg))
	g.POST("/session", h.NewSession)

	s := g.Group("", middleware.Session())
	s.GET("/state", h.act(h.state))
	s.POST("/reload", h.act(h.reload))
	s.POST("/select/:id", h.act(h.selectRecord))
	s.POST("/back", h.act(h.back))
	s.PUT("/sort", h.act(h.setSort))

	s.POST("/modal/create", h.act(h.openCreate))
	s.POST("/modal/edit/:id", h.act(h.openEdit))
	s.POST("/modal/admin-delete/:id", h.act(h.openAdminDelete))
	s.POST("/modal/comment-delete/:id", h.act(h.openCommentDelete))
	s.DELETE("/modal", h.act(h.closeModal))

	s.PUT("/draft", h.act(h.updateDraft))
	s.POST("/draft/photos", h.act(h.stagePhotos))
	s.DELETE("/draft/photos/:index", h.act(h.removePhoto))

	s.POST("/submit", h.act(h.submit))
	s.POST("/confirm", h.act(h.confirm))
	s.POST("/comments", h.act(h.addComment))

	s.GET("/export", h.Export)
}
