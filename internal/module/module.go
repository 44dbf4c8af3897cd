package module

import (
	"volunteer-board/internal/module/bulletin"
	"volunteer-board/internal/module/ping"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&bulletin.ModuleBulletin{},
	})
}
