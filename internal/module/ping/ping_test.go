package ping

import (
	"net/http"
	"testing"

	"volunteer-board/config"
	"volunteer-board/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.Set(config.Default())
	p := &ModulePing{}
	p.Init()
	r := gin.New()
	p.InitRouter(r.Group("/api"))

	var out struct {
		Message       string `json:"message"`
		SetupRequired bool   `json:"setup_required"`
	}
	test.DecodeData(t, test.DoRequest(t, r, http.MethodGet, "/api/ping", "", nil), &out)
	assert.Equal(t, "pong", out.Message)
	assert.True(t, out.SetupRequired)
}
