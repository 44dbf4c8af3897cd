package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"volunteer-board/config"
	"volunteer-board/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Status(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, response.ErrValidation.Status())
	assert.Equal(t, http.StatusForbidden, response.ErrForbidden.Status())
	assert.Equal(t, http.StatusBadGateway, response.ErrStore.Status())
	assert.Equal(t, http.StatusServiceUnavailable, response.ErrSetupRequired.Status())
}

func TestError_WithOriginKeepsCode(t *testing.T) {
	cause := errors.New("boom")
	err := response.ErrStore.WithOrigin(cause)
	assert.True(t, errors.Is(err, response.ErrStore))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Origin, "boom")
	assert.NotNil(t, err.StackTrace())
}

func TestFail_DebugShowsOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Mode = config.ModeDebug
	config.Set(cfg)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	response.Fail(c, response.ErrStore.WithOrigin(errors.New("upstream 503")))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var body response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, response.ErrStore.Code, body.Code)
	assert.Contains(t, body.Origin, "upstream 503")
	assert.Len(t, c.Errors, 1)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		defer response.Recovery(c)
		c.Next()
	})
	r.GET("/panic", func(*gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
