package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"volunteer-board/config"
	"volunteer-board/internal/global/jwt"
	"volunteer-board/internal/global/middleware"
	"volunteer-board/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupGate_BlocksWhenConfigIncomplete(t *testing.T) {
	cfg := config.Default()
	r := gin.New()
	called := false
	r.GET("/x", middleware.SetupGate(&cfg), func(c *gin.Context) { called = true })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Code int32                  `json:"code"`
		Data middleware.SetupStatus `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, response.ErrSetupRequired.Code, body.Code)
	assert.True(t, body.Data.SetupRequired)
	assert.Equal(t, []string{"store.url", "store.api_key", "admin.secret"}, body.Data.Missing)
}

func TestSetupGate_PassesWhenValid(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = config.DriverSqlite
	cfg.Admin.Secret = "s3cret-value"
	r := gin.New()
	r.GET("/x", middleware.SetupGate(&cfg), func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestSession(t *testing.T) {
	r := gin.New()
	r.GET("/x", middleware.Session(), func(c *gin.Context) {
		payload, ok := jwt.GetPayload(c)
		require.True(t, ok)
		c.String(http.StatusOK, payload.SessionID)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := jwt.CreateToken(jwt.Payload{SessionID: "sess-1"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sess-1", w.Body.String())
}

func TestCors_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Cors())
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
