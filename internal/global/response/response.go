package response

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"volunteer-board/config"
	"volunteer-board/internal/global/logger"

	"github.com/gin-gonic/gin"
)

type ResponseBody struct {
	Code   int32  `json:"code"`
	Msg    string `json:"msg"`
	Origin string `json:"origin,omitempty"`
	Data   any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data ...any) {
	body := ResponseBody{Code: 200, Msg: "success"}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 写出错误响应。5xx 错误存入 gin.Context 供 sentry 中间件上报
func Fail(c *gin.Context, err *Error) {
	body := ResponseBody{Code: err.Code, Msg: err.Message}
	if config.Get().Mode == config.ModeDebug {
		body.Origin = err.Origin
	}
	if err.Status() >= http.StatusInternalServerError {
		_ = c.Error(err)
		c.Set(ErrorContextKey, err)
	}
	c.AbortWithStatusJSON(err.Status(), body)
}

// FailWithData 错误响应附带数据，例如未完成配置时列出缺失的配置项
func FailWithData(c *gin.Context, err *Error, data any) {
	c.AbortWithStatusJSON(err.Status(), ResponseBody{Code: err.Code, Msg: err.Message, Data: data})
}

// Recovery 在 defer 中调用，把 panic 转成 500 响应
func Recovery(c *gin.Context) {
	r := recover()
	if r == nil {
		return
	}
	var err error
	switch v := r.(type) {
	case error:
		err = v
	default:
		err = fmt.Errorf("panic: %v", v)
	}
	logger.Get().Error("请求处理发生 panic", "path", c.Request.URL.Path, "error", err, "stack", string(debug.Stack()))
	Fail(c, ErrServerInternal.WithOrigin(err))
}
