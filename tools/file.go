package tools

import (
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
)

const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func FileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SendAttachment 以附件形式返回内存中的文件
func SendAttachment(c *gin.Context, displayName, contentType string, data []byte) {
	escaped := url.QueryEscape(displayName)
	c.Header(
		"Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped),
	)
	c.Data(http.StatusOK, contentType, data)
}

func PanicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
