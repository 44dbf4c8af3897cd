package jwt

import (
	"github.com/gin-gonic/gin"
)

const payloadKey = "payload"

func SetPayload(c *gin.Context, claims *Claims) {
	c.Set(payloadKey, claims)
}

func GetPayload(c *gin.Context) (payload *Claims, exist bool) {
	v, _ := c.Get(payloadKey)
	payload, exist = v.(*Claims)
	return
}
