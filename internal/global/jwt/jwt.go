package jwt

import (
	"crypto/rand"
	"sync"
	"time"

	"volunteer-board/config"
	"volunteer-board/internal/global/logger"

	"github.com/golang-jwt/jwt"
)

// Payload 会话令牌携带的信息，只有会话 ID，不对应任何用户账号
type Payload struct {
	SessionID string `json:"sid"`
}

type Claims struct {
	Payload
	jwt.StandardClaims
}

var (
	keyOnce sync.Once
	key     []byte
)

// secret 未配置 jwt.access_secret 时生成随机密钥，进程重启后旧令牌失效
func secret() []byte {
	keyOnce.Do(func() {
		if s := config.Get().JWT.AccessSecret; s != "" {
			key = []byte(s)
			return
		}
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(err)
		}
		logger.New("JWT").Warn("未配置 jwt.access_secret，使用随机密钥")
	})
	return key
}

func CreateToken(payload Payload) (string, error) {
	now := time.Now()
	claims := Claims{
		Payload: payload,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(config.Get().JWT.AccessExpire) * time.Second).Unix(),
			Issuer:    "volunteer-board",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

func ParseToken(token string) (*Claims, bool) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret(), nil
	})
	if err != nil || !parsed.Valid || claims.SessionID == "" {
		return nil, false
	}
	return claims, true
}
