package store

import (
	"errors"
	"fmt"
)

// RemoteError 数据后端返回了非 2xx 响应
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote store responded %d: %s", e.Status, truncate(e.Body, 200))
}

// DecodeError 成功响应的响应体无法解析
type DecodeError struct {
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode store response: %v (body: %s)", e.Err, truncate(e.Body, 200))
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsRemote 错误链中是否有 RemoteError
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsDecode 错误链中是否有 DecodeError
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "...(truncated)"
}
