package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNoSelection     = errors.New("no record selected")
	ErrModalMismatch   = errors.New("current dialog does not allow this action")
	ErrPhotoIndex      = errors.New("photo index out of range")
)

// ValidationError 必填项为空或格式不对，在发出任何请求之前返回
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// AuthorizationError 密码不匹配。这是面向用户的拒绝，不是系统故障
type AuthorizationError struct {
	Action string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s: password does not match", e.Action)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsAuthorization(err error) bool {
	var ae *AuthorizationError
	return errors.As(err, &ae)
}
