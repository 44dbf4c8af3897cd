package sentry

import (
	"errors"
	"testing"

	"volunteer-board/internal/global/response"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
)

func TestShouldReport(t *testing.T) {
	assert.True(t, shouldReport(response.ErrStore))
	assert.True(t, shouldReport(response.ErrServerInternal.WithOrigin(errors.New("x"))))
	assert.False(t, shouldReport(response.ErrForbidden))
	assert.False(t, shouldReport(response.ErrValidation))
	assert.True(t, shouldReport(errors.New("plain")))
}

func TestScrubRequest(t *testing.T) {
	event := &sentry.Event{Request: &sentry.Request{
		Data:    `{"password":"hunter2"}`,
		Headers: map[string]string{"Authorization": "Bearer t", "Accept": "json"},
	}}
	out := scrubRequest(event, nil)
	assert.Empty(t, out.Request.Data)
	assert.NotContains(t, out.Request.Headers, "Authorization")
	assert.Equal(t, "json", out.Request.Headers["Accept"])
}
