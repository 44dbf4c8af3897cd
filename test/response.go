package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"volunteer-board/internal/global/response"

	"github.com/stretchr/testify/require"
)

// Response 与 response.ResponseBody 相同，Data 保留原始 JSON 以便按需解码
type Response struct {
	Code int32           `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func Decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

// DecodeData 校验成功后把 data 解码进 out
func DecodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	resp := Decode(t, w)
	NoError(t, resp)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func ErrorEqual(t *testing.T, expected *response.Error, resp Response) {
	t.Helper()
	require.Equal(t, expected.Code, resp.Code, resp.Msg)
}

func NoError(t *testing.T, resp Response) {
	t.Helper()
	require.Equal(t, int32(200), resp.Code, resp.Msg)
}
