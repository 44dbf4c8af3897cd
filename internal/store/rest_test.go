package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"volunteer-board/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *RestGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRestGateway(resty.New(), srv.URL+"/", "test-key")
}

func TestRestGateway_SelectSendsGrammarAndCredentials(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/records", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Soup Kitchen","hours":3,"photos":["data:image/png;base64,AA=="]}]`))
	})

	var records []model.Record
	err := gw.Select(context.Background(), model.ResourceRecords, All(Desc("created_at")), &records)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, "Soup Kitchen", records[0].Name)
	assert.Equal(t, 3.0, records[0].Hours)
	assert.Len(t, records[0].Photos, 1)
}

func TestRestGateway_EmptyBodyIsEmptyResult(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var records []model.Record
	require.NoError(t, gw.Select(context.Background(), model.ResourceRecords, All(), &records))
	assert.Empty(t, records)
}

func TestRestGateway_NonSuccessIsRemoteError(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid API key"}`))
	})

	var records []model.Record
	err := gw.Select(context.Background(), model.ResourceRecords, All(), &records)
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusUnauthorized, remote.Status)
	assert.Contains(t, remote.Body, "Invalid API key")
	assert.True(t, IsRemote(err))
}

func TestRestGateway_MalformedBodyIsDecodeError(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	var records []model.Record
	err := gw.Select(context.Background(), model.ResourceRecords, All(), &records)
	require.Error(t, err)
	assert.True(t, IsDecode(err))
	assert.False(t, IsRemote(err))

	err = gw.Insert(context.Background(), model.ResourceRecords, map[string]any{"name": "x"})
	assert.True(t, IsDecode(err))
}

func TestRestGateway_WritesUseFilterAndBody(t *testing.T) {
	type seen struct {
		method string
		query  string
		body   map[string]any
	}
	var calls []seen

	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		if len(raw) > 0 {
			assert.NoError(t, json.Unmarshal(raw, &body))
		}
		calls = append(calls, seen{method: r.Method, query: r.URL.RawQuery, body: body})
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	require.NoError(t, gw.Insert(ctx, model.ResourceComments, model.CommentInsert{RecordID: 3, Nickname: "Bo"}))
	require.NoError(t, gw.Update(ctx, model.ResourceRecords, map[string]any{"hours": 2.5}, Eq("id", 3)))
	require.NoError(t, gw.Delete(ctx, model.ResourceComments, Eq("record_id", 3)))

	require.Len(t, calls, 3)
	assert.Equal(t, http.MethodPost, calls[0].method)
	assert.Equal(t, "Bo", calls[0].body["nickname"])
	assert.Equal(t, float64(3), calls[0].body["record_id"])

	assert.Equal(t, http.MethodPatch, calls[1].method)
	assert.Equal(t, "id=eq.3", calls[1].query)
	assert.Equal(t, 2.5, calls[1].body["hours"])

	assert.Equal(t, http.MethodDelete, calls[2].method)
	assert.Equal(t, "record_id=eq.3", calls[2].query)
}
