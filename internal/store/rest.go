package store

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const restPath = "/rest/v1/"

// RestGateway 通过托管数据库的 REST 接口读写资源。
// 认证是固定的 apikey 头加 Bearer 凭证，与访问者无关。
type RestGateway struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

func NewRestGateway(client *resty.Client, endpoint, apiKey string) *RestGateway {
	return &RestGateway{
		client:  client,
		baseURL: strings.TrimRight(endpoint, "/") + restPath,
		apiKey:  apiKey,
	}
}

func (g *RestGateway) request(ctx context.Context) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetHeader("apikey", g.apiKey).
		SetAuthToken(g.apiKey).
		SetHeader("Accept", "application/json")
}

func (g *RestGateway) url(resource string) string {
	return g.baseURL + resource
}

func (g *RestGateway) Select(ctx context.Context, resource string, query Query, out any) error {
	resp, err := g.request(ctx).
		SetQueryParamsFromValues(query.Values()).
		Get(g.url(resource))
	if err != nil {
		return errors.Wrapf(err, "select %s", resource)
	}
	return decodeResponse(resp, out)
}

func (g *RestGateway) Insert(ctx context.Context, resource string, payload any) error {
	resp, err := g.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=minimal").
		SetBody(payload).
		Post(g.url(resource))
	if err != nil {
		return errors.Wrapf(err, "insert %s", resource)
	}
	return decodeResponse(resp, nil)
}

func (g *RestGateway) Update(ctx context.Context, resource string, payload any, filter Filter) error {
	resp, err := g.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=minimal").
		SetQueryParamsFromValues(filter.Values()).
		SetBody(payload).
		Patch(g.url(resource))
	if err != nil {
		return errors.Wrapf(err, "update %s where %s", resource, filter)
	}
	return decodeResponse(resp, nil)
}

func (g *RestGateway) Delete(ctx context.Context, resource string, filter Filter) error {
	resp, err := g.request(ctx).
		SetHeader("Prefer", "return=minimal").
		SetQueryParamsFromValues(filter.Values()).
		Delete(g.url(resource))
	if err != nil {
		return errors.Wrapf(err, "delete %s where %s", resource, filter)
	}
	return decodeResponse(resp, nil)
}

// decodeResponse 非 2xx 为 RemoteError；空响应体视为空结果；
// 非空但不是合法 JSON 为 DecodeError。out 为 nil 时只校验格式。
func decodeResponse(resp *resty.Response, out any) error {
	body := resp.Body()
	if !resp.IsSuccess() {
		return errors.WithStack(&RemoteError{Status: resp.StatusCode(), Body: string(body)})
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if out == nil {
		if !json.Valid(trimmed) {
			return errors.WithStack(&DecodeError{Body: string(body), Err: errors.New("invalid JSON")})
		}
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return errors.WithStack(&DecodeError{Body: string(body), Err: err})
	}
	return nil
}
