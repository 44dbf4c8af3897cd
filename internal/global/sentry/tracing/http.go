package tracing

import (
	"net/url"
	"path"

	"volunteer-board/config"

	"github.com/getsentry/sentry-go"
	"github.com/go-resty/resty/v2"
)

// SetupRestyTracing 每个发往数据后端的请求记为一个 http.client span，
// 描述只保留方法和资源名，过滤条件中可能含有 ID 等高基数值
func SetupRestyTracing(client *resty.Client) {
	if !config.Get().Sentry.Tracing.TraceHTTPCalls {
		return
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		parent := sentry.SpanFromContext(req.Context())
		if parent == nil {
			return nil
		}
		span := parent.StartChild("http.client")
		span.Description = req.Method + " " + resourceName(req.URL)
		span.SetData("http.request.method", req.Method)
		span.SetData("store.resource", resourceName(req.URL))

		req.SetHeader("sentry-trace", span.ToSentryTrace())
		if baggage := span.ToBaggage(); baggage != "" {
			req.SetHeader("baggage", baggage)
		}
		req.SetContext(span.Context())
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		span := sentry.SpanFromContext(resp.Request.Context())
		if span == nil {
			return nil
		}
		span.SetData("http.response.status_code", resp.StatusCode())
		if resp.StatusCode() >= 400 {
			span.Status = sentry.HTTPtoSpanStatus(resp.StatusCode())
		} else {
			span.Status = sentry.SpanStatusOK
		}
		span.Finish()
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		if req == nil {
			return
		}
		Finish(sentry.SpanFromContext(req.Context()), err)
	})
}

// resourceName 取 URL 路径最后一段，例如 /rest/v1/records -> records
func resourceName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "unknown"
	}
	return path.Base(u.Path)
}
