// Package clients содержит HTTP-клиенты внешних сервисов поверх resty:
// классификатор болезней растений, прогноз погоды и обратный геокодер.
package clients

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"resty.dev/v3"

	"github.com/pribylovaa/agro-community/internal/metrics"
)

// ErrUpstream — внешний сервис ответил ошибкой (не 2xx) или некорректным телом.
var ErrUpstream = errors.New("upstream error")

const userAgent = "agro-community/1.0"

// ClientConfig — общие настройки транспорта и middleware клиентов.
type ClientConfig struct {
	TransportSettings *resty.TransportSettings

	ResponseMiddlewares []resty.ResponseMiddleware
}

// DefaultConfig — короткие таймауты соединения и метрики латентности.
var DefaultConfig = &ClientConfig{
	TransportSettings: &resty.TransportSettings{
		DialerTimeout:         2 * time.Second,
		DialerKeepAlive:       30 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   2 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	},

	ResponseMiddlewares: []resty.ResponseMiddleware{MetricMiddleware},
}

func newResty(baseURL string, timeout time.Duration, cc *ClientConfig) *resty.Client {
	if cc == nil {
		cc = DefaultConfig
	}

	var c *resty.Client
	if cc.TransportSettings != nil {
		c = resty.NewWithTransportSettings(cc.TransportSettings)
	} else {
		c = resty.New()
	}

	c.SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	for _, m := range cc.ResponseMiddlewares {
		c.AddResponseMiddleware(m)
	}

	return c
}

// MetricMiddleware пишет латентность ответа в metrics.OutboundLatency.
func MetricMiddleware(_ *resty.Client, response *resty.Response) error {
	reqURL, err := url.Parse(response.Request.URL)
	if err != nil {
		return err
	}

	metrics.OutboundLatency.WithLabelValues(
		response.Request.Method,
		reqURL.Host,
		reqURL.Path,
		fmt.Sprintf("%d", response.StatusCode()),
	).Observe(response.Duration().Seconds())

	return nil
}

func upstreamError(op string, res *resty.Response) error {
	return fmt.Errorf("%s: status %d: %w", op, res.StatusCode(), ErrUpstream)
}

func r(ctx context.Context, c *resty.Client) *resty.Request {
	return c.R().WithContext(ctx)
}
