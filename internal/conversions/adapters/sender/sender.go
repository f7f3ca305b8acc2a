package sender

import (
	"context"
	"time"

	"conversions-adapter/internal/conversions/core/domain"
	"conversions-adapter/internal/conversions/core/ports"

	"github.com/valyala/fasthttp"
)

// Sender executes request descriptors with a fasthttp client. Each call is
// a single attempt.
type Sender struct {
	client  *fasthttp.Client
	timeout time.Duration
}

func New(client *fasthttp.Client, timeout time.Duration) *Sender {
	if client == nil {
		// POST is not idempotent, so fasthttp never retries it
		client = &fasthttp.Client{Name: "conversions-adapter"}
	}
	return &Sender{client: client, timeout: timeout}
}

var _ ports.SenderPort = (*Sender)(nil)

func (s *Sender) Send(ctx context.Context, d *domain.RequestDescriptor) (*domain.DeliveryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(d.URL)
	req.Header.SetMethod(d.Method)
	for _, h := range d.Headers {
		req.Header.Set(h.Name, h.Value)
	}
	req.SetBodyString(d.Body)

	deadline := time.Now().Add(s.timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}

	if err := s.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, err
	}

	return &domain.DeliveryResult{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
	}, nil
}
