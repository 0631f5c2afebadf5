// Package webhook forwards validated submissions to per-form automation
// endpoints, best-effort.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"caftan/config"
	deliverycontext "caftan/internal/delivery/context"
	"caftan/internal/domain/entity"
	"caftan/internal/domain/service"

	"github.com/pkg/errors"
)

const sinkName = "automation_webhook"

// Forwarder implements service.SubmissionSink over plain HTTP POSTs.
// Each form type has its own, independently optional, destination URL;
// a missing URL skips the delivery instead of failing it.
type Forwarder struct {
	urls       map[entity.FormType]string
	httpClient *http.Client
}

// NewForwarder creates a forwarder from configuration. cfg may be nil.
func NewForwarder(cfg *config.WebhooksConfig) *Forwarder {
	forwarder := &Forwarder{
		urls:       map[entity.FormType]string{},
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	if cfg == nil {
		return forwarder
	}

	forwarder.urls[entity.FormTypeOrder] = cfg.Order
	forwarder.urls[entity.FormTypePartner] = cfg.Partner
	forwarder.urls[entity.FormTypeGeneral] = cfg.General
	if cfg.Timeout > 0 {
		forwarder.httpClient.Timeout = cfg.Timeout
	}

	return forwarder
}

// Name identifies the sink in logs.
func (f *Forwarder) Name() string {
	return sinkName
}

// Deliver posts the full tagged submission JSON to the URL configured
// for its form type.
func (f *Forwarder) Deliver(ctx context.Context, sub *entity.Submission) service.SinkResult {
	url := f.urls[sub.FormType]
	if url == "" {
		return service.SinkResult{Sink: sinkName, Skipped: true}
	}

	body, err := json.Marshal(sub)
	if err != nil {
		return service.SinkResult{Sink: sinkName, Err: errors.Wrap(err, "marshal submission")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return service.SinkResult{Sink: sinkName, Err: errors.WithStack(err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return service.SinkResult{Sink: sinkName, Err: errors.WithStack(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return service.SinkResult{
			Sink: sinkName,
			Err:  errors.Errorf("webhook returned status %d", resp.StatusCode),
		}
	}

	return service.SinkResult{Sink: sinkName}
}
