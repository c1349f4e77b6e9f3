package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/tutorlens/internal/store"
)

// LoggingProvider records every generation call as a store event and
// emits a structured log line. Event persistence failures are logged
// and swallowed; they never fail the request itself.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
	log       *zap.Logger
}

// WithLogging wraps a Provider with event recording. eventRepo may be
// nil when running without a database (events are then log-only).
func WithLogging(p Provider, repo store.EventRepo, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, eventRepo: repo, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	l.log.Debug("llm call",
		zap.String("purpose", purpose),
		zap.String("model", l.inner.ModelID()),
		zap.Int64("latency_ms", latencyMs),
		zap.Bool("success", err == nil),
		zap.Error(err),
	)

	if l.eventRepo != nil {
		data := store.LLMRequestEventData{
			Provider:    l.inner.ModelID(),
			Model:       l.inner.ModelID(),
			Purpose:     purpose,
			LatencyMs:   latencyMs,
			Success:     err == nil,
			RequestBody: serializeRequest(req),
		}

		if resp != nil {
			data.InputTokens = resp.Usage.InputTokens
			data.OutputTokens = resp.Usage.OutputTokens
			data.Model = resp.Model
			data.ResponseBody = string(resp.Content)
		}
		if err != nil {
			data.ErrorMessage = err.Error()
		}

		if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
			l.log.Warn("failed to record LLM request event", zap.Error(logErr))
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable transcript of the request for the
// event log.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}

	if req.Schema != nil {
		if schemaDef, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, schemaDef)
		}
	}

	return b.String()
}
