package handlers

import (
	"context"

	"recipe-finder-app/api/middleware"
	"recipe-finder-app/core/controller"
	"recipe-finder-app/core/interfaces"
)

// requestLogger tags every entry with the request ID
type requestLogger struct {
	base      interfaces.Logger
	requestID string
}

// withRequestID returns base tagged with the request ID carried by ctx, or
// base unchanged when there is none.
func withRequestID(ctx context.Context, base interfaces.Logger) interfaces.Logger {
	id := middleware.GetRequestID(ctx)
	if base == nil || id == "" {
		return base
	}
	return requestLogger{base: base, requestID: id}
}

func (l requestLogger) Debug(msg string, fields map[string]interface{}) {
	l.base.Debug(msg, l.tag(fields))
}

func (l requestLogger) Info(msg string, fields map[string]interface{}) {
	l.base.Info(msg, l.tag(fields))
}

func (l requestLogger) Warn(msg string, fields map[string]interface{}) {
	l.base.Warn(msg, l.tag(fields))
}

func (l requestLogger) Error(msg string, fields map[string]interface{}) {
	l.base.Error(msg, l.tag(fields))
}

func (l requestLogger) tag(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["request_id"] = l.requestID
	return out
}

// newRequestController builds a controller whose logs carry the request ID
func newRequestController(ctx context.Context, factory *controller.Factory, area interfaces.ResultsArea, alerter controller.Alerter) *controller.Controller {
	f := *factory
	f.Logger = withRequestID(ctx, factory.Logger)
	return f.New(area, alerter)
}
