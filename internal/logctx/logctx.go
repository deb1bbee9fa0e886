package logctx

import (
	"context"
	"log/slog"
)

// Handler decorates records with the bind-call and parameter data found in
// the record's context.
type Handler struct {
	slog.Handler
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if cd, ok := ctx.Value(callDataKey{}).(*CallData); ok {
		r.AddAttrs(slog.Group("call",
			slog.String("id", cd.CallID),
			slog.String("method", cd.Method),
		))
	}

	if pd, ok := ctx.Value(paramDataKey{}).(*ParamData); ok {
		r.AddAttrs(slog.Group("param",
			slog.String("name", pd.Name),
			slog.Int("position", pd.Position),
			slog.String("type", pd.Type),
		))
	}

	return h.Handler.Handle(ctx, r)
}

func (h Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h Handler) WithGroup(name string) slog.Handler {
	return Handler{Handler: h.Handler.WithGroup(name)}
}

type callDataKey struct{}

type CallData struct {
	CallID string
	Method string
}

func WithCallData(ctx context.Context, data *CallData) context.Context {
	return context.WithValue(ctx, callDataKey{}, data)
}

type paramDataKey struct{}

type ParamData struct {
	Name     string
	Position int
	Type     string
}

func WithParamData(ctx context.Context, data *ParamData) context.Context {
	return context.WithValue(ctx, paramDataKey{}, data)
}
