// Package middleware holds Connect interceptors and HTTP middleware.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// RPCLogger returns a Connect interceptor that writes one line per unary call
// to logger (slog.Default when nil). Failed calls caused by the caller log at
// WARN, other failures at ERROR.
func RPCLogger(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			l := logger
			if l == nil {
				l = slog.Default()
			}
			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("protocol", req.Peer().Protocol),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			msg := "RPC ok"
			if err != nil {
				msg = "RPC failed"
				attrs = append(attrs,
					slog.String("code", connect.CodeOf(err).String()),
					slog.String("error", errorMessage(err)),
				)
			}
			l.LogAttrs(ctx, rpcLevel(err), msg, attrs...)

			return resp, err
		}
	}
}

func rpcLevel(err error) slog.Level {
	if err == nil {
		return slog.LevelInfo
	}
	switch connect.CodeOf(err) {
	case connect.CodeInvalidArgument, connect.CodeNotFound, connect.CodeFailedPrecondition, connect.CodeCanceled:
		return slog.LevelWarn
	}
	return slog.LevelError
}

// errorMessage drops the "code: " prefix connect puts on its errors.
func errorMessage(err error) string {
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		return cerr.Message()
	}
	return err.Error()
}
