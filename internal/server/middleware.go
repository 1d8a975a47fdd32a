package server

import (
	"time"

	"github.com/savsgio/gotils/strconv"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Middleware wraps a request handler.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

// applyMiddleware wraps handler so that middleware[0] runs first.
func applyMiddleware(handler fasthttp.RequestHandler, middleware []Middleware) fasthttp.RequestHandler {
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}

	return handler
}

// Recoverer turns panics into 500 responses.
func Recoverer(logger *zap.Logger) Middleware {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			defer func() {
				if rcv := recover(); rcv != nil {
					logger.Error("panic while handling request",
						zap.String("path", strconv.B2S(ctx.Path())),
						zap.Any("panic", rcv),
					)

					ctx.ResetBody()
					ctx.Error(fasthttp.StatusMessage(fasthttp.StatusInternalServerError), fasthttp.StatusInternalServerError)
				}
			}()

			next(ctx)
		}
	}
}

// AccessLog logs every request once it has been handled.
func AccessLog(logger *zap.Logger) Middleware {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()

			next(ctx)

			logger.Info("request",
				zap.ByteString("method", ctx.Method()),
				zap.ByteString("path", ctx.Path()),
				zap.ByteString("query", ctx.URI().QueryString()),
				zap.Int("status", ctx.Response.StatusCode()),
				zap.Duration("duration", time.Since(start)),
			)
		}
	}
}
