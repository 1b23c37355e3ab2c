package middleware

import (
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(resp, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		zap.L().Info(
			"request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("size", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestID", chiMiddleware.GetReqID(req.Context())),
		)
	})
}
