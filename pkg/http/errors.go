package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/analytics"
	"liyu1981.xyz/coldtrack-monitor/pkg/backend"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/feed"
	"liyu1981.xyz/coldtrack-monitor/pkg/report"
	"liyu1981.xyz/coldtrack-monitor/pkg/selection"
	"liyu1981.xyz/coldtrack-monitor/pkg/session"
)

func statusFor(err error) int {
	var qe *analytics.QueryError
	switch {
	case errors.As(err, &qe) && qe.Validation():
		return http.StatusBadRequest
	case errors.Is(err, selection.ErrNoBranch), errors.Is(err, selection.ErrUnknownSensor):
		return http.StatusBadRequest
	case errors.Is(err, feed.ErrNoFeedPath):
		return http.StatusUnprocessableEntity
	case errors.Is(err, report.ErrNoResult), errors.Is(err, analytics.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, analytics.ErrUnauthorized), errors.Is(err, backend.ErrUnauthorized),
		errors.Is(err, session.ErrNoSession), errors.Is(err, session.ErrExpired):
		return http.StatusUnauthorized
	case errors.Is(err, analytics.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, analytics.ErrTransport), errors.Is(err, backend.ErrTransport), errors.Is(err, backend.ErrCircuitOpen):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Warn("request failed",
			zap.String("path", c.FullPath()), zap.Int("status", code), zap.Error(err))
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
