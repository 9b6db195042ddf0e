package grpc

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"liyu1981.xyz/coldtrack-monitor/pkg/analytics"
	"liyu1981.xyz/coldtrack-monitor/pkg/backend"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/feed"
	"liyu1981.xyz/coldtrack-monitor/pkg/report"
	"liyu1981.xyz/coldtrack-monitor/pkg/selection"
	"liyu1981.xyz/coldtrack-monitor/pkg/session"
)

func codeFor(err error) codes.Code {
	var qe *analytics.QueryError
	switch {
	case errors.As(err, &qe) && qe.Validation():
		return codes.InvalidArgument
	case errors.Is(err, selection.ErrNoBranch):
		return codes.FailedPrecondition
	case errors.Is(err, selection.ErrUnknownSensor), errors.Is(err, feed.ErrNoFeedPath):
		return codes.InvalidArgument
	case errors.Is(err, analytics.ErrSuperseded):
		return codes.Aborted
	case errors.Is(err, report.ErrNoResult):
		return codes.NotFound
	case errors.Is(err, analytics.ErrUnauthorized), errors.Is(err, backend.ErrUnauthorized),
		errors.Is(err, session.ErrNoSession), errors.Is(err, session.ErrExpired):
		return codes.Unauthenticated
	case errors.Is(err, analytics.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, analytics.ErrTransport), errors.Is(err, backend.ErrTransport), errors.Is(err, backend.ErrCircuitOpen):
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

func toStatus(method string, err error) error {
	code := codeFor(err)
	if code == codes.Internal || code == codes.Unavailable {
		common.GetLoggerWith(common.LoggerNameGrpcServer).Warn("call failed",
			zap.String("method", method), zap.String("code", code.String()), zap.Error(err))
	}
	return status.Error(code, err.Error())
}
