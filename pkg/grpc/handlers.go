package grpc

import (
	"context"
	"fmt"

	z "github.com/Oudwins/zog"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/coldtrack-monitor/pkg/analytics"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

func validationError(issues any) error {
	return status.Errorf(codes.InvalidArgument, "validation error: %v", issues)
}

func (s *MonitorServer) GetRealtime(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return toStruct(s.Dashboard.Realtime.Snapshot())
}

type selectRequest struct {
	ID string
}

var selectRequestValidator = z.Struct(z.Shape{
	"ID": z.String().Min(1).Required(),
})

func (s *MonitorServer) SelectBranch(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := selectRequest{ID: stringField(in, "branch_id")}
	if err := selectRequestValidator.Validate(&req); err != nil {
		return nil, validationError(err)
	}

	if err := s.Dashboard.Realtime.SelectBranch(ctx, models.ID(req.ID)); err != nil {
		return nil, toStatus(MethodSelectBranch, err)
	}
	return toStruct(s.Dashboard.Realtime.Snapshot())
}

func (s *MonitorServer) SelectSensor(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := selectRequest{ID: stringField(in, "sensor_id")}
	if err := selectRequestValidator.Validate(&req); err != nil {
		return nil, validationError(err)
	}

	if err := s.Dashboard.Realtime.SelectSensor(ctx, models.ID(req.ID)); err != nil {
		return nil, toStatus(MethodSelectSensor, err)
	}
	return toStruct(s.Dashboard.Realtime.Snapshot())
}

type analyticsReply struct {
	Start           string                  `json:"fecha_inicio"`
	End             string                  `json:"fecha_fin"`
	SensorID        models.ID               `json:"camara_id,omitempty"`
	Result          *models.AnalyticsResult `json:"result"`
	Classification  analytics.Assessment    `json:"classification"`
	Conclusions     []string                `json:"conclusions"`
	Recommendations []string                `json:"recommendations"`
}

func (s *MonitorServer) RunAnalytics(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	q, err := analytics.ParseDateRange(stringField(in, "fecha_inicio"), stringField(in, "fecha_fin"))
	if err != nil {
		return nil, toStatus(MethodRunAnalytics, err)
	}

	req := analytics.Request{Range: q, SensorID: models.ID(stringField(in, "camara_id"))}
	result, err := s.Dashboard.Analytics.Run(ctx, req)
	if err != nil {
		return nil, toStatus(MethodRunAnalytics, err)
	}

	return toStruct(analyticsReply{
		Start:           q.StartString(),
		End:             q.EndString(),
		SensorID:        req.SensorID,
		Result:          result,
		Classification:  analytics.Classify(result.KPIs),
		Conclusions:     analytics.Conclusions(result.KPIs),
		Recommendations: analytics.Recommendations(result.KPIs),
	})
}

type limiterRequest struct {
	ClientID string
	Rate     float64
	Burst    int
}

var limiterRequestValidator = z.Struct(z.Shape{
	"ClientID": z.String().Min(1).Required(),
	"Rate":     z.Float64().Required(),
	"Burst":    z.Int().Required(),
})

func (s *MonitorServer) PostLimiter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := limiterRequest{
		ClientID: stringField(in, "client_id"),
		Rate:     numberField(in, "rate"),
		Burst:    int(numberField(in, "burst")),
	}
	if err := limiterRequestValidator.Validate(&req); err != nil {
		return nil, validationError(err)
	}

	if s.RateLimiterStore == nil {
		return nil, status.Error(codes.FailedPrecondition, "RateLimiterStore is not used. No effect.")
	}

	s.RateLimiterStore.SetLimiter(req.ClientID, rate.Limit(req.Rate), req.Burst)
	return structpb.NewStruct(map[string]any{"message": fmt.Sprintf("limiter for %s set", req.ClientID)})
}
