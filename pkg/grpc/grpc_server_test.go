package grpc

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/coldtrack-monitor/pkg/analytics"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/dashboard"
	"liyu1981.xyz/coldtrack-monitor/pkg/dashboard/mocks"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
	"liyu1981.xyz/coldtrack-monitor/pkg/selection"
	_ "liyu1981.xyz/coldtrack-monitor/pkg/testing"
)

const bufSize = 1024 * 1024

// bufconn listeners report this as the peer address
const bufClientKey = "bufconn"

type testServer struct {
	client    *MonitorClient
	realtime  *mocks.MockIRealtime
	analytics *mocks.MockIAnalytics
}

func startTestServer(t *testing.T, limiterStore *dashboard.RateLimiterStore) *testServer {
	common.SetTestLoggerNop()
	ctrl := gomock.NewController(t)
	listener := bufconn.Listen(bufSize)

	ts := &testServer{
		realtime:  mocks.NewMockIRealtime(ctrl),
		analytics: mocks.NewMockIAnalytics(ctrl),
	}
	d := (&dashboard.Dashboard{}).WithServices(dashboard.ServiceOpts{
		Realtime:  ts.realtime,
		Analytics: ts.analytics,
	})

	monitorServer := MonitorServer{Dashboard: d, RateLimiterStore: limiterStore}
	interceptor := monitorServer.CreateRateLimitInterceptor([]string{
		MethodGetRealtime,
		MethodSelectBranch,
		MethodSelectSensor,
		MethodRunAnalytics,
	})
	server := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
	RegisterMonitorServer(server, &monitorServer)

	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ts.client = NewMonitorClient(conn)
	return ts
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status error")
	require.Equal(t, code, st.Code(), st.Message())
}

func TestGetRealtime(t *testing.T) {
	ts := startTestServer(t, nil)

	ts.realtime.EXPECT().Snapshot().Return(selection.Snapshot{
		State:    selection.BranchAndSensor,
		BranchID: "1",
		Branches: []models.Branch{},
		Sensors:  []models.Sensor{},
		Latest:   &models.LiveReading{Temperature: -18.5, State: "normal", TimestampSeconds: 1700000000},
		History:  []models.HistoryPoint{},
	}).Times(1)

	resp, err := ts.client.GetRealtime(context.Background(), &structpb.Struct{})
	require.NoError(t, err)

	m := resp.AsMap()
	assert.Equal(t, "branch_and_sensor", m["state"])
	assert.Equal(t, "1", m["branch_id"])
	assert.Equal(t, -18.5, m["latest"].(map[string]any)["temp"])
}

func TestSelectBranch(t *testing.T) {
	ts := startTestServer(t, nil)

	// numeric ids are accepted as well as strings
	ts.realtime.EXPECT().SelectBranch(gomock.Any(), models.ID("3")).Return(nil).Times(1)
	ts.realtime.EXPECT().Snapshot().Return(selection.Snapshot{State: selection.BranchOnly, BranchID: "3"}).Times(1)

	resp, err := ts.client.SelectBranch(context.Background(), mustStruct(t, map[string]any{"branch_id": 3}))
	require.NoError(t, err)
	assert.Equal(t, "branch_only", resp.AsMap()["state"])

	_, err = ts.client.SelectBranch(context.Background(), &structpb.Struct{})
	requireCode(t, err, codes.InvalidArgument)
	assert.True(t, strings.Contains(status.Convert(err).Message(), "validation error"))
}

func TestSelectSensor_Errors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"no branch", selection.ErrNoBranch, codes.FailedPrecondition},
		{"unknown sensor", selection.ErrUnknownSensor, codes.InvalidArgument},
		{"other", errors.New("broker down"), codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := startTestServer(t, nil)
			ts.realtime.EXPECT().SelectSensor(gomock.Any(), models.ID("9")).Return(tc.err).Times(1)

			_, err := ts.client.SelectSensor(context.Background(), mustStruct(t, map[string]any{"sensor_id": "9"}))
			requireCode(t, err, tc.code)
		})
	}
}

func TestRunAnalytics(t *testing.T) {
	ts := startTestServer(t, nil)

	ts.analytics.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req analytics.Request) (*models.AnalyticsResult, error) {
			assert.Equal(t, "2025-03-01", req.Range.StartString())
			assert.Equal(t, models.ID(""), req.SensorID)
			return &models.AnalyticsResult{KPIs: models.KPISet{AvgTemperature: 5, NormalPercent: 80}}, nil
		}).Times(1)

	resp, err := ts.client.RunAnalytics(context.Background(), mustStruct(t, map[string]any{
		"fecha_inicio": "2025-03-01",
		"fecha_fin":    "2025-03-31",
	}))
	require.NoError(t, err)

	m := resp.AsMap()
	classification := m["classification"].(map[string]any)
	assert.Equal(t, "critical", classification["temperatura"].(map[string]any)["level"])
	// base items plus temperature and efficiency items
	assert.Len(t, m["recommendations"], 5)
	conclusions := m["conclusions"].([]any)
	require.Len(t, conclusions, 3)
	assert.Contains(t, conclusions[1], "requiere monitoreo")
}

func TestRunAnalytics_Errors(t *testing.T) {
	{
		// validation happens before the coordinator is reached
		ts := startTestServer(t, nil)
		_, err := ts.client.RunAnalytics(context.Background(), mustStruct(t, map[string]any{
			"fecha_inicio": "2025-03-31",
			"fecha_fin":    "2025-03-01",
		}))
		requireCode(t, err, codes.InvalidArgument)

		_, err = ts.client.RunAnalytics(context.Background(), &structpb.Struct{})
		requireCode(t, err, codes.InvalidArgument)
	}

	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"timeout", analytics.ErrTimeout, codes.DeadlineExceeded},
		{"unauthorized", analytics.ErrUnauthorized, codes.Unauthenticated},
		{"transport", analytics.ErrTransport, codes.Unavailable},
		{"superseded", analytics.ErrSuperseded, codes.Aborted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := startTestServer(t, nil)
			ts.analytics.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			_, err := ts.client.RunAnalytics(context.Background(), mustStruct(t, map[string]any{
				"fecha_inicio": "2025-03-01",
				"fecha_fin":    "2025-03-02",
			}))
			requireCode(t, err, tc.code)
		})
	}
}

func TestRateLimitInterceptor(t *testing.T) {
	ts := startTestServer(t, dashboard.NewRateLimiterStore(2, 2))
	ctx := context.Background()

	ts.realtime.EXPECT().Snapshot().Return(selection.Snapshot{}).AnyTimes()

	// First 2 requests should pass
	for i := 0; i < 2; i++ {
		_, err := ts.client.GetRealtime(ctx, &structpb.Struct{})
		require.NoError(t, err, "expected request %d to pass", i+1)
	}

	// 3rd request should fail immediately
	_, err := ts.client.GetRealtime(ctx, &structpb.Struct{})
	requireCode(t, err, codes.ResourceExhausted)

	// PostLimiter itself is not limited
	_, err = ts.client.PostLimiter(ctx, mustStruct(t, map[string]any{
		"client_id": bufClientKey,
		"rate":      3,
		"burst":     2,
	}))
	require.NoError(t, err)

	_, err = ts.client.GetRealtime(ctx, &structpb.Struct{})
	require.NoError(t, err, "expected request after limiter reset to pass")
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	{
		ts := startTestServer(t, dashboard.NewRateLimiterStore(2, 2))

		// missing client id, rate or burst fails validation
		_, err := ts.client.PostLimiter(context.Background(), mustStruct(t, map[string]any{"rate": 3}))
		requireCode(t, err, codes.InvalidArgument)

		_, err = ts.client.PostLimiter(context.Background(), mustStruct(t, map[string]any{"client_id": bufClientKey}))
		requireCode(t, err, codes.InvalidArgument)
	}

	{
		// without a limiter store there is nothing to change
		ts := startTestServer(t, nil)
		_, err := ts.client.PostLimiter(context.Background(), mustStruct(t, map[string]any{
			"client_id": bufClientKey,
			"rate":      3,
			"burst":     2,
		}))
		requireCode(t, err, codes.FailedPrecondition)
		assert.Contains(t, status.Convert(err).Message(), "No effect")
	}
}
