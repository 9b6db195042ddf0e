package grpc

import (
	"encoding/json"
	"fmt"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/coldtrack-monitor/pkg/dashboard"
)

type MonitorServer struct {
	Dashboard        *dashboard.Dashboard
	RateLimiterStore *dashboard.RateLimiterStore
}

func (s *MonitorServer) CheckClientLimiter(clientID string) bool {
	return s.RateLimiterStore.Allow(clientID)
}

// stringField reads key as a string; numeric ids are accepted too.
func stringField(in *structpb.Struct, key string) string {
	v, ok := in.GetFields()[key]
	if !ok {
		return ""
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64)
	default:
		return ""
	}
}

func numberField(in *structpb.Struct, key string) float64 {
	return in.GetFields()[key].GetNumberValue()
}

// toStruct goes through the JSON encoding so responses carry the same field
// names as the REST surface.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return structpb.NewStruct(m)
}
