package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/coldtrack-monitor/pkg/dashboard"
)

type RestfulServer struct {
	Server           *gin.Engine
	Dashboard        *dashboard.Dashboard
	RateLimiterStore *dashboard.RateLimiterStore
}

func (rs *RestfulServer) CheckClientLimiter(clientID string) bool {
	return rs.RateLimiterStore.Allow(clientID)
}

func (rs *RestfulServer) SetLimiter(clientID string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientID, rate.Limit(clientRate), clientBurst)
}

// limitByClient keys the budget on the caller's IP.
func (rs *RestfulServer) limitByClient(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.AbortWithStatus(http.StatusTooManyRequests)
		return
	}
	c.Next()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.POST("/clients/:client_id/limiter", rs.PostLimiter)

	api := rs.Server.Group("", rs.limitByClient)
	{
		api.POST("/session", rs.PostSession)
		api.DELETE("/session", rs.DeleteSession)

		api.GET("/realtime", rs.GetRealtime)
		api.POST("/realtime/branch", rs.PostBranch)
		api.DELETE("/realtime/branch", rs.DeleteBranch)
		api.POST("/realtime/sensor", rs.PostSensor)

		api.POST("/analytics", rs.PostAnalytics)
		api.GET("/analytics", rs.GetAnalytics)
		api.POST("/analytics/summary", rs.PostSummary)

		api.POST("/reports", rs.PostReport)
		api.GET("/reports", rs.GetReports)
		api.GET("/events", rs.GetEvents)
	}
}
