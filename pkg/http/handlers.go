package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/coldtrack-monitor/pkg/analytics"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type SessionRequest struct {
	Token string `json:"token"`
}

var sessionRequestSchema = z.Struct(z.Shape{
	"token": z.String().Required(),
})

func (rs *RestfulServer) PostSession(c *gin.Context) {
	var req SessionRequest
	if err := sessionRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Dashboard.Session.Login(c.Request.Context(), req.Token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) DeleteSession(c *gin.Context) {
	rs.Dashboard.Session.Logout()
	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) GetRealtime(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Dashboard.Realtime.Snapshot())
}

type BranchRequest struct {
	BranchID string `json:"branch_id" zog:"branch_id"`
}

var branchRequestSchema = z.Struct(z.Shape{
	"branchID": z.String().Required(),
})

func (rs *RestfulServer) PostBranch(c *gin.Context) {
	var req BranchRequest
	if err := branchRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Dashboard.Realtime.SelectBranch(c.Request.Context(), models.ID(req.BranchID)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rs.Dashboard.Realtime.Snapshot())
}

func (rs *RestfulServer) DeleteBranch(c *gin.Context) {
	rs.Dashboard.Realtime.ClearBranch()
	c.JSON(http.StatusOK, rs.Dashboard.Realtime.Snapshot())
}

type SensorRequest struct {
	SensorID string `json:"sensor_id" zog:"sensor_id"`
}

var sensorRequestSchema = z.Struct(z.Shape{
	"sensorID": z.String().Required(),
})

func (rs *RestfulServer) PostSensor(c *gin.Context) {
	var req SensorRequest
	if err := sensorRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Dashboard.Realtime.SelectSensor(c.Request.Context(), models.ID(req.SensorID)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rs.Dashboard.Realtime.Snapshot())
}

type AnalyticsRequest struct {
	Start    string `json:"fecha_inicio" zog:"fecha_inicio"`
	End      string `json:"fecha_fin" zog:"fecha_fin"`
	SensorID string `json:"camara_id" zog:"camara_id"`
}

// range checks are left to analytics.ParseDateRange so the error kinds match
// the ones Execute reports
var analyticsRequestSchema = z.Struct(z.Shape{
	"start":    z.String(),
	"end":      z.String(),
	"sensorID": z.String(),
})

type AnalyticsResponse struct {
	Start           string                  `json:"fecha_inicio"`
	End             string                  `json:"fecha_fin"`
	SensorID        models.ID               `json:"camara_id,omitempty"`
	Result          *models.AnalyticsResult `json:"result"`
	Classification  analytics.Assessment    `json:"classification"`
	Conclusions     []string                `json:"conclusions"`
	Recommendations []string                `json:"recommendations"`
}

func newAnalyticsResponse(result *models.AnalyticsResult, req analytics.Request) AnalyticsResponse {
	return AnalyticsResponse{
		Start:           req.Range.StartString(),
		End:             req.Range.EndString(),
		SensorID:        req.SensorID,
		Result:          result,
		Classification:  analytics.Classify(result.KPIs),
		Conclusions:     analytics.Conclusions(result.KPIs),
		Recommendations: analytics.Recommendations(result.KPIs),
	}
}

func (rs *RestfulServer) PostAnalytics(c *gin.Context) {
	var req AnalyticsRequest
	if err := analyticsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	q, err := analytics.ParseDateRange(req.Start, req.End)
	if err != nil {
		writeError(c, err)
		return
	}

	query := analytics.Request{Range: q, SensorID: models.ID(req.SensorID)}
	result, err := rs.Dashboard.Analytics.Run(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAnalyticsResponse(result, query))
}

func (rs *RestfulServer) GetAnalytics(c *gin.Context) {
	result, query, ok := rs.Dashboard.Analytics.Current()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analytics result"})
		return
	}
	c.JSON(http.StatusOK, newAnalyticsResponse(result, query))
}

type SummaryRequest struct {
	Title string `json:"titulo" zog:"titulo"`
	Notes string `json:"observaciones" zog:"observaciones"`
}

var summaryRequestSchema = z.Struct(z.Shape{
	"title": z.String(),
	"notes": z.String(),
})

func (rs *RestfulServer) PostSummary(c *gin.Context) {
	var req SummaryRequest
	if err := summaryRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Dashboard.Analytics.SaveSummary(c.Request.Context(), req.Title, req.Notes); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PostReport answers with the artifact metadata, or with the document itself
// when ?download=1.
func (rs *RestfulServer) PostReport(c *gin.Context) {
	art, err := rs.Dashboard.Report.EmitCurrent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	if c.Query("download") == "1" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.Name))
		c.Data(http.StatusCreated, art.ContentType, art.Body)
		return
	}
	c.JSON(http.StatusCreated, art)
}

type ReportsQuery struct {
	Limit int `json:"limit"`
}

var reportsQuerySchema = z.Struct(z.Shape{
	"limit": z.Int(),
})

func (rs *RestfulServer) GetReports(c *gin.Context) {
	var q ReportsQuery
	if err := reportsQuerySchema.Parse(zhttp.Request(c.Request), &q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	records, err := rs.Dashboard.Report.ListReports(c.Request.Context(), q.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	if records == nil {
		records = []models.ReportRecord{}
	}

	c.JSON(http.StatusOK, records)
}

type EventsQuery struct {
	From     string `json:"fecha_desde" zog:"fecha_desde"`
	To       string `json:"fecha_hasta" zog:"fecha_hasta"`
	BranchID string `json:"sucursal_id" zog:"sucursal_id"`
	SensorID string `json:"camara_id" zog:"camara_id"`
	Type     string `json:"tipo" zog:"tipo"`
}

var eventsQuerySchema = z.Struct(z.Shape{
	"from":     z.String(),
	"to":       z.String(),
	"branchID": z.String(),
	"sensorID": z.String(),
	"type":     z.String(),
})

func (rs *RestfulServer) GetEvents(c *gin.Context) {
	var q EventsQuery
	if err := eventsQuerySchema.Parse(zhttp.Request(c.Request), &q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	events, err := rs.Dashboard.Report.ListEvents(c.Request.Context(), models.EventFilter{
		From:     q.From,
		To:       q.To,
		BranchID: models.ID(q.BranchID),
		SensorID: models.ID(q.SensorID),
		Type:     models.EventType(q.Type),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	c.JSON(http.StatusOK, events)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	clientID := c.Param("client_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(clientID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
