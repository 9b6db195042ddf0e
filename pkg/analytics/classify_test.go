package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

func TestClassifyTemperatureBoundaries(t *testing.T) {
	tests := []struct {
		temp float64
		want Level
	}{
		{-20, LevelExcellent},
		{-5, LevelExcellent},
		{-4.99, LevelGood},
		{-2, LevelGood},
		{-1.99, LevelCaution},
		{4, LevelCaution},
		{4.01, LevelCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTemperature(tt.temp).Level, "temp %v", tt.temp)
	}
	assert.Equal(t, "Excelente", ClassifyTemperature(-5).Label)
	assert.Equal(t, "Crítico", ClassifyTemperature(4.01).Label)
}

func TestClassifyEventsBoundaries(t *testing.T) {
	assert.Equal(t, "Bajo", ClassifyEvents(10).Label)
	assert.Equal(t, "Normal", ClassifyEvents(11).Label)
	assert.Equal(t, "Normal", ClassifyEvents(50).Label)
	assert.Equal(t, "Elevado", ClassifyEvents(100).Label)
	assert.Equal(t, LevelCritical, ClassifyEvents(101).Level)
}

func TestClassifyFailureHoursBoundaries(t *testing.T) {
	assert.Equal(t, LevelExcellent, ClassifyFailureHours(0).Level)
	assert.Equal(t, LevelGood, ClassifyFailureHours(0.5).Level)
	assert.Equal(t, LevelGood, ClassifyFailureHours(2).Level)
	assert.Equal(t, LevelCaution, ClassifyFailureHours(8).Level)
	assert.Equal(t, "Urgente", ClassifyFailureHours(8.1).Label)
}

func TestClassifyNormalPercentBoundaries(t *testing.T) {
	assert.Equal(t, LevelExcellent, ClassifyNormalPercent(95).Level)
	assert.Equal(t, LevelGood, ClassifyNormalPercent(94.9).Level)
	assert.Equal(t, LevelGood, ClassifyNormalPercent(90).Level)
	assert.Equal(t, "Deficiente", ClassifyNormalPercent(89.9).Label)
}

func TestRecommendations(t *testing.T) {
	healthy := models.KPISet{AvgTemperature: -6, FailureHours: 1, NormalPercent: 97}
	assert.Len(t, Recommendations(healthy), 3)

	troubled := models.KPISet{AvgTemperature: -1, FailureHours: 6, NormalPercent: 85}
	recs := Recommendations(troubled)
	assert.Len(t, recs, 6)
	assert.Contains(t, recs, "Prioridad Alta: Implementar plan de mantenimiento correctivo urgente.")

	// thresholds are strict
	edge := models.KPISet{AvgTemperature: -2, FailureHours: 5, NormalPercent: 90}
	assert.Len(t, Recommendations(edge), 3)
}

func TestConclusions(t *testing.T) {
	lines := Conclusions(models.KPISet{AvgTemperature: -5.5, NormalPercent: 96.25, TotalEvents: 12, DefrostHours: 3, FailureHours: 0})
	assert.Equal(t, "Eficiencia General: El sistema operó normalmente durante el 96.25% del tiempo analizado.", lines[0])
	assert.Equal(t, "Control Térmico: La temperatura promedio de -5.5°C es excelente para conservación.", lines[1])
	assert.Contains(t, lines[2], "12 eventos")
}

func TestVarianceDirection(t *testing.T) {
	assert.Equal(t, DirectionUp, VarianceDirection(3.2))
	assert.Equal(t, DirectionDown, VarianceDirection(-0.1))
	assert.Equal(t, DirectionFlat, VarianceDirection(0))
}

func TestClassifyBundlesAll(t *testing.T) {
	a := Classify(models.KPISet{AvgTemperature: 5, TotalEvents: 3, FailureHours: 0, NormalPercent: 99})
	assert.Equal(t, LevelCritical, a.Temperature.Level)
	assert.Equal(t, LevelExcellent, a.Events.Level)
	assert.Equal(t, LevelExcellent, a.FailureHours.Level)
	assert.Equal(t, LevelExcellent, a.NormalPercent.Level)
}
