package analytics

import (
	"fmt"
	"strconv"

	"liyu1981.xyz/coldtrack-monitor/pkg/models"
)

// Level is a shared severity scale so every KPI can be colored the same way.
type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelCaution   Level = "caution"
	LevelCritical  Level = "critical"
)

// CriticalTemperature is the threshold line drawn on temperature charts.
const CriticalTemperature = 4.0

type Classification struct {
	Level       Level  `json:"level"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type Assessment struct {
	Temperature   Classification `json:"temperatura"`
	Events        Classification `json:"eventos"`
	FailureHours  Classification `json:"fallas"`
	NormalPercent Classification `json:"operacionNormal"`
}

// ClassifyTemperature: <= -5 excellent, <= -2 good, <= 4 caution, else critical.
func ClassifyTemperature(avg float64) Classification {
	switch {
	case avg <= -5:
		return Classification{LevelExcellent, "Excelente", "Temperatura óptima para conservación."}
	case avg <= -2:
		return Classification{LevelGood, "Bueno", "Temperatura aceptable, dentro del rango seguro."}
	case avg <= CriticalTemperature:
		return Classification{LevelCaution, "Precaución", "Temperatura elevada, requiere monitoreo."}
	default:
		return Classification{LevelCritical, "Crítico", "Temperatura peligrosa, riesgo de deterioro."}
	}
}

// ClassifyEvents: <= 10 low, <= 50 normal, <= 100 elevated, else excessive.
func ClassifyEvents(total float64) Classification {
	switch {
	case total <= 10:
		return Classification{LevelExcellent, "Bajo", "Actividad normal del sistema."}
	case total <= 50:
		return Classification{LevelGood, "Normal", "Actividad dentro de parámetros esperados."}
	case total <= 100:
		return Classification{LevelCaution, "Elevado", "Mayor actividad, revisar programación."}
	default:
		return Classification{LevelCritical, "Excesivo", "Actividad excesiva, requiere revisión técnica."}
	}
}

// ClassifyFailureHours: 0 none, <= 2 minor, <= 8 considerable, else urgent.
func ClassifyFailureHours(hours float64) Classification {
	switch {
	case hours == 0:
		return Classification{LevelExcellent, "Sin fallas", "Sin fallas registradas en el período."}
	case hours <= 2:
		return Classification{LevelGood, "Menor", "Fallas menores, dentro de lo esperado."}
	case hours <= 8:
		return Classification{LevelCaution, "Considerable", "Tiempo considerable fuera de servicio."}
	default:
		return Classification{LevelCritical, "Urgente", "Tiempo excesivo de fallas, requiere intervención urgente."}
	}
}

// ClassifyNormalPercent: >= 95 excellent, >= 90 good, else deficient.
func ClassifyNormalPercent(pct float64) Classification {
	switch {
	case pct >= 95:
		return Classification{LevelExcellent, "Excelente", "Excelente rendimiento operativo."}
	case pct >= 90:
		return Classification{LevelGood, "Bueno", "Buen rendimiento, dentro de estándares."}
	default:
		return Classification{LevelCritical, "Deficiente", "Rendimiento por debajo del óptimo."}
	}
}

func Classify(k models.KPISet) Assessment {
	return Assessment{
		Temperature:   ClassifyTemperature(k.AvgTemperature),
		Events:        ClassifyEvents(k.TotalEvents),
		FailureHours:  ClassifyFailureHours(k.FailureHours),
		NormalPercent: ClassifyNormalPercent(k.NormalPercent),
	}
}

// Recommendations always lists the standing advice and adds targeted items
// for failure hours > 5, average temperature > -2 and normal operation < 90%.
func Recommendations(k models.KPISet) []string {
	recs := []string{
		"Monitoreo Continuo: Mantener vigilancia constante de parámetros críticos.",
		"Capacitación: Asegurar que el personal comprenda los indicadores de alerta.",
		"Planificación: Programar mantenimiento preventivo basado en estos patrones.",
	}
	if k.FailureHours > 5 {
		recs = append(recs, "Prioridad Alta: Implementar plan de mantenimiento correctivo urgente.")
	}
	if k.AvgTemperature > -2 {
		recs = append(recs, "Revisión Técnica: Evaluar calibración del sistema de refrigeración.")
	}
	if k.NormalPercent < 90 {
		recs = append(recs, "Optimización: Analizar causas de baja eficiencia operativa.")
	}
	return recs
}

func Conclusions(k models.KPISet) []string {
	var thermal string
	switch ClassifyTemperature(k.AvgTemperature).Level {
	case LevelExcellent:
		thermal = "es excelente para conservación."
	case LevelGood:
		thermal = "se mantiene en rango seguro."
	default:
		thermal = "requiere monitoreo y posible ajuste."
	}
	return []string{
		fmt.Sprintf("Eficiencia General: El sistema operó normalmente durante el %s%% del tiempo analizado.", FormatNumber(k.NormalPercent)),
		fmt.Sprintf("Control Térmico: La temperatura promedio de %s°C %s", FormatNumber(k.AvgTemperature), thermal),
		fmt.Sprintf("Actividad del Sistema: Se registraron %s eventos, incluyendo %sh de mantenimiento y %sh de fallas.",
			FormatNumber(k.TotalEvents), FormatNumber(k.DefrostHours), FormatNumber(k.FailureHours)),
	}
}

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// VarianceDirection reads a period-over-period percentage. For temperature,
// events and failures up is worse; for normal operation up is better.
func VarianceDirection(v float64) Direction {
	switch {
	case v > 0:
		return DirectionUp
	case v < 0:
		return DirectionDown
	default:
		return DirectionFlat
	}
}

// FormatNumber prints the shortest decimal form, as the backend sends it.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
