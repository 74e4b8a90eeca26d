package models

// DashboardMetrics - сводные показатели для аналитического дашборда
type DashboardMetrics struct {
	TotalSignals      int    `json:"total_signals"`
	Last30Days        int    `json:"last_30_days"`
	HighSeverityCount int    `json:"high_severity_count"`
	AreasMonitored    int    `json:"areas_monitored"`
	City              string `json:"city"`
}

// TrendPoint - количество сигналов за один день
type TrendPoint struct {
	Date         string `json:"date"`
	Count        int    `json:"count"`
	HighSeverity int    `json:"high_severity"`
}
