package main

import (
	"net/http"

	"github.com/Simplici0/tradedesk/internal/catalog"
)

type dashboardViewData struct {
	baseViewData
	Metrics      []catalog.Metric
	AlertsTrend  []catalog.Point
	AlertsMax    int
	Distribution []catalog.Point
	Regions      []catalog.Point
	RegionsMax   int
	Alerts       []catalog.Alert
	Status       []catalog.SystemStatus
}

func maxPoint(points []catalog.Point) int {
	m := 0
	for _, p := range points {
		m = max(m, p.Value)
	}
	return m
}

func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, "dashboard.html", dashboardViewData{
		baseViewData: baseViewData{ActivePage: "dashboard"},
		Metrics:      catalog.DashboardMetrics,
		AlertsTrend:  catalog.AlertsTrend,
		AlertsMax:    maxPoint(catalog.AlertsTrend),
		Distribution: catalog.ComplianceDistribution,
		Regions:      catalog.RegionalActivity,
		RegionsMax:   maxPoint(catalog.RegionalActivity),
		Alerts:       catalog.RecentAlerts,
		Status:       catalog.PlatformStatus,
	})
}
