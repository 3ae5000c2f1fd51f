package api

import (
	"github.com/imRanDan/chess-analytics-tool/internal/services"
)

// Server bundles the services the HTTP handlers depend on.
type Server struct {
	ProfileService services.ProfileService
	StatsService   services.StatsService
	InsightService services.InsightService
	SyncService    services.SyncService
}
