package controllers

import (
	"fmt"
	"net/http"
	"time"

	"devstats/internal/services"
)

type HealthController struct {
	service   services.StatsServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status                string  `json:"status"`
	Uptime                string  `json:"uptime"`
	UptimeSeconds         float64 `json:"uptime_seconds"`
	GitHubTokenConfigured bool    `json:"github_token_configured"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:                "ok",
		Uptime:                formatDuration(uptime),
		UptimeSeconds:         uptime.Seconds(),
		GitHubTokenConfigured: hc.service.HasGitHubToken(),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.StatsServiceInterface) *HealthController {
	return &HealthController{
		service:   service,
		startTime: time.Now(),
	}
}
