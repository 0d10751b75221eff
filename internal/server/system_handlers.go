package server

import (
	"net/http"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// handleSystemStatus reports process and host health: uptime, CPU, RAM
// and per-database stats.
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	cpuPct, ramPct := s.systemStats()

	response := map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": time.Since(s.startupTime).Seconds(),
		"cpu_percent":    cpuPct,
		"ram_percent":    ramPct,
		"databases": map[string]interface{}{
			"game":    s.databaseStats(s.gameDB.Path()),
			"history": s.databaseStats(s.historyDB.Path()),
		},
	}

	state := s.engine.State()
	if state != nil {
		response["session"] = map[string]interface{}{
			"day":       state.Day,
			"phase":     state.GamePhase,
			"game_over": state.GameOver,
		}
	}

	s.writeJSON(w, http.StatusOK, response)
}

// systemStats calculates CPU and RAM usage percentages.
// Uses a short interval (100ms) so the API call does not block long.
func (s *Server) systemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}

// databaseStats returns file size info for one database.
func (s *Server) databaseStats(path string) map[string]interface{} {
	stats := map[string]interface{}{"path": path}
	if info, err := os.Stat(path); err == nil {
		stats["size_mb"] = float64(info.Size()) / 1024 / 1024
	}
	return stats
}
