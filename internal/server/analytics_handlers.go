package server

import (
	"net/http"
	"strconv"

	"github.com/Lexicon1971/starbuck-trader-game/internal/engine"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/analytics"
)

// analyticsQuery pulls the commodity/venue pair from the query string.
func (s *Server) analyticsQuery(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	commodity := r.URL.Query().Get("commodity")
	if commodity == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "commodity is required",
			"code":  "bad_request",
		})
		return "", 0, false
	}
	venue, err := strconv.Atoi(r.URL.Query().Get("venue"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "venue must be an integer",
			"code":  "bad_request",
		})
		return "", 0, false
	}
	return commodity, venue, true
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	commodity, venue, ok := s.analyticsQuery(w, r)
	if !ok {
		return
	}

	series, err := s.analytics.Series(commodity, venue)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to load price series")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load price series",
			"code":  "internal",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"commodity": commodity,
		"venue":     venue,
		"prices":    series,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	commodity, venue, ok := s.analyticsQuery(w, r)
	if !ok {
		return
	}

	summary, err := s.analytics.Summarize(commodity, venue)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to summarize price history")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to summarize price history",
			"code":  "internal",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleIndicators(w http.ResponseWriter, r *http.Request) {
	commodity, venue, ok := s.analyticsQuery(w, r)
	if !ok {
		return
	}
	period := 14
	if raw := r.URL.Query().Get("period"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 2 {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "period must be an integer >= 2",
				"code":  "bad_request",
			})
			return
		}
		period = p
	}

	indicators, err := s.analytics.ComputeIndicators(commodity, venue, period)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to compute indicators")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to compute indicators",
			"code":  "internal",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, indicators)
}

// handleTips scans the live markets for arbitrage hints.
func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	state := s.engine.State()
	if state == nil {
		s.writeRejection(w, engine.ErrNoGame)
		return
	}
	s.writeJSON(w, http.StatusOK, analytics.MarketTips(state))
}
