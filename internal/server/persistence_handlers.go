package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Lexicon1971/starbuck-trader-game/internal/engine"
	"github.com/Lexicon1971/starbuck-trader-game/internal/events"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/leaderboard"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/snapshots"
)

// handleLeaderboard returns the hall of fame, seeded until a real score
// displaces the legends.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := s.leaderboard.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to load leaderboard")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load leaderboard",
			"code":  "internal",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, board)
}

type submitScoreRequest struct {
	Name string `json:"name"`
}

// handleSubmitScore records the current session's net worth under the
// captain's name.
func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var req submitScoreRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		req.Name = "Captain"
	}

	state := s.engine.State()
	if state == nil {
		s.writeRejection(w, engine.ErrNoGame)
		return
	}
	score := state.NetWorth()

	board, err := s.leaderboard.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to load leaderboard")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load leaderboard",
			"code":  "internal",
		})
		return
	}
	qualified := leaderboard.Qualifies(board, score)

	if qualified {
		board, err = s.leaderboard.Save(leaderboard.Entry{
			Name:  req.Name,
			Score: score,
			Date:  time.Now().Format("2006"),
		})
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to save score")
			s.writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "failed to save score",
				"code":  "internal",
			})
			return
		}
	}

	s.events.EmitTyped(events.ScoreSubmitted, "leaderboard", &events.ScoreSubmittedData{
		Name:      req.Name,
		Score:     score,
		Qualified: qualified,
	})
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"qualified": qualified,
		"score":     score,
		"board":     board,
	})
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	list, err := s.snapshots.List()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to list snapshots")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to list snapshots",
			"code":  "internal",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

type saveSnapshotRequest struct {
	Label string `json:"label"`
}

func (s *Server) handleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	var req saveSnapshotRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Label == "" {
		req.Label = "manual"
	}

	state := s.engine.State()
	if state == nil {
		s.writeRejection(w, engine.ErrNoGame)
		return
	}

	meta, err := s.snapshots.Save(state, req.Label)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to save snapshot")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to save snapshot",
			"code":  "internal",
		})
		return
	}

	s.events.EmitTyped(events.SnapshotSaved, "snapshots", &events.SnapshotSavedData{
		ID:    meta.ID,
		Label: meta.Label,
		Day:   meta.Day,
	})
	s.writeJSON(w, http.StatusOK, meta)
}

func (s *Server) handleRestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	state, err := s.snapshots.Load(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, snapshots.ErrNotFound) {
			s.writeJSON(w, http.StatusNotFound, map[string]string{
				"error": "snapshot not found",
				"code":  "not_found",
			})
			return
		}
		s.log.Error().Err(err).Msg("Failed to load snapshot")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load snapshot",
			"code":  "internal",
		})
		return
	}

	s.engine.Restore(state)
	s.writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := s.snapshots.Delete(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, snapshots.ErrNotFound) {
			s.writeJSON(w, http.StatusNotFound, map[string]string{
				"error": "snapshot not found",
				"code":  "not_found",
			})
			return
		}
		s.log.Error().Err(err).Msg("Failed to delete snapshot")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to delete snapshot",
			"code":  "internal",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
