package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lexicon1971/starbuck-trader-game/internal/config"
	"github.com/Lexicon1971/starbuck-trader-game/internal/database"
	"github.com/Lexicon1971/starbuck-trader-game/internal/engine"
	"github.com/Lexicon1971/starbuck-trader-game/internal/events"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/analytics"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/leaderboard"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/snapshots"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	gameDB, err := database.New(database.Config{
		Path: filepath.Join(dir, "game.db"),
		Name: "game",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = gameDB.Close() })

	historyDB, err := database.New(database.Config{
		Path:    filepath.Join(dir, "history.db"),
		Profile: database.ProfileCache,
		Name:    "history",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = historyDB.Close() })

	log := zerolog.Nop()
	bus := events.NewBus(log)
	mgr := events.NewManager(bus, log)
	eng := engine.New(42, log)

	snapSvc, err := snapshots.New(gameDB, log)
	require.NoError(t, err)
	boardStore, err := leaderboard.NewSQLiteStore(gameDB, log)
	require.NoError(t, err)
	analyticsSvc, err := analytics.New(historyDB, log)
	require.NoError(t, err)

	return New(Config{
		Log:         log,
		Config:      &config.Config{Port: 0, SnapshotKeep: 5},
		Engine:      eng,
		GameDB:      gameDB,
		HistoryDB:   historyDB,
		Snapshots:   snapSvc,
		Leaderboard: boardStore,
		Analytics:   analyticsSvc,
		EventBus:    bus,
		Events:      mgr,
	})
}

func doRequest(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "starbuck", body["service"])
}

func TestStateBeforeNewGame(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/game/state", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no_game", decodeMap(t, rec)["code"])
}

func TestNewGameAndState(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/game/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	started := decodeMap(t, rec)
	assert.Equal(t, float64(1), started["day"])
	assert.Equal(t, float64(20000), started["cash"])

	rec = doRequest(t, s, http.MethodGet, "/api/game/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeMap(t, rec)
	assert.Equal(t, started["id"], state["id"])
}

func TestRejectionsMapToStableCodes(t *testing.T) {
	s := newTestServer(t)

	// Trading before any game exists
	rec := doRequest(t, s, http.MethodPost, "/api/trade/buy", map[string]interface{}{
		"commodity": "Water", "quantity": 10,
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "no_game", decodeMap(t, rec)["code"])

	doRequest(t, s, http.MethodPost, "/api/game/new", nil)

	// Resolving an encounter nobody rolled
	rec = doRequest(t, s, http.MethodPost, "/api/travel/resolve", map[string]interface{}{
		"choice": "fight",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "no_pending_encounter", decodeMap(t, rec)["code"])

	rec = doRequest(t, s, http.MethodGet, "/api/travel/encounter", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMalformedBodyRejected(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/api/game/new", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/trade/buy", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeMap(t, rec)["code"])
}

func TestSnapshotSaveListRestore(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/api/game/new", nil)

	rec := doRequest(t, s, http.MethodPost, "/api/snapshots/", map[string]interface{}{
		"label": "before-jump",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	saved := decodeMap(t, rec)
	id, ok := saved["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	rec = doRequest(t, s, http.MethodGet, "/api/snapshots/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "before-jump", list[0]["label"])

	rec = doRequest(t, s, http.MethodPost, "/api/snapshots/"+id+"/restore", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	restored := decodeMap(t, rec)
	assert.Equal(t, float64(1), restored["day"])

	rec = doRequest(t, s, http.MethodPost, "/api/snapshots/missing-id/restore", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaderboardSeededUntilFirstScore(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/leaderboard/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var board []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
	require.Len(t, board, len(leaderboard.SeedEntries))
	assert.Equal(t, "Han S.", board[0]["name"])
}

func TestSubmitScoreRequiresGame(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/leaderboard/", map[string]interface{}{
		"name": "Apone",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "no_game", decodeMap(t, rec)["code"])
}

func TestAnalyticsQueryValidation(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/api/game/new", nil)

	rec := doRequest(t, s, http.MethodGet, "/api/analytics/series", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
