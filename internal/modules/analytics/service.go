// Package analytics records per-tick market prices and computes trading
// intel from them: summary statistics, technical indicators and the daily
// market tips.
package analytics

import (
	"fmt"

	"github.com/markcheno/go-talib"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Lexicon1971/starbuck-trader-game/internal/database"
	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
)

const schema = `
CREATE TABLE IF NOT EXISTS price_history (
    day INTEGER NOT NULL,
    venue INTEGER NOT NULL,
    commodity TEXT NOT NULL,
    price REAL NOT NULL,
    quantity INTEGER NOT NULL,
    PRIMARY KEY (day, venue, commodity)
);
CREATE INDEX IF NOT EXISTS idx_price_history_commodity ON price_history(commodity, venue, day);
`

// Summary holds descriptive statistics for one price series.
type Summary struct {
	Commodity string  `json:"commodity"`
	Venue     int     `json:"venue"`
	Points    int     `json:"points"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

// Indicators holds the technical overlays for one price series. SMA and
// RSI are nil until the series is long enough for the period.
type Indicators struct {
	Commodity string    `json:"commodity"`
	Venue     int       `json:"venue"`
	Period    int       `json:"period"`
	SMA       []float64 `json:"sma,omitempty"`
	RSI       []float64 `json:"rsi,omitempty"`
}

// Service records price history and answers intel queries.
type Service struct {
	db  *database.DB
	log zerolog.Logger
}

// New creates the service and applies its schema.
func New(db *database.DB, log zerolog.Logger) (*Service, error) {
	if err := db.Migrate(schema); err != nil {
		return nil, fmt.Errorf("failed to migrate analytics schema: %w", err)
	}
	return &Service{
		db:  db,
		log: log.With().Str("component", "analytics").Logger(),
	}, nil
}

// AfterTick records the day's closing prices for every venue. It satisfies
// the engine's observer contract; failures are logged, never propagated,
// so a full history database cannot stall the simulation.
func (s *Service) AfterTick(state *domain.GameState, _ *domain.DailyReport) {
	if err := s.Record(state); err != nil {
		s.log.Error().Err(err).Int("day", state.Day).Msg("failed to record price history")
	}
}

// Record persists one day of prices across all venues.
func (s *Service) Record(state *domain.GameState) error {
	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("failed to begin price history transaction: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO price_history (day, venue, commodity, price, quantity)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare price history insert: %w", err)
	}
	defer stmt.Close()

	for venue, market := range state.Markets {
		for _, c := range catalog.Commodities {
			item, ok := market[c.Name]
			if !ok {
				continue
			}
			if _, err := stmt.Exec(state.Day, venue, c.Name, item.Price, item.Quantity); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("failed to record price for %s: %w", c.Name, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price history: %w", err)
	}
	return nil
}

// Series returns the price series for a commodity at a venue, oldest first.
func (s *Service) Series(commodity string, venue int) ([]float64, error) {
	rows, err := s.db.Query(`
		SELECT price FROM price_history
		WHERE commodity = ? AND venue = ? ORDER BY day ASC`, commodity, venue)
	if err != nil {
		return nil, fmt.Errorf("failed to query price series: %w", err)
	}
	defer rows.Close()

	var series []float64
	for rows.Next() {
		var p float64
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan price row: %w", err)
		}
		series = append(series, p)
	}
	return series, rows.Err()
}

// Summarize computes descriptive statistics over a commodity's series.
func (s *Service) Summarize(commodity string, venue int) (*Summary, error) {
	series, err := s.Series(commodity, venue)
	if err != nil {
		return nil, err
	}
	sum := &Summary{Commodity: commodity, Venue: venue, Points: len(series)}
	if len(series) == 0 {
		return sum, nil
	}
	sum.Mean = stat.Mean(series, nil)
	sum.Min = floats.Min(series)
	sum.Max = floats.Max(series)
	if len(series) > 1 {
		sum.StdDev = stat.StdDev(series, nil)
	}
	return sum, nil
}

// ComputeIndicators returns SMA and RSI overlays for a commodity's series.
// Both need more points than the period; short series yield nil overlays.
func (s *Service) ComputeIndicators(commodity string, venue, period int) (*Indicators, error) {
	series, err := s.Series(commodity, venue)
	if err != nil {
		return nil, err
	}
	ind := &Indicators{Commodity: commodity, Venue: venue, Period: period}
	if len(series) > period {
		ind.SMA = talib.Sma(series, period)
		ind.RSI = talib.Rsi(series, period)
	}
	return ind, nil
}

// Prune drops history older than keepDays before the state's current day.
func (s *Service) Prune(state *domain.GameState, keepDays int) error {
	cutoff := state.Day - keepDays
	if cutoff <= 0 {
		return nil
	}
	if _, err := s.db.Exec("DELETE FROM price_history WHERE day < ?", cutoff); err != nil {
		return fmt.Errorf("failed to prune price history: %w", err)
	}
	return nil
}
