package engine

import (
	"math"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
	"github.com/Lexicon1971/starbuck-trader-game/internal/random"
)

// processDay runs the end-of-day pipeline. Step order is load-bearing:
// bans count down before contract resolution so a ban issued today lasts
// its full term, and contracts resolve before the market evolves so
// rewards are paid at pre-evolution prices.
func (e *Engine) processDay(report *domain.DailyReport) {
	s := e.state

	s.DailyTransactionCounts = make(map[string]int)
	e.fabrication.ResetDailyFlags(s)

	if s.Day > 1 {
		theme := random.Pick(e.rng, catalog.QuirkyThemes)
		report.QuirkyMessage = random.Pick(e.rng, catalog.QuirkyMessages[theme])
	}

	e.ledger.ApplyOverdraft(s, report)
	e.decayVolatiles(report)
	e.ledger.AccrueLoans(s, report)
	e.ledger.MatureInvestments(s, report)
	e.logistics.Tick(s, report)
	e.contracts.TickBans(s)
	e.contracts.Resolve(s, report)
	e.market.Evolve(s)
	e.ledger.RegenerateOffers(s)
	e.contracts.Generate(s)

	s.Messages = append(s.Messages, report.Events...)
	s.PruneMessages()

	for _, o := range e.observers {
		o.AfterTick(s, report)
	}
	e.log.Debug().Int("day", s.Day).Float64("cash", s.Cash).Msg("tick complete")
}

// decayVolatiles rots the unstable cargo lines: G.I.R.L matter has a 33%
// daily chance of losing 5-15% of the stack, power cells a 25% chance of a
// 2% die-off.
func (e *Engine) decayVolatiles(report *domain.DailyReport) {
	s := e.state

	if qty := s.CargoQuantity(catalog.GirlMatterName); qty > 0 && e.rng.Chance(0.33) {
		pct := 0.05 + e.rng.Float64()*0.10
		loss := int(math.Ceil(float64(qty) * pct))
		s.RemoveCargo(catalog.GirlMatterName, loss)
		report.Lose(catalog.GirlMatterName, loss)
		report.Add(domain.TagDanger, "WARNING: G.I.R.L Matter instability detected! %d units evaporated.", loss)
	}

	if qty := s.CargoQuantity(catalog.PowerCellName); qty > 0 && e.rng.Chance(0.25) {
		loss := int(math.Ceil(float64(qty) * 0.02))
		s.RemoveCargo(catalog.PowerCellName, loss)
		report.Lose(catalog.PowerCellName, loss)
		report.Add(domain.TagMaintenance, "MAINTENANCE: %d Power Cells found dead and were discarded.", loss)
	}
}
