package ledger

import (
	"math"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
)

// ApplyOverdraft charges 15% interest on any cash deficit at tick start.
func (s *Service) ApplyOverdraft(state *domain.GameState, report *domain.DailyReport) {
	if state.Cash >= 0 {
		return
	}
	interest := math.Abs(state.Cash) * catalog.OverdraftRatePct
	state.Cash -= interest
	report.Add(domain.TagDebt, "OVERDRAFT: Charged %.0f interest.", interest)
}

// AccrueLoans compounds every active loan and charges the recurring default
// fine once the term has lapsed. Defaulted loans stay on the books until
// manually repaid.
func (s *Service) AccrueLoans(state *domain.GameState, report *domain.DailyReport) {
	for _, l := range state.ActiveLoans {
		l.DaysRemaining--
		l.CurrentDebt += math.Round(l.CurrentDebt * l.InterestRate / 100)
		if l.DaysRemaining <= 0 {
			fine := l.Principal * catalog.LoanDefaultFinePct
			state.Cash -= fine
			report.Add(domain.TagDebt, "DEFAULT: %s penalty %.0f.", l.Firm, fine)
		}
	}
}

// MatureInvestments pays out deposits whose term ends today and removes
// them.
func (s *Service) MatureInvestments(state *domain.GameState, report *domain.DailyReport) {
	kept := state.Investments[:0]
	for _, inv := range state.Investments {
		inv.DaysRemaining--
		if inv.DaysRemaining <= 0 {
			state.Cash += inv.MaturityValue
			report.Add(domain.TagInvestment, "INVESTMENT MATURED: Received %.0f.", inv.MaturityValue)
		} else {
			kept = append(kept, inv)
		}
	}
	state.Investments = kept
}

// RegenerateOffers replaces the offer book and resets the daily loan flag.
func (s *Service) RegenerateOffers(state *domain.GameState) {
	state.LoanOffers = s.GenerateOffers(state.GamePhase)
	state.LoanAcceptedToday = false
}
