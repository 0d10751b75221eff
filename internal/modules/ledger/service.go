// Package ledger handles cash, loans and investments: daily interest
// accrual, maturity payout and default penalties.
package ledger

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
	"github.com/Lexicon1971/starbuck-trader-game/internal/random"
)

// Additional rejection reasons beyond the shared taxonomy.
var (
	ErrLoanCapReached  = errors.New("maximum active loans reached")
	ErrExistingLender  = errors.New("already indebted to this firm")
	ErrUnknownOffer    = errors.New("unknown loan offer")
	ErrUnknownLoan     = errors.New("unknown loan")
	ErrInvalidTerm     = errors.New("invalid investment term")
	ErrOutstandingDebt = errors.New("cannot invest while in debt")
)

// depositRates maps a term in days to its fixed interest rate.
var depositRates = map[int]float64{1: 0.05, 2: 0.20, 3: 0.50}

// Service owns loan and investment accounting.
type Service struct {
	rng *random.Source
	log zerolog.Logger
}

// New creates a ledger service.
func New(rng *random.Source, log zerolog.Logger) *Service {
	return &Service{
		rng: rng,
		log: log.With().Str("component", "ledger").Logger(),
	}
}

// GenerateOffers produces the day's five loan offers. Offer size tracks
// the current phase goal; rates are the firm base plus a daily spread.
func (s *Service) GenerateOffers(phase int) []domain.LoanOffer {
	maxLoan := catalog.PhaseGoal(phase) * 0.25
	minAmt := math.Max(5000, maxLoan*0.05)

	offers := make([]domain.LoanOffer, 0, 5)
	for i := 0; i < 5; i++ {
		firm := catalog.LoanFirms[i%len(catalog.LoanFirms)]
		offers = append(offers, domain.LoanOffer{
			ID:           uuid.NewString(),
			Firm:         firm.Name,
			Amount:       math.Ceil(s.rng.Between(minAmt, maxLoan)/1000) * 1000,
			InterestRate: clampRate(firm.BaseRate + s.rng.Between(0, 5)),
			TermDays:     catalog.LoanRepaymentDays,
		})
	}
	return offers
}

// AcceptOffer converts an offer into an active loan and credits the cash.
// At most three loans may be active, at most one may be taken per day, and
// no firm lends twice.
func (s *Service) AcceptOffer(state *domain.GameState, offerID string) (*domain.Loan, error) {
	var offer *domain.LoanOffer
	for i := range state.LoanOffers {
		if state.LoanOffers[i].ID == offerID {
			offer = &state.LoanOffers[i]
			break
		}
	}
	if offer == nil {
		return nil, ErrUnknownOffer
	}
	if len(state.ActiveLoans) >= catalog.MaxActiveLoans {
		return nil, ErrLoanCapReached
	}
	if state.LoanAcceptedToday {
		return nil, domain.ErrDailyLimitReached
	}
	for _, l := range state.ActiveLoans {
		if l.Firm == offer.Firm {
			return nil, ErrExistingLender
		}
	}

	loan := &domain.Loan{
		ID:             uuid.NewString(),
		Firm:           offer.Firm,
		Principal:      offer.Amount,
		CurrentDebt:    offer.Amount,
		InterestRate:   offer.InterestRate,
		DaysRemaining:  offer.TermDays,
		OriginationDay: state.Day,
	}
	state.ActiveLoans = append(state.ActiveLoans, loan)
	state.Cash += offer.Amount
	state.LoanAcceptedToday = true
	state.Log(domain.TagDebt, "LOAN: Borrowed %.0f from %s at %.1f%%/day.", offer.Amount, offer.Firm, offer.InterestRate)
	s.log.Info().Str("firm", offer.Firm).Float64("amount", offer.Amount).Msg("loan accepted")
	return loan, nil
}

// Repay settles a loan in full, atomically: the full current debt is
// charged to cash and the loan removed.
func (s *Service) Repay(state *domain.GameState, loanID string) error {
	for i, l := range state.ActiveLoans {
		if l.ID != loanID {
			continue
		}
		if state.Cash < l.CurrentDebt {
			return domain.ErrInsufficientFunds
		}
		state.Cash -= l.CurrentDebt
		state.ActiveLoans = append(state.ActiveLoans[:i], state.ActiveLoans[i+1:]...)
		state.Log(domain.TagProfit, "REPAID: Settled %.0f with %s.", l.CurrentDebt, l.Firm)
		s.log.Info().Str("firm", l.Firm).Float64("debt", l.CurrentDebt).Msg("loan repaid")
		return nil
	}
	return ErrUnknownLoan
}

// Invest opens a fixed-term deposit. Deposits are only available while
// debt-free; the maturity value is fixed at creation and never recomputed.
func (s *Service) Invest(state *domain.GameState, amount float64, termDays int) (*domain.Investment, error) {
	rate, ok := depositRates[termDays]
	if !ok {
		return nil, ErrInvalidTerm
	}
	if !state.DebtFree() {
		return nil, ErrOutstandingDebt
	}
	if amount <= 0 || state.Cash < amount {
		return nil, domain.ErrInsufficientFunds
	}

	inv := &domain.Investment{
		ID:            uuid.NewString(),
		Amount:        amount,
		InterestRate:  rate,
		DaysRemaining: termDays,
		MaturityValue: math.Floor(amount * (1 + rate)),
	}
	state.Cash -= amount
	state.Investments = append(state.Investments, inv)
	state.Log(domain.TagInvestment, "DEPOSIT: Locked %.0f for %d day(s).", amount, termDays)
	return inv, nil
}

func clampRate(rate float64) float64 {
	return math.Max(1, math.Min(15, rate))
}
