package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/travel"
)

func newEngine(seed int64) *Engine {
	return New(seed, zerolog.Nop())
}

func TestNewGame(t *testing.T) {
	e := newEngine(1)
	s := e.NewGame()

	assert.Equal(t, 1, s.Day)
	assert.Equal(t, 20000.0, s.Cash)
	assert.Equal(t, 1, s.GamePhase)
	assert.Equal(t, 100, s.ShipHealth)
	assert.Len(t, s.Markets, len(catalog.Venues))

	assert.Equal(t, 10, s.CargoQuantity(catalog.NutriPasteName))
	assert.Equal(t, 20, s.CargoQuantity(catalog.H2OName))
	assert.Equal(t, 25, s.CargoQuantity(catalog.PowerCellName))
	assert.Equal(t, 100, s.CargoQuantity(catalog.FuelName))

	require.Len(t, s.ActiveLoans, 1)
	loan := s.ActiveLoans[0]
	assert.Equal(t, "Starfleet Credit Union", loan.Firm)
	assert.Equal(t, 5000.0, loan.CurrentDebt)
	assert.Equal(t, catalog.LoanRepaymentDays, loan.DaysRemaining)

	assert.Len(t, s.LoanOffers, 5)
	assert.NotEmpty(t, s.AvailableContracts)
	assert.NotEmpty(t, s.Messages)
}

func TestActionsRequireGame(t *testing.T) {
	e := newEngine(2)
	_, err := e.Buy(catalog.H2OName, 1)
	assert.ErrorIs(t, err, ErrNoGame)
	_, err = e.Stay()
	assert.ErrorIs(t, err, ErrNoGame)
}

func TestStayAdvancesDay(t *testing.T) {
	e := newEngine(3)
	e.NewGame()

	out, err := e.Stay()
	require.NoError(t, err)
	require.NotNil(t, out.Report)
	assert.Equal(t, 2, e.State().Day)
	assert.Equal(t, 2, out.Report.Day)
	assert.NotEmpty(t, out.Report.QuirkyMessage, "day 2 tick carries a quirky line")
	assert.False(t, out.GameOver)
}

func TestStarterLoanAccrues(t *testing.T) {
	e := newEngine(4)
	s := e.NewGame()

	debtBefore := s.ActiveLoans[0].CurrentDebt
	_, err := e.Stay()
	require.NoError(t, err)

	assert.Equal(t, catalog.LoanRepaymentDays-1, s.ActiveLoans[0].DaysRemaining)
	assert.Greater(t, s.ActiveLoans[0].CurrentDebt, debtBefore)
}

func TestJumpChangesVenue(t *testing.T) {
	e := newEngine(5)
	s := e.NewGame()
	from := s.CurrentVenue
	dest := (from + 1) % len(catalog.Venues)

	out, err := e.Jump(travel.JumpRequest{Destination: dest})
	require.NoError(t, err)

	for out.PendingEncounter != nil {
		choice := domain.ChoiceEvade
		if out.PendingEncounter.Type == domain.EncounterDerelict {
			choice = domain.ChoiceLeaveAlone
		}
		out, err = e.ResolveEncounter(choice)
		require.NoError(t, err)
	}

	require.NotNil(t, out.Report)
	assert.Equal(t, dest, s.CurrentVenue)
	assert.Equal(t, 2, s.Day)
	assert.Positive(t, out.Report.FuelUsed)
}

func TestPendingEncounterBlocksActions(t *testing.T) {
	e := newEngine(6)
	e.NewGame()
	e.pendingEncounter = &domain.Encounter{Type: domain.EncounterPirate}

	_, err := e.Buy(catalog.H2OName, 1)
	assert.ErrorIs(t, err, ErrEncounterPending)
	_, err = e.Stay()
	assert.ErrorIs(t, err, ErrEncounterPending)

	_, err = e.ResolveEncounter(domain.EncounterChoice("bogus"))
	assert.Error(t, err, "invalid choice keeps the encounter pending")
	assert.NotNil(t, e.PendingEncounter())
}

func TestResolveWithoutPendingEncounter(t *testing.T) {
	e := newEngine(7)
	e.NewGame()
	_, err := e.ResolveEncounter(domain.ChoiceEvade)
	assert.ErrorIs(t, err, ErrNoPendingEncounter)
}

func TestPhaseTransition(t *testing.T) {
	e := newEngine(8)
	s := e.NewGame()
	s.Cash = catalog.GoalPhase1Amount * 2

	out, err := e.Stay()
	require.NoError(t, err)
	assert.Equal(t, 2, out.PendingPhase)
	assert.False(t, out.GameOver)

	_, err = e.Buy(catalog.H2OName, 1)
	assert.ErrorIs(t, err, ErrPhasePending)

	stockBefore := s.Markets[0][catalog.H2OName].Quantity
	require.NoError(t, e.AdvancePhase())

	assert.Equal(t, 2, s.GamePhase)
	// x3 stock multiplier with the x2 supply glut
	assert.Equal(t, stockBefore*6, s.Markets[0][catalog.H2OName].Quantity)

	assert.ErrorIs(t, e.AdvancePhase(), ErrNoPendingPhase)
}

func TestDeadlineGameOver(t *testing.T) {
	e := newEngine(9)
	s := e.NewGame()
	s.Day = catalog.GoalPhase1Days // tick moves past the deadline

	out, err := e.Stay()
	require.NoError(t, err)
	assert.True(t, out.GameOver)
	assert.Equal(t, "Deadline Missed.", out.GameOverReason)
	assert.True(t, s.GameOver)

	_, err = e.Stay()
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestBankruptcyGameOver(t *testing.T) {
	e := newEngine(10)
	s := e.NewGame()
	s.Cash = -200000
	s.ActiveLoans = nil

	out, err := e.Stay()
	require.NoError(t, err)
	assert.True(t, out.GameOver)
	assert.Equal(t, "Bankruptcy Declared.", out.GameOverReason)
}

func TestTickObserver(t *testing.T) {
	e := newEngine(11)
	e.NewGame()

	var days []int
	e.AddObserver(observerFunc(func(s *domain.GameState, r *domain.DailyReport) {
		days = append(days, s.Day)
	}))

	_, err := e.Stay()
	require.NoError(t, err)
	_, err = e.Stay()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, days)
}

type observerFunc func(*domain.GameState, *domain.DailyReport)

func (f observerFunc) AfterTick(s *domain.GameState, r *domain.DailyReport) { f(s, r) }

func TestDeterminism(t *testing.T) {
	run := func(seed int64) *domain.GameState {
		e := newEngine(seed)
		s := e.NewGame()
		for i := 0; i < 5; i++ {
			_, err := e.Stay()
			require.NoError(t, err)
		}
		return s
	}

	a, b := run(42), run(42)

	assert.Equal(t, a.Day, b.Day)
	assert.Equal(t, a.Cash, b.Cash)
	assert.Equal(t, a.CurrentVenue, b.CurrentVenue)
	assert.Equal(t, a.Markets, b.Markets)
	assert.Equal(t, a.CargoWeight, b.CargoWeight)
	for i := range a.LoanOffers {
		assert.Equal(t, a.LoanOffers[i].Amount, b.LoanOffers[i].Amount)
		assert.Equal(t, a.LoanOffers[i].InterestRate, b.LoanOffers[i].InterestRate)
	}

	c := run(43)
	assert.NotEqual(t, a.Markets, c.Markets, "different seeds diverge")
}
