package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lexicon1971/starbuck-trader-game/internal/engine"
	"github.com/Lexicon1971/starbuck-trader-game/internal/events"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/logistics"
)

// handleNewGame starts a fresh session, replacing any running one.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	state := s.engine.NewGame()

	s.events.EmitTyped(events.GameStarted, "engine", &events.GameStartedData{
		Seed:       state.Seed,
		StartVenue: state.CurrentVenue,
		Day:        state.Day,
	})

	s.writeJSON(w, http.StatusOK, state)
}

// handleState returns the full game state, or 404 before a game starts.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	state := s.engine.State()
	if state == nil {
		s.writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "no game in progress",
			"code":  "no_game",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

// handleReport returns the most recent completed daily report.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report := s.engine.LastReport()
	if report == nil {
		s.writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "no completed day yet",
			"code":  "no_report",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

type tradeRequest struct {
	Commodity string `json:"commodity"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	receipt, err := s.engine.Buy(req.Commodity, req.Quantity)
	if err != nil {
		s.writeRejection(w, err)
		return
	}

	s.emitTrade("buy", receipt.Commodity, receipt.Quantity, receipt.UnitPrice)
	s.writeJSON(w, http.StatusOK, receipt)
}

func (s *Server) handleSell(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	receipt, err := s.engine.Sell(req.Commodity, req.Quantity)
	if err != nil {
		s.writeRejection(w, err)
		return
	}

	s.emitTrade("sell", receipt.Commodity, receipt.Quantity, receipt.UnitPrice)
	s.writeJSON(w, http.StatusOK, receipt)
}

func (s *Server) emitTrade(side, commodity string, qty int, price float64) {
	venue := 0
	if state := s.engine.State(); state != nil {
		venue = state.CurrentVenue
	}
	s.events.EmitTyped(events.TradeExecuted, "market", &events.TradeExecutedData{
		Commodity: commodity,
		Side:      side,
		Quantity:  qty,
		Price:     price,
		Venue:     venue,
	})
}

// handleContracts lists available and active contracts.
func (s *Server) handleContracts(w http.ResponseWriter, r *http.Request) {
	state := s.engine.State()
	if state == nil {
		s.writeRejection(w, engine.ErrNoGame)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"available": state.AvailableContracts,
		"active":    state.ActiveContracts,
	})
}

func (s *Server) handleAcceptContract(w http.ResponseWriter, r *http.Request) {
	contract, err := s.engine.AcceptContract(chi.URLParam(r, "id"))
	if err != nil {
		s.writeRejection(w, err)
		return
	}

	s.events.EmitTyped(events.ContractAccepted, "contracts", &events.ContractEventData{
		ContractID: contract.ID,
		Commodity:  contract.Commodity,
		Quantity:   contract.Quantity,
		Venue:      contract.Destination,
	})
	s.writeJSON(w, http.StatusOK, contract)
}

// handleWarehouse returns the warehouse ledger across all venues.
func (s *Server) handleWarehouse(w http.ResponseWriter, r *http.Request) {
	state := s.engine.State()
	if state == nil {
		s.writeRejection(w, engine.ErrNoGame)
		return
	}
	s.writeJSON(w, http.StatusOK, state.Warehouse)
}

func (s *Server) handleShip(w http.ResponseWriter, r *http.Request) {
	var req logistics.ShipRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	receipt, err := s.engine.Ship(req)
	if err != nil {
		s.writeRejection(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, receipt)
}

type claimRequest struct {
	Venue     int    `json:"venue"`
	Commodity string `json:"commodity"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.engine.ClaimWarehouse(req.Venue, req.Commodity, req.Quantity); err != nil {
		s.writeRejection(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"claimed": true})
}

// handleLoanOffers lists the day's loan offers.
func (s *Server) handleLoanOffers(w http.ResponseWriter, r *http.Request) {
	state := s.engine.State()
	if state == nil {
		s.writeRejection(w, engine.ErrNoGame)
		return
	}
	s.writeJSON(w, http.StatusOK, state.LoanOffers)
}

func (s *Server) handleAcceptLoan(w http.ResponseWriter, r *http.Request) {
	loan, err := s.engine.AcceptLoanOffer(chi.URLParam(r, "id"))
	if err != nil {
		s.writeRejection(w, err)
		return
	}

	s.events.EmitTyped(events.LoanAccepted, "ledger", &events.LoanEventData{
		LoanID: loan.ID,
		Lender: loan.Firm,
		Amount: loan.Principal,
		Rate:   loan.InterestRate,
	})
	s.writeJSON(w, http.StatusOK, loan)
}

func (s *Server) handleRepayLoan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.engine.RepayLoan(id); err != nil {
		s.writeRejection(w, err)
		return
	}

	s.events.EmitTyped(events.LoanRepaid, "ledger", &events.LoanEventData{
		LoanID: id,
		Repaid: true,
	})
	s.writeJSON(w, http.StatusOK, map[string]bool{"repaid": true})
}

type investRequest struct {
	Amount   float64 `json:"amount"`
	TermDays int     `json:"term_days"`
}

func (s *Server) handleInvest(w http.ResponseWriter, r *http.Request) {
	var req investRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	inv, err := s.engine.Invest(req.Amount, req.TermDays)
	if err != nil {
		s.writeRejection(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, inv)
}

// handleShop returns the upgrade shop inventory.
func (s *Server) handleShop(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.ShopItems)
}

type buyEquipmentRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleBuyEquipment(w http.ResponseWriter, r *http.Request) {
	var req buyEquipmentRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.engine.BuyEquipment(catalog.EquipmentID(req.ID)); err != nil {
		s.writeRejection(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"purchased": true})
}

func (s *Server) handleRepairHull(w http.ResponseWriter, r *http.Request) {
	cost, err := s.engine.RepairHull()
	if err != nil {
		s.writeRejection(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]float64{"cost": cost})
}

func (s *Server) handleRepairLaser(w http.ResponseWriter, r *http.Request) {
	cost, err := s.engine.RepairLaser()
	if err != nil {
		s.writeRejection(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]float64{"cost": cost})
}

type expandCargoRequest struct {
	Units int `json:"units"`
}

func (s *Server) handleExpandCargo(w http.ResponseWriter, r *http.Request) {
	var req expandCargoRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.engine.ExpandCargoBay(req.Units); err != nil {
		s.writeRejection(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"expanded": true})
}

type fabricateRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) handleFabricateMesh(w http.ResponseWriter, r *http.Request) {
	var req fabricateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.engine.FabricateMesh(req.Quantity); err != nil {
		s.writeRejection(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"fabricated": true})
}

func (s *Server) handleFabricateStims(w http.ResponseWriter, r *http.Request) {
	var req fabricateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.engine.FabricateStims(req.Quantity); err != nil {
		s.writeRejection(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"fabricated": true})
}
