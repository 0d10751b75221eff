package market

import (
	"math"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
)

// TradeReceipt summarizes one executed trade.
type TradeReceipt struct {
	Commodity string  `json:"commodity"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Tax       float64 `json:"tax"`
	CashDelta float64 `json:"cash_delta"` // negative for buys
	Profit    float64 `json:"profit"`     // realized, sells only
}

// Buy purchases qty units of a commodity at the current venue. The second
// and later trades of the same venue+commodity pair in a day pay a 5% tax
// on the cash leg; the cost basis ignores the tax.
func (s *Service) Buy(state *domain.GameState, commodity string, qty int) (*TradeReceipt, error) {
	if qty <= 0 {
		return nil, domain.ErrInsufficientStock
	}
	item, ok := state.Markets[state.CurrentVenue][commodity]
	if !ok || item.Quantity < qty {
		return nil, domain.ErrInsufficientStock
	}

	key := txKey(state.CurrentVenue, commodity)
	cost := float64(qty) * item.Price
	var tax float64
	if state.DailyTransactionCounts[key] > 0 {
		tax = math.Floor(cost * catalog.FrequentTradeTaxPct)
		cost += tax
	}
	if state.Cash < cost {
		return nil, domain.ErrInsufficientFunds
	}
	if state.CargoWeight+float64(qty)*catalog.UnitWeight(commodity) > state.CargoCapacity {
		return nil, domain.ErrInsufficientCargoSpace
	}

	item.Quantity -= qty
	state.AddCargo(commodity, qty, item.Price)
	state.Cash -= cost
	state.DailyTransactionCounts[key]++

	if tax > 0 {
		state.Log(domain.TagDanger, "TAX: Paid %.0f for frequent trading.", tax)
	}
	state.Log(domain.TagBuy, "Bought %d x %s at %.0f.", qty, commodity, item.Price)
	s.log.Debug().Str("commodity", commodity).Int("qty", qty).Float64("cost", cost).Msg("buy executed")

	return &TradeReceipt{
		Commodity: commodity,
		Quantity:  qty,
		UnitPrice: item.Price,
		Tax:       tax,
		CashDelta: -cost,
	}, nil
}

// Sell liquidates qty units of held cargo at the current venue price. The
// frequent-trade tax reduces revenue only; realized P&L is measured against
// the weighted-average cost basis.
func (s *Service) Sell(state *domain.GameState, commodity string, qty int) (*TradeReceipt, error) {
	if qty <= 0 {
		return nil, domain.ErrInsufficientStock
	}
	owned, ok := state.Cargo[commodity]
	if !ok || owned.Quantity < qty {
		return nil, domain.ErrInsufficientStock
	}
	item, ok := state.Markets[state.CurrentVenue][commodity]
	if !ok {
		return nil, domain.ErrInsufficientStock
	}

	key := txKey(state.CurrentVenue, commodity)
	revenue := float64(qty) * item.Price
	var tax float64
	if state.DailyTransactionCounts[key] > 0 {
		tax = math.Floor(revenue * catalog.FrequentTradeTaxPct)
		revenue -= tax
	}

	avgCost := owned.AverageCost
	item.Quantity += qty
	state.RemoveCargo(commodity, qty)
	state.Cash += revenue
	state.DailyTransactionCounts[key]++

	profit := revenue - float64(qty)*avgCost
	state.RecordWin(revenue)
	if profit < 0 {
		state.RecordLoss(-profit)
	}

	if tax > 0 {
		state.Log(domain.TagDanger, "TAX: Paid %.0f for frequent trading.", tax)
	}
	if profit > 0 {
		state.Log(domain.TagProfit, "PROFIT: Made %.0f selling %s.", profit, commodity)
	} else {
		state.Log(domain.TagDanger, "LOSS: Lost %.0f selling %s.", -profit, commodity)
	}
	s.log.Debug().Str("commodity", commodity).Int("qty", qty).Float64("revenue", revenue).Msg("sell executed")

	return &TradeReceipt{
		Commodity: commodity,
		Quantity:  qty,
		UnitPrice: item.Price,
		Tax:       tax,
		CashDelta: revenue,
		Profit:    profit,
	}, nil
}
