// Package domain holds the simulation's core data model. The state object
// is owned by the engine; external components mutate it only through the
// engine's operations.
package domain

// MarketItem is the price/stock pair for one commodity at one venue.
// Mutated only by the market evolution function and by trade execution.
type MarketItem struct {
	Price            float64 `json:"price"`
	Quantity         int     `json:"quantity"`
	StandardQuantity int     `json:"standard_quantity"`
	DepletionDays    int     `json:"depletion_days"` // consecutive zero-stock days
}

// Market is one venue's order book, keyed by commodity name.
type Market map[string]*MarketItem

// CargoItem is one held commodity in the ship's hold. An entry with
// quantity <= 0 is removed, never retained as zero.
type CargoItem struct {
	Quantity    int     `json:"quantity"`
	AverageCost float64 `json:"average_cost"` // weighted-average cost basis
}

// WarehouseItem is off-ship stock shipped to a destination venue. Invisible
// to the cargo hold until claimed.
type WarehouseItem struct {
	Quantity        int     `json:"quantity"`
	OriginalAvgCost float64 `json:"original_avg_cost"`
	ArrivalDay      int     `json:"arrival_day"`
}

// Loan is an active debt position. CurrentDebt compounds daily.
type Loan struct {
	ID             string  `json:"id"`
	Firm           string  `json:"firm"`
	Principal      float64 `json:"principal"`
	CurrentDebt    float64 `json:"current_debt"`
	InterestRate   float64 `json:"interest_rate"` // percent per day
	DaysRemaining  int     `json:"days_remaining"`
	OriginationDay int     `json:"origination_day"`
}

// LoanOffer is a bank offer regenerated every tick.
type LoanOffer struct {
	ID           string  `json:"id"`
	Firm         string  `json:"firm"`
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	TermDays     int     `json:"term_days"`
}

// Investment is a fixed-term deposit. MaturityValue is fixed at creation
// and never recomputed.
type Investment struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	InterestRate  float64 `json:"interest_rate"`
	DaysRemaining int     `json:"days_remaining"`
	MaturityValue float64 `json:"maturity_value"`
}

// Contract is a time-boxed delivery order. A contract lives in exactly one
// of the available or active collections at a time.
type Contract struct {
	ID            string  `json:"id"`
	Firm          string  `json:"firm"`
	Commodity     string  `json:"commodity"`
	Quantity      int     `json:"quantity"`
	Destination   int     `json:"destination"`
	Reward        float64 `json:"reward"`
	Penalty       float64 `json:"penalty"`
	DaysRemaining int     `json:"days_remaining"`
}

// Stats tracks session-level extremes for the end screen.
type Stats struct {
	LargestSingleWin  float64 `json:"largest_single_win"`
	LargestSingleLoss float64 `json:"largest_single_loss"`
}
