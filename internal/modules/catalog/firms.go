package catalog

// LoanFirm is a lender in the loan-offer table. BaseRate is the daily
// interest floor in percent; generated offers add a random spread on top.
type LoanFirm struct {
	Name     string
	BaseRate float64
}

// LoanFirms is the lender table, ordered from cheapest to most predatory.
var LoanFirms = []LoanFirm{
	{Name: "Starfleet Credit Union", BaseRate: 1},
	{Name: "Tyrell Corporation Finance", BaseRate: 3},
	{Name: "Weyland-Yutani Trust", BaseRate: 5},
	{Name: "The Great Barter Bank", BaseRate: 7},
	{Name: "The Hutt Cartel Lending", BaseRate: 10},
}

// ContractFirms are the corporations that post delivery contracts.
var ContractFirms = []string{
	"Weyland-Yutani Logistics", "Choam Corp", "Federation Supply", "Hutt Smuggling Ring", "Cyberdyne Systems",
}

// StarterLoanFirm is the lender behind the forced opening loan.
const StarterLoanFirm = "Starfleet Credit Union"
