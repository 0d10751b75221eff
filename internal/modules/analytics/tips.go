package analytics

import (
	"fmt"
	"sort"

	"github.com/Lexicon1971/starbuck-trader-game/internal/domain"
	"github.com/Lexicon1971/starbuck-trader-game/internal/modules/catalog"
)

// Tip is one actionable market observation at the current venue.
type Tip struct {
	Type      string  `json:"type"` // buy or sell
	Commodity string  `json:"commodity"`
	Text      string  `json:"text"`
	Score     float64 `json:"score"`
}

// MarketTips scans every venue's price for each commodity and flags local
// bargains and peaks: buy when the local price is within 10% of the global
// minimum, sell when within 10% of the global maximum. The three highest
// scoring tips are returned.
func MarketTips(state *domain.GameState) []Tip {
	if state == nil || len(state.Markets) == 0 {
		return nil
	}
	local := state.Markets[state.CurrentVenue]

	var tips []Tip
	for _, c := range catalog.Commodities {
		item, ok := local[c.Name]
		if !ok {
			continue
		}
		cp := item.Price

		minP, maxP := cp, cp
		maxVenue := state.CurrentVenue
		for i, m := range state.Markets {
			other, ok := m[c.Name]
			if !ok {
				continue
			}
			if other.Price < minP {
				minP = other.Price
			}
			if other.Price > maxP {
				maxP = other.Price
				maxVenue = i
			}
		}

		if cp <= minP*1.1 {
			tips = append(tips, Tip{
				Type:      "buy",
				Commodity: c.Name,
				Text:      fmt.Sprintf("BUY %s: Low (%.0f). Sell at %s (~%.0f).", c.Name, cp, catalog.Venues[maxVenue], maxP),
				Score:     maxP / cp,
			})
		}
		if cp >= maxP*0.9 {
			tips = append(tips, Tip{
				Type:      "sell",
				Commodity: c.Name,
				Text:      fmt.Sprintf("SELL %s: High (%.0f).", c.Name, cp),
				Score:     cp,
			})
		}
	}

	sort.SliceStable(tips, func(i, j int) bool { return tips[i].Score > tips[j].Score })
	if len(tips) > 3 {
		tips = tips[:3]
	}
	return tips
}
