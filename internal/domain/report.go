package domain

import "fmt"

// DailyReport is the structured result of one day advance. Events are
// ordered; tags are styling hints only.
type DailyReport struct {
	Day           int       `json:"day"`
	Events        []Message `json:"events"`
	QuirkyMessage string    `json:"quirky_message,omitempty"`

	HullDamage  int  `json:"hull_damage"`
	LaserDamage int  `json:"laser_damage"`
	FuelUsed    int  `json:"fuel_used"`
	Insured     bool `json:"insured"`

	LostItems   map[string]int `json:"lost_items,omitempty"`
	GainedItems map[string]int `json:"gained_items,omitempty"`
}

// Add appends a formatted event to the report.
func (r *DailyReport) Add(tag MessageTag, format string, args ...any) {
	r.Events = append(r.Events, Message{
		Day:  r.Day,
		Text: fmt.Sprintf(format, args...),
		Tag:  tag,
	})
}

// Lose tallies cargo units destroyed or dumped during the day.
func (r *DailyReport) Lose(commodity string, qty int) {
	if r.LostItems == nil {
		r.LostItems = make(map[string]int)
	}
	r.LostItems[commodity] += qty
}

// Gain tallies cargo units acquired outside of trading, such as mining.
func (r *DailyReport) Gain(commodity string, qty int) {
	if r.GainedItems == nil {
		r.GainedItems = make(map[string]int)
	}
	r.GainedItems[commodity] += qty
}
