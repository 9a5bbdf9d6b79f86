package response_models

// BudgetSummaryResponse is the serialized form of a budget summary.
// Monetary values become plain numbers only here; all aggregation
// upstream runs on exact decimals.
type BudgetSummaryResponse struct {
	TripID        string   `json:"trip_id"`
	Transport     float64  `json:"transport"`
	Stay          float64  `json:"stay"`
	Meals         float64  `json:"meals"`
	Activities    float64  `json:"activities"`
	Other         float64  `json:"other"`
	Total         float64  `json:"total"`
	AveragePerDay float64  `json:"average_per_day"`
	OverBudget    bool     `json:"over_budget"`
	BudgetLimit   *float64 `json:"budget_limit"`
}
