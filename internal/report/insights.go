package report

import "fmt"

// nearDepletionShare is the fraction of the budget below which the remaining
// amount triggers a depletion warning.
const nearDepletionShare = 0.2

// GenerateInsights turns comparison rows into alert messages. Rows are
// visited in order; each qualifying row produces its own message.
func GenerateInsights(rows []ComparisonRow) []string {
	var insights []string
	for _, r := range rows {
		switch {
		case r.Actual > r.Budget:
			insights = append(insights,
				fmt.Sprintf("Over budget in %s by $%.2f", r.Category, r.Actual-r.Budget))
		case r.Remaining < r.Budget*nearDepletionShare:
			insights = append(insights,
				fmt.Sprintf("%s budget is nearly depleted (%.1f%% remaining)",
					r.Category, r.Remaining/r.Budget*100))
		}
	}
	return insights
}
