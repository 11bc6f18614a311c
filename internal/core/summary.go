package core

import "github.com/shopspring/decimal"

// CategoryAmount is one slice of the expense breakdown: the exact category
// text as recorded and the summed expense magnitude under it.
type CategoryAmount struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// Summary is the aggregated view of a transaction collection within a date
// range. Monetary fields are rounded to two decimal places; Filtered keeps
// the input order of the collection.
type Summary struct {
	Filtered  []Transaction
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	Balance   decimal.Decimal
	Breakdown []CategoryAmount
}

// FilterByRange returns the transactions whose date falls within r, in input
// order. The result is a subset of the input slice's elements.
func FilterByRange(transactions []Transaction, r DateRange) []Transaction {
	if r.Unbounded() {
		return transactions
	}
	filtered := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if r.Contains(t.Date) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Summarize filters the collection by r and reduces it to totals and the
// per-category expense breakdown. It is a pure function: same inputs, same
// outputs, no retained state.
//
// Sums are accumulated at full precision and rounded only at the end, so
// rounding error never compounds across transactions. Amounts equal to zero
// count toward neither total. Breakdown entries appear in first-occurrence
// order of each category among the filtered expenses; grouping is exact
// string match, so transactions recorded against a since-renamed or deleted
// category still aggregate under their original label.
func Summarize(transactions []Transaction, r DateRange) Summary {
	filtered := FilterByRange(transactions, r)

	income := decimal.Zero
	expenses := decimal.Zero
	order := make(map[string]int)
	groups := make([]CategoryAmount, 0)

	for _, t := range filtered {
		switch t.Amount.Sign() {
		case 1:
			income = income.Add(t.Amount)
		case -1:
			magnitude := t.Amount.Abs()
			expenses = expenses.Add(magnitude)
			idx, seen := order[t.Category]
			if !seen {
				idx = len(groups)
				order[t.Category] = idx
				groups = append(groups, CategoryAmount{Category: t.Category})
			}
			groups[idx].Value = groups[idx].Value.Add(magnitude)
		}
	}

	for i := range groups {
		groups[i].Value = groups[i].Value.Round(2)
	}
	income = income.Round(2)
	expenses = expenses.Round(2)

	return Summary{
		Filtered:  filtered,
		Income:    income,
		Expenses:  expenses,
		Balance:   income.Sub(expenses),
		Breakdown: groups,
	}
}
