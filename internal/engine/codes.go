package engine

import (
	"sort"
	"strconv"
	"strings"

	"obratrack/internal/model"
)

// CompareCodes orders hierarchical budget codes segment by segment, comparing
// dot-separated components numerically when both parse as numbers, so that
// "1.2" sorts before "1.10". Returns -1, 0 or +1.
func CompareCodes(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])

		if aerr == nil && berr == nil {
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
			continue
		}

		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

// SortBudget orders items in place by hierarchical code.
func SortBudget(items []model.BudgetItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return CompareCodes(items[i].Code, items[j].Code) < 0
	})
}
