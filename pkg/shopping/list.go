// Package shopping merges the ingredient rows of every recipe in a cart into
// one shopping list and renders it as text.
package shopping

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"droscher.com/Foodgram/pkg/model"
)

const signOff = "All terms served"

// Line is the summed amount of one (name, unit) group.
type Line struct {
	Name            string
	MeasurementUnit string
	Amount          uint64
}

type groupKey struct {
	name string
	unit string
}

// Aggregate groups entries by ingredient name and measurement unit, not by
// ingredient id, so distinct ingredients sharing both are merged. Lines are
// ordered by name, then unit.
func Aggregate(entries []model.ShoppingListEntry) ([]Line, error) {
	index := make(map[groupKey]int, len(entries))
	lines := make([]Line, 0, len(entries))

	for _, entry := range entries {
		key := groupKey{name: entry.Name, unit: entry.MeasurementUnit}

		position, found := index[key]
		if !found {
			index[key] = len(lines)
			lines = append(lines, Line{Name: entry.Name, MeasurementUnit: entry.MeasurementUnit})
			position = len(lines) - 1
		}

		amount := uint64(entry.Amount)
		if lines[position].Amount > math.MaxUint64-amount {
			return nil, fmt.Errorf("%w: %s (%s)", model.ErrAmountOverflow, entry.Name, entry.MeasurementUnit)
		}

		lines[position].Amount += amount
	}

	slices.SortFunc(lines, func(a, b Line) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.MeasurementUnit, b.MeasurementUnit))
	})

	return lines, nil
}

// Render produces the downloadable text: a dated header, one line per group
// and a footer naming company and year.
func Render(lines []Line, now time.Time, company string) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Date: %s\n\n", now.Format(time.DateOnly))

	for index, line := range lines {
		if index > 0 {
			builder.WriteString("\n")
		}

		fmt.Fprintf(&builder, "| %s | (%s) | %d", line.Name, line.MeasurementUnit, line.Amount)
	}

	fmt.Fprintf(&builder, "\n\n%s (%d)\n\n%s", company, now.Year(), signOff)

	return builder.String()
}

func Filename(username string) string {
	return username + "_shopping_list.txt"
}
