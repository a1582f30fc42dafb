package postgres

import (
	"fmt"
	"strings"

	"campusEvents/internal/models"
)

// buildWhere renders filter as a WHERE clause with positional arguments.
// An empty filter renders to an empty clause.
func buildWhere(filter models.EventFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Start != nil && filter.End != nil {
		conds = append(conds, "date >= "+arg(filter.Start.UTC()))
		conds = append(conds, "date <= "+arg(filter.End.UTC()))
	}

	if filter.Visibility != "" {
		conds = append(conds, "visibility = "+arg(string(filter.Visibility)))
	}

	if filter.TrackedOnly {
		conds = append(conds, "external_id IS NOT NULL")
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}
