package view

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/khrees2412/talentdesk/pkg/models"
)

// compareValues orders the values SortValue returns. Nil sorts first and
// mismatched types fall back to their text form.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case int:
		if y, ok := b.(int); ok {
			return cmpOrdered(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmpOrdered(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmpOrdered(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}
	// numeric ids sort before non-numeric ones
	_, an := a.(int64)
	_, bn := b.(int64)
	if an != bn {
		if an {
			return -1
		}
		return 1
	}
	return strings.Compare(toText(a), toText(b))
}

func cmpOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func toText(v any) string { return fmt.Sprint(v) }

// sortRecords returns a sorted copy of rows.
func sortRecords[T models.Record](rows []T, column string, desc bool) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareValues(out[i].SortValue(column), out[j].SortValue(column))
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}
