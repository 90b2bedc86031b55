package datatable

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// Direction is a sort direction. The zero value means unsorted.
type Direction int

const (
	DirNone Direction = iota
	DirAsc
	DirDesc
)

func (d Direction) String() string {
	switch d {
	case DirAsc:
		return "asc"
	case DirDesc:
		return "desc"
	default:
		return "none"
	}
}

// NextDirection returns the successor in the per-column sort cycle:
// none, asc, desc, none.
func NextDirection(d Direction) Direction {
	switch d {
	case DirNone:
		return DirAsc
	case DirAsc:
		return DirDesc
	default:
		return DirNone
	}
}

// CellString converts a raw cell value to the string form used for
// searching and for default rendering.
func CellString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Filter returns the rows where any searchable column's stringified
// value contains query case-insensitively. An empty query returns
// rows unchanged (the same slice). Order is preserved.
func Filter(rows []Row, query string, columns []Column) []Row {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	var out []Row
	for _, r := range rows {
		for _, c := range columns {
			if !c.searchable() {
				continue
			}
			if strings.Contains(strings.ToLower(CellString(r[c.Key])), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// compareValues orders two raw cell values: numbers numerically,
// strings and times by their natural order, everything else by its
// string form. Returns <0, 0, >0.
func compareValues(a, b any) int {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	return strings.Compare(CellString(a), CellString(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Sort returns rows ordered by the given column key. DirNone returns
// rows unchanged (the same slice). The sort is stable: equal keys
// keep their input order for both directions, and descending negates
// the comparator rather than reversing the result.
func Sort(rows []Row, key string, dir Direction) []Row {
	if dir == DirNone || key == "" {
		return rows
	}
	out := make([]Row, len(rows))
	copy(out, rows)
	sign := 1
	if dir == DirDesc {
		sign = -1
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sign*compareValues(out[i][key], out[j][key]) < 0
	})
	return out
}

// TotalPages returns ceil(len(rows)/size); zero for an empty input.
func TotalPages(n, size int) int {
	if size <= 0 {
		if n > 0 {
			return 1
		}
		return 0
	}
	return (n + size - 1) / size
}

// ClampPage restricts page to [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the slice of rows belonging to the given 1-based
// page. Out-of-range pages clamp instead of erroring; a non-positive
// size disables pagination and returns rows unchanged.
func Paginate(rows []Row, page, size int) []Row {
	if size <= 0 {
		return rows
	}
	page = ClampPage(page, TotalPages(len(rows), size))
	start := (page - 1) * size
	if start >= len(rows) {
		return nil
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// EqualRows reports deep value equality between two rows. This is
// the default row identity: duplicate-content rows are
// indistinguishable.
func EqualRows(a, b Row) bool {
	return reflect.DeepEqual(a, b)
}
