package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Range is a maximal run of consecutive player counts, inclusive on both
// ends.
type Range struct {
	Start int
	End   int
}

// String renders a single count bare and a run as "start-end".
func (r Range) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Compact collapses a player-count list into its maximal consecutive runs,
// ascending. Input order does not matter; duplicates are dropped before
// scanning, so the result covers exactly the distinct input values.
func Compact(numbers []int) []Range {
	if len(numbers) == 0 {
		return nil
	}

	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)

	var ranges []Range
	cur := Range{Start: sorted[0], End: sorted[0]}
	for _, n := range sorted[1:] {
		switch {
		case n == cur.End:
			// duplicate, already covered
		case n == cur.End+1:
			cur.End = n
		default:
			ranges = append(ranges, cur)
			cur = Range{Start: n, End: n}
		}
	}
	return append(ranges, cur)
}

// FormatRanges joins ranges with " or ", e.g. "2-4 or 6".
func FormatRanges(ranges []Range) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, " or ")
}
