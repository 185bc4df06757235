package nestedminor

import (
	"fmt"
	"sort"
)

// supportKey and rowSign mirror spreduce's duplicate-support detection
// (sorted-index signature string, then a separate consistent-sign check);
// duplicated here rather than exported from spreduce since the two packages
// reduce different things (matrix elements vs. a fixed row stripped of one
// entry) and gain nothing from sharing the helper across a package boundary.
func supportKey(nz map[int]int8) string {
	keys := make([]int, 0, len(nz))
	for k := range nz {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return fmt.Sprint(keys)
}

// rowSign reports the global sign s such that b == s*a over a's support, or
// 0 if no such sign exists. a and b must already have identical supports.
func rowSign(a, b map[int]int8) int8 {
	var sign int8
	for col, av := range a {
		bv := b[col]
		if sign == 0 {
			if bv == av {
				sign = 1
			} else if bv == -av {
				sign = -1
			} else {
				return 0
			}
		}
		if bv != sign*av {
			return 0
		}
	}

	return sign
}
