package commands

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"unicode"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskNums parses 1-based task numbers from args.
// Returns the numbers sorted ascending with duplicates removed.
//
// Parsing rules:
// 1. No args → ErrTaskRefRequired
// 2. Every arg must be all digits → otherwise: invalid task reference: <ref>
// 3. Zero is rejected → task number out of range: 0
func ParseTaskNums(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}

	seen := make(map[int]bool, len(args))
	nums := make([]int, 0, len(args))
	for _, arg := range args {
		if !isAllDigits(arg) {
			return nil, fmt.Errorf("invalid task reference: %s", arg)
		}
		num, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid task reference: %s", arg)
		}
		if num < 1 {
			return nil, fmt.Errorf("task number out of range: %d", num)
		}
		if seen[num] {
			continue
		}
		seen[num] = true
		nums = append(nums, num)
	}

	sort.Ints(nums)
	return nums, nil
}

// checkIndexes maps sorted 1-based task numbers to the 0-based indexes to
// toggle one after another when each checked task moves to the end.
// Checking number n shifts every later task down by one, so the k-th
// number in ascending order is found at n-1-k.
func checkIndexes(nums []int) []int {
	out := make([]int, len(nums))
	for k, n := range nums {
		out[k] = n - 1 - k
	}
	return out
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
