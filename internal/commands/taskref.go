package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrTaskNumberRequired indicates no task number was provided.
var ErrTaskNumberRequired = errors.New("task number required")

// ParseTaskNumber parses the 1-based task number shown by list.
//
// Parsing rules:
// 1. No args → ErrTaskNumberRequired
// 2. First arg all ASCII digits → that number (0 is returned as-is, callers range check)
// 3. Anything else, including a sign or extra args → error: invalid task number: <ref>
func ParseTaskNumber(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskNumberRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("invalid task number: %s", strings.Join(args, " "))
	}

	ref := args[0]
	if !isAllDigits(ref) {
		return 0, fmt.Errorf("invalid task number: %s", ref)
	}

	num, err := strconv.Atoi(ref)
	if err != nil {
		// Only overflow can get here
		return 0, fmt.Errorf("invalid task number: %s", ref)
	}
	return num, nil
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
