package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrTaskIDRequired indicates no task id was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskID parses the single task id argument of done and rm.
// Accepted forms are "3" and "#3". Ids start at 1.
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}

	raw := strings.TrimPrefix(args[0], "#")
	if !isAllDigits(raw) {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
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
