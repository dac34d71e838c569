package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInts splits raw move text on whitespace, commas and parentheses and
// parses every token as an integer. "(3, 4)" and "3 4" both give [3 4].
func ParseInts(raw string) ([]int, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '(' || r == ')' || r == '\r' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no integers found")
	}
	ints := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", field)
		}
		ints[i] = n
	}
	return ints, nil
}
