package demo

import (
	stderrors "errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kbukum/seqtrace/errors"
)

// ParseInput parses a comma-separated list of integers. Surrounding brackets
// and whitespace are allowed, so "1,2,3" and "[1, 2, 3]" are equivalent. An
// empty list is valid.
//
// Any token that is not an integer, or whose double overflows int, yields an
// INVALID_INPUT error naming the position and token.
func ParseInput(s string) ([]int, error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "[") || strings.HasSuffix(body, "]") {
		if !strings.HasPrefix(body, "[") || !strings.HasSuffix(body, "]") {
			return nil, errors.InvalidInput("input", "unbalanced brackets")
		}
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	if body == "" {
		return []int{}, nil
	}

	tokens := strings.Split(body, ",")
	out := make([]int, 0, len(tokens))
	for i, raw := range tokens {
		tok := strings.TrimSpace(raw)
		field := fmt.Sprintf("input[%d]", i)
		n, err := strconv.Atoi(tok)
		if err != nil {
			reason := fmt.Sprintf("%q is not an integer", tok)
			if stderrors.Is(err, strconv.ErrRange) {
				reason = fmt.Sprintf("%q is out of range", tok)
			}
			return nil, errors.InvalidInput(field, reason).WithDetail("token", tok).WithCause(err)
		}
		out = append(out, n)
	}
	if err := ValidateInput(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ValidateInput rejects values whose double does not fit in an int.
func ValidateInput(input []int) error {
	for i, x := range input {
		if x > math.MaxInt/2 || x < math.MinInt/2 {
			return errors.InvalidInput(fmt.Sprintf("input[%d]", i), fmt.Sprintf("%d overflows when doubled", x)).
				WithDetail("value", x)
		}
	}
	return nil
}
