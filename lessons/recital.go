package lessons

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"teacher-bot/errors"
)

const (
	MinCount = 1
	MaxCount = 500
	// FullCount recites 0 through MaxCount inclusive.
	FullCount = MaxCount + 1
)

var validate = validator.New()

type countRequest struct {
	Count int `validate:"min=1,max=500"`
}

// Alphabet returns the lowercase letters a to z.
func Alphabet() []string {
	return lo.Map(lo.RangeFrom('a', 26), func(r rune, _ int) string {
		return string(r)
	})
}

// Numbers returns 0 up to limit-1.
func Numbers(limit int) []int {
	if limit <= 0 {
		return nil
	}
	return lo.Range(limit)
}

// ValidateCount checks a user-chosen count lies in [MinCount, MaxCount].
func ValidateCount(n int) error {
	if err := validate.Struct(countRequest{Count: n}); err != nil {
		return fmt.Errorf("%w: %d is not between %d and %d", errors.ErrOutOfRange, n, MinCount, MaxCount)
	}
	return nil
}
