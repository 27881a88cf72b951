// Package lessons holds the scripted exercises of the bot: arithmetic,
// the alphabet and counting.
package lessons

import (
	"fmt"
	"strconv"
	"strings"

	"teacher-bot/errors"
)

type Operation int

const (
	Add Operation = iota + 1
	Subtract
	Multiply
	Divide
)

// ExitChoice leaves the math menu and the program.
const ExitChoice = "5"

// Operations lists the menu entries in display order.
func Operations() []Operation {
	return []Operation{Add, Subtract, Multiply, Divide}
}

func (o Operation) String() string {
	switch o {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	default:
		return "Unknown"
	}
}

// Symbol is the operator printed on screen.
func (o Operation) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// Spoken is the operator as read aloud.
func (o Operation) Spoken() string {
	switch o {
	case Add:
		return "plus"
	case Subtract:
		return "minus"
	case Multiply:
		return "multiplied by"
	case Divide:
		return "divided by"
	default:
		return ""
	}
}

// ParseChoice maps a menu entry "1".."4" to its operation.
func ParseChoice(choice string) (Operation, error) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || n < int(Add) || n > int(Divide) {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidChoice, choice)
	}
	return Operation(n), nil
}

// Apply computes x op y.
func Apply(op Operation, x, y float64) (float64, error) {
	switch op {
	case Add:
		return x + y, nil
	case Subtract:
		return x - y, nil
	case Multiply:
		return x * y, nil
	case Divide:
		if y == 0 {
			return 0, errors.ErrDivideByZero
		}
		return x / y, nil
	default:
		return 0, fmt.Errorf("%w: operation %d", errors.ErrInvalidChoice, op)
	}
}

// ParseNumber reads an operand typed by the user.
func ParseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// FormatNumber prints 3 rather than 3.000000.
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
