// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/catfood/bcq/internal/cat"
)

// Operator is a cost comparison.
type Operator int

const (
	OpEqual Operator = iota
	OpLess
	OpLessEqual
	OpGreaterEqual
	OpGreater
)

var operatorSymbols = map[Operator]string{
	OpEqual:        "==",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreaterEqual: ">=",
	OpGreater:      ">",
}

// ParseOperator maps a symbol to its Operator. "=" is an alias of "==".
func ParseOperator(symbol string) (Operator, error) {
	switch symbol {
	case "=", "==":
		return OpEqual, nil
	case "<":
		return OpLess, nil
	case "<=":
		return OpLessEqual, nil
	case ">=":
		return OpGreaterEqual, nil
	case ">":
		return OpGreater, nil
	}
	return 0, fmt.Errorf("%w: operator %q is not supported", ErrInvalidExpression, symbol)
}

// Compare evaluates "a op b".
func (o Operator) Compare(a, b int) bool {
	switch o {
	case OpEqual:
		return a == b
	case OpLess:
		return a < b
	case OpLessEqual:
		return a <= b
	case OpGreaterEqual:
		return a >= b
	case OpGreater:
		return a > b
	}
	return false
}

func (o Operator) String() string {
	if s, ok := operatorSymbols[o]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// costExprRegex splits "<op><ws>*<integer>". The operator group is loose on
// purpose so unsupported operators such as "!=" reach ParseOperator and get a
// precise error.
var costExprRegex = regexp.MustCompile(`^\s*([!=<>]*)\s*(-?\d+)\s*$`)

// CostExpr is a parsed cost comparison.
type CostExpr struct {
	Op    Operator
	Value int
}

// ParseCostExpr accepts a bare integer (equality) or an operator from
// =, ==, <, <=, >=, > followed by optional whitespace and an integer.
func ParseCostExpr(expr string) (CostExpr, error) {
	parts := costExprRegex.FindStringSubmatch(expr)
	if parts == nil {
		return CostExpr{}, fmt.Errorf("%w: cost %q is not <op><integer>", ErrInvalidExpression, expr)
	}

	op := OpEqual
	if parts[1] != "" {
		var err error
		if op, err = ParseOperator(parts[1]); err != nil {
			return CostExpr{}, fmt.Errorf("cost %q: %w", expr, err)
		}
	}

	value, err := strconv.Atoi(parts[2])
	if err != nil {
		return CostExpr{}, fmt.Errorf("%w: cost %q: %v", ErrInvalidExpression, expr, err)
	}

	return CostExpr{Op: op, Value: value}, nil
}

// Matches reports whether any of the costs satisfies the comparison.
func (e CostExpr) Matches(c cat.Cost) bool {
	return c.Any(func(v int) bool {
		return e.Op.Compare(v, e.Value)
	})
}

func (e CostExpr) String() string {
	return e.Op.String() + strconv.Itoa(e.Value)
}
