// SPDX-License-Identifier: MIT
//
// File: operands.go
// Role: positional operand validation, in NUM_V, NUM_E, X order.

package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Operand names as they appear in messages and usage.
const (
	OperandVertices = "NUM_V"
	OperandEdges    = "NUM_E"
	OperandScale    = "X"
)

// Operands are the validated positional arguments.
type Operands struct {
	Vertices int
	Edges    int
	Scale    float64
}

// ParseOperands validates args. The first missing or invalid operand is
// reported; extra operands are rejected.
func ParseOperands(args []string) (Operands, error) {
	var ops Operands
	names := []string{OperandVertices, OperandEdges, OperandScale}
	if len(args) < len(names) {
		return ops, usagef(fmt.Sprintf("missing %s operand", names[len(args)]))
	}
	if len(args) > len(names) {
		return ops, usagef(fmt.Sprintf("extra operand '%s'", args[len(names)]))
	}

	var err error
	if ops.Vertices, err = parseCount(OperandVertices, args[0]); err != nil {
		return ops, err
	}
	if ops.Edges, err = parseCount(OperandEdges, args[1]); err != nil {
		return ops, err
	}
	if ops.Scale, err = parseScale(args[2]); err != nil {
		return ops, err
	}

	return ops, nil
}

func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalid(name, s, numReason(err))
	}
	if n <= 0 {
		return 0, invalid(name, s, "must be greater than 0")
	}

	return n, nil
}

func parseScale(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalid(OperandScale, s, numReason(err))
	}
	if math.IsNaN(x) || x < 0 || x > 1 {
		return 0, invalid(OperandScale, s, "must be between 0 and 1")
	}

	return x, nil
}

func invalid(name, value, reason string) error {
	return usagef(fmt.Sprintf("invalid %s operand '%s': %s", name, value, reason))
}

func numReason(err error) string {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err.Error()
	}

	return err.Error()
}
