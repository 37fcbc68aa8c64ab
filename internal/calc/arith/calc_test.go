package arith_test

import (
	"testing"

	arith "Geoslope/internal/calc/arith"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	res := arith.Calculate(arith.Input{A: 7, B: 2})
	require.Equal(t, 9.0, res.Sum)
	require.Equal(t, 5.0, res.Difference)
	require.Equal(t, 14.0, res.Product)
	require.Equal(t, 3.5, res.Quotient)
	require.False(t, res.DivideByZero)
}

func TestDivideByZero(t *testing.T) {
	res := arith.Calculate(arith.Input{A: 7, B: 0})
	require.True(t, res.DivideByZero)
	require.Zero(t, res.Quotient)
	require.Equal(t, 7.0, res.Sum)
}
