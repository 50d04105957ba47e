package takuzu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChooseBranchPicksMostFilledLine(t *testing.T) {
	b, _ := Allocate(4)
	// Row 0 has 2 cells defined, row 1 has 3: row 1 should be preferred.
	require.NoError(t, b.Set(0, 0, One))
	require.NoError(t, b.Set(0, 1, Zero))
	require.NoError(t, b.Set(1, 0, One))
	require.NoError(t, b.Set(1, 1, Zero))
	require.NoError(t, b.Set(1, 2, One))

	choice, err := ChooseBranch(b)
	require.NoError(t, err)
	require.Equal(t, 1, choice.Row)
}

func TestChooseBranchTiesPreferRowsThenLowerIndex(t *testing.T) {
	b, _ := Allocate(4)
	// Every line is equally (un)filled (all empty): row 0 should win.
	choice, err := ChooseBranch(b)
	require.NoError(t, err)
	require.Equal(t, 0, choice.Row)
}

func TestChooseBranchValueParity(t *testing.T) {
	b, _ := Allocate(4)
	choice, err := ChooseBranch(b)
	require.NoError(t, err)
	require.Equal(t, Value(choice.Col%2), choice.Value)
}

func TestChooseBranchErrorsOnFullBoard(t *testing.T) {
	b, _ := Allocate(4)
	rows := []string{"0110", "1001", "0101", "1010"}
	for i, r := range rows {
		setRow(t, b, i, r)
	}
	_, err := ChooseBranch(b)
	require.ErrorIs(t, err, ErrBoardFull)
}

func TestMostIsolatedEmptyBitPrefersLowestSurvivor(t *testing.T) {
	b, _ := Allocate(8)
	// Fill columns 2..7, leaving only columns 0 and 1 empty; erosion keeps
	// the lower bit of that run.
	for col := 2; col < 8; col++ {
		require.NoError(t, b.Set(0, col, Value(col%2)))
	}
	// column 0 and 1 stay empty: a run of two, not isolated.
	pos := mostIsolatedEmptyBit(b.rows[0], 8)
	require.True(t, pos == 0 || pos == 1)
}
