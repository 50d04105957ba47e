package takuzu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSeededIsConsistentAndReducible(t *testing.T) {
	for _, size := range []int{4, 8} {
		b, err := GenerateSeeded(size, false, 1)
		require.NoError(t, err)
		require.True(t, b.IsConsistent())

		full, err := Solve(b.Clone(), nil, ModeFirst, &Counters{})
		require.NoError(t, err)
		require.NotNil(t, full)
		require.True(t, full.IsValid())
	}
}

// TestGenerateUniqueRoundTrip reproduces spec scenario 6 for sizes 4 and 8:
// generate(size, unique=true) returns a board whose unique completion is a
// valid Takuzu board.
func TestGenerateUniqueRoundTrip(t *testing.T) {
	for _, size := range []int{4, 8} {
		b, err := GenerateSeeded(size, true, 42)
		require.NoError(t, err)
		require.True(t, b.IsConsistent())

		counters := &Counters{}
		_, err = Solve(b.Clone(), nil, ModeAll, counters)
		require.NoError(t, err)
		require.Equal(t, 1, counters.Solutions, "size %d", size)

		sol, err := Solve(b.Clone(), nil, ModeFirst, &Counters{})
		require.NoError(t, err)
		require.NotNil(t, sol)
		require.True(t, sol.IsValid(), "size %d", size)
	}
}

func TestGenerateRejectsBadSize(t *testing.T) {
	_, err := Generate(5, false)
	require.Error(t, err)
}

func TestFillCornersProducesLegal2x2Blocks(t *testing.T) {
	b, _ := Allocate(4)
	fillCorners(globalRand, b)
	require.True(t, b.IsFull())
	// Each 2x2 corner block alternates along both axes. The four blocks
	// together may still repeat a row or a column, which is why
	// generateOuterRing re-checks consistency and retries.
	for _, r0 := range []int{0, 2} {
		for _, c0 := range []int{0, 2} {
			tl, _ := b.Get(r0, c0)
			tr, _ := b.Get(r0, c0+1)
			bl, _ := b.Get(r0+1, c0)
			br, _ := b.Get(r0+1, c0+1)
			require.NotEqual(t, tl, tr, "corner (%d,%d)", r0, c0)
			require.NotEqual(t, tl, bl, "corner (%d,%d)", r0, c0)
			require.Equal(t, tl, br, "corner (%d,%d)", r0, c0)
		}
	}
}
