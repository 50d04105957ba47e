package takuzu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocateRejectsBadSize(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 6, 7, 9, 33, 65, 128} {
		_, err := Allocate(n)
		require.Errorf(t, err, "size %d should be rejected", n)
	}
	for _, n := range []int{4, 8, 16, 32, 64} {
		b, err := Allocate(n)
		require.NoError(t, err)
		require.Equal(t, n, b.Size())
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	b, err := Allocate(4)
	require.NoError(t, err)

	v, err := b.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, Empty, v)

	require.NoError(t, b.Set(0, 0, One))
	v, err = b.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, One, v)

	// Idempotent re-set to the same value.
	require.NoError(t, b.Set(0, 0, One))
	v, _ = b.Get(0, 0)
	require.Equal(t, One, v)

	require.NoError(t, b.Set(0, 0, Empty))
	v, _ = b.Get(0, 0)
	require.Equal(t, Empty, v)
}

func TestSetUpdatesDualRowColumnIndex(t *testing.T) {
	b, err := Allocate(8)
	require.NoError(t, err)
	require.NoError(t, b.Set(3, 5, One))

	rowBit := b.rows[3].ones & (uint64(1) << 5)
	colBit := b.cols[5].ones & (uint64(1) << 3)
	require.NotZero(t, rowBit)
	require.NotZero(t, colBit)

	require.NoError(t, b.Set(3, 5, Zero))
	require.Zero(t, b.rows[3].ones&(uint64(1)<<5))
	require.NotZero(t, b.rows[3].zeros&(uint64(1)<<5))
	require.NotZero(t, b.cols[5].zeros&(uint64(1)<<3))
}

func TestGetSetRejectOutOfRange(t *testing.T) {
	b, err := Allocate(4)
	require.NoError(t, err)

	_, err = b.Get(-1, 0)
	require.Error(t, err)
	_, err = b.Get(0, 4)
	require.Error(t, err)
	require.Error(t, b.Set(4, 0, Zero))
	require.Error(t, b.Set(0, 0, Value(7)))
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := Allocate(4)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, One))

	c := b.Clone()
	require.NoError(t, c.Set(0, 0, Zero))

	v, _ := b.Get(0, 0)
	require.Equal(t, One, v, "mutating the clone must not affect the original")
}

func TestCopy(t *testing.T) {
	src, _ := Allocate(4)
	dst, _ := Allocate(4)
	_ = src.Set(1, 1, One)

	require.NoError(t, Copy(src, dst))
	v, _ := dst.Get(1, 1)
	require.Equal(t, One, v)

	other, _ := Allocate(8)
	require.Error(t, Copy(src, other))
}

func TestPrintRoundTrip(t *testing.T) {
	b, err := Allocate(4)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, One))
	require.NoError(t, b.Set(0, 1, One))

	var sb strings.Builder
	require.NoError(t, b.Print(&sb))

	want := "1 1 _ _\n_ _ _ _\n_ _ _ _\n_ _ _ _\n"
	require.Equal(t, want, sb.String())

	back, err := Allocate(4)
	require.NoError(t, err)
	fillFromText(t, back, sb.String())
	require.Equal(t, b.rows, back.rows)
	require.Equal(t, b.cols, back.cols)
}
