package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	t.Run("linear between the boundaries", func(t *testing.T) {
		t.Parallel()
		sub := Track{pt(0, 0), nil, nil, pt(10, 10)}

		require.NoError(t, Interpolate(sub))

		assert.InDelta(t, 3.333, sub[1].X, 1e-3)
		assert.InDelta(t, 3.333, sub[1].Y, 1e-3)
		assert.InDelta(t, 6.667, sub[2].X, 1e-3)
		assert.InDelta(t, 6.667, sub[2].Y, 1e-3)
		assert.Equal(t, pt(0, 0), sub[0])
		assert.Equal(t, pt(10, 10), sub[3])
	})

	t.Run("axes are independent", func(t *testing.T) {
		t.Parallel()
		sub := Track{pt(0, 100), nil, pt(4, 100), nil, nil, pt(10, 40)}

		require.NoError(t, Interpolate(sub))

		assert.InDelta(t, 2, sub[1].X, 1e-9)
		assert.InDelta(t, 100, sub[1].Y, 1e-9)
		assert.InDelta(t, 6, sub[3].X, 1e-9)
		assert.InDelta(t, 80, sub[3].Y, 1e-9)
		assert.InDelta(t, 8, sub[4].X, 1e-9)
		assert.InDelta(t, 60, sub[4].Y, 1e-9)
	})

	t.Run("null first entry violates the contract", func(t *testing.T) {
		t.Parallel()
		sub := Track{nil, pt(5, 5), pt(6, 6)}
		assert.ErrorIs(t, Interpolate(sub), ErrBoundary)
		assert.Nil(t, sub[0])
	})

	t.Run("null last entry violates the contract", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, Interpolate(Track{pt(5, 5), pt(6, 6), nil}), ErrBoundary)
	})

	t.Run("writes into the parent track", func(t *testing.T) {
		t.Parallel()
		tr := Track{nil, nil, pt(2, 2), nil, pt(4, 4), nil}

		require.NoError(t, Interpolate(tr[2:5]))

		assert.Equal(t, pt(3, 3), tr[3])
		assert.Nil(t, tr[5])
		assert.Nil(t, tr[1])
	})

	t.Run("nothing to fill", func(t *testing.T) {
		t.Parallel()
		sub := Track{pt(1, 1), pt(2, 2)}
		require.NoError(t, Interpolate(sub))
		assert.Equal(t, Track{pt(1, 1), pt(2, 2)}, sub)
		assert.NoError(t, Interpolate(Track{}))
	})
}

func TestFill(t *testing.T) {
	t.Parallel()

	t.Run("edges clamp to the nearest point", func(t *testing.T) {
		t.Parallel()
		tr := Track{nil, pt(0, 0), nil, pt(4, 4), nil}

		n, err := Fill(tr, Range{0, 5})

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, pt(0, 0), tr[0])
		assert.Equal(t, pt(2, 2), tr[2])
		assert.Equal(t, pt(4, 4), tr[4])
	})

	t.Run("frames outside the range are untouched", func(t *testing.T) {
		t.Parallel()
		tr := Track{nil, nil, pt(2, 2), nil, pt(4, 4), nil}

		n, err := Fill(tr, Range{1, 5})

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Nil(t, tr[0])
		assert.Equal(t, pt(2, 2), tr[1])
		assert.Equal(t, pt(3, 3), tr[3])
		assert.Nil(t, tr[5])
	})

	t.Run("single point", func(t *testing.T) {
		t.Parallel()
		tr := Track{nil, pt(7, 8), nil}

		n, err := Fill(tr, Range{0, 3})

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, pt(7, 8), tr[0])
		assert.Equal(t, pt(7, 8), tr[2])
	})

	t.Run("range without points", func(t *testing.T) {
		t.Parallel()
		tr := NewTrack(4)
		n, err := Fill(tr, Range{0, 4})
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, NewTrack(4), tr)
	})

	t.Run("range out of bounds", func(t *testing.T) {
		t.Parallel()
		tr := NewTrack(4)
		for _, r := range []Range{{-1, 2}, {0, 5}, {3, 2}} {
			_, err := Fill(tr, r)
			assert.ErrorIs(t, err, ErrIndexOutOfRange, "range %v", r)
		}
	})
}
