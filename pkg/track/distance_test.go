package track

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistances(t *testing.T) {
	t.Parallel()

	t.Run("sentinel entries are never defined", func(t *testing.T) {
		t.Parallel()
		d := Distances(Track{pt(0, 0), pt(3, 4), pt(6, 8)})
		require.Len(t, d, 3)
		assert.False(t, d[0].Valid)
		assert.False(t, d[1].Valid)
		assert.True(t, d[2].Valid)
		assert.InDelta(t, 5.0, d[2].Value, 1e-9)
	})

	t.Run("null endpoint is undefined", func(t *testing.T) {
		t.Parallel()
		d := Distances(Track{nil, nil, pt(1, 1), nil, pt(2, 2), pt(2, 3)})
		assert.False(t, d[2].Valid)
		assert.False(t, d[3].Valid)
		assert.False(t, d[4].Valid)
		assert.Equal(t, Distance{Value: 1, Valid: true}, d[5])
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		tr := randomTrack(rand.New(rand.NewSource(7)), 200)
		assert.Equal(t, Distances(tr), Distances(tr))
	})

	t.Run("exceeds ignores undefined entries", func(t *testing.T) {
		t.Parallel()
		d := DistanceSeries{{}, {Value: 500}, {Value: 500, Valid: true}, {Value: 50, Valid: true}}
		assert.False(t, d.Exceeds(0, 100))
		assert.False(t, d.Exceeds(1, 100))
		assert.True(t, d.Exceeds(2, 100))
		assert.False(t, d.Exceeds(3, 100))
	})
}
