package track

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//diagonal returns an n frame track moving one pixel per frame on both axes, with the given frames null
func diagonal(n int, nulls ...int) Track {
	t := NewTrack(n)
	for i := range t {
		t[i] = pt(float64(i), float64(i))
	}
	for _, i := range nulls {
		t[i] = nil
	}
	return t
}

func span(from, to int) []int {
	s := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}

func TestRuns(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Runs(Track{}))
	assert.Equal(t,
		[]Run{{Null: true, Len: 2}, {Null: false, Len: 2}, {Null: true, Len: 1}, {Null: false, Len: 1}},
		Runs(Track{nil, nil, pt(1, 1), pt(1, 1), nil, pt(1, 1)}))

	tr := randomTrack(rand.New(rand.NewSource(3)), 150)
	total := 0
	for _, r := range Runs(tr) {
		assert.Positive(t, r.Len)
		total += r.Len
	}
	assert.Equal(t, len(tr), total)
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		track Track
		want  []Range
	}{
		{
			name:  "no gaps",
			track: diagonal(20),
			want:  []Range{{0, 20}},
		},
		{
			name:  "short gaps stay in one subtrack",
			track: diagonal(50, 10, 25, 26, 40),
			want:  []Range{{0, 50}},
		},
		{
			name:  "long gap splits the track",
			track: diagonal(30, span(10, 15)...),
			want:  []Range{{0, 10}, {14, 30}},
		},
		{
			name: "fast crossing splits the track",
			track: func() Track {
				t := NewTrack(25)
				for i := range t {
					switch {
					case i < 10:
						t[i] = pt(float64(i), 10)
					case i >= 12:
						t[i] = pt(float64(400+i), 10)
					}
				}
				return t
			}(),
			want: []Range{{0, 10}, {11, 25}},
		},
		{
			name:  "short subtrack before a long gap is dropped",
			track: diagonal(20, span(3, 9)...),
			want:  []Range{{8, 20}},
		},
		{
			name:  "leading and trailing gaps never split",
			track: diagonal(17, 0, 1, 12, 13, 14, 15, 16),
			want:  []Range{{0, 17}},
		},
		{
			name:  "too short overall",
			track: diagonal(5),
			want:  []Range{},
		},
		{
			name:  "only gaps",
			track: NewTrack(10),
			want:  []Range{{0, 10}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			before := tt.track.Clone()
			assert.Equal(t, tt.want, Split(tt.track, 4, 80, 5))
			assert.Equal(t, before, tt.track)
		})
	}
}

func TestSplitRangesDoNotOverlap(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 300; n++ {
		tr := randomTrack(rng, 2+rng.Intn(400))
		RemoveOutliers(tr, Distances(tr), 100)

		ranges := Split(tr, 4, 80, 5)
		for k, r := range ranges {
			require.GreaterOrEqual(t, r.Start, 0)
			require.LessOrEqual(t, r.End, len(tr))
			require.Greater(t, r.Len(), 5)
			if k > 0 {
				require.LessOrEqual(t, ranges[k-1].End, r.Start)
			}
		}
	}
}
