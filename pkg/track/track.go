package track

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

//WindowSize is the number of consecutive frames the model needs for one prediction
const WindowSize = 3

//Sentinels is the number of leading null entries every track starts with, the frames consumed before
//the first full window is available
const Sentinels = WindowSize - 1

var (
	//ErrInvalidTrackLength is returned for tracks too short to clean
	ErrInvalidTrackLength = errors.New("invalid track length")
	//ErrIndexOutOfRange is returned for subtrack ranges outside the track
	ErrIndexOutOfRange = errors.New("index out of range")
	//ErrInvalidPoint is returned for non finite or negative coordinates
	ErrInvalidPoint = errors.New("invalid point")
	//ErrBoundary is returned by Interpolate when the subtrack starts or ends without a point
	ErrBoundary = errors.New("subtrack boundary is null")
	//ErrInvalidConfig is returned for thresholds outside their valid range
	ErrInvalidConfig = errors.New("invalid config")
)

//Point is a ball position in output frame pixel coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

//Dist returns the euclidean distance between p and q
func (p Point) Dist(q Point) float64 {
	return floats.Distance([]float64{p.X, p.Y}, []float64{q.X, q.Y}, 2)
}

//Track holds one entry per video frame, nil where the ball was not detected
type Track []*Point

//NewTrack returns a track of n frames with no detections
func NewTrack(n int) Track {
	return make(Track, n)
}

//Seeded returns an empty track holding only the leading sentinels, ready for per-frame appends
func Seeded() Track {
	return make(Track, Sentinels, 64)
}

//Clone returns a deep copy, points included
func (t Track) Clone() Track {
	c := make(Track, len(t))
	for i, p := range t {
		if p != nil {
			q := *p
			c[i] = &q
		}
	}
	return c
}

//Detected returns how many frames hold a point
func (t Track) Detected() int {
	n := 0
	for _, p := range t {
		if p != nil {
			n++
		}
	}
	return n
}

//Validate rejects tracks the pipeline can not handle: fewer than two frames, or points with
//non-finite or negative coordinates
func (t Track) Validate() error {
	if len(t) < 2 {
		return fmt.Errorf("track has %d frames, need at least 2: %w", len(t), ErrInvalidTrackLength)
	}
	for i, p := range t {
		if p == nil {
			continue
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("frame %d: non-finite coordinates (%v, %v): %w", i, p.X, p.Y, ErrInvalidPoint)
		}
		if p.X < 0 || p.Y < 0 {
			return fmt.Errorf("frame %d: negative coordinates (%v, %v): %w", i, p.X, p.Y, ErrInvalidPoint)
		}
	}
	return nil
}
