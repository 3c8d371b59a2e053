package track

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

//Interpolate fills every null entry of sub by linear interpolation over the position within sub, x and
//y independently. sub is usually a slice of a larger track, the new points land in that track.
//The first and last entries must hold points, a violation is reported as ErrBoundary. Use Fill for
//subtrack ranges, which may start or end on a null frame.
func Interpolate(sub Track) error {
	if len(sub) == 0 {
		return nil
	}
	if sub[0] == nil || sub[len(sub)-1] == nil {
		return fmt.Errorf("Interpolate: subtrack of %d frames: %w", len(sub), ErrBoundary)
	}
	fill(sub)
	return nil
}

//fill interpolates the null entries of sub and returns how many it filled. Entries before the first or
//after the last point take the value of that point. A subtrack without points is left as is.
func fill(sub Track) int {
	pos := make([]float64, 0, len(sub))
	xs := make([]float64, 0, len(sub))
	ys := make([]float64, 0, len(sub))
	for i, p := range sub {
		if p != nil {
			pos = append(pos, float64(i))
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	if len(pos) == 0 || len(pos) == len(sub) {
		return 0
	}

	predictX, predictY := axisPredictor(pos, xs), axisPredictor(pos, ys)

	filled := 0
	for i, p := range sub {
		if p != nil {
			continue
		}
		at := float64(i)
		sub[i] = &Point{X: predictX(at), Y: predictY(at)}
		filled++
	}
	return filled
}

//axisPredictor returns the piecewise linear function through (pos, vals), constant outside pos
func axisPredictor(pos, vals []float64) func(float64) float64 {
	if len(pos) == 1 {
		v := vals[0]
		return func(float64) float64 { return v }
	}

	var pl interp.PiecewiseLinear
	// pos is strictly increasing and len(pos) >= 2, so Fit can not fail
	_ = pl.Fit(pos, vals)
	return pl.Predict
}
