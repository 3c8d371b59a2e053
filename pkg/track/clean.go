package track

import (
	"fmt"
)

//Config holds the thresholds of the cleaning pipeline
type Config struct {
	MaxDist    float64 `json:"max_dist"`     //largest plausible jump between two frames, pixels
	MaxGap     int     `json:"max_gap"`      //gaps this long or longer are never interpolated
	MaxDistGap float64 `json:"max_dist_gap"` //largest plausible speed across a gap, pixels per frame
	MinTrack   int     `json:"min_track"`    //subtracks must be longer than this to be interpolated

	Interpolate bool `json:"interpolate"`
}

//DefaultConfig returns the thresholds the model was tuned with
func DefaultConfig() Config {
	return Config{
		MaxDist:     100,
		MaxGap:      4,
		MaxDistGap:  80,
		MinTrack:    5,
		Interpolate: true,
	}
}

func (c Config) Validate() error {
	if c.MaxDist <= 0 {
		return fmt.Errorf("max_dist must be positive, got %v: %w", c.MaxDist, ErrInvalidConfig)
	}
	if c.MaxGap < 1 {
		return fmt.Errorf("max_gap must be at least 1, got %v: %w", c.MaxGap, ErrInvalidConfig)
	}
	if c.MaxDistGap <= 0 {
		return fmt.Errorf("max_dist_gap must be positive, got %v: %w", c.MaxDistGap, ErrInvalidConfig)
	}
	if c.MinTrack < 0 {
		return fmt.Errorf("min_track must not be negative, got %v: %w", c.MinTrack, ErrInvalidConfig)
	}
	return nil
}

//Result is the output of Clean
type Result struct {
	Track     Track          `json:"track"`
	Distances DistanceSeries `json:"-"`
	Subtracks []Range        `json:"subtracks"`
	Removed   int            `json:"removed"` //points dropped as outliers
	Filled    int            `json:"filled"`  //points added by interpolation
}

//Fill interpolates the subtrack r of t in place and returns the number of points it added. Every frame
//of r ends up holding a point: null frames before the first or after the last detection of r (the
//sentinels, or the frame a subtrack shares with the gap before it) take the nearest detected point.
//A range without any detection is left as is.
func Fill(t Track, r Range) (int, error) {
	if r.Start < 0 || r.End > len(t) || r.Start > r.End {
		return 0, fmt.Errorf("Fill: range [%d, %d) of a %d frame track: %w", r.Start, r.End, len(t), ErrIndexOutOfRange)
	}
	return fill(t[r.Start:r.End]), nil
}

//Clean runs the whole reconstruction on a copy of raw: outlier removal, subtrack split and gap
//interpolation. raw is not modified.
func Clean(raw Track, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	t := raw.Clone()
	res := &Result{Track: t}

	//one distance series from the raw track, not refreshed after filtering
	res.Distances = Distances(raw)
	res.Removed = RemoveOutliers(t, res.Distances, cfg.MaxDist)

	res.Subtracks = Split(t, cfg.MaxGap, cfg.MaxDistGap, cfg.MinTrack)
	if !cfg.Interpolate {
		return res, nil
	}

	for _, r := range res.Subtracks {
		n, err := Fill(t, r)
		if err != nil {
			return nil, err
		}
		res.Filled += n
	}

	return res, nil
}
