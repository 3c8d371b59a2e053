package video

import (
	"github.com/chenBenjamin97/ball-tracker/pkg/track"
)

//ballDetection is one line of the external detector output. Negative coordinates mean no ball.
type ballDetection struct {
	X float64
	Y float64
}

//TrackFile is the exported result of tagging one video
type TrackFile struct {
	Video     string        `json:"video"`
	Config    track.Config  `json:"config"`
	Track     track.Track   `json:"track"`
	Subtracks []track.Range `json:"subtracks"`
	Removed   int           `json:"removed"`
	Filled    int           `json:"filled"`
}

func newTrackFile(video string, cfg track.Config, res *track.Result) *TrackFile {
	return &TrackFile{
		Video:     video,
		Config:    cfg,
		Track:     res.Track,
		Subtracks: res.Subtracks,
		Removed:   res.Removed,
		Filled:    res.Filled,
	}
}
