package video

import (
	"image"

	"github.com/chenBenjamin97/ball-tracker/pkg/track"
	"github.com/chenBenjamin97/ball-tracker/pkg/utils"
	"gocv.io/x/gocv"
)

//plotTrace draws the fading trail of the ball on frame num: the newest dot is the thickest, each older
//one is one pixel thinner
func plotTrace(frame *gocv.Mat, t track.Track, num, length int) {
	for _, tp := range track.TraceAt(t, num, length) {
		thickness := utils.TraceMaxThickness - tp.Age
		if thickness < 1 {
			thickness = 1
		}
		center := image.Pt(int(tp.X), int(tp.Y))
		gocv.Circle(frame, center, 0, utils.TraceColor, thickness)
	}
}
