package video

import (
	"errors"

	"github.com/chenBenjamin97/ball-tracker/pkg/track"
	"github.com/spf13/viper"
	"gocv.io/x/gocv"
)

//PointExtractor turns the heatmap the model predicted for one frame into a ball position in output
//frame coordinates, or nil when there is no clear ball
type PointExtractor interface {
	Extract(heatmap gocv.Mat, outWidth, outHeight int) (*track.Point, error)
}

//HoughExtractor thresholds the heatmap and looks for a small circle in it
type HoughExtractor struct {
	Threshold float32
	MinRadius int
	MaxRadius int
	Param1    float64 //canny upper threshold
	Param2    float64 //accumulator threshold
}

//NewHoughExtractor builds an extractor from the 'extractor' config section
func NewHoughExtractor() *HoughExtractor {
	return &HoughExtractor{
		Threshold: float32(viper.GetFloat64("extractor.threshold")),
		MinRadius: viper.GetInt("extractor.min_radius"),
		MaxRadius: viper.GetInt("extractor.max_radius"),
		Param1:    viper.GetFloat64("extractor.param1"),
		Param2:    viper.GetFloat64("extractor.param2"),
	}
}

//Extract returns the center of the first circle found in heatmap, scaled from heatmap size to
//outWidth x outHeight. Float heatmaps are expected in [0, 1].
func (e *HoughExtractor) Extract(heatmap gocv.Mat, outWidth, outHeight int) (*track.Point, error) {
	if heatmap.Empty() {
		return nil, errors.New("Extract: Empty heatmap")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if heatmap.Type() == gocv.MatTypeCV8U {
		heatmap.CopyTo(&gray)
	} else {
		heatmap.ConvertToWithParams(&gray, gocv.MatTypeCV8U, 255, 0)
	}

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(gray, &binary, e.Threshold, 255, gocv.ThresholdBinary)

	circles := gocv.NewMat()
	defer circles.Close()
	gocv.HoughCirclesWithParams(binary, &circles, gocv.HoughGradient, 1, 1, e.Param1, e.Param2, e.MinRadius, e.MaxRadius)

	if circles.Empty() || circles.Cols() == 0 {
		return nil, nil
	}

	x := float64(circles.GetFloatAt(0, 0))
	y := float64(circles.GetFloatAt(0, 1))
	return &track.Point{
		X: x * float64(outWidth) / float64(heatmap.Cols()),
		Y: y * float64(outHeight) / float64(heatmap.Rows()),
	}, nil
}
