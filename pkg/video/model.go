package video

import (
	"errors"
	"fmt"
	"image"

	"github.com/chenBenjamin97/ball-tracker/pkg/track"
	"github.com/chenBenjamin97/ball-tracker/pkg/utils"
	"github.com/cyclopcam/logs"
	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"
)

//Predictor produces a ball heatmap from a window of consecutive frames, newest first
type Predictor interface {
	Predict(frames []gocv.Mat) (gocv.Mat, error)
}

//Model is a heatmap network loaded with the OpenCV DNN module. Its input is the current, previous
//and pre-previous frame stacked channel first (9 x height x width, scaled to [0, 1]); its output is
//either a single channel heatmap or per pixel scores over 256 intensity classes.
type Model struct {
	net    gocv.Net
	width  int
	height int
}

//LoadModel reads an ONNX/TF/Caffe model file, the format is picked from the extension
func LoadModel(modelPath string, width, height int) (*Model, error) {
	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("LoadModel: Could not load model '%s'", modelPath)
	}
	return &Model{net: net, width: width, height: height}, nil
}

func (m *Model) Close() error {
	return m.net.Close()
}

//Predict returns the heatmap for frames[0], the caller owns (and closes) it
func (m *Model) Predict(frames []gocv.Mat) (gocv.Mat, error) {
	if len(frames) != track.WindowSize {
		return gocv.NewMat(), fmt.Errorf("Predict: Need %d frames, got %d", track.WindowSize, len(frames))
	}

	//one 3 channel image per frame, the N axis laid out back to back is the channel first stacking
	blob := gocv.NewMat()
	defer blob.Close()
	gocv.BlobFromImages(frames, &blob, 1.0/255, image.Pt(m.width, m.height), gocv.NewScalar(0, 0, 0, 0), false, false, gocv.MatTypeCV32F)

	input, err := gocv.NewMatWithSizesFromBytes([]int{1, 3 * track.WindowSize, m.height, m.width}, gocv.MatTypeCV32F, blob.ToBytes())
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("Predict: Could not build input, got '%v'", err)
	}
	defer input.Close()

	m.net.SetInput(input, "")
	prob := m.net.Forward("")
	defer prob.Close()

	heatmap, err := heatmapFromOutput(prob, m.height, m.width)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("Predict: %v", err)
	}
	return heatmap, nil
}

//heatmapFromOutput reads the network output as a height x width heatmap. A single channel output is
//used as it is. Class score outputs, laid out [1, height*width, classes] or [1, classes, height, width],
//become an 8 bit map holding the most likely class of every pixel.
func heatmapFromOutput(out gocv.Mat, height, width int) (gocv.Mat, error) {
	s := out.Size()
	n := len(s)
	switch {
	case n >= 2 && s[n-2] == height && s[n-1] == width && (n < 3 || s[n-3] == 1):
		heatmap, err := out.FromPtr(height, width, gocv.MatTypeCV32F, 0, 0)
		if err != nil {
			return gocv.NewMat(), fmt.Errorf("could not read heatmap, got '%v'", err)
		}
		defer heatmap.Close()
		return heatmap.Clone(), nil
	case n >= 2 && s[n-2] == height*width && s[n-1] > 1:
		return classMap(out, height, width, s[n-1], false)
	case n >= 3 && s[n-2] == height && s[n-1] == width && s[n-3] > 1:
		return classMap(out, height, width, s[n-3], true)
	}
	return gocv.NewMat(), fmt.Errorf("unexpected output shape %v for a %dx%d heatmap", s, width, height)
}

func classMap(out gocv.Mat, height, width, classes int, channelFirst bool) (gocv.Mat, error) {
	scores, err := out.DataPtrFloat32()
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("could not read class scores, got '%v'", err)
	}
	if len(scores) < height*width*classes {
		return gocv.NewMat(), fmt.Errorf("got %d class scores, need %d", len(scores), height*width*classes)
	}

	m, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8U, argmaxClasses(scores, height*width, classes, channelFirst))
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("could not build heatmap, got '%v'", err)
	}
	defer m.Close()
	return m.Clone(), nil
}

//argmaxClasses returns the index of the highest score of every pixel, capped at 255
func argmaxClasses(scores []float32, pixels, classes int, channelFirst bool) []byte {
	labels := make([]byte, pixels)
	row := make([]float64, classes)
	for p := range labels {
		for c := range row {
			if channelFirst {
				row[c] = float64(scores[c*pixels+p])
			} else {
				row[c] = float64(scores[p*classes+c])
			}
		}
		idx := floats.MaxIdx(row)
		if idx > 255 {
			idx = 255
		}
		labels[p] = byte(idx)
	}
	return labels
}

//InferTrack runs the model over every frame of the video at videoPath and returns the raw ball track,
//one entry per frame. The first frames without a full window stay null.
func InferTrack(log logs.Log, videoPath string, model Predictor, extractor PointExtractor) (track.Track, error) {
	cap, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return nil, fmt.Errorf("InferTrack: Could not open '%s', got '%v'", videoPath, err)
	}
	defer cap.Close()

	window := utils.NewWindow[gocv.Mat](track.WindowSize)
	defer func() {
		for _, m := range window.Drain() {
			m.Close()
		}
	}()

	frame := gocv.NewMat()
	defer frame.Close()

	t := track.Seeded()
	frames, outWidth, outHeight := 0, 0, 0
	for cap.Read(&frame) {
		if frame.Empty() {
			break
		}
		if frames == 0 {
			outWidth, outHeight = frame.Cols(), frame.Rows()
		}
		frames++

		if oldest, evicted := window.Push(frame.Clone()); evicted {
			oldest.Close()
		}
		if !window.Full() {
			continue
		}

		heatmap, err := model.Predict(window.Items())
		if err != nil {
			heatmap.Close()
			return nil, fmt.Errorf("InferTrack: Frame %d, got '%v'", frames-1, err)
		}

		p, err := extractor.Extract(heatmap, outWidth, outHeight)
		heatmap.Close()
		if err != nil {
			log.Warnf("InferTrack: Frame %d of '%s', got '%v'. Skipping.", frames-1, videoPath, err)
			p = nil
		}
		t = append(t, p)
	}

	if frames < track.WindowSize {
		return nil, errors.New("InferTrack: Video is shorter than the model window")
	}

	log.Infof("InferTrack: '%s': %d frames, ball found in %d", videoPath, frames, t.Detected())
	return t, nil
}
