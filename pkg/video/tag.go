package video

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path"

	"github.com/chenBenjamin97/ball-tracker/pkg/track"
	"github.com/chenBenjamin97/ball-tracker/pkg/utils"
	"github.com/cyclopcam/logs"
	"github.com/spf13/viper"
	"gocv.io/x/gocv"
)

//Tag reads a video from the 'source' directory, finds the ball in every frame, cleans the resulting track
//and writes a copy of the video with the ball trace drawn on it to the 'ready' directory. The cleaned
//track is exported to the 'tracks' directory.
//srcVideoName should include file's extension ('.mp4', etc.)
func Tag(log logs.Log, srcVideoName string) error {
	base := utils.BaseName(srcVideoName)
	srcVideoPath := path.Join(viper.GetString("directory.source"), srcVideoName)
	tmpVideoPath := path.Join(viper.GetString("directory.temp"), base+".avi")
	outputVideoPath := path.Join(viper.GetString("directory.ready"), base+"."+viper.GetString("video.prod_format"))
	trackPath := path.Join(viper.GetString("directory.tracks"), base+utils.TrackFileExt)

	cfg, err := utils.TrackConfig()
	if err != nil {
		return fmt.Errorf("Tag: Invalid tracking configuration, got '%v'", err)
	}

	raw, err := extractTrack(log, srcVideoPath)
	if err != nil {
		return err
	}

	res, err := track.Clean(raw, cfg)
	if err != nil {
		return fmt.Errorf("Tag: Could not clean track of '%s', got '%v'", srcVideoName, err)
	}
	log.Infof("Tag: '%s': removed %d outliers, filled %d frames over %d subtracks", srcVideoName, res.Removed, res.Filled, len(res.Subtracks))

	if err := SaveTrack(trackPath, newTrackFile(srcVideoName, cfg, res)); err != nil {
		return err
	}

	defer os.Remove(tmpVideoPath) //remove '.avi' temp file at the end of this function
	if err := WriteTrack(srcVideoPath, tmpVideoPath, res.Track, viper.GetInt("render.trace")); err != nil {
		return err
	}

	//Convert from 'avi' to the product format. example: ffmpeg -i game.avi game.mp4
	cmd := exec.Command("ffmpeg", "-y", "-i", tmpVideoPath, outputVideoPath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("Tag: Error from ffmpeg, got '%v'", err)
	}

	return nil
}

//extractTrack produces the raw track either with the external detector, when one is configured, or
//with the heatmap model
func extractTrack(log logs.Log, videoPath string) (track.Track, error) {
	if viper.GetString("detector.command") != "" {
		return RunDetector(log, videoPath)
	}

	model, err := LoadModel(viper.GetString("model.path"), viper.GetInt("model.width"), viper.GetInt("model.height"))
	if err != nil {
		return nil, err
	}
	defer model.Close()

	return InferTrack(log, videoPath, model, NewHoughExtractor())
}

//WriteTrack copies the video at srcVideoPath to dstVideoPath (XVID) with the trace of t drawn on every
//frame. Frame i of the video is drawn with entry i of t.
func WriteTrack(srcVideoPath, dstVideoPath string, t track.Track, trace int) error {
	cap, err := gocv.VideoCaptureFile(srcVideoPath)
	if err != nil {
		return fmt.Errorf("WriteTrack: Error, got '%v'", err)
	}
	defer cap.Close()

	videoWriter, err := gocv.VideoWriterFile(dstVideoPath, "XVID", cap.Get(gocv.VideoCaptureFPS), int(cap.Get(gocv.VideoCaptureFrameWidth)), int(cap.Get(gocv.VideoCaptureFrameHeight)), true)
	if err != nil {
		return fmt.Errorf("WriteTrack: Error, got '%v'", err)
	}
	defer videoWriter.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	for num := 0; cap.Read(&frame); num++ {
		if frame.Empty() {
			break
		}
		plotTrace(&frame, t, num, trace)
		if err := videoWriter.Write(frame); err != nil {
			return fmt.Errorf("WriteTrack: Could not write frame %d, got '%v'", num, err)
		}
	}

	return nil
}

//SaveTrack writes tf as JSON to trackPath
func SaveTrack(trackPath string, tf *TrackFile) error {
	data, err := json.Marshal(tf)
	if err != nil {
		return fmt.Errorf("SaveTrack: Error, got '%v'", err)
	}
	if err := os.WriteFile(trackPath, data, 0644); err != nil {
		return fmt.Errorf("SaveTrack: Could not write '%s', got '%v'", trackPath, err)
	}
	return nil
}

//LoadTrack reads a track exported by SaveTrack
func LoadTrack(trackPath string) (*TrackFile, error) {
	data, err := os.ReadFile(trackPath)
	if err != nil {
		return nil, fmt.Errorf("LoadTrack: Error, got '%v'", err)
	}
	tf := &TrackFile{}
	if err := json.Unmarshal(data, tf); err != nil {
		return nil, fmt.Errorf("LoadTrack: Could not parse '%s', got '%v'", trackPath, err)
	}
	return tf, nil
}
