package video

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/chenBenjamin97/ball-tracker/pkg/track"
	"github.com/cyclopcam/logs"
	"github.com/spf13/viper"
)

//RunDetector executes the external ball detector configured at 'detector.command' on the given video and
//collects its per frame output into a raw track. The detector prints a "Frame #: n" line for each frame,
//followed by a {"X":..,"Y":..} line when it found the ball, and "EOF" when done.
func RunDetector(log logs.Log, videoPath string) (track.Track, error) {
	fields := strings.Fields(viper.GetString("detector.command"))
	if len(fields) == 0 {
		return nil, errors.New("RunDetector: 'detector.command' is not set")
	}
	cmd := exec.Command(fields[0], append(fields[1:], "--video", videoPath)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("RunDetector: Error, got '%v'", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("RunDetector: Error, got '%v'", err)
	}

	t, readErr := ReadDetections(log, stdout)
	//drain whatever is left so the process can exit
	io.Copy(io.Discard, stdout)

	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("RunDetector: Error waiting detector's process, got '%v'", err)
	}
	if readErr != nil {
		return nil, readErr
	}

	return t, nil
}

//ReadDetections parses detector output into a track indexed by frame number. Detections on the leading
//sentinel frames are ignored, as are negative coordinates (no ball).
func ReadDetections(log logs.Log, r io.Reader) (track.Track, error) {
	t := track.Seeded()
	current := -1

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "Frame #:") {
			num, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Frame #:")))
			if err != nil || num <= current {
				num = current + 1
			}
			current = num
			for len(t) <= current {
				t = append(t, nil)
			}
			continue
		}

		if line == "EOF" {
			break
		}

		if strings.Contains(line, "FPS: ") { //this is a log print, skip it
			continue
		}

		if strings.HasPrefix(line, "{\"X\":") {
			if current < 0 {
				log.Warnf("ReadDetections: Detection before the first frame marker, skipping")
				continue
			}
			d := ballDetection{}
			if err := json.Unmarshal([]byte(line), &d); err != nil {
				log.Warnf("ReadDetections: Frame %d, got '%v'", current, err)
				continue
			}
			if current < track.Sentinels || d.X < 0 || d.Y < 0 {
				continue
			}
			t[current] = &track.Point{X: d.X, Y: d.Y}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ReadDetections: Error, got '%v'", err)
	}
	if current < 0 {
		return nil, errors.New("ReadDetections: Detector reported no frames")
	}

	return t, nil
}
