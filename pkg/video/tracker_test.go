package video

import (
	"strings"
	"testing"

	"github.com/chenBenjamin97/ball-tracker/pkg/track"
	"github.com/cyclopcam/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDetections(t *testing.T) {
	log := logs.NewTestingLog(t)

	t.Run("one entry per frame", func(t *testing.T) {
		out := strings.Join([]string{
			"loading model",
			"Frame #: 0",
			`{"X":10,"Y":10}`,
			"Frame #: 1",
			"Frame #: 2",
			`{"X":12.5,"Y":11}`,
			"FPS: 31.2",
			"Frame #: 3",
			`{"X":-1,"Y":-1}`,
			"Frame #: 4",
			`{"X":15,"Y":13}`,
			"EOF",
			"Frame #: 5",
		}, "\n")

		tr, err := ReadDetections(log, strings.NewReader(out))

		require.NoError(t, err)
		assert.Equal(t, track.Track{nil, nil, {X: 12.5, Y: 11}, nil, {X: 15, Y: 13}}, tr)
	})

	t.Run("missing frame numbers count up", func(t *testing.T) {
		out := "Frame #:\nFrame #:\nFrame #: x\n{\"X\":3,\"Y\":4}\n"

		tr, err := ReadDetections(log, strings.NewReader(out))

		require.NoError(t, err)
		require.Len(t, tr, 3)
		assert.Equal(t, &track.Point{X: 3, Y: 4}, tr[2])
	})

	t.Run("malformed detection is skipped", func(t *testing.T) {
		out := "Frame #: 0\nFrame #: 1\nFrame #: 2\n{\"X\":oops}\nFrame #: 3\n{\"X\":1,\"Y\":2}\n"

		tr, err := ReadDetections(log, strings.NewReader(out))

		require.NoError(t, err)
		assert.Nil(t, tr[2])
		assert.Equal(t, &track.Point{X: 1, Y: 2}, tr[3])
	})

	t.Run("no frames", func(t *testing.T) {
		_, err := ReadDetections(log, strings.NewReader("EOF\n"))
		assert.Error(t, err)
	})
}
