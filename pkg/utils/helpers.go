package utils

import (
	"fmt"
	"os"
	"path"
	"strings"
)

//InSlice returns true if given string appears in given slice
func InSlice(lookingFor string, slice []string) bool {
	for _, s := range slice {
		if s == lookingFor {
			return true
		}
	}

	return false
}

//ListDir returns a list of files/ directories in given path
func ListDir(path string) ([]string, error) {
	names := make([]string, 0)
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("ListDir: Error, got '%v'", err)
	}
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names, nil
}

//BaseName strips directory and extension from a video file name ("dir/game.mp4" -> "game")
func BaseName(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}

//EnsureDirs creates every missing directory in dirs
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0766); err != nil {
			return fmt.Errorf("EnsureDirs: Could not create '%s', got '%v'", dir, err)
		}
	}
	return nil
}
