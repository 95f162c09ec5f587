package render

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"delta-robot.klederson.com/internal/config"
	"delta-robot.klederson.com/internal/scene"
)

// ExportFrames steps a over frames ticks starting at start seconds, interval
// seconds apart, and writes each frame to dir as frame-NNNN.svg. The trail
// accumulates across frames just as it does on screen.
func ExportFrames(dir string, a *scene.Animator, frames int, start, interval float64, opts Options) ([]string, error) {
	if frames < 1 {
		return nil, fmt.Errorf("render: frames must be at least 1, got %d", frames)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create %s: %w", dir, err)
	}

	p := a.Params()
	paths := make([]string, 0, frames)
	for i := 0; i < frames; i++ {
		sc := a.Step(start + float64(i)*interval)

		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.svg", i))
		if err := writeFrame(path, sc, p, opts); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	log.Printf("exported %d frames to %s", len(paths), dir)
	return paths, nil
}

func writeFrame(path string, sc scene.Scene, p config.Params, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := WriteSVG(f, sc, p, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}
	return nil
}
