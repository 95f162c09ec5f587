package app

import (
	"time"

	"delta-robot.klederson.com/internal/config"
)

// TickMsg triggers a frame update for animation.
type TickMsg time.Time

// ConfigReloadedMsg carries parameters re-read from the config file.
type ConfigReloadedMsg struct {
	Params config.Params
	Path   string
}

// ConfigErrorMsg reports a failed reload or a watcher error.
type ConfigErrorMsg struct {
	Err error
}
