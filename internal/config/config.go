package config

import "time"

const (
	// Design canvas, used when the host has not reported a size yet
	DesignWidth  = 800.0
	DesignHeight = 420.0

	// Parameter and viewport limits
	MaxLength      = 10 * DesignWidth  // link lengths, radii, amplitudes, offsets
	MaxExtent      = 100 * DesignWidth // viewport width and height
	MaxOmega       = 100.0             // trajectory angular speed (rad/s)
	MaxJointRadius = DesignHeight
	MinGridSpacing = 2.0
	MaxTrailLen    = 10000

	// Terminal display
	TargetFPS      = 30 // Target frames per second
	MinFPS         = 1
	MaxFPS         = 120
	TelemetryLen   = 120 // Elbow angle samples kept for the telemetry chart
	TelemetryRows  = 6   // Chart height in rows
	GlideFrequency = 4.0 // Viewport spring angular frequency
	GlideDamping   = 1.0 // Critically damped, no overshoot

	// Config reload
	ReloadDebounce = 100 * time.Millisecond

	// App
	AppName    = "DELTA-ROBOT"
	AppVersion = "1.0"
)
