package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// TrajectoryParams drives the end-effector path.
type TrajectoryParams struct {
	AmpX    float64 `yaml:"amp_x"`
	AmpY    float64 `yaml:"amp_y"`
	OmegaX  float64 `yaml:"omega_x"`
	OmegaY  float64 `yaml:"omega_y"`
	Phase   float64 `yaml:"phase"`
	YOffset float64 `yaml:"y_offset"`
}

// JointParams sizes the drawn parts of the robot.
type JointParams struct {
	ArmWidth    float64 `yaml:"arm_width"`
	BaseJointR  float64 `yaml:"base_joint_r"`
	ElbowJointR float64 `yaml:"elbow_joint_r"`
	EffectorR   float64 `yaml:"effector_r"`
}

// GridParams controls the scrolling floor grid.
type GridParams struct {
	Spacing     float64 `yaml:"spacing"`
	Speed       float64 `yaml:"speed"`        // units per second
	FloorOffset float64 `yaml:"floor_offset"` // below the robot center
}

// Palette holds hex colors and their opacities.
type Palette struct {
	Background  string  `yaml:"background"`
	Base        string  `yaml:"base"`
	BaseOpacity float64 `yaml:"base_opacity"`
	Upper       string  `yaml:"upper"`
	Lower       string  `yaml:"lower"`
	LinkOpacity float64 `yaml:"link_opacity"`
	Shadow      string  `yaml:"shadow"`
	Joint       string  `yaml:"joint"`
	JointHub    string  `yaml:"joint_hub"`
	Effector    string  `yaml:"effector"`
	Grid        string  `yaml:"grid"`
	GridOpacity float64 `yaml:"grid_opacity"`
	Glow        string  `yaml:"glow"`
	GlowOpacity float64 `yaml:"glow_opacity"`
	Trail       string  `yaml:"trail"`
}

// Params is the full set of animation parameters. They are fixed for the
// lifetime of an animator; changing them means building a new one.
type Params struct {
	BaseRadius   float64          `yaml:"base_radius"`
	CenterYRatio float64          `yaml:"center_y_ratio"`
	L1           float64          `yaml:"l1"`
	L2           float64          `yaml:"l2"`
	TrailLen     int              `yaml:"trail_len"`
	FPS          int              `yaml:"fps"`
	ResizeGlide  bool             `yaml:"resize_glide"`
	Trajectory   TrajectoryParams `yaml:"trajectory"`
	Joints       JointParams      `yaml:"joints"`
	Grid         GridParams       `yaml:"grid"`
	Palette      Palette          `yaml:"palette"`
}

// Default returns the reference configuration.
func Default() Params {
	return Params{
		BaseRadius:   140,
		CenterYRatio: 0.55,
		L1:           150,
		L2:           150,
		TrailLen:     80,
		FPS:          TargetFPS,
		ResizeGlide:  true,
		Trajectory: TrajectoryParams{
			AmpX:    90,
			AmpY:    50,
			OmegaX:  0.8,
			OmegaY:  1.3,
			Phase:   math.Pi / 4,
			YOffset: -70,
		},
		Joints: JointParams{
			ArmWidth:    10,
			BaseJointR:  10,
			ElbowJointR: 8,
			EffectorR:   9,
		},
		Grid: GridParams{
			Spacing:     24,
			Speed:       20,
			FloorOffset: 40,
		},
		Palette: Palette{
			Background:  "#0A1028",
			Base:        "#7884FF",
			BaseOpacity: 0.7,
			Upper:       "#7D9BFF",
			Lower:       "#BECDFF",
			LinkOpacity: 0.9,
			Shadow:      "#0A1028",
			Joint:       "#8296FF",
			JointHub:    "#DDE4FF",
			Effector:    "#FFFFFF",
			Grid:        "#4656B4",
			GridOpacity: 0.45,
			Glow:        "#4858F0",
			GlowOpacity: 0.30,
			Trail:       "#D6E8FF",
		},
	}
}

// Load reads a YAML parameter file. Fields missing from the file keep their
// default values. An empty path returns the defaults.
func Load(path string) (Params, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// Validate rejects parameter sets the animator cannot draw. Every float must
// be finite and within the limits in config.go.
func (p Params) Validate() error {
	var errs []error
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	check(positive("l1", p.L1, MaxLength))
	check(positive("l2", p.L2, MaxLength))
	check(positive("base_radius", p.BaseRadius, MaxLength))
	if !(p.CenterYRatio > 0 && p.CenterYRatio < 1) {
		check(fmt.Errorf("center_y_ratio must be in (0, 1), got %v", p.CenterYRatio))
	}
	if p.TrailLen < 1 || p.TrailLen > MaxTrailLen {
		check(fmt.Errorf("trail_len must be in [1, %d], got %d", MaxTrailLen, p.TrailLen))
	}
	if p.FPS < MinFPS || p.FPS > MaxFPS {
		check(fmt.Errorf("fps must be in [%d, %d], got %d", MinFPS, MaxFPS, p.FPS))
	}

	tr := p.Trajectory
	check(between("trajectory.amp_x", tr.AmpX, -MaxLength, MaxLength))
	check(between("trajectory.amp_y", tr.AmpY, -MaxLength, MaxLength))
	check(between("trajectory.omega_x", tr.OmegaX, -MaxOmega, MaxOmega))
	check(between("trajectory.omega_y", tr.OmegaY, -MaxOmega, MaxOmega))
	check(between("trajectory.phase", tr.Phase, -2*math.Pi, 2*math.Pi))
	check(between("trajectory.y_offset", tr.YOffset, -MaxLength, MaxLength))

	j := p.Joints
	check(between("joints.arm_width", j.ArmWidth, 0, MaxJointRadius))
	check(between("joints.base_joint_r", j.BaseJointR, 0, MaxJointRadius))
	check(between("joints.elbow_joint_r", j.ElbowJointR, 0, MaxJointRadius))
	check(between("joints.effector_r", j.EffectorR, 0, MaxJointRadius))

	g := p.Grid
	check(between("grid.spacing", g.Spacing, MinGridSpacing, MaxLength))
	check(between("grid.speed", g.Speed, -MaxLength, MaxLength))
	check(between("grid.floor_offset", g.FloorOffset, -MaxLength, MaxLength))

	pal := p.Palette
	check(between("palette.base_opacity", pal.BaseOpacity, 0, 1))
	check(between("palette.link_opacity", pal.LinkOpacity, 0, 1))
	check(between("palette.grid_opacity", pal.GridOpacity, 0, 1))
	check(between("palette.glow_opacity", pal.GlowOpacity, 0, 1))

	return errors.Join(errs...)
}

// between checks that v is a finite number in [lo, hi].
func between(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < lo || v > hi {
		return fmt.Errorf("%s must be a number in [%g, %g], got %v", name, lo, hi, v)
	}
	return nil
}

// positive checks that v is a finite number in (0, hi].
func positive(name string, v, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > hi {
		return fmt.Errorf("%s must be a number in (0, %g], got %v", name, hi, v)
	}
	return nil
}
