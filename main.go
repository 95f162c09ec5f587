package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"delta-robot.klederson.com/internal/app"
	"delta-robot.klederson.com/internal/config"
	"delta-robot.klederson.com/internal/render"
	"delta-robot.klederson.com/internal/scene"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagWatch    bool
	flagFPS      int
	flagDebugLog string

	flagOut      string
	flagFrames   int
	flagInterval float64
	flagStart    float64
	flagWidth    float64
	flagHeight   float64
	flagNoGrid   bool
	flagNoTrail  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "delta-robot",
		Short: "Delta Robot - Terminal animation of a three-arm delta robot",
		Long: `Delta Robot animates a stylized three-arm delta robot in the terminal.
Each arm is solved with planar two-link inverse kinematics so that all three
converge on an end-effector tracing a Lissajous path, leaving a fading trail.

Parameters can be read from a YAML file with --config and reloaded live
with --watch. Use the export subcommand to write frames as SVG files.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML parameter file (defaults when empty)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the parameter file when it changes")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 uses the config value)")
	rootCmd.Flags().StringVar(&flagDebugLog, "debug-log", "", "Write debug log to this file")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write animation frames as SVG files",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&flagOut, "out", "frames", "Output directory")
	exportCmd.Flags().IntVar(&flagFrames, "frames", 60, "Number of frames to write")
	exportCmd.Flags().Float64Var(&flagInterval, "interval", 1.0/30, "Seconds between frames")
	exportCmd.Flags().Float64Var(&flagStart, "start", 0, "Animation time of the first frame in seconds")
	exportCmd.Flags().Float64Var(&flagWidth, "width", config.DesignWidth, "Canvas width")
	exportCmd.Flags().Float64Var(&flagHeight, "height", config.DesignHeight, "Canvas height")
	exportCmd.Flags().BoolVar(&flagNoGrid, "no-grid", false, "Omit the floor grid")
	exportCmd.Flags().BoolVar(&flagNoTrail, "no-trail", false, "Omit the end-effector trail")
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagDebugLog != "" {
		f, err := tea.LogToFile(flagDebugLog, "delta-robot")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if flagWatch && flagConfig == "" {
		return fmt.Errorf("--watch needs --config")
	}

	p, err := loadParams()
	if err != nil {
		return err
	}
	if flagFPS != 0 {
		p.FPS = flagFPS
		if err := p.Validate(); err != nil {
			return fmt.Errorf("--fps: %w", err)
		}
	}

	source := "defaults"
	if flagConfig != "" {
		source = flagConfig
	}
	log.Printf("starting with params from %s (fps %d)", source, p.FPS)

	model := app.New(p, source)

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(p.FPS),
	)

	// Start the watcher with reference to the tea program
	if flagWatch {
		if err := model.StartWatcher(prog, flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
			fmt.Fprintln(os.Stderr, "Could not watch the parameter file.")
			fmt.Fprintln(os.Stderr, "Try one of:")
			fmt.Fprintf(os.Stderr, "  ./delta-robot --config %s    (no live reload)\n", flagConfig)
			fmt.Fprintln(os.Stderr, "  ./delta-robot               (built-in defaults)")
			return err
		}
		defer model.StopWatcher()
	}

	_, err = prog.Run()
	return err
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := loadParams()
	if err != nil {
		return err
	}

	a := scene.NewAnimator(p)
	a.Resize(flagWidth, flagHeight)
	if w, h := a.Size(); w != flagWidth || h != flagHeight {
		return fmt.Errorf("--width and --height must be numbers in (0, %g], got %v x %v",
			config.MaxExtent, flagWidth, flagHeight)
	}
	if a.MayClamp() {
		log.Printf("path may leave the arms' reach at %vx%v; clamped arms are drawn stretched", flagWidth, flagHeight)
	}

	opts := render.Options{Grid: !flagNoGrid, Trail: !flagNoTrail}
	paths, err := render.ExportFrames(flagOut, a, flagFrames, flagStart, flagInterval, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", len(paths), flagOut)
	return nil
}

func loadParams() (config.Params, error) {
	p, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		fmt.Fprintln(os.Stderr, "Every field of the parameter file is optional. Try one of:")
		fmt.Fprintln(os.Stderr, "  fix the field named above")
		fmt.Fprintln(os.Stderr, "  ./delta-robot    (built-in defaults, no --config)")
		return config.Params{}, err
	}
	return p, nil
}
