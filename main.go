package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/field"
)

var (
	configFile   string
	width        int
	height       int
	seed         int64
	maxParticles int
	frames       int
	outFile      string
	pointerX     float64
	pointerY     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "particle-field",
		Short:        "animated particle background",
		SilenceUsage: true,
		RunE:         runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "viewport width (overrides config)")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "viewport height (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed, 0 for clock")
	rootCmd.PersistentFlags().IntVar(&maxParticles, "max-particles", 0, "particle cap (overrides config)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the particle field window",
		RunE:  runWindow,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "simulate headless and write the last frame as svg",
		RunE:  renderFrame,
	}
	renderCmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	renderCmd.Flags().StringVar(&outFile, "out", "field.svg", "output svg path, - for stdout")
	renderCmd.Flags().Float64Var(&pointerX, "pointer-x", -1, "fixed pointer x, negative for none")
	renderCmd.Flags().Float64Var(&pointerY, "pointer-y", -1, "fixed pointer y, negative for none")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time headless frame steps",
		RunE:  benchFrames,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 10000, "frames to step")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, renderCmd, benchCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file if given and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if maxParticles > 0 {
		cfg.Particles.MaxParticles = maxParticles
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newField(cfg *config.Config) *field.Field {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return field.New(float64(cfg.Width), float64(cfg.Height), cfg.Params(), rand.New(rand.NewSource(s)))
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "particle-field.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Printf("wrote %s", path)
	return nil
}
