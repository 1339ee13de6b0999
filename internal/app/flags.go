package app

import (
	"flag"
	"strconv"

	"toruslife/internal/sims/life"
)

// Config represents the command-line parameters for the application. Board
// settings start from the TOML file named by ConfigPath; flags given on the
// command line override it.
type Config struct {
	ConfigPath string
	Scale      int
	HUDWidth   int
	TPS        int

	Seed    int64
	Rows    int
	Cols    int
	Millis  int
	Workers int
	DataDir string
	Auto    bool
	Motion  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		ConfigPath: "life.toml",
		Scale:      5,
		HUDWidth:   260,
		TPS:        60,
		Seed:       d.Seed,
		Rows:       d.Rows,
		Cols:       d.Cols,
		Millis:     d.MillisPerIteration,
		Workers:    d.Workers,
		DataDir:    d.DataDir,
		Auto:       d.AutoIterate,
		Motion:     d.HighlightMotion,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "TOML settings file (missing is fine)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "initial pixels per cell")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Millis, "ms", c.Millis, "milliseconds per generation when iterating")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation (0 = NumCPU)")
	fs.StringVar(&c.DataDir, "dir", c.DataDir, "directory holding saved/ and configs/")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "start iterating immediately")
	fs.BoolVar(&c.Motion, "motion", c.Motion, "highlight cells that changed in the last generation")
}

// Settings loads the settings file and applies the flags that were set
// explicitly on fs.
func (c *Config) Settings(fs *flag.FlagSet) (life.Config, error) {
	settings, err := life.LoadConfigFile(c.ConfigPath)
	if err != nil {
		return settings, err
	}
	overrides := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			overrides["seed"] = strconv.FormatInt(c.Seed, 10)
		case "rows":
			overrides["rows"] = strconv.Itoa(c.Rows)
		case "cols":
			overrides["cols"] = strconv.Itoa(c.Cols)
		case "ms":
			overrides["ms"] = strconv.Itoa(c.Millis)
		case "workers":
			overrides["workers"] = strconv.Itoa(c.Workers)
		case "dir":
			overrides["dir"] = c.DataDir
		case "auto":
			overrides["auto"] = strconv.FormatBool(c.Auto)
		case "motion":
			overrides["motion"] = strconv.FormatBool(c.Motion)
		}
	})
	return life.ApplyMap(settings, overrides), nil
}
