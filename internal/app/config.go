package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application. The
// grid dimensions are derived from the screen size and the cell size.
type Config struct {
	ScreenWidth  int           `json:"screen_width"`
	ScreenHeight int           `json:"screen_height"`
	CellSize     int           `json:"cell_size"`
	WindowScale  int           `json:"window_scale"`
	StepInterval time.Duration `json:"step_interval"`
	Empty        bool          `json:"empty"`
}

// NewConfig returns a Config populated with the classic defaults: a 400x240
// board of 8px cells shown at 2x, stepping every 16 frames of a 60Hz loop.
func NewConfig() *Config {
	return &Config{
		ScreenWidth:  400,
		ScreenHeight: 240,
		CellSize:     8,
		WindowScale:  2,
		StepInterval: 16 * time.Second / 60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.WindowScale, "scale", c.WindowScale, "window scale multiplier")
	fs.DurationVar(&c.StepInterval, "step", c.StepInterval, "time between generations in play mode")
	fs.BoolVar(&c.Empty, "empty", c.Empty, "start with an empty board instead of the demo patterns")
}

// Load overlays the config with values from a JSON file.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Validate rejects configurations that cannot produce a grid.
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.Errorf("config: screen %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	}
	if c.CellSize <= 0 || c.CellSize > c.ScreenWidth || c.CellSize > c.ScreenHeight {
		return errors.Errorf("config: cell size %d does not fit screen %dx%d", c.CellSize, c.ScreenWidth, c.ScreenHeight)
	}
	if c.WindowScale <= 0 {
		return errors.Errorf("config: window scale %d must be positive", c.WindowScale)
	}
	return nil
}

// Cols returns the grid width in cells.
func (c *Config) Cols() int { return c.ScreenWidth / c.CellSize }

// Rows returns the grid height in cells.
func (c *Config) Rows() int { return c.ScreenHeight / c.CellSize }
