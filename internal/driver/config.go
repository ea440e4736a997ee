package driver

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/closestpair/pointgen"
)

// Algorithm names accepted by --algo.
const (
	AlgoBrute  = "brute"
	AlgoDivide = "dc"
	AlgoBoth   = "both"
)

const (
	countFlag    = "count"
	minFlag      = "min"
	maxFlag      = "max"
	seedFlag     = "seed"
	algoFlag     = "algo"
	parallelFlag = "parallel"
	inputFlag    = "input"
	logLevelFlag = "log-level"
)

// Config is the resolved command-line configuration of a run.
type Config struct {
	Count    int
	Min      int
	Max      int
	Seed     int64
	Algo     string
	Parallel bool
	Input    string
	LogLevel string
}

// DefaultConfig mirrors the classic benchmark: 1000 points in [0,1000]², both algorithms.
func DefaultConfig() Config {
	return Config{
		Count:    1000,
		Min:      pointgen.DefaultMin,
		Max:      pointgen.DefaultMax,
		Algo:     AlgoBoth,
		LogLevel: "info",
	}
}

// BindFlags registers cfg's fields on fs, using the current values as defaults.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVarP(&cfg.Count, countFlag, "n", cfg.Count, "number of random points to generate")
	fs.IntVar(&cfg.Min, minFlag, cfg.Min, "lower coordinate bound (inclusive)")
	fs.IntVar(&cfg.Max, maxFlag, cfg.Max, "upper coordinate bound (inclusive)")
	fs.Int64Var(&cfg.Seed, seedFlag, cfg.Seed, "random seed, 0 selects the fixed default")
	fs.StringVarP(&cfg.Algo, algoFlag, "a", cfg.Algo, "algorithm: brute, dc or both")
	fs.BoolVarP(&cfg.Parallel, parallelFlag, "p", cfg.Parallel, "run divide-and-conquer halves concurrently")
	fs.StringVarP(&cfg.Input, inputFlag, "i", cfg.Input, "read \"x y\" points from file instead of generating")
	fs.StringVar(&cfg.LogLevel, logLevelFlag, cfg.LogLevel, "log level: debug, info, warn, error")
}

// Validate checks field domains that pflag cannot express.
func (c Config) Validate() error {
	switch c.Algo {
	case AlgoBrute, AlgoDivide, AlgoBoth:
	default:
		return errors.Errorf("unknown algorithm %q", c.Algo)
	}
	if c.Input == "" {
		if c.Count < 2 {
			return errors.Errorf("count must be at least 2, got %d", c.Count)
		}
		if c.Min > c.Max {
			return errors.Errorf("min %d exceeds max %d", c.Min, c.Max)
		}
	}
	return nil
}
