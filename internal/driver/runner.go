package driver

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/closestpair/closestpair"
)

// agreeTol is the relative tolerance between the two algorithms' results.
const agreeTol = 1e-9

// ErrMismatch is returned when brute force and divide-and-conquer disagree.
var ErrMismatch = errors.New("algorithms disagree")

// Result is the outcome of one algorithm on the point set.
type Result struct {
	Algorithm string
	Pair      closestpair.Pair
	Elapsed   time.Duration
}

// Run executes the algorithms selected by cfg.Algo on pts, logging each
// distance and elapsed time. With AlgoBoth the results must agree.
func Run(logger *zap.Logger, cfg Config, pts []closestpair.Point) ([]Result, error) {
	logger.Info("point set ready", zap.Int("count", len(pts)), zap.String("algo", cfg.Algo))

	var results []Result

	if cfg.Algo == AlgoBrute || cfg.Algo == AlgoBoth {
		res, err := timed(AlgoBrute, func() (closestpair.Pair, error) {
			return closestpair.ClosestBrute(pts)
		})
		if err != nil {
			return nil, errors.Wrap(err, "brute force")
		}
		logResult(logger, res)
		results = append(results, res)
	}

	if cfg.Algo == AlgoDivide || cfg.Algo == AlgoBoth {
		opts := closestpair.DefaultOptions()
		opts.Parallel = cfg.Parallel
		res, err := timed(AlgoDivide, func() (closestpair.Pair, error) {
			return closestpair.ClosestWithOptions(pts, opts)
		})
		if err != nil {
			return nil, errors.Wrap(err, "divide and conquer")
		}
		logResult(logger, res)
		results = append(results, res)
	}

	if len(results) == 2 && !agree(results[0].Pair.Distance, results[1].Pair.Distance) {
		return results, errors.Wrapf(ErrMismatch, "brute=%v dc=%v",
			results[0].Pair.Distance, results[1].Pair.Distance)
	}

	return results, nil
}

func timed(name string, fn func() (closestpair.Pair, error)) (Result, error) {
	start := time.Now()
	pair, err := fn()
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}
	return Result{Algorithm: name, Pair: pair, Elapsed: elapsed}, nil
}

func logResult(logger *zap.Logger, res Result) {
	logger.Info("closest pair",
		zap.String("algo", res.Algorithm),
		zap.Float64("distance", res.Pair.Distance),
		zap.Stringer("p", res.Pair.P),
		zap.Stringer("q", res.Pair.Q),
		zap.Int64("elapsed_ns", res.Elapsed.Nanoseconds()),
	)
}

// agree compares two distances with a relative tolerance; exact zeros must match exactly.
func agree(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= agreeTol*math.Max(math.Abs(a), math.Abs(b))
}
