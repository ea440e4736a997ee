package driver

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/closestpair/closestpair"
	"github.com/katalvlaran/closestpair/pointgen"
)

// LoadPoints returns the point set for cfg: parsed from cfg.Input when set,
// generated by pointgen.Uniform otherwise.
func LoadPoints(cfg Config) ([]closestpair.Point, error) {
	if cfg.Input == "" {
		pts, err := pointgen.Uniform(cfg.Count,
			pointgen.WithSeed(cfg.Seed),
			pointgen.WithRange(cfg.Min, cfg.Max),
		)
		if err != nil {
			return nil, errors.Wrap(err, "generate points")
		}
		return pts, nil
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "open %v", cfg.Input)
	}
	defer f.Close()

	pts, err := ReadPoints(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %v", cfg.Input)
	}
	return pts, nil
}

// ReadPoints parses one point per line, "x y" or "x,y". Blank lines and
// lines starting with '#' are skipped.
func ReadPoints(r io.Reader) ([]closestpair.Point, error) {
	var pts []closestpair.Point

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: want 2 coordinates, got %d", line, len(fields))
		}

		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: x", line)
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: y", line)
		}
		pts = append(pts, closestpair.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}

	return pts, nil
}
