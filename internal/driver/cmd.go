package driver

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X ...driver.Version=...".
var Version = "dev"

// NewRootCmd assembles the closestpair command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "closestpair",
		Short:         "Closest pair of points: brute force vs divide and conquer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(), newVersionCmd())

	return root
}

func newRunCmd() *cobra.Command {
	cfg := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the closest-pair distance of a generated or loaded point set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, cfg)
		},
	}
	BindFlags(cmd.Flags(), &cfg)

	return cmd
}

func runCmd(cmd *cobra.Command, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	pts, err := LoadPoints(cfg)
	if err != nil {
		return err
	}

	results, err := Run(logger, cfg, pts)
	if err != nil {
		return err
	}

	for _, res := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.9f\t%d ns\n", res.Algorithm, res.Pair.Distance, res.Elapsed.Nanoseconds())
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
