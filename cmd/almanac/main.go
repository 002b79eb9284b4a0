// Package main provides the CLI entrypoint for almanac.
//
// almanac solves seed almanacs:
//   - Parses text or YAML almanacs into ordered mapping blocks
//   - Pushes seeds (part 1) or seed ranges (part 2) through the blocks
//   - Reports the lowest location, or traces single values block by block
//   - Converts text almanacs to YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"almanac/internal/puzzle"
)

// cli carries flag values and the logger shared by all commands.
type cli struct {
	verbose bool
	config  puzzle.Config
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{config: puzzle.DefaultConfig(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "almanac",
		Short: "Solve seed almanacs by remapping value ranges",
		Long: `almanac reads a seed almanac (a seeds line followed by
"<from>-to-<to> map:" blocks of "target source length" lines) and
reports the lowest location any seed reaches.

Part 1 maps every seed on its own; part 2 reads the seeds as
(start, length) pairs and maps whole ranges at once.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.initLogger,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&c.config.DataDir, "data-dir", c.config.DataDir, "Directory holding dayNN/input.txt files")

	root.AddCommand(
		c.runCmd(),
		c.solveCmd(),
		c.lookupCmd(),
		c.exportCmd(),
		c.dumpCmd(),
	)

	return root
}

func (c *cli) initLogger(*cobra.Command, []string) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	if c.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.logger = logger

	return nil
}
