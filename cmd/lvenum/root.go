// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	errNotPossible = errors.New("combination not possible")
	errBadRank     = errors.New("invalid rank")
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfg     Config
	verbose bool
	limit   int
	sep     string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvenum",
		Short: "Enumerate combinations and subsets",
		Long: `lvenum walks the cartesian product of per-object value domains,
read from a YAML file, or the power set of a list of elements.

Combinations are printed in odometer order: the last object varies fastest.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg
			if !cmd.Flags().Changed("limit") {
				a.limit = cfg.Limit
			}
			if !cmd.Flags().Changed("sep") {
				a.sep = cfg.Separator
			}
			if a.limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", a.limit)
			}
			a.logger, err = newLogger(cfg, a.verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().IntVar(&a.limit, "limit", 0, "print at most N lines (0: no limit)")
	root.PersistentFlags().StringVar(&a.sep, "sep", " ", "separator between values")

	root.AddCommand(
		newProductCmd(a),
		newRankCmd(a),
		newAtCmd(a),
		newPowersetCmd(a),
	)
	return root
}

// printer writes joined lines and stops at the limit.
type printer struct {
	w       io.Writer
	sep     string
	limit   int
	printed int
}

// full reports whether the limit is reached.
func (p *printer) full() bool { return p.limit > 0 && p.printed >= p.limit }

func (p *printer) line(values []string, prefix, suffix string) error {
	if p.full() {
		return nil
	}
	p.printed++
	_, err := fmt.Fprintln(p.w, prefix+strings.Join(values, p.sep)+suffix)
	return err
}
