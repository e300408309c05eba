// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcollect/enumerate"
	"github.com/katalvlaran/lvcollect/filter"
)

// distinctBatch is the number of combinations filtered at once.
const distinctBatch = 256

func newProductCmd(a *app) *cobra.Command {
	var (
		file     string
		count    bool
		distinct bool
	)
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Print every combination of the domains in a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(file)
			if err != nil {
				return err
			}
			if count {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), c.Total())
				return err
			}

			p := &printer{w: cmd.OutOrStdout(), sep: a.sep, limit: a.limit}
			if distinct {
				err = printDistinct(p, c)
			} else {
				for combo := range c.All() {
					if err = p.line(combo, "", ""); err != nil || p.full() {
						break
					}
				}
			}
			a.logger.Debug("product printed",
				zap.Int("lines", p.printed),
				zap.Stringer("generated", c.Generated()),
				zap.Bool("distinct", distinct))
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML domain file")
	cmd.Flags().BoolVar(&count, "count", false, "print only the number of combinations")
	cmd.Flags().BoolVar(&distinct, "distinct", false, "skip combinations repeating a value")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// load reads a domain file and builds its combinations.
func (a *app) load(file string) (*enumerate.Combinations[string], error) {
	f, err := loadDomainFile(file)
	if err != nil {
		return nil, err
	}
	c, err := f.combinations()
	if err != nil {
		return nil, fmt.Errorf("build domains from %s: %w", file, err)
	}
	a.logger.Debug("domains built",
		zap.String("file", file),
		zap.Int("slots", len(c.Domains())),
		zap.Stringer("total", c.Total()))
	return c, nil
}

// repeatsValue rejects combinations holding the same value twice.
var repeatsValue = filter.Deny(func(combo []string) bool {
	seen := make(map[string]struct{}, len(combo))
	for _, v := range combo {
		if _, dup := seen[v]; dup {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
})

func printDistinct(p *printer, c *enumerate.Combinations[string]) error {
	batch := make([][]string, 0, distinctBatch)
	flush := func() error {
		kept, err := filter.Conservatively(batch, repeatsValue)
		if err != nil {
			return err
		}
		batch = batch[:0]
		for _, combo := range kept {
			if err := p.line(combo, "", ""); err != nil {
				return err
			}
		}
		return nil
	}
	for combo := range c.All() {
		batch = append(batch, combo)
		if len(batch) < distinctBatch {
			continue
		}
		if err := flush(); err != nil || p.full() {
			return err
		}
	}
	return flush()
}

func newRankCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "rank value...",
		Short: "Print the position of a combination in the product",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(file)
			if err != nil {
				return err
			}
			rank, ok := c.Rank(args)
			if !ok {
				return fmt.Errorf("%w: %v", errNotPossible, args)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rank)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML domain file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newAtCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "at rank",
		Short: "Print the combination at a position of the product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return fmt.Errorf("%w: %q", errBadRank, args[0])
			}
			c, err := a.load(file)
			if err != nil {
				return err
			}
			combo, err := c.At(rank)
			if err != nil {
				return err
			}
			p := &printer{w: cmd.OutOrStdout(), sep: a.sep}
			return p.line(combo, "", "")
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML domain file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
