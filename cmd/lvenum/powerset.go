// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcollect/enumerate"
	"github.com/katalvlaran/lvcollect/natural"
)

func newPowersetCmd(a *app) *cobra.Command {
	var (
		sorted bool
		count  bool
	)
	cmd := &cobra.Command{
		Use:   "powerset element...",
		Short: "Print every subset of the elements, from the full set down to {}",
		RunE: func(cmd *cobra.Command, args []string) error {
			elements := slices.Clone(args)
			if sorted {
				natural.Strings(elements)
			}
			s := enumerate.NewSubsets(elements...)
			a.logger.Debug("power set",
				zap.Strings("elements", s.Elements()),
				zap.Stringer("total", s.Total()))
			if count {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), s.Total())
				return err
			}

			p := &printer{w: cmd.OutOrStdout(), sep: a.sep, limit: a.limit}
			for subset := range s.All() {
				if err := p.line(subset, "{", "}"); err != nil || p.full() {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sorted, "natural", false, "sort elements in natural order first")
	cmd.Flags().BoolVar(&count, "count", false, "print only the number of subsets")
	return cmd
}
