package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lagoon/digplan"
	"github.com/katalvlaran/lagoon/trench"
)

func renderCmd(rf *rootFlags) *cobra.Command {
	var mode string
	var maxCells int

	c := &cobra.Command{
		Use:   "render [plan-file]",
		Short: "Draw the painted trench of a small dig plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, rf)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-cells") {
				cfg.Render.MaxCells = maxCells
			}
			m, err := digplan.ParseMode(mode)
			if err != nil {
				return err
			}

			return withLogger(cmd, cfg, func() error {
				plan, err := readPlan(cmd, args)
				if err != nil {
					return err
				}
				grid, err := trench.Paint(plan.Instructions(m), &trench.Options{Compact: cfg.Compact})
				if err != nil {
					return fmt.Errorf("%s reading: %w", m, err)
				}
				if cells := grid.Width() * grid.Height(); cells > cfg.Render.MaxCells {
					return fmt.Errorf("%s reading: %d×%d grid exceeds %d cells; raise --max-cells",
						m, grid.Width(), grid.Height(), cfg.Render.MaxCells)
				}
				return grid.Render(cmd.OutOrStdout(), trench.PipeSymbol.Glyph)
			})
		},
	}

	c.Flags().StringVarP(&mode, "mode", "m", "plain", "Plan reading: plain|hex")
	c.Flags().IntVar(&maxCells, "max-cells", 0, "Largest grid (width×height) to draw")
	return c
}
