package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lagoon/digplan"
	"github.com/katalvlaran/lagoon/internal/config"
	"github.com/katalvlaran/lagoon/internal/logger"
	"github.com/katalvlaran/lagoon/trench"
)

// areaResult is one computed area, tagged with the plan reading used.
type areaResult struct {
	Mode string `json:"mode"`
	Area int    `json:"area"`
}

func areaCmd(rf *rootFlags) *cobra.Command {
	var mode string
	var compact, verify bool
	var format string

	c := &cobra.Command{
		Use:   "area [plan-file]",
		Short: "Print the enclosed area of a dig plan, once per reading",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, rf)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				if cfg.Modes, err = parseModes(mode); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("compact") {
				cfg.Compact = compact
			}
			if cmd.Flags().Changed("verify") {
				cfg.Verify.Enabled = verify
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}

			return withLogger(cmd, cfg, func() error {
				plan, err := readPlan(cmd, args)
				if err != nil {
					return err
				}
				results, err := computeAreas(plan, cfg)
				if err != nil {
					return err
				}
				return printResults(cmd.OutOrStdout(), results, cfg.Format)
			})
		},
	}

	c.Flags().StringVarP(&mode, "mode", "m", "both", "Plan reading: plain|hex|both")
	c.Flags().BoolVar(&compact, "compact", false, "Merge equal runs after painting")
	c.Flags().BoolVar(&verify, "verify", false, "Cross-check every area with a dense flood fill")
	c.Flags().StringVar(&format, "format", config.FormatPlain, "Output format: plain|json")
	return c
}

// parseModes turns "plain", "hex" or "both" into plan readings.
func parseModes(s string) ([]digplan.Mode, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return []digplan.Mode{digplan.ModePlain, digplan.ModeHex}, nil
	}
	m, err := digplan.ParseMode(s)
	if err != nil {
		return nil, err
	}
	return []digplan.Mode{m}, nil
}

// computeAreas runs the paint and scan pipeline once per configured mode.
func computeAreas(plan digplan.Plan, cfg config.Config) ([]areaResult, error) {
	log := logger.L()
	opts := trench.Options{Compact: cfg.Compact}
	results := make([]areaResult, 0, len(cfg.Modes))

	for _, m := range cfg.Modes {
		instrs := plan.Instructions(m)
		start := time.Now()

		grid, err := trench.Paint(instrs, &opts)
		if err != nil {
			return nil, fmt.Errorf("%s reading: %w", m, err)
		}
		area, err := trench.Scan(grid)
		if err != nil {
			return nil, fmt.Errorf("%s reading: %w", m, err)
		}
		log.Debug("area.computed",
			"mode", m.String(),
			"edges", len(instrs),
			"width", grid.Width(),
			"height", grid.Height(),
			"bands", grid.NumBands(),
			"area", area,
			"elapsed", time.Since(start),
		)

		if cfg.Verify.Enabled {
			if err := verifyArea(m, instrs, area, cfg.Verify.MaxCells); err != nil {
				return nil, err
			}
		}
		results = append(results, areaResult{Mode: m.String(), Area: area})
	}

	return results, nil
}

// verifyArea compares area with the dense flood fill. Plans above the cell
// limit are skipped with a warning.
func verifyArea(m digplan.Mode, instrs []trench.Instruction, area, maxCells int) error {
	dense, err := trench.DenseArea(instrs, maxCells)
	switch {
	case errors.Is(err, trench.ErrTooLarge):
		logger.L().Warn("verify.skipped", "mode", m.String(), "reason", err.Error())
		return nil
	case err != nil:
		return fmt.Errorf("%s reading: verify: %w", m, err)
	case dense != area:
		return fmt.Errorf("%s reading: compressed area %d disagrees with dense area %d", m, area, dense)
	}
	logger.L().Debug("verify.ok", "mode", m.String(), "area", area)
	return nil
}

func printResults(w io.Writer, results []areaResult, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"results": results})
	case config.FormatPlain, "":
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Area); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected plain|json)", format)
	}
}
