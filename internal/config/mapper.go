package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lagoon/digplan"
)

// Map validates yc and lays it over Default(). path is only used in errors.
func Map(path string, yc YAMLConfig) (Config, error) {
	cfg := Default()

	if len(yc.Modes) > 0 {
		cfg.Modes = cfg.Modes[:0:0]
		for i, s := range yc.Modes {
			m, err := digplan.ParseMode(s)
			if err != nil {
				return Config{}, invalidField(path, fmt.Sprintf("modes[%d]", i), err.Error())
			}
			cfg.Modes = append(cfg.Modes, m)
		}
	}
	if yc.Compact != nil {
		cfg.Compact = *yc.Compact
	}
	if f := strings.TrimSpace(yc.Format); f != "" {
		if f != FormatPlain && f != FormatJSON {
			return Config{}, invalidField(path, "format", fmt.Sprintf("unsupported format %q (expected plain|json)", f))
		}
		cfg.Format = f
	}
	if v := yc.Verify; v != nil {
		if v.Enabled != nil {
			cfg.Verify.Enabled = *v.Enabled
		}
		if v.MaxCells != nil {
			if *v.MaxCells < 0 {
				return Config{}, invalidField(path, "verify.max_cells", "must be >= 0")
			}
			cfg.Verify.MaxCells = *v.MaxCells
		}
	}
	if r := yc.Render; r != nil && r.MaxCells != nil {
		if *r.MaxCells <= 0 {
			return Config{}, invalidField(path, "render.max_cells", "must be > 0")
		}
		cfg.Render.MaxCells = *r.MaxCells
	}
	if l := yc.Log; l != nil {
		if l.Debug != nil {
			cfg.Log.Debug = *l.Debug
		}
		cfg.Log.Path = strings.TrimSpace(l.Path)
	}

	return cfg, nil
}
