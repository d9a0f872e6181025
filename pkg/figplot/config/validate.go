package config

import (
	"strings"

	"github.com/ukaji3/figplot-go/pkg/figplot/models"
)

// Validate checks the values of a decoded configuration. Vocabulary checks
// for colors, markers, line styles and tick formats happen in the renderer.
func Validate(cfg *models.Config) error {
	if strings.TrimSpace(cfg.DataFile) == "" {
		return NewValueError("data_file", "must not be empty")
	}
	if strings.TrimSpace(cfg.OutFile) == "" {
		return NewValueError("out_file", "must not be empty")
	}
	if len(cfg.FigSize) != 2 || cfg.FigSize[0] <= 0 || cfg.FigSize[1] <= 0 {
		return NewValueError("fig_size", "want [width, height] in centimeters, both positive, got %v", cfg.FigSize)
	}
	if cfg.FontSize <= 0 {
		return NewValueError("font_size", "must be positive, got %v", cfg.FontSize)
	}

	if err := validateAxis("x_axis", cfg.XAxis); err != nil {
		return err
	}
	if err := validateAxis("y_axis", cfg.YAxis); err != nil {
		return err
	}

	if err := validateStyles(cfg.DataStyles); err != nil {
		return err
	}
	if !cfg.DataColumns.Labels.Auto && cfg.DataColumns.Labels.Names == nil {
		return NewValueError("data_columns.lables", "want %q or a list of labels", models.Auto)
	}

	if cfg.Legend.Visible {
		if err := validateLegend(cfg.Legend); err != nil {
			return err
		}
	}

	switch strings.ToLower(cfg.Encoding) {
	case "", "auto", "utf-8", "utf8", "gb18030", "gbk":
	default:
		return NewValueError("encoding", "unsupported encoding %q", cfg.Encoding)
	}
	return nil
}

func validateAxis(name string, axis models.Axis) error {
	if !axis.Lim.Auto && axis.Lim.Min == axis.Lim.Max {
		return NewValueError(name+".lim", "bounds must differ, got %v twice", axis.Lim.Min)
	}
	if axis.ExplicitTicks() && axis.Step.Value <= 0 {
		return NewValueError(name+".step", "must be positive, got %v", axis.Step.Value)
	}
	if axis.Pad != nil && *axis.Pad < 0 {
		return NewValueError(name+".pad", "must not be negative")
	}
	if axis.FontSize != nil && *axis.FontSize <= 0 {
		return NewValueError(name+".font_size", "must be positive")
	}
	return nil
}

func validateStyles(s models.DataStyles) error {
	lengths := []struct {
		key string
		n   int
	}{
		{"colors", len(s.Colors)},
		{"linestyles", len(s.LineStyles)},
		{"linewidths", len(s.LineWidths)},
		{"markers", len(s.Markers)},
		{"markersizes", len(s.MarkerSizes)},
		{"markerfacecolor", len(s.MarkerFaceColor)},
		{"markeredgewidth", len(s.MarkerEdgeWidth)},
	}
	for _, l := range lengths {
		if l.n == 0 {
			return NewValueError("data_styles."+l.key, "must contain at least one value")
		}
	}
	return nil
}

func validateLegend(l models.Legend) error {
	if !l.Loc.Valid() {
		return NewValueError("legend.loc", "unknown location %q", string(l.Loc))
	}
	if l.NCol < 1 {
		return NewValueError("legend.ncol", "must be at least 1, got %d", l.NCol)
	}
	if l.Anchor != nil && len(l.Anchor) != 2 {
		return NewValueError("legend.anchor", "want [x, y], got %d values", len(l.Anchor))
	}
	if l.FontSize != nil && *l.FontSize <= 0 {
		return NewValueError("legend.font_size", "must be positive")
	}
	if l.Frame.Visible {
		if a := l.Frame.FrameAlpha; a < 0 || a > 1 {
			return NewValueError("legend.frame.framealpha", "must be within [0, 1], got %v", a)
		}
		if l.Frame.LineWidth < 0 {
			return NewValueError("legend.frame.linewidth", "must not be negative")
		}
		if l.Frame.Rounded < 0 {
			return NewValueError("legend.frame.rounded", "must not be negative")
		}
	}
	return nil
}
