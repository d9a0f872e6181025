// Package figplot renders a styled line chart from a configuration document.
//
// A run loads the configuration, reads the data table, selects the plotted
// series, builds the chart and exports it as SVG.
package figplot

import (
	"github.com/ukaji3/figplot-go/pkg/figplot/config"
	"github.com/ukaji3/figplot-go/pkg/figplot/models"
	"github.com/ukaji3/figplot-go/pkg/figplot/source"
)

// Options configures a run.
type Options struct {
	// ConfigPath is the configuration document. Empty uses plot_config.json
	// in the working directory.
	ConfigPath string
	// KeepIntermediate keeps the intermediate PDF.
	// If nil, the keep_intermediate config key decides.
	KeepIntermediate *bool
	// Clipboard supplies clipboard text. Nil reads the system clipboard.
	Clipboard source.ClipboardReader
}

// DefaultOptions returns the options of a run without arguments.
func DefaultOptions() Options {
	return Options{
		ConfigPath: config.DefaultPath,
	}
}

// ConfigFile returns the configuration document path.
func (o Options) ConfigFile() string {
	if o.ConfigPath != "" {
		return o.ConfigPath
	}
	return config.DefaultPath
}

// ShouldKeepIntermediate returns whether the intermediate PDF is kept.
func (o Options) ShouldKeepIntermediate(cfg *models.Config) bool {
	if o.KeepIntermediate != nil {
		return *o.KeepIntermediate
	}
	return cfg.KeepIntermediate
}
