package figplot

import (
	"github.com/ukaji3/figplot-go/internal/log"
	"github.com/ukaji3/figplot-go/pkg/figplot/config"
	"github.com/ukaji3/figplot-go/pkg/figplot/export"
	"github.com/ukaji3/figplot-go/pkg/figplot/models"
	"github.com/ukaji3/figplot-go/pkg/figplot/render"
	"github.com/ukaji3/figplot-go/pkg/figplot/selector"
	"github.com/ukaji3/figplot-go/pkg/figplot/source"
)

// Result describes a completed run.
type Result struct {
	// Config is the loaded configuration.
	Config *models.Config
	// Series is the number of plotted series.
	Series int
	// SVGPath is the written output.
	SVGPath string
	// PDFPath is the kept intermediate PDF, if any.
	PDFPath string
}

// Render runs the whole pipeline once. Every failure is returned as a
// *StageError wrapping the underlying error.
func Render(opts Options) (*Result, error) {
	logger := log.WithComponent("figplot")

	path := opts.ConfigFile()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, NewStageError(StageConfig, err)
	}
	res, err := RenderConfig(cfg, opts)
	if err != nil {
		return res, err
	}
	logger.Debug().Str("config", path).Str("out_file", res.SVGPath).Msg("render complete")
	return res, nil
}

// RenderConfig runs the pipeline for an already loaded configuration. On
// failure the returned Result still carries the configuration.
func RenderConfig(cfg *models.Config, opts Options) (*Result, error) {
	logger := log.WithComponent("figplot")
	res := &Result{Config: cfg}

	table, err := source.Read(cfg.DataFile, source.Options{
		Sheet:     cfg.Sheet,
		Range:     cfg.DataRange,
		Encoding:  cfg.Encoding,
		Clipboard: opts.Clipboard,
	})
	if err != nil {
		return res, NewStageError(StageData, err)
	}

	series, err := selector.Select(table, cfg.DataColumns)
	if err != nil {
		return res, NewStageError(StageSelect, err)
	}
	res.Series = len(series)
	logger.Debug().Int("series", len(series)).Msg("series selected")

	ctx, err := render.NewContext(cfg.Fonts, cfg.FontSize)
	if err != nil {
		return res, NewStageError(StageRender, err)
	}
	chart, err := render.Build(series, cfg, ctx)
	if err != nil {
		return res, NewStageError(StageRender, err)
	}

	out, err := export.Export(chart, cfg.OutFile, opts.ShouldKeepIntermediate(cfg))
	if err != nil {
		return res, NewStageError(StageExport, err)
	}
	res.SVGPath = out.SVGPath
	res.PDFPath = out.PDFPath
	return res, nil
}
