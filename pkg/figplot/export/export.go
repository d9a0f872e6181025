// Package export writes a built chart to disk as SVG.
//
// The chart is drawn once onto a tdewolff/canvas page sized to the figure.
// Both files are rendered from that single page: a PDF next to the output
// (the intermediate file) and the SVG output itself. The PDF is removed
// afterwards unless it was asked to be kept.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/figplot-go/internal/log"
	"github.com/ukaji3/figplot-go/pkg/figplot/render"
)

// ErrUnsupportedOutput is returned when the output path does not end in .svg.
var ErrUnsupportedOutput = errors.New("output file must have a .svg extension")

// Result describes the files written by Export.
type Result struct {
	// SVGPath is the written output.
	SVGPath string
	// PDFPath is the intermediate PDF; empty once it has been removed.
	PDFPath string
}

// IntermediatePath returns the PDF path used for an output path.
func IntermediatePath(outPath string) string {
	return strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".pdf"
}

// Export draws chart and writes it to outPath. The chart is released whether
// or not the export succeeds.
func Export(chart *render.Chart, outPath string, keepIntermediate bool) (res *Result, err error) {
	defer chart.Release()

	if !strings.EqualFold(filepath.Ext(outPath), ".svg") {
		return nil, fmt.Errorf("%s: %w", outPath, ErrUnsupportedOutput)
	}
	logger := log.WithComponent("export")

	page, err := draw(chart)
	if err != nil {
		return nil, err
	}

	pdfPath := IntermediatePath(outPath)
	if err := writeFile(pdfPath, page, renderers.PDF()); err != nil {
		return nil, fmt.Errorf("write intermediate PDF: %w", err)
	}
	logger.Debug().Str("path", pdfPath).Msg("intermediate PDF written")

	res = &Result{SVGPath: outPath, PDFPath: pdfPath}
	if err := writeFile(outPath, page, renderers.SVG()); err != nil {
		removeIntermediate(pdfPath, keepIntermediate)
		return nil, fmt.Errorf("write SVG: %w", err)
	}
	logger.Debug().Str("path", outPath).Msg("SVG written")

	if removeIntermediate(pdfPath, keepIntermediate) {
		res.PDFPath = ""
	}
	return res, nil
}

// draw renders the chart onto a new page. Text layout errors inside gonum
// surface as panics; they are returned as errors.
func draw(chart *render.Chart) (page *canvas.Canvas, err error) {
	defer func() {
		if r := recover(); r != nil {
			page, err = nil, fmt.Errorf("draw chart: %v", r)
		}
	}()

	page = canvas.New(float64(chart.Width/vg.Millimeter), float64(chart.Height/vg.Millimeter))
	chart.Draw(renderers.NewGonumPlot(page))
	return page, nil
}

// writeFile writes the page with w, replacing path atomically.
func writeFile(path string, page *canvas.Canvas, w canvas.Writer) error {
	pendingFile, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger := log.WithComponent("export")
			logger.Debug().Err(err).Str("path", path).Msg("cleanup pending file")
		}
	}()

	if err := w(pendingFile, page); err != nil {
		return err
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}

// removeIntermediate deletes the PDF unless it is kept and reports whether
// it is gone.
func removeIntermediate(path string, keep bool) bool {
	if keep {
		return false
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger := log.WithComponent("export")
		logger.Warn().Err(err).Str("path", path).Msg("remove intermediate PDF")
		return false
	}
	return true
}
