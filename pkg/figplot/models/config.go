// Package models defines the data structures shared by the figplot pipeline.
package models

// Config is the plot configuration document.
type Config struct {
	// DataFile is a .csv/.xlsx path or the literal "clipboard".
	DataFile string `json:"data_file"`
	// XAxis configures the horizontal axis.
	XAxis Axis `json:"x_axis"`
	// YAxis configures the vertical axis.
	YAxis Axis `json:"y_axis"`
	// DataColumns selects the plotted columns.
	DataColumns DataColumns `json:"data_columns"`
	// DataStyles holds the cyclic per-series style arrays.
	DataStyles DataStyles `json:"data_styles"`
	// Legend configures the legend box.
	Legend Legend `json:"legend"`
	// FigSize is [width, height] in centimeters.
	FigSize []float64 `json:"fig_size"`
	// FontSize is the global font size in points.
	FontSize float64 `json:"font_size"`
	// OutFile is the .svg output path.
	OutFile string `json:"out_file"`

	// Fonts registers custom font files and the text renderer.
	Fonts Fonts `json:"fonts,omitempty"`
	// Sheet names the xlsx sheet to read (default: first sheet).
	Sheet string `json:"sheet,omitempty"`
	// DataRange crops the source table to an A1-style range, e.g. "B2:E40".
	DataRange string `json:"data_range,omitempty"`
	// Encoding is "auto" (default), "utf-8" or "gb18030" for delimited text.
	Encoding string `json:"encoding,omitempty"`
	// KeepIntermediate keeps the PDF written during export.
	KeepIntermediate bool `json:"keep_intermediate,omitempty"`
}

// DataColumns maps table columns to series.
type DataColumns struct {
	// XColumnIndices are 0-based table column indices for X values.
	XColumnIndices []int `json:"x_column_indices"`
	// YColumnIndices are 0-based table column indices for Y values.
	YColumnIndices []int `json:"y_column_indices"`
	// Labels is "auto" (use Y headers) or an explicit list. The key keeps the
	// historical spelling.
	Labels Labels `json:"lables"`
}

// Fonts configures the text rendering context.
type Fonts struct {
	// Files are TTF/OTF files; the first one becomes the text typeface.
	Files []string `json:"files,omitempty"`
	// UseTeX enables LaTeX math rendering of $...$ spans (default true).
	UseTeX *bool `json:"usetex,omitempty"`
}

// TeXEnabled reports whether LaTeX text rendering is requested.
func (f Fonts) TeXEnabled() bool {
	if f.UseTeX != nil {
		return *f.UseTeX
	}
	return true
}
