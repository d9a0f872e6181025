package config

import "strings"

var axisKeys = []string{"label", "lim", "start_tick", "step", "format"}

var styleKeys = []string{
	"colors", "linestyles", "linewidths", "markers",
	"markersizes", "markerfacecolor", "markeredgewidth",
}

var frameKeys = []string{"framealpha", "edgecolor", "linewidth", "rounded"}

// requiredKeys lists the unconditional keys in the order they are checked.
func requiredKeys() []string {
	keys := []string{"data_file"}
	for _, axis := range []string{"x_axis", "y_axis"} {
		for _, k := range axisKeys {
			keys = append(keys, axis+"."+k)
		}
	}
	keys = append(keys,
		"data_columns.x_column_indices",
		"data_columns.y_column_indices",
		"data_columns.lables",
	)
	for _, k := range styleKeys {
		keys = append(keys, "data_styles."+k)
	}
	return append(keys, "legend.visible", "fig_size", "font_size", "out_file")
}

// checkRequired returns a MissingKeyError for the first absent required key.
// Legend keys are only required when the legend is visible, frame styling
// only when the frame is visible. A null value counts as absent.
func checkRequired(tree map[string]interface{}) error {
	for _, key := range requiredKeys() {
		if _, ok := lookup(tree, key); !ok {
			return &MissingKeyError{Key: key}
		}
	}

	if !truthy(tree, "legend.visible") {
		return nil
	}
	for _, key := range []string{"legend.loc", "legend.ncol", "legend.frame.visible"} {
		if _, ok := lookup(tree, key); !ok {
			return &MissingKeyError{Key: key}
		}
	}

	if !truthy(tree, "legend.frame.visible") {
		return nil
	}
	for _, k := range frameKeys {
		key := "legend.frame." + k
		if _, ok := lookup(tree, key); !ok {
			return &MissingKeyError{Key: key}
		}
	}
	return nil
}

func lookup(tree map[string]interface{}, key string) (interface{}, bool) {
	var cur interface{} = tree
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

func truthy(tree map[string]interface{}, key string) bool {
	v, _ := lookup(tree, key)
	b, ok := v.(bool)
	return ok && b
}
