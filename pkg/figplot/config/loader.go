// Package config loads figplot configuration documents.
//
// Documents are JSON with two relaxations: "//" and "/* */" comments, and
// trailing commas before '}' or ']'. Files ending in .yaml or .yml are read
// as YAML with the same keys.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/figplot-go/internal/log"
	"github.com/ukaji3/figplot-go/pkg/figplot/models"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration path used when none is given.
const DefaultPath = "plot_config.json"

// Load reads, parses and validates the configuration at path.
func Load(path string) (*models.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	logger := log.WithComponent("config")
	logger.Debug().Str("path", path).Str("data_file", cfg.DataFile).Str("out_file", cfg.OutFile).Msg("config loaded")
	return cfg, nil
}

// Parse decodes and validates a configuration document. The name selects the
// syntax by extension and is used in error messages.
func Parse(name string, data []byte) (*models.Config, error) {
	var (
		tree map[string]interface{}
		err  error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if tree, err = decodeYAML(name, data); err != nil {
			return nil, err
		}
		// Re-encode the generic tree so the typed decode is shared.
		if data, err = json.Marshal(tree); err != nil {
			return nil, &ParseError{Path: name, Offset: -1, Err: err}
		}
	default:
		if tree, data, err = decodeJSON(name, data); err != nil {
			return nil, err
		}
	}

	if err := checkRequired(tree); err != nil {
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		pe := &ParseError{Path: name, Offset: -1, Err: err}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			pe.Offset = typeErr.Offset
			pe.locate(data)
		}
		return nil, pe
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeJSON strips the relaxed syntax and decodes into a generic tree. It
// also returns the cleaned text for the typed decode.
func decodeJSON(name string, data []byte) (map[string]interface{}, []byte, error) {
	cleaned, err := Strip(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = name
			pe.locate(data)
		}
		return nil, nil, err
	}

	var tree map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(cleaned))
	dec.UseNumber()
	if err := dec.Decode(&tree); err != nil {
		pe := &ParseError{Path: name, Offset: -1, Err: err}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			pe.Offset = syntaxErr.Offset
			pe.locate(cleaned)
		}
		return nil, nil, pe
	}
	if dec.More() {
		pe := &ParseError{Path: name, Offset: dec.InputOffset(), Err: errors.New("unexpected data after top-level object")}
		pe.locate(cleaned)
		return nil, nil, pe
	}
	return tree, cleaned, nil
}

func decodeYAML(name string, data []byte) (map[string]interface{}, error) {
	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, &ParseError{Path: name, Offset: -1, Err: err}
	}
	if tree == nil {
		return nil, &ParseError{Path: name, Offset: -1, Err: errors.New("empty document")}
	}
	return tree, nil
}
