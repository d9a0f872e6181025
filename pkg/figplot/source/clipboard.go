package source

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ClipboardReader returns the current clipboard text.
type ClipboardReader interface {
	ReadAll() (string, error)
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// SystemClipboard returns a reader for the operating system clipboard.
func SystemClipboard() ClipboardReader {
	return systemClipboard{}
}

// ClipboardText is a fixed clipboard payload.
type ClipboardText string

// ReadAll implements ClipboardReader.
func (c ClipboardText) ReadAll() (string, error) {
	return string(c), nil
}

func readClipboard(cb ClipboardReader) ([][]string, error) {
	if cb == nil {
		cb = SystemClipboard()
	}
	text, err := cb.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read clipboard: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &FormatError{Source: Clipboard, Reason: "clipboard text", Err: ErrEmpty}
	}

	grid, err := parseDelimited(text, DetectDelimiter(text))
	if err != nil {
		return nil, &FormatError{Source: Clipboard, Reason: "parse clipboard", Err: err}
	}
	return grid, nil
}
