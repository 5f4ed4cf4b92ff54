package theme

import (
	"bytes"
	"encoding/json"

	"github.com/AvengeMedia/switcher/internal/color"
)

const Schema = "vscode://schemas/color-theme"

// Meta is the static header of a theme document.
type Meta struct {
	Author         string
	Name           string
	ColorSpaceName string
	SemanticClass  string
}

// Document is the VS Code colour theme file.
type Document struct {
	Schema         string                 `json:"$schema"`
	Author         string                 `json:"author"`
	Name           string                 `json:"name"`
	ColorSpaceName string                 `json:"colorSpaceName"`
	SemanticClass  string                 `json:"semanticClass"`
	Colors         map[string]color.Color `json:"colors"`
	TokenColors    []Rule                 `json:"tokenColors"`
}

func NewDocument(meta Meta, colors map[string]color.Color, tokens []Rule) Document {
	if colors == nil {
		colors = map[string]color.Color{}
	}
	if tokens == nil {
		tokens = []Rule{}
	}
	return Document{
		Schema:         Schema,
		Author:         meta.Author,
		Name:           meta.Name,
		ColorSpaceName: meta.ColorSpaceName,
		SemanticClass:  meta.SemanticClass,
		Colors:         colors,
		TokenColors:    tokens,
	}
}

// Encode renders doc as two-space indented JSON with a trailing newline.
// Colour keys are sorted, so equal documents encode to equal bytes.
func Encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
