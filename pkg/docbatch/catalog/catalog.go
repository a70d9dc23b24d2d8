// Package catalog maps type codes to template files.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ukaji3/docbatch-go/pkg/docbatch/models"
)

// ErrTemplateNotFound indicates a type code has no template or the template file is absent.
var ErrTemplateNotFound = errors.New("template not found")

// ErrUnsupportedTemplate indicates a template whose extension is neither .docx nor .xlsx.
var ErrUnsupportedTemplate = errors.New("unsupported template")

// Catalog holds the document and spreadsheet template tables.
// It is not modified after New.
type Catalog struct {
	documents    map[string]string
	spreadsheets map[string]string
}

// New creates a Catalog from type code to template path tables.
func New(documents, spreadsheets map[string]string) *Catalog {
	return &Catalog{
		documents:    copyTable(documents),
		spreadsheets: copyTable(spreadsheets),
	}
}

// Lookup returns the template path registered for code.
// Spreadsheet entries take precedence over document entries with the same code.
func (c *Catalog) Lookup(code string) (string, bool) {
	if path, ok := c.spreadsheets[code]; ok {
		return path, true
	}
	path, ok := c.documents[code]
	return path, ok
}

// Has reports whether code is registered in either table.
func (c *Catalog) Has(code string) bool {
	_, ok := c.Lookup(code)
	return ok
}

// Resolve returns the template selected by code.
// The family is taken from the template file extension.
func (c *Catalog) Resolve(code string) (models.Template, error) {
	path, ok := c.Lookup(code)
	if !ok {
		return models.Template{}, fmt.Errorf("%w: no template for type %q", ErrTemplateNotFound, code)
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return models.Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
	}

	kind, ok := KindOf(path)
	if !ok {
		return models.Template{}, fmt.Errorf("%w: %s", ErrUnsupportedTemplate, path)
	}

	return models.Template{Code: code, Path: path, Kind: kind}, nil
}

// Codes returns every registered type code, sorted.
func (c *Catalog) Codes() []string {
	seen := make(map[string]struct{}, len(c.documents)+len(c.spreadsheets))
	for code := range c.documents {
		seen[code] = struct{}{}
	}
	for code := range c.spreadsheets {
		seen[code] = struct{}{}
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// KindOf returns the template family for a file path.
func KindOf(path string) (models.TemplateKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return models.KindDocument, true
	case ".xlsx":
		return models.KindSpreadsheet, true
	}
	return "", false
}

func copyTable(table map[string]string) map[string]string {
	cp := make(map[string]string, len(table))
	for k, v := range table {
		cp[k] = v
	}
	return cp
}
