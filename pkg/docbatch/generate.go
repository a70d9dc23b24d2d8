package docbatch

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/docbatch-go/pkg/docbatch/catalog"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/filler"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/models"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/parser"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/scaffold"
)

// Skip records an order that produced no artifact.
type Skip struct {
	Row  int    `json:"row"`
	Key  string `json:"key"`
	Tipo string `json:"tipo"`
	Err  error  `json:"-"`
}

// Result summarizes a run.
type Result struct {
	// Orders is the number of orders read from the parameters sheet.
	Orders int
	// Folders are the folder trees created.
	Folders []models.FolderTree
	// FolderErrors are the recovered folder-creation failures.
	FolderErrors []*FolderError
	// Artifacts are the files written, in generation order.
	Artifacts []models.Artifact
	// Skipped are the orders whose template could not be resolved.
	Skipped []Skip
}

// Messages returns the human-readable recovered errors of the run.
func (r *Result) Messages() []string {
	var messages []string
	for _, e := range r.FolderErrors {
		messages = append(messages, e.Error())
	}
	for _, s := range r.Skipped {
		messages = append(messages, fmt.Sprintf("row %d (%s): %v", s.Row, s.Key, s.Err))
	}
	return messages
}

// Run resets the output root, reads the orders, creates their folder trees
// and fills their templates.
//
// A read error aborts the run. Folder and template lookup failures are
// recorded in the result. A fill or save error stops generation and is
// returned together with the partial result.
func Run(opts Options) (*Result, error) {
	logger := opts.logger()
	result := &Result{}

	if err := scaffold.Reset(opts.OutputDir); err != nil {
		return result, err
	}

	orders, err := parser.ReadOrders(opts.ParamsPath, opts.Sheet)
	if err != nil {
		logger.Error("error reading parameters", "path", opts.ParamsPath, "sheet", opts.Sheet, "error", err)
		return result, &ReadError{Path: opts.ParamsPath, Sheet: opts.Sheet, Err: err}
	}
	result.Orders = len(orders)
	logger.Info("parameters read", "path", opts.ParamsPath, "orders", len(orders))

	result.Folders, result.FolderErrors = scaffold.Scaffold(orders, opts.OutputDir, opts.Subfolders)
	for _, tree := range result.Folders {
		logger.Info("folders created", "path", tree.Root)
	}
	for _, e := range result.FolderErrors {
		logger.Warn("error creating folders", "path", e.Path, "row", e.Row, "error", e.Err)
	}

	if err := Generate(orders, opts, result); err != nil {
		return result, err
	}
	return result, nil
}

// Generate fills one template per order whose type code is registered in the
// catalog. Orders are processed grouped by NombreOC, groups in order of first
// appearance, so the last order of a group owns the group's file.
func Generate(orders []models.Order, opts Options, result *Result) error {
	logger := opts.logger()
	date := opts.DateString()
	templates := opts.Catalog
	if templates == nil {
		templates = catalog.New(nil, nil)
	}

	var known []models.Order
	for _, o := range orders {
		if !templates.Has(o.Tipo) {
			logger.Debug("unknown type code", "row", o.Row, "tipo", o.Tipo)
			result.Skipped = append(result.Skipped, Skip{
				Row:  o.Row,
				Key:  o.NombreOC,
				Tipo: o.Tipo,
				Err:  fmt.Errorf("%w: no template for type %q", catalog.ErrTemplateNotFound, o.Tipo),
			})
			continue
		}
		known = append(known, o)
	}

	for _, group := range models.GroupByKey(known) {
		for _, o := range group {
			tpl, err := templates.Resolve(o.Tipo)
			if err != nil {
				logger.Warn("template not found", "row", o.Row, "tipo", o.Tipo, "error", err)
				result.Skipped = append(result.Skipped, Skip{Row: o.Row, Key: o.NombreOC, Tipo: o.Tipo, Err: err})
				continue
			}

			outputPath := filepath.Join(opts.OutputDir, o.NombreOC+"."+tpl.Kind.Extension())
			if err := filler.For(tpl.Kind, date).Fill(tpl.Path, o, outputPath); err != nil {
				logger.Error("error generating file", "row", o.Row, "path", outputPath, "error", err)
				return err
			}

			logger.Info("file generated", "kind", string(tpl.Kind), "path", outputPath)
			result.Artifacts = append(result.Artifacts, models.Artifact{
				Key:  o.NombreOC,
				Path: outputPath,
				Kind: tpl.Kind,
				Row:  o.Row,
			})
		}
	}
	return nil
}
