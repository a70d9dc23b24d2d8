// Package scaffold prepares the output root and the per-order folder trees.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/docbatch-go/pkg/docbatch/models"
)

// DefaultSubfolders are created under every order folder.
var DefaultSubfolders = []string{"01_Diagnostico", "02_Solucion", "03_Pruebas", "04_Instalacion"}

// ErrInvalidName indicates a folder name that is not a single path element.
var ErrInvalidName = errors.New("invalid folder name")

// FolderError represents a failure creating one order's folder tree.
type FolderError struct {
	Path string
	Row  int
	Err  error
}

func (e *FolderError) Error() string {
	return fmt.Sprintf("error creating folders in %s (row %d): %v", e.Path, e.Row, e.Err)
}

func (e *FolderError) Unwrap() error {
	return e.Err
}

// Reset removes path if it exists and creates it again empty.
func Reset(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}

// FolderName returns the OC_<OC>_<NOMBRE> folder name of an order.
func FolderName(o models.Order) string {
	return fmt.Sprintf("OC_%s_%s", o.OC, o.Nombre)
}

// Scaffold creates the folder tree of every order under root.
// A failing order is reported in the returned errors and does not stop the others.
// Existing folders are not an error.
func Scaffold(orders []models.Order, root string, subfolders []string) ([]models.FolderTree, []*FolderError) {
	if subfolders == nil {
		subfolders = DefaultSubfolders
	}

	var trees []models.FolderTree
	var failures []*FolderError
	for _, o := range orders {
		tree, err := scaffoldOrder(o, root, subfolders)
		if err != nil {
			failures = append(failures, &FolderError{Path: tree.Root, Row: o.Row, Err: err})
			continue
		}
		trees = append(trees, tree)
	}
	return trees, failures
}

func scaffoldOrder(o models.Order, root string, subfolders []string) (models.FolderTree, error) {
	name := FolderName(o)
	tree := models.FolderTree{Root: filepath.Join(root, name)}

	if err := checkName(name); err != nil {
		return tree, err
	}
	for _, sub := range subfolders {
		if err := checkName(sub); err != nil {
			return tree, err
		}
		dir := filepath.Join(tree.Root, sub)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return tree, err
		}
		tree.Subfolders = append(tree.Subfolders, dir)
	}
	return tree, nil
}

// checkName rejects names that would escape or nest below the parent folder.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`+"\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
