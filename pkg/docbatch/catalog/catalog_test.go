package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/models"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	app := touch(t, dir, "APP_01.docx")
	epp := touch(t, dir, "EPP_01.xlsx")
	odt := touch(t, dir, "ODT_01.odt")

	c := New(
		map[string]string{"APP_": app, "AEPP_": filepath.Join(dir, "missing.docx"), "ODT_": odt},
		map[string]string{"EPP_": epp},
	)

	tests := []struct {
		code    string
		want    models.Template
		wantErr error
	}{
		{"APP_", models.Template{Code: "APP_", Path: app, Kind: models.KindDocument}, nil},
		{"EPP_", models.Template{Code: "EPP_", Path: epp, Kind: models.KindSpreadsheet}, nil},
		{"AEPP_", models.Template{}, ErrTemplateNotFound},
		{"XYZ_", models.Template{}, ErrTemplateNotFound},
		{"ODT_", models.Template{}, ErrUnsupportedTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := c.Resolve(tt.code)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve(%q) error = %v, expected %v", tt.code, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", tt.code, diff)
			}
		})
	}
}

func TestResolveDirectory(t *testing.T) {
	dir := t.TempDir()
	c := New(map[string]string{"APP_": dir}, nil)

	if _, err := c.Resolve("APP_"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Resolve on a directory: error = %v, expected %v", err, ErrTemplateNotFound)
	}
}

func TestLookupSpreadsheetWins(t *testing.T) {
	c := New(map[string]string{"X_": "a.docx"}, map[string]string{"X_": "b.xlsx"})

	path, ok := c.Lookup("X_")
	if !ok || path != "b.xlsx" {
		t.Errorf("Lookup(X_) = %q, %v; expected b.xlsx", path, ok)
	}
	if !c.Has("X_") || c.Has("Y_") {
		t.Error("Has reported wrong membership")
	}
}

func TestNewCopiesTables(t *testing.T) {
	docs := map[string]string{"APP_": "a.docx"}
	c := New(docs, nil)
	docs["AEPP_"] = "b.docx"

	if c.Has("AEPP_") {
		t.Error("catalog should not observe changes to the source table")
	}
	if diff := cmp.Diff([]string{"APP_"}, c.Codes()); diff != "" {
		t.Errorf("Codes mismatch (-want +got):\n%s", diff)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		path string
		kind models.TemplateKind
		ok   bool
	}{
		{"a.docx", models.KindDocument, true},
		{"A.DOCX", models.KindDocument, true},
		{"dir/b.xlsx", models.KindSpreadsheet, true},
		{"c.xls", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		kind, ok := KindOf(tt.path)
		if kind != tt.kind || ok != tt.ok {
			t.Errorf("KindOf(%q) = %q, %v; expected %q, %v", tt.path, kind, ok, tt.kind, tt.ok)
		}
	}
}
