package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGroupByKey(t *testing.T) {
	orders := []Order{
		{Row: 2, NombreOC: "B"},
		{Row: 3, NombreOC: "A"},
		{Row: 4, NombreOC: "B"},
		{Row: 5, NombreOC: "C"},
		{Row: 6, NombreOC: "A"},
	}

	got := GroupByKey(orders)
	want := [][]Order{
		{{Row: 2, NombreOC: "B"}, {Row: 4, NombreOC: "B"}},
		{{Row: 3, NombreOC: "A"}, {Row: 6, NombreOC: "A"}},
		{{Row: 5, NombreOC: "C"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupByKey mismatch (-want +got):\n%s", diff)
	}

	if groups := GroupByKey(nil); len(groups) != 0 {
		t.Errorf("Expected no groups, got %d", len(groups))
	}
}

func TestOrderField(t *testing.T) {
	o := Order{OC: "1", Nombre: "n", Tipo: "t", NombreOC: "k", Desarrollador: "d", Rol: "r", Aplicacion: "a", FirmaET: "f", QA: "q"}
	want := []string{"1", "n", "t", "k", "d", "r", "a", "f", "q"}

	for i, column := range Columns {
		got, ok := o.Field(column)
		if !ok || got != want[i] {
			t.Errorf("Field(%q) = %q, %v; expected %q", column, got, ok, want[i])
		}
	}
	if _, ok := o.Field("UNKNOWN"); ok {
		t.Error("Field(UNKNOWN) should not be found")
	}
}

func TestOrderIsNumeric(t *testing.T) {
	o := Order{OC: "7", QA: "1.50", Numeric: map[string]bool{ColumnOC: true}}
	if !o.IsNumeric(ColumnOC) {
		t.Error("OC should be numeric")
	}
	if o.IsNumeric(ColumnQA) {
		t.Error("QA should not be numeric")
	}
	if (Order{}).IsNumeric(ColumnOC) {
		t.Error("zero Order should have no numeric columns")
	}
}

func TestRequiredColumns(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range Columns {
		known[c] = true
	}
	for _, c := range RequiredColumns {
		if !known[c] {
			t.Errorf("required column %q is not a known column", c)
		}
	}
}

func TestTemplateKindExtension(t *testing.T) {
	tests := []struct {
		kind     TemplateKind
		expected string
	}{
		{KindDocument, "docx"},
		{KindSpreadsheet, "xlsx"},
		{TemplateKind("other"), ""},
	}
	for _, tt := range tests {
		if got := tt.kind.Extension(); got != tt.expected {
			t.Errorf("%q.Extension() = %q, expected %q", tt.kind, got, tt.expected)
		}
	}
}
