package models

// TemplateKind identifies a template family.
type TemplateKind string

const (
	// KindDocument is a Word (.docx) template with {{ placeholder }} slots.
	KindDocument TemplateKind = "document"
	// KindSpreadsheet is an Excel (.xlsx) template filled at fixed cells.
	KindSpreadsheet TemplateKind = "spreadsheet"
)

// Extension returns the output file extension of the family, without dot.
func (k TemplateKind) Extension() string {
	switch k {
	case KindDocument:
		return "docx"
	case KindSpreadsheet:
		return "xlsx"
	}
	return ""
}

// Template is a resolved catalog entry.
type Template struct {
	// Code is the type code that selected the template.
	Code string `json:"code"`
	// Path is the template file path.
	Path string `json:"path"`
	// Kind is the template family.
	Kind TemplateKind `json:"kind"`
}
