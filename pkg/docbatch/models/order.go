// Package models defines the data structures shared by the batch generator.
package models

// Column names expected in the parameters sheet.
const (
	ColumnOC            = "OC"
	ColumnNombre        = "NOMBRE"
	ColumnTipo          = "TIPO"
	ColumnNombreOC      = "NOMBRE_OC"
	ColumnDesarrollador = "DESARROLLADOR"
	ColumnRol           = "ROL"
	ColumnAplicacion    = "APLICACION"
	ColumnFirmaET       = "FIRMA_ET"
	ColumnQA            = "QA"
)

// Columns lists every column the parameters sheet must carry, in sheet order.
var Columns = []string{
	ColumnOC,
	ColumnNombre,
	ColumnTipo,
	ColumnNombreOC,
	ColumnDesarrollador,
	ColumnRol,
	ColumnAplicacion,
	ColumnFirmaET,
	ColumnQA,
}

// RequiredColumns must be present for a sheet to be read. The other columns
// read as empty when absent.
var RequiredColumns = []string{
	ColumnOC,
	ColumnNombre,
	ColumnTipo,
	ColumnNombreOC,
}

// Order represents one row of the parameters sheet.
type Order struct {
	// Row is the 1-based sheet row the order was read from.
	Row int `json:"row"`
	// OC is the order id.
	OC string `json:"oc"`
	// Nombre is the order name.
	Nombre string `json:"nombre"`
	// Tipo is the type code selecting the template.
	Tipo string `json:"tipo"`
	// NombreOC is the grouping key used to name the output artifact.
	NombreOC      string `json:"nombre_oc"`
	Desarrollador string `json:"desarrollador"`
	Rol           string `json:"rol"`
	Aplicacion    string `json:"aplicacion"`
	FirmaET       string `json:"firma_et"`
	QA            string `json:"qa"`

	// Numeric marks the columns whose source cell holds a number.
	// Text cells are never listed, whatever they look like.
	Numeric map[string]bool `json:"numeric,omitempty"`
}

// IsNumeric reports whether the column's source cell holds a number.
func (o Order) IsNumeric(column string) bool {
	return o.Numeric[column]
}

// Field returns the value of the named column.
// ok is false for names outside Columns.
func (o Order) Field(column string) (value string, ok bool) {
	switch column {
	case ColumnOC:
		return o.OC, true
	case ColumnNombre:
		return o.Nombre, true
	case ColumnTipo:
		return o.Tipo, true
	case ColumnNombreOC:
		return o.NombreOC, true
	case ColumnDesarrollador:
		return o.Desarrollador, true
	case ColumnRol:
		return o.Rol, true
	case ColumnAplicacion:
		return o.Aplicacion, true
	case ColumnFirmaET:
		return o.FirmaET, true
	case ColumnQA:
		return o.QA, true
	}
	return "", false
}

// GroupByKey groups orders by NombreOC. Groups keep the order in which their
// key first appears and rows keep sheet order inside a group.
func GroupByKey(orders []Order) [][]Order {
	index := make(map[string]int)
	var groups [][]Order
	for _, o := range orders {
		i, ok := index[o.NombreOC]
		if !ok {
			i = len(groups)
			index[o.NombreOC] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], o)
	}
	return groups
}
