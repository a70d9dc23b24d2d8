package filler

import (
	"github.com/ukaji3/docbatch-go/pkg/docbatch/models"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/parser"
)

// DocumentFields returns the placeholder bindings of a document template.
func DocumentFields(o models.Order, date string) map[string]string {
	return map[string]string{
		"Numero_OC":     o.OC,
		"Nombre_OC":     o.Nombre,
		"Desarrollador": o.Desarrollador,
		"Rol":           o.Rol,
		"Aplicacion":    o.Aplicacion,
		"Firma_ET":      o.FirmaET,
		"Fecha":         date,
	}
}

// CellBinding writes one value into one cell.
type CellBinding struct {
	Cell  string
	Value func(o models.Order, date string) interface{}
}

// SheetBinding groups the cell bindings of one sheet.
// Sheets missing from a template are skipped.
type SheetBinding struct {
	Sheet string
	Cells []CellBinding
}

func column(name string) func(models.Order, string) interface{} {
	return func(o models.Order, _ string) interface{} {
		v, _ := o.Field(name)
		if !o.IsNumeric(name) {
			return v
		}
		return parser.ParseValue(v)
	}
}

func runDate(_ models.Order, date string) interface{} {
	return date
}

func developerRole(o models.Order, _ string) interface{} {
	return o.Desarrollador + "/" + o.Rol
}

// SheetBindings is the fixed sheet/cell map applied to spreadsheet templates.
var SheetBindings = []SheetBinding{
	{
		Sheet: "Portada",
		Cells: []CellBinding{
			{"F10", runDate},
			{"F11", runDate},
			{"F14", column(models.ColumnNombre)},
			{"F15", column(models.ColumnOC)},
			{"F23", column(models.ColumnDesarrollador)},
			{"F21", developerRole},
		},
	},
	{
		Sheet: "Caso 1",
		Cells: []CellBinding{
			{"C1", column(models.ColumnAplicacion)},
		},
	},
	{
		Sheet: "1-Est. y Planeación",
		Cells: []CellBinding{
			{"M3", column(models.ColumnOC)},
			{"L11", column(models.ColumnQA)},
			{"Y3", column(models.ColumnNombre)},
			{"AR3", column(models.ColumnAplicacion)},
			{"J7", runDate},
		},
	},
	{
		Sheet: "2-Diseño de Casos Prueba",
		Cells: []CellBinding{
			{"B6", column(models.ColumnAplicacion)},
		},
	},
}
