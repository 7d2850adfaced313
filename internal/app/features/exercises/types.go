package exercises

import (
	"html/template"

	"github.com/dalemusser/codetrack/internal/app/system/htmlsanitize"
	"github.com/dalemusser/codetrack/internal/app/system/viewdata"
	"github.com/dalemusser/codetrack/internal/domain/models"
)

type exerciseRow struct {
	ID          string
	ProgramName string
	Name        string
	Link        string
	Done        bool
	Comment     template.HTML
	AddedAt     string
	CreatedBy   string
}

type listData struct {
	viewdata.BaseVM
	Query     string
	Searching bool
	Rows      []exerciseRow
}

type formData struct {
	viewdata.BaseVM
	ID          string
	ProgramName string
	Name        string
	Link        string
	Done        bool
	Comment     string
	Programs    []string
}

func toRow(ex models.Exercise) exerciseRow {
	row := exerciseRow{
		ID:          ex.ID.Hex(),
		ProgramName: ex.ProgramName,
		Name:        ex.Name,
		Link:        ex.Link,
		Done:        ex.Done(),
		Comment:     htmlsanitize.SanitizeToHTML(ex.Comment),
		CreatedBy:   ex.CreatedBy,
	}
	if t := ex.AddedAt(); !t.IsZero() {
		row.AddedAt = t.Format("2006-01-02")
	}
	return row
}

func toRows(list []models.Exercise) []exerciseRow {
	rows := make([]exerciseRow, 0, len(list))
	for _, ex := range list {
		rows = append(rows, toRow(ex))
	}
	return rows
}
