package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"mkvlive/internal/element"
)

// renderTree renders a parsed element tree as a connected list.
func renderTree(root *element.Master) string {
	lw := list.NewWriter()
	lw.SetStyle(list.StyleConnectedLight)
	for _, child := range root.Children() {
		appendTreeItem(lw, child)
	}
	return lw.Render()
}

func appendTreeItem(lw list.Writer, el element.Element) {
	if m, ok := el.(*element.Master); ok {
		lw.AppendItem(m.Name())
		lw.Indent()
		for _, child := range m.Children() {
			appendTreeItem(lw, child)
		}
		lw.UnIndent()
		return
	}
	lw.AppendItem(fmt.Sprintf("%s (%s)", el.Name(), el.ValueString()))
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
