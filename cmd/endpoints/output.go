package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/Sushanth18052005/mt5-EA/pkg/endpoints"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (must be table, json, or yaml)", format)
	}
}

func writeEntries(w io.Writer, format string, entries []endpoints.Entry) error {
	switch format {
	case outputJSON:
		return writeJSON(w, entries)
	case outputYAML:
		return writeYAML(w, entries)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Name", "Method", "URL"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{string(e.Category), string(e.Name), e.Method, e.URL})
	}
	table.AppendBulk(rows)
	table.Render()
	return nil
}

// writeEntry prints a bare URL for table output so the result can be used in scripts.
func writeEntry(w io.Writer, format string, e endpoints.Entry) error {
	switch format {
	case outputJSON:
		return writeJSON(w, e)
	case outputYAML:
		return writeYAML(w, e)
	}
	_, err := fmt.Fprintln(w, e.URL)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
