package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

// render writes v as JSON or YAML, or calls text for the human format.
func render(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func writeTitle(w io.Writer, title string) error {
	_, err := fmt.Fprintln(w, titleStyle.Render(title))
	return err
}

func writeField(w io.Writer, label, value string) error {
	_, err := fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), value)
	return err
}

func writeNumbered(w io.Writer, items []string) error {
	width := len(fmt.Sprint(len(items)))
	for i, item := range items {
		n := fmt.Sprintf("%*d.", width, i+1)
		if _, err := fmt.Fprintf(w, "%s %s\n", indexStyle.Render(n), item); err != nil {
			return err
		}
	}
	return nil
}

func writeList(w io.Writer, label string, items []string) error {
	return writeField(w, label, strings.Join(items, ", "))
}
