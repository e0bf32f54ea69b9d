package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/multimediallc/namegroups/pkg/people"
)

type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatOneLine OutputFormat = "one-line"
	FormatJSON    OutputFormat = "json"
)

var allowedFormats = []string{string(FormatDefault), string(FormatOneLine), string(FormatJSON)}

func validateFormat(format string) (OutputFormat, error) {
	if !slices.Contains(allowedFormats, format) {
		return "", fmt.Errorf("invalid format %s. Must be one of %s", format, strings.Join(allowedFormats, ", "))
	}
	return OutputFormat(format), nil
}

func writeGrouping(w io.Writer, g *people.Grouping, format OutputFormat) error {
	switch format {
	case FormatJSON:
		data, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatOneLine:
		for _, key := range g.Keys() {
			if _, err := fmt.Fprintf(w, "%s: %s\n", key, strings.Join(g.Get(key), ", ")); err != nil {
				return err
			}
		}
		return nil
	default:
		for i, key := range g.Keys() {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%s:\n", key); err != nil {
				return err
			}
			for _, value := range g.Get(key) {
				if _, err := fmt.Fprintf(w, "  %s\n", value); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
