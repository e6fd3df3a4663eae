// Package export renders tabular reports as XLSX spreadsheets and PDF documents.
package export

import "fmt"

// Dataset is one titled table.
type Dataset struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Report is a document made of one or more tables.
type Report struct {
	Title    string
	Subtitle string
	Sections []Dataset
}

func (r Report) validate() error {
	if len(r.Sections) == 0 {
		return fmt.Errorf("report %q has no sections", r.Title)
	}
	for _, s := range r.Sections {
		if len(s.Headers) == 0 {
			return fmt.Errorf("section %q requires at least one header", s.Title)
		}
	}
	return nil
}
