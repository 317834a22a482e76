// Package business loads city business lists for the pipeline. The loader
// is a collaborator at the core's boundary: the pipeline only ever sees the
// resulting records.
package business

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

// CityFilename returns the standardized data filename for a city/state
// pair, e.g. ("Fort Smith", "AR") -> "fort_smith_ar.csv".
func CityFilename(city, state string) string {
	slug := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	}
	return fmt.Sprintf("%s_%s.csv", slug(city), slug(state))
}

// LoadCity loads the business list for a city from dataDir.
func LoadCity(dataDir, city, state string) ([]core.BusinessRecord, error) {
	return LoadCSV(filepath.Join(dataDir, CityFilename(city, state)))
}

// LoadCSV reads business records from a CSV file with a
// name,address,phone,website header. Column order is not significant; rows
// with an empty name are skipped.
func LoadCSV(path string) ([]core.BusinessRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open business data: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses business records from CSV content.
func ReadCSV(r io.Reader) ([]core.BusinessRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("CSV is missing a name column")
	}

	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []core.BusinessRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}

		name := field(row, "name")
		if name == "" {
			continue
		}
		records = append(records, core.BusinessRecord{
			Name:    name,
			Address: field(row, "address"),
			Phone:   field(row, "phone"),
			Website: field(row, "website"),
		})
	}

	return records, nil
}
