// Package export writes the feature table as a results JSON document.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"autoready/internal/domain"
)

type InputSummary struct {
	TotalDepartments int `json:"total_departments"`
}

type Results struct {
	MetricsTable []domain.FeatureRecord `json:"metrics_table"`
	InputSummary InputSummary           `json:"input_summary"`
}

// Marshal builds the results document: one metrics row per department plus
// the input summary. totalDepartments is the raw department_data key count
// (domain.OrganizationalDocument.RawDepartmentCount), which can exceed the
// table length when non-object entries were skipped.
func Marshal(table domain.FeatureTable, totalDepartments int) ([]byte, error) {
	res := Results{
		MetricsTable: []domain.FeatureRecord(table),
		InputSummary: InputSummary{TotalDepartments: totalDepartments},
	}
	if res.MetricsTable == nil {
		res.MetricsTable = []domain.FeatureRecord{}
	}
	return json.MarshalIndent(res, "", "    ")
}

// Write marshals the results document to path, creating parent directories
// as needed.
func Write(path string, table domain.FeatureTable, totalDepartments int) error {
	data, err := Marshal(table, totalDepartments)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
