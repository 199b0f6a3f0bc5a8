package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MetricKey names one computed feature column.
type MetricKey string

const (
	MetricTaskRepetition         MetricKey = "task_repetition_score"
	MetricWorkflowComplexity     MetricKey = "workflow_complexity"
	MetricDataStructure          MetricKey = "data_structure_score"
	MetricCommunicationFrequency MetricKey = "communication_frequency"
	MetricAverageSentiment       MetricKey = "average_sentiment"
	MetricStakeholderDependency  MetricKey = "stakeholder_dependency"
	MetricTimeSpread             MetricKey = "time_spread"
)

// AllMetrics returns the seven feature columns in canonical order.
func AllMetrics() []MetricKey {
	return []MetricKey{
		MetricTaskRepetition,
		MetricWorkflowComplexity,
		MetricDataStructure,
		MetricCommunicationFrequency,
		MetricAverageSentiment,
		MetricStakeholderDependency,
		MetricTimeSpread,
	}
}

func ParseMetricKey(s string) (MetricKey, error) {
	for _, k := range AllMetrics() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown metric key %q", s)
}

// FeatureRecord is one department's feature row. All metrics are always
// computed; Columns lists the ones retained by the focus-metric selection.
// DepartmentName is exempt from filtering.
type FeatureRecord struct {
	DepartmentName         string
	TaskRepetitionScore    int
	WorkflowComplexity     int
	DataStructureScore     int
	CommunicationFrequency int
	AverageSentiment       float64
	StakeholderDependency  float64
	TimeSpread             float64

	Columns []MetricKey
}

// Value returns the named metric as a float regardless of its stored type.
func (r FeatureRecord) Value(k MetricKey) float64 {
	switch k {
	case MetricTaskRepetition:
		return float64(r.TaskRepetitionScore)
	case MetricWorkflowComplexity:
		return float64(r.WorkflowComplexity)
	case MetricDataStructure:
		return float64(r.DataStructureScore)
	case MetricCommunicationFrequency:
		return float64(r.CommunicationFrequency)
	case MetricAverageSentiment:
		return r.AverageSentiment
	case MetricStakeholderDependency:
		return r.StakeholderDependency
	case MetricTimeSpread:
		return r.TimeSpread
	}
	return 0
}

// Has reports whether the focus selection retained the column.
func (r FeatureRecord) Has(k MetricKey) bool {
	for _, c := range r.Columns {
		if c == k {
			return true
		}
	}
	return false
}

// MarshalJSON writes department_name first and the retained metrics in
// canonical order, with integer columns emitted as integers. A map would
// sort keys alphabetically and lose the table's column order.
func (r FeatureRecord) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')

	name, err := json.Marshal(r.DepartmentName)
	if err != nil {
		return nil, err
	}
	b.WriteString(`"department_name":`)
	b.Write(name)

	for _, k := range AllMetrics() {
		if !r.Has(k) {
			continue
		}
		b.WriteByte(',')
		b.WriteByte('"')
		b.WriteString(string(k))
		b.WriteString(`":`)
		switch k {
		case MetricTaskRepetition, MetricWorkflowComplexity, MetricDataStructure, MetricCommunicationFrequency:
			b.WriteString(strconv.Itoa(int(r.Value(k))))
		default:
			b.WriteString(strconv.FormatFloat(r.Value(k), 'g', -1, 64))
		}
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// FeatureTable is one row per department, in extraction order.
type FeatureTable []FeatureRecord

// Matrix projects the table onto the given numeric columns, one row per
// record.
func (t FeatureTable) Matrix(cols []MetricKey) [][]float64 {
	rows := make([][]float64, len(t))
	for i, rec := range t {
		row := make([]float64, len(cols))
		for j, k := range cols {
			row[j] = rec.Value(k)
		}
		rows[i] = row
	}
	return rows
}
