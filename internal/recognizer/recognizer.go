// Package recognizer orchestrates feature extraction across departments
// and owns the automation-readiness classifier.
package recognizer

import (
	"errors"
	"fmt"

	"autoready/internal/boost"
	"autoready/internal/domain"
	"autoready/internal/features"
)

// ErrUnfittedModel is returned by Predict when Train has not completed
// successfully.
var ErrUnfittedModel = errors.New("model not fitted: Train must succeed before Predict")

// DimensionMismatchError reports a label vector whose length does not
// match the number of departments in the training document.
type DimensionMismatchError struct {
	Labels      int
	Departments int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("label count %d does not match department count %d", e.Labels, e.Departments)
}

// Recognizer extracts per-department features and fits a gradient-boosted
// binary classifier over the numeric columns. One Train call per instance
// is the assumed contract.
type Recognizer struct {
	focus []domain.MetricKey

	model       *boost.Classifier
	scaler      *scaler
	trainedCols []domain.MetricKey
}

// New builds a recognizer. With no arguments every metric column is
// retained; otherwise only the given focus metrics are.
func New(focus ...domain.MetricKey) *Recognizer {
	if len(focus) == 0 {
		return &Recognizer{}
	}
	return &Recognizer{focus: focus}
}

// ExtractFeatures produces one feature record per department, in the
// document's department order.
func (r *Recognizer) ExtractFeatures(doc domain.OrganizationalDocument) (domain.FeatureTable, error) {
	table := make(domain.FeatureTable, 0, len(doc.Departments))
	for _, dept := range doc.Departments {
		rec, err := features.Extract(dept.Name, dept.Record, r.focus)
		if err != nil {
			return nil, fmt.Errorf("extract department %q: %w", dept.Name, err)
		}
		table = append(table, rec)
	}
	return table, nil
}

// Train extracts features for every department and fits the classifier
// against the supplied binary labels, which align with the document's
// department order. Numeric columns are standardized to zero mean and unit
// variance before fitting; department_name never enters the matrix.
func (r *Recognizer) Train(doc domain.OrganizationalDocument, labels []int) error {
	table, err := r.ExtractFeatures(doc)
	if err != nil {
		return err
	}
	if len(labels) != len(table) {
		return &DimensionMismatchError{Labels: len(labels), Departments: len(table)}
	}
	if len(table) == 0 {
		return fmt.Errorf("train: document has no departments")
	}

	cols := r.numericColumns()
	matrix := table.Matrix(cols)
	sc := fitScaler(matrix)
	model := boost.NewClassifier()
	if err := model.Fit(sc.transform(matrix), labels); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	r.model = model
	r.scaler = sc
	r.trainedCols = cols
	return nil
}

// Predict extracts features and returns one binary label per department,
// in extraction order.
func (r *Recognizer) Predict(doc domain.OrganizationalDocument) ([]int, error) {
	if r.model == nil {
		return nil, ErrUnfittedModel
	}
	table, err := r.ExtractFeatures(doc)
	if err != nil {
		return nil, err
	}
	matrix := table.Matrix(r.trainedCols)
	labels, err := r.model.Predict(r.scaler.transform(matrix))
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	return labels, nil
}

func (r *Recognizer) numericColumns() []domain.MetricKey {
	if r.focus == nil {
		return domain.AllMetrics()
	}
	return append([]domain.MetricKey(nil), r.focus...)
}
