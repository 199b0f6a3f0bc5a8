package domain

import (
	"encoding/json"
	"testing"
)

func TestParseDocumentPreservesDepartmentOrder(t *testing.T) {
	input := `{
		"department_data": {
			"Zeta": {"tasks": [{}]},
			"Alpha": {"tasks": [{}, {}]},
			"Mid": {}
		}
	}`
	doc, err := ParseDocument([]byte(input))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(doc.Departments) != 3 {
		t.Fatalf("expected 3 departments, got %d", len(doc.Departments))
	}
	want := []string{"Zeta", "Alpha", "Mid"}
	for i, name := range want {
		if doc.Departments[i].Name != name {
			t.Fatalf("department %d: expected %q, got %q", i, name, doc.Departments[i].Name)
		}
	}
	if len(doc.Departments[1].Record.Tasks) != 2 {
		t.Fatalf("expected Alpha to have 2 tasks, got %d", len(doc.Departments[1].Record.Tasks))
	}
}

func TestParseDocumentMissingCollectionIsEmpty(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"something_else": [1, 2, 3]}`))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(doc.Departments) != 0 {
		t.Fatalf("expected empty document, got %d departments", len(doc.Departments))
	}
}

func TestParseDocumentSkipsNonObjectDepartments(t *testing.T) {
	input := `{
		"department_data": {
			"Good": {"documents": [{}]},
			"Bad": "not a department",
			"AlsoBad": [1, 2],
			"AlsoGood": {}
		}
	}`
	doc, err := ParseDocument([]byte(input))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(doc.Departments) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(doc.Departments))
	}
	if doc.Departments[0].Name != "Good" || doc.Departments[1].Name != "AlsoGood" {
		t.Fatalf("unexpected departments: %q, %q", doc.Departments[0].Name, doc.Departments[1].Name)
	}
	// Skipped entries still count toward the raw collection size.
	if doc.RawDepartmentCount != 4 {
		t.Fatalf("expected raw department count 4, got %d", doc.RawDepartmentCount)
	}
}

func TestParseDocumentNestedUnits(t *testing.T) {
	input := `{
		"department_data": {
			"Eng": {
				"teams": [
					{"tasks": [{}], "communications": {"chats": [{"sender": "a", "recipients": ["b"]}]}}
				],
				"projects": [
					{"goals": [{}, {}], "project_documents_and_contents": {"pages": 3}}
				]
			}
		}
	}`
	doc, err := ParseDocument([]byte(input))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	rec := doc.Departments[0].Record
	if len(rec.Teams) != 1 || len(rec.Teams[0].Tasks) != 1 {
		t.Fatalf("unexpected teams: %+v", rec.Teams)
	}
	if rec.Teams[0].Communications == nil || len(rec.Teams[0].Communications.Chats) != 1 {
		t.Fatalf("expected 1 team chat")
	}
	if len(rec.Projects) != 1 || len(rec.Projects[0].Goals) != 2 {
		t.Fatalf("unexpected projects: %+v", rec.Projects)
	}
	if rec.Projects[0].ProjectDocument == nil {
		t.Fatal("expected project document to be present")
	}
}

func TestFeatureRecordMarshalJSONOrderAndTypes(t *testing.T) {
	rec := FeatureRecord{
		DepartmentName:         "Eng",
		TaskRepetitionScore:    3,
		WorkflowComplexity:     6,
		DataStructureScore:     1,
		CommunicationFrequency: 4,
		AverageSentiment:       0.5,
		StakeholderDependency:  0.4,
		TimeSpread:             3600,
		Columns:                AllMetrics(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"department_name":"Eng","task_repetition_score":3,"workflow_complexity":6,` +
		`"data_structure_score":1,"communication_frequency":4,"average_sentiment":0.5,` +
		`"stakeholder_dependency":0.4,"time_spread":3600}`
	if string(data) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}

func TestFeatureRecordMarshalJSONFocusFiltering(t *testing.T) {
	rec := FeatureRecord{
		DepartmentName:      "Ops",
		TaskRepetitionScore: 7,
		AverageSentiment:    -0.25,
		Columns:             []MetricKey{MetricTaskRepetition, MetricAverageSentiment},
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"department_name":"Ops","task_repetition_score":7,"average_sentiment":-0.25}`
	if string(data) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}

func TestFeatureTableMatrix(t *testing.T) {
	table := FeatureTable{
		{TaskRepetitionScore: 2, AverageSentiment: 0.5},
		{TaskRepetitionScore: 4, AverageSentiment: -0.5},
	}
	matrix := table.Matrix([]MetricKey{MetricTaskRepetition, MetricAverageSentiment})
	if len(matrix) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(matrix))
	}
	if matrix[0][0] != 2 || matrix[0][1] != 0.5 || matrix[1][0] != 4 || matrix[1][1] != -0.5 {
		t.Fatalf("unexpected matrix: %v", matrix)
	}
}
