// Package features turns one department's nested activity into a flat
// feature record.
package features

import (
	"encoding/json"

	"autoready/internal/commgraph"
	"autoready/internal/domain"
	"autoready/internal/sentiment"
	"autoready/internal/temporal"
)

// aggregate folds a department's direct activity, its teams, and its
// projects into flat accumulators. Project goals count as tasks, and a
// present project document bundle counts as exactly one document.
func aggregate(dept domain.DepartmentRecord) (tasks, documents []json.RawMessage, comms domain.CommunicationBundle) {
	tasks = append(tasks, dept.Tasks...)
	documents = append(documents, dept.Documents...)
	comms.Extend(dept.Communications)

	for _, team := range dept.Teams {
		tasks = append(tasks, team.Tasks...)
		documents = append(documents, team.Documents...)
		comms.Extend(team.Communications)
	}
	for _, project := range dept.Projects {
		tasks = append(tasks, project.Goals...)
		if project.ProjectDocument != nil {
			documents = append(documents, project.ProjectDocument)
		}
		comms.Extend(project.Communications)
	}
	return tasks, documents, comms
}

// Extract computes the seven metrics for one department. Every metric is
// computed; focus selects the columns retained downstream (nil means all).
// The department name is always retained regardless of focus. The only
// error source is a malformed communication timestamp.
func Extract(name string, dept domain.DepartmentRecord, focus []domain.MetricKey) (domain.FeatureRecord, error) {
	tasks, documents, comms := aggregate(dept)

	spread, err := temporal.MeanGap(comms)
	if err != nil {
		return domain.FeatureRecord{}, err
	}

	rec := domain.FeatureRecord{
		DepartmentName:         name,
		TaskRepetitionScore:    len(tasks),
		WorkflowComplexity:     len(tasks) * 2,
		DataStructureScore:     len(documents),
		CommunicationFrequency: len(comms.Emails) + len(comms.Chats),
		AverageSentiment:       sentiment.MeanCompound(comms),
		StakeholderDependency:  commgraph.MeanDegreeCentrality(comms),
		TimeSpread:             spread,
	}
	if focus == nil {
		rec.Columns = domain.AllMetrics()
	} else {
		rec.Columns = append([]domain.MetricKey(nil), focus...)
	}
	return rec, nil
}
