// Package sqlite persists analysis runs and their per-department feature
// rows.
package sqlite

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"autoready/internal/domain"
)

type Run struct {
	ID          int64
	InputPath   string
	Departments int
	RanAt       time.Time
}

type FeatureRow struct {
	ID                     int64
	RunID                  int64
	DepartmentName         string
	TaskRepetitionScore    int
	WorkflowComplexity     int
	DataStructureScore     int
	CommunicationFrequency int
	AverageSentiment       float64
	StakeholderDependency  float64
	TimeSpread             float64
	CreatedAt              time.Time
}

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS analysis_runs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		input_path  TEXT NOT NULL,
		departments INTEGER NOT NULL DEFAULT 0,
		ran_at      DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_analysis_runs_ran_at ON analysis_runs(ran_at);

	CREATE TABLE IF NOT EXISTS department_features (
		id                      INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id                  INTEGER NOT NULL,
		department_name         TEXT NOT NULL,
		task_repetition_score   INTEGER NOT NULL DEFAULT 0,
		workflow_complexity     INTEGER NOT NULL DEFAULT 0,
		data_structure_score    INTEGER NOT NULL DEFAULT 0,
		communication_frequency INTEGER NOT NULL DEFAULT 0,
		average_sentiment       REAL NOT NULL DEFAULT 0,
		stakeholder_dependency  REAL NOT NULL DEFAULT 0,
		time_spread             REAL NOT NULL DEFAULT 0,
		created_at              DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_df_run ON department_features(run_id);
	CREATE INDEX IF NOT EXISTS idx_df_department ON department_features(department_name);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func InsertRun(db *sql.DB, run Run) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO analysis_runs (input_path, departments, ran_at) VALUES (?, ?, ?)`,
		run.InputPath, run.Departments, run.RanAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertFeatureRows persists one row per department in a single
// transaction and returns the number inserted.
func InsertFeatureRows(db *sql.DB, runID int64, table domain.FeatureTable) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO department_features
		 (run_id, department_name, task_repetition_score, workflow_complexity, data_structure_score,
		  communication_frequency, average_sentiment, stakeholder_dependency, time_spread)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, rec := range table {
		_, err := stmt.Exec(
			runID, rec.DepartmentName, rec.TaskRepetitionScore, rec.WorkflowComplexity,
			rec.DataStructureScore, rec.CommunicationFrequency, rec.AverageSentiment,
			rec.StakeholderDependency, rec.TimeSpread,
		)
		if err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, tx.Commit()
}

func GetRunFeatures(db *sql.DB, runID int64) ([]FeatureRow, error) {
	rows, err := db.Query(
		`SELECT id, run_id, department_name, task_repetition_score, workflow_complexity,
		        data_structure_score, communication_frequency, average_sentiment,
		        stakeholder_dependency, time_spread, created_at
		 FROM department_features WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FeatureRow
	for rows.Next() {
		var r FeatureRow
		err := rows.Scan(
			&r.ID, &r.RunID, &r.DepartmentName, &r.TaskRepetitionScore, &r.WorkflowComplexity,
			&r.DataStructureScore, &r.CommunicationFrequency, &r.AverageSentiment,
			&r.StakeholderDependency, &r.TimeSpread, &r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func GetRunsByDateRange(db *sql.DB, from, to time.Time) ([]Run, error) {
	rows, err := db.Query(
		`SELECT id, input_path, departments, ran_at
		 FROM analysis_runs WHERE ran_at >= ? AND ran_at < ? ORDER BY ran_at, id`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.InputPath, &r.Departments, &r.RanAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
