package models

import "time"

type JobKind string

const (
	JobKindPipeline  JobKind = "pipeline"
	JobKindRefresh   JobKind = "refresh"
	JobKindRetention JobKind = "retention"
)

type JobState string

const (
	JobStatePending   JobState = "pending"
	JobStateRunning   JobState = "running"
	JobStateSucceeded JobState = "succeeded"
	JobStateFailed    JobState = "failed"
)

// Job tracks a long-running mutating operation dispatched to the scheduler.
type Job struct {
	ID         string     `json:"id"`
	Kind       JobKind    `json:"kind"`
	State      JobState   `json:"state"`
	Error      string     `json:"error,omitempty"`
	Result     any        `json:"result,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// PipelineResult is the outcome of ingesting one export end to end.
type PipelineResult struct {
	Ingest       IngestResult  `json:"ingest"`
	PreviousDate string        `json:"previousDate,omitempty"`
	Delta        *DeltaResult  `json:"delta,omitempty"`
	Metrics      *DailyMetrics `json:"metrics,omitempty"`
	ViewDate     string        `json:"viewDate"`
	ViewRows     int           `json:"viewRows"`
}

// RetentionResult counts the rows removed by a retention prune.
type RetentionResult struct {
	Cutoff           string `json:"cutoff"`
	SnapshotsDeleted int64  `json:"snapshotsDeleted"`
	ChangesDeleted   int64  `json:"changesDeleted"`
	MetricsDeleted   int64  `json:"metricsDeleted"`
}
