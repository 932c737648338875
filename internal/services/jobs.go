package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/telemetry"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
	"github.com/skuledger/skuledger/pkg/scheduler"
)

const defaultMaxFinishedJobs = 500

// JobService runs mutating operations in the background and tracks their
// state. Work goes through the scheduler, which must have a single worker so
// jobs run one at a time in submission order.
type JobService struct {
	scheduler *scheduler.Scheduler
	pipeline  *PipelineService
	view      *ViewService
	retention *RetentionService

	mu          sync.RWMutex
	jobs        map[string]*models.Job
	maxFinished int
	log         *zap.SugaredLogger
}

func NewJobService(s *scheduler.Scheduler, pipeline *PipelineService, view *ViewService, retention *RetentionService) *JobService {
	telemetry.TrackPendingJobs(s.Pending)
	return &JobService{
		scheduler: s,
		pipeline:  pipeline,
		view:      view,
		retention: retention,
		jobs:        make(map[string]*models.Job),
		maxFinished: defaultMaxFinishedJobs,
		log:         zap.S().Named("job_service"),
	}
}

// WithMaxFinished sets how many finished jobs stay queryable.
func (j *JobService) WithMaxFinished(n int) *JobService {
	if n > 0 {
		j.maxFinished = n
	}
	return j
}

// SubmitPipeline queues ingestion of one export followed by its derived updates.
func (j *JobService) SubmitPipeline(date string, rows []models.ExportRow) (models.Job, error) {
	date, err := models.ParseDate("date", date)
	if err != nil {
		return models.Job{}, err
	}
	return j.submit(models.JobKindPipeline, "pipeline "+date, func(ctx context.Context) (any, error) {
		return j.pipeline.Run(ctx, date, rows)
	}), nil
}

// SubmitRefresh queues a view rebuild. An empty date rebuilds as of the latest snapshot.
func (j *JobService) SubmitRefresh(date string) (models.Job, error) {
	if date == "" {
		return j.submit(models.JobKindRefresh, "refresh latest", func(ctx context.Context) (any, error) {
			asOf, rows, err := j.view.RefreshLatest(ctx)
			return map[string]any{"date": asOf, "rows": rows}, err
		}), nil
	}

	date, err := models.ParseDate("date", date)
	if err != nil {
		return models.Job{}, err
	}
	return j.submit(models.JobKindRefresh, "refresh "+date, func(ctx context.Context) (any, error) {
		rows, err := j.view.Refresh(ctx, date)
		return map[string]any{"date": date, "rows": rows}, err
	}), nil
}

func (j *JobService) SubmitRetention() models.Job {
	return j.submit(models.JobKindRetention, "retention", func(ctx context.Context) (any, error) {
		return j.retention.PruneExpired(ctx)
	})
}

func (j *JobService) Get(id string) (models.Job, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	job, ok := j.jobs[id]
	if !ok {
		return models.Job{}, srvErrors.NewJobNotFoundError(id)
	}
	return *job, nil
}

// Wait blocks until job id reaches a final state or ctx ends.
func (j *JobService) Wait(ctx context.Context, id string) (models.Job, error) {
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		job, err := j.Get(id)
		if err != nil {
			return job, err
		}
		if job.State == models.JobStateSucceeded || job.State == models.JobStateFailed {
			return job, nil
		}
		select {
		case <-ctx.Done():
			return job, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (j *JobService) submit(kind models.JobKind, name string, work scheduler.Work[any]) models.Job {
	job := &models.Job{
		ID:        uuid.NewString(),
		Kind:      kind,
		State:     models.JobStatePending,
		CreatedAt: time.Now().UTC(),
	}

	j.mu.Lock()
	j.jobs[job.ID] = job
	j.evictLocked()
	snapshot := *job
	j.mu.Unlock()

	j.log.Infow("job submitted", "id", job.ID, "kind", kind)

	future := j.scheduler.AddWork(name, func(ctx context.Context) (any, error) {
		j.update(job.ID, func(jb *models.Job) {
			now := time.Now().UTC()
			jb.State = models.JobStateRunning
			jb.StartedAt = &now
		})
		return work(ctx)
	})

	go j.track(job.ID, kind, future)
	return snapshot
}

func (j *JobService) track(id string, kind models.JobKind, future *scheduler.Future[scheduler.Result[any]]) {
	result := <-future.C()

	j.update(id, func(jb *models.Job) {
		now := time.Now().UTC()
		jb.FinishedAt = &now
		if result.Err != nil {
			jb.State = models.JobStateFailed
			jb.Error = result.Err.Error()
			return
		}
		jb.State = models.JobStateSucceeded
		jb.Result = result.Data
	})

	job, _ := j.Get(id)
	telemetry.CountJob(string(kind), string(job.State))
	if job.State == models.JobStateFailed {
		j.log.Errorw("job failed", "id", id, "kind", kind, "error", job.Error)
		return
	}
	j.log.Infow("job succeeded", "id", id, "kind", kind)
}

func (j *JobService) update(id string, fn func(*models.Job)) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if job, ok := j.jobs[id]; ok {
		fn(job)
	}
}

// evictLocked drops the oldest finished jobs beyond maxFinished.
func (j *JobService) evictLocked() {
	var finished []*models.Job
	for _, job := range j.jobs {
		if job.FinishedAt != nil {
			finished = append(finished, job)
		}
	}
	if len(finished) <= j.maxFinished {
		return
	}
	sort.Slice(finished, func(a, b int) bool { return finished[a].FinishedAt.Before(*finished[b].FinishedAt) })
	for _, job := range finished[:len(finished)-j.maxFinished] {
		delete(j.jobs, job.ID)
	}
}
