package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	v1 "github.com/skuledger/skuledger/api/v1"
	"github.com/skuledger/skuledger/internal/export"
	"github.com/skuledger/skuledger/internal/models"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

const jobsHandler = "jobs_handler"

// UploadSnapshot queues ingestion of one export as the snapshot of date.
// The body is either a multipart form with a "file" field (csv or xlsx) or
// a JSON SnapshotUpload.
// (POST /snapshots/{date})
func (h *Handler) UploadSnapshot(c *gin.Context, date string) {
	rows, err := readUpload(c)
	if err != nil {
		respondError(c, jobsHandler, "failed to read snapshot", err)
		return
	}

	job, err := h.jobSrv.SubmitPipeline(date, rows)
	if err != nil {
		respondError(c, jobsHandler, "failed to queue snapshot", err)
		return
	}

	c.JSON(http.StatusAccepted, v1.JobAccepted{JobId: job.ID})
}

func readUpload(c *gin.Context) ([]models.ExportRow, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			return nil, srvErrors.NewValidationErrorf("file", "missing export file: %v", err)
		}
		format, err := export.FormatOf(header.Filename)
		if err != nil {
			return nil, err
		}
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()

		rows, err := export.Read(f, format)
		if err != nil && !srvErrors.IsValidationError(err) {
			return nil, srvErrors.NewValidationErrorf("file", "%v", err)
		}
		return rows, err
	}

	var upload v1.SnapshotUpload
	if err := c.ShouldBindJSON(&upload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, srvErrors.NewValidationError("body", "request body is empty")
		}
		return nil, srvErrors.NewValidationErrorf("body", "invalid snapshot: %v", err)
	}
	return upload.ToModel(), nil
}

// RefreshView queues a rebuild of the current view. Without a date the latest
// snapshot is used.
// (POST /inventory/refresh-view)
func (h *Handler) RefreshView(c *gin.Context) {
	var req v1.RefreshViewRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondError(c, jobsHandler, "failed to queue refresh", srvErrors.NewValidationErrorf("body", "invalid request: %v", err))
			return
		}
	}

	job, err := h.jobSrv.SubmitRefresh(stringOr(req.Date, ""))
	if err != nil {
		respondError(c, jobsHandler, "failed to queue refresh", err)
		return
	}

	c.JSON(http.StatusAccepted, v1.JobAccepted{JobId: job.ID})
}

// StartRetention queues a prune of expired history
// (POST /retention)
func (h *Handler) StartRetention(c *gin.Context) {
	job := h.jobSrv.SubmitRetention()
	c.JSON(http.StatusAccepted, v1.JobAccepted{JobId: job.ID})
}

// GetJob returns the state of a background job
// (GET /jobs/{id})
func (h *Handler) GetJob(c *gin.Context, id string) {
	job, err := h.jobSrv.Get(id)
	if err != nil {
		respondError(c, jobsHandler, "failed to fetch job", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewJobFromModel(job))
}
