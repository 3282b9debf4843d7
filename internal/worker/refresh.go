// Package worker recomputes cohort layouts in the background.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"seatplan/internal/domain/value"
	"seatplan/pkg/application/modules"
	"seatplan/pkg/contextx"
	"seatplan/pkg/logx"
)

const (
	TaskRefresh = "arrangement:refresh"
	QueueName   = "seatplan"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

type refreshPayload struct {
	Cohort string `json:"cohort"`
}

func NewRefreshTask(cohort value.Cohort) (*asynq.Task, error) {
	payload, err := json.Marshal(refreshPayload{Cohort: cohort.String()})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TaskRefresh, payload, asynq.MaxRetry(3), asynq.Queue(QueueName)), nil
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer schedules refreshes. A cohort has at most one pending or running
// refresh; ballots stored meanwhile are picked up by that refresh.
type Enqueuer struct {
	client enqueuer
}

func NewEnqueuer(client enqueuer) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueRefresh(ctx context.Context, cohort value.Cohort) error {
	task, err := NewRefreshTask(cohort)
	if err != nil {
		return err
	}

	_, err = e.client.EnqueueContext(ctx, task, asynq.TaskID(TaskRefresh+":"+cohort.String()))
	switch {
	case errors.Is(err, asynq.ErrTaskIDConflict):
		logger(ctx).Debug("refresh already pending", slog.String(logx.FieldCohort, cohort.String()))
		return nil
	case err != nil:
		return fmt.Errorf("client.EnqueueContext: %w", err)
	}

	return nil
}

type refresher interface {
	Refresh(ctx context.Context, cohort value.Cohort) error
}

// RefreshHandler runs queued refreshes. Malformed payloads are not retried.
func RefreshHandler(r refresher) modules.AsynqHandler {
	return modules.AsynqHandler{
		Pattern: TaskRefresh,
		Handle: func(ctx context.Context, task *asynq.Task) error {
			var p refreshPayload
			if err := json.Unmarshal(task.Payload(), &p); err != nil {
				return fmt.Errorf("json.Unmarshal: %w: %w", err, asynq.SkipRetry)
			}

			cohort, err := value.ParseCohort(p.Cohort)
			if err != nil {
				return fmt.Errorf("value.ParseCohort(%q): %w: %w", p.Cohort, err, asynq.SkipRetry)
			}

			if err = r.Refresh(ctx, cohort); err != nil {
				return fmt.Errorf("refresher.Refresh: %w", err)
			}

			logger(ctx).Debug("refresh task done", slog.String(logx.FieldCohort, cohort.String()))

			return nil
		},
	}
}
