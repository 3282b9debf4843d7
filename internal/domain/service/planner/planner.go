// Package planner turns a cohort's roster and ballots into groups and
// seating layouts, and keeps saved arrangements.
package planner

import (
	"context"
	"time"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/value"
	"seatplan/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type RosterRepository interface {
	// Get returns domain.ErrCohortNotFound for a cohort without students.
	Get(ctx context.Context, cohort value.Cohort) (entity.Roster, error)
	Replace(ctx context.Context, cohort value.Cohort, roster entity.Roster) error
	Cohorts(ctx context.Context) ([]value.Cohort, error)
}

type BallotRepository interface {
	List(ctx context.Context, cohort value.Cohort) (entity.Ballots, error)
	// Insert returns domain.ErrBallotAlreadyCast when voter already voted.
	Insert(ctx context.Context, cohort value.Cohort, voter entity.StudentID, ballot entity.Ballot) error
	DeleteAll(ctx context.Context, cohort value.Cohort) error
}

type ArrangementRepository interface {
	// Save stores a as the only current arrangement of its cohort.
	Save(ctx context.Context, a entity.Arrangement) (entity.Arrangement, error)
	// Current returns domain.ErrArrangementNotFound when nothing was saved.
	Current(ctx context.Context, cohort value.Cohort) (entity.Arrangement, error)
	List(ctx context.Context, cohort value.Cohort) ([]entity.Arrangement, error)
	DeleteAll(ctx context.Context, cohort value.Cohort) error
}

type LayoutCache interface {
	Get(ctx context.Context, key LayoutKey) (entity.ClassroomLayout, bool, error)
	Set(ctx context.Context, key LayoutKey, layout entity.ClassroomLayout) error
	Invalidate(ctx context.Context, cohort value.Cohort) error
}

type RefreshQueue interface {
	EnqueueRefresh(ctx context.Context, cohort value.Cohort) error
}

type Notifier interface {
	LayoutRefreshed(ctx context.Context, plan Plan, layout entity.ClassroomLayout) error
}

type Recorder interface {
	PlanComputed(trigger string, d time.Duration)
	BallotAccepted()
}

// Settings are the tunables of grouping and seating.
type Settings struct {
	Thresholds   value.Thresholds
	Columns      int
	SeatCapacity int
}

func DefaultSettings() Settings {
	return Settings{
		Thresholds:   value.DefaultThresholds(),
		Columns:      value.DefaultColumns,
		SeatCapacity: value.DefaultSeatCapacity,
	}
}

type Service struct {
	rosters      RosterRepository
	ballots      BallotRepository
	arrangements ArrangementRepository
	cache        LayoutCache

	queue    RefreshQueue
	notifier Notifier
	recorder Recorder

	settings Settings
	now      func() time.Time
}

func NewService(
	rosters RosterRepository,
	ballots BallotRepository,
	arrangements ArrangementRepository,
	cache LayoutCache,
	settings Settings,
) *Service {
	settings.Thresholds = settings.Thresholds.Normalized()

	return &Service{
		rosters:      rosters,
		ballots:      ballots,
		arrangements: arrangements,
		cache:        cache,
		recorder:     nopRecorder{},
		settings:     settings,
		now:          time.Now,
	}
}

// WithRefreshQueue moves refreshes after a ballot to the background. Without
// a queue they run inline.
func (s *Service) WithRefreshQueue(q RefreshQueue) *Service {
	s.queue = q
	return s
}

func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Settings() Settings {
	return s.settings
}

type nopRecorder struct{}

func (nopRecorder) PlanComputed(string, time.Duration) {}
func (nopRecorder) BallotAccepted()                    {}
