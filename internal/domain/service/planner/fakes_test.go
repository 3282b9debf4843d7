package planner_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"seatplan/internal/domain"
	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/planner"
	"seatplan/internal/domain/value"
)

type fakeRosters struct {
	rosters map[value.Cohort]entity.Roster
}

func (f *fakeRosters) Get(_ context.Context, cohort value.Cohort) (entity.Roster, error) {
	r, ok := f.rosters[cohort]
	if !ok {
		return nil, domain.ErrCohortNotFound
	}
	return slices.Clone(r), nil
}

func (f *fakeRosters) Replace(_ context.Context, cohort value.Cohort, roster entity.Roster) error {
	f.rosters[cohort] = slices.Clone(roster)
	return nil
}

func (f *fakeRosters) Cohorts(context.Context) ([]value.Cohort, error) {
	out := make([]value.Cohort, 0, len(f.rosters))
	for c := range f.rosters {
		out = append(out, c)
	}
	slices.Sort(out)
	return out, nil
}

type fakeBallots struct {
	ballots map[value.Cohort]entity.Ballots
	lists   int
	// afterList runs once a List result is copied, with the call number.
	afterList func(call int)
}

func (f *fakeBallots) List(_ context.Context, cohort value.Cohort) (entity.Ballots, error) {
	f.lists++
	out := entity.Ballots{}
	for k, v := range f.ballots[cohort] {
		out[k] = v
	}
	if f.afterList != nil {
		f.afterList(f.lists)
	}
	return out, nil
}

func (f *fakeBallots) Insert(_ context.Context, cohort value.Cohort, voter entity.StudentID, ballot entity.Ballot) error {
	if f.ballots[cohort] == nil {
		f.ballots[cohort] = entity.Ballots{}
	}
	if _, ok := f.ballots[cohort][voter]; ok {
		return domain.ErrBallotAlreadyCast
	}
	f.ballots[cohort][voter] = ballot
	return nil
}

func (f *fakeBallots) DeleteAll(_ context.Context, cohort value.Cohort) error {
	delete(f.ballots, cohort)
	return nil
}

type fakeArrangements struct {
	list   []entity.Arrangement
	nextID int64
}

func (f *fakeArrangements) Save(_ context.Context, a entity.Arrangement) (entity.Arrangement, error) {
	for i := range f.list {
		if f.list[i].Cohort == a.Cohort {
			f.list[i].IsCurrent = false
		}
	}
	f.nextID++
	a.ID = f.nextID
	f.list = append(f.list, a)
	return a, nil
}

func (f *fakeArrangements) Current(_ context.Context, cohort value.Cohort) (entity.Arrangement, error) {
	for _, a := range f.list {
		if a.Cohort == cohort.String() && a.IsCurrent {
			return a, nil
		}
	}
	return entity.Arrangement{}, domain.ErrArrangementNotFound
}

func (f *fakeArrangements) List(_ context.Context, cohort value.Cohort) ([]entity.Arrangement, error) {
	var out []entity.Arrangement
	for i := len(f.list) - 1; i >= 0; i-- {
		if f.list[i].Cohort == cohort.String() {
			out = append(out, f.list[i])
		}
	}
	return out, nil
}

func (f *fakeArrangements) DeleteAll(_ context.Context, cohort value.Cohort) error {
	f.list = slices.DeleteFunc(f.list, func(a entity.Arrangement) bool { return a.Cohort == cohort.String() })
	return nil
}

type fakeCache struct {
	layouts map[string]entity.ClassroomLayout
}

func (f *fakeCache) Get(_ context.Context, key planner.LayoutKey) (entity.ClassroomLayout, bool, error) {
	l, ok := f.layouts[key.String()]
	return l, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key planner.LayoutKey, layout entity.ClassroomLayout) error {
	f.layouts[key.String()] = layout
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, cohort value.Cohort) error {
	for k := range f.layouts {
		if strings.HasPrefix(k, planner.KeyPrefix(cohort)) {
			delete(f.layouts, k)
		}
	}
	return nil
}

type fakeQueue struct {
	cohorts []value.Cohort
	err     error
}

func (f *fakeQueue) EnqueueRefresh(_ context.Context, cohort value.Cohort) error {
	if f.err != nil {
		return f.err
	}
	f.cohorts = append(f.cohorts, cohort)
	return nil
}

type fakeNotifier struct {
	plans   []planner.Plan
	layouts []entity.ClassroomLayout
}

func (f *fakeNotifier) LayoutRefreshed(_ context.Context, plan planner.Plan, layout entity.ClassroomLayout) error {
	f.plans = append(f.plans, plan)
	f.layouts = append(f.layouts, layout)
	return nil
}

type fakeRecorder struct {
	mu       sync.Mutex
	triggers []string
	ballots  int
}

func (f *fakeRecorder) PlanComputed(trigger string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggers = append(f.triggers, trigger)
}

func (f *fakeRecorder) BallotAccepted() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ballots++
}

var errQueueDown = errors.New("redis: connection refused")

type fixture struct {
	rosters      *fakeRosters
	ballots      *fakeBallots
	arrangements *fakeArrangements
	cache        *fakeCache
	queue        *fakeQueue
	notifier     *fakeNotifier
	recorder     *fakeRecorder
	service      *planner.Service
}

var fixedNow = time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)

func newFixture() *fixture {
	f := &fixture{
		rosters:      &fakeRosters{rosters: map[value.Cohort]entity.Roster{}},
		ballots:      &fakeBallots{ballots: map[value.Cohort]entity.Ballots{}},
		arrangements: &fakeArrangements{},
		cache:        &fakeCache{layouts: map[string]entity.ClassroomLayout{}},
		queue:        &fakeQueue{},
		notifier:     &fakeNotifier{},
		recorder:     &fakeRecorder{},
	}

	f.service = planner.NewService(f.rosters, f.ballots, f.arrangements, f.cache, planner.DefaultSettings()).
		WithRefreshQueue(f.queue).
		WithNotifier(f.notifier).
		WithRecorder(f.recorder).
		WithClock(func() time.Time { return fixedNow })

	return f
}

// seed stores roster and ballots of cohort "sexto" directly.
func (f *fixture) seed(roster entity.Roster, ballots entity.Ballots) value.Cohort {
	cohort := value.Cohort("sexto")
	f.rosters.rosters[cohort] = roster
	f.ballots.ballots[cohort] = ballots
	return cohort
}
