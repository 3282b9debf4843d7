package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"seatplan/internal/domain"
	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/affinity"
	"seatplan/internal/domain/service/grouping"
	"seatplan/internal/domain/service/quality"
	"seatplan/internal/domain/service/seating"
	"seatplan/internal/domain/value"
	"seatplan/pkg/errcodes"
	"seatplan/pkg/logx"
)

const (
	triggerRequest = "request"
	triggerRefresh = "refresh"

	// MaxColumns bounds a requested grid width.
	MaxColumns = 20

	maxRefreshPasses = 3
)

// Plan is the grouping of one cohort with its evaluation.
type Plan struct {
	Cohort  value.Cohort
	Roster  entity.Roster
	Groups  []entity.Group
	Quality entity.Quality
	Pairs   []entity.AffinityPair
}

// Compute runs affinity, grouping and evaluation over one cohort's data.
func Compute(roster entity.Roster, ballots entity.Ballots, thresholds value.Thresholds) Plan {
	pairs, blocked := affinity.Build(ballots)
	groups := grouping.FormGroups(ballots, blocked, roster, thresholds)

	return Plan{
		Roster:  roster,
		Groups:  groups,
		Quality: quality.Evaluate(groups, ballots, thresholds),
		Pairs:   pairs,
	}
}

// LayoutRequest selects the grid of a layout. Zero Columns means the
// configured width. Regenerate draws a fresh seed and bypasses the cache;
// otherwise Seed, or the default seed, is used.
type LayoutRequest struct {
	Columns    int
	Regenerate bool
	Seed       *value.Seed
}

// LayoutKey identifies a cached layout.
type LayoutKey struct {
	Cohort  value.Cohort
	Columns int
	Seed    value.Seed
}

// KeyPrefix is shared by every layout key of cohort.
func KeyPrefix(cohort value.Cohort) string {
	return "layout:" + cohort.String() + ":"
}

func (k LayoutKey) String() string {
	return fmt.Sprintf("%s%d:%d", KeyPrefix(k.Cohort), k.Columns, k.Seed)
}

func (s *Service) Groups(ctx context.Context, cohort value.Cohort) (Plan, error) {
	return s.plan(ctx, cohort, triggerRequest)
}

func (s *Service) load(ctx context.Context, cohort value.Cohort) (entity.Roster, entity.Ballots, error) {
	roster, err := s.rosters.Get(ctx, cohort)
	if err != nil {
		return nil, nil, fmt.Errorf("rosters.Get: %w", err)
	}

	ballots, err := s.ballots.List(ctx, cohort)
	if err != nil {
		return nil, nil, fmt.Errorf("ballots.List: %w", err)
	}

	return roster, ballots, nil
}

func (s *Service) plan(ctx context.Context, cohort value.Cohort, trigger string) (Plan, error) {
	roster, ballots, err := s.load(ctx, cohort)
	if err != nil {
		return Plan{}, err
	}

	return s.compute(ctx, cohort, roster, ballots, trigger), nil
}

func (s *Service) compute(
	ctx context.Context,
	cohort value.Cohort,
	roster entity.Roster,
	ballots entity.Ballots,
	trigger string,
) Plan {
	start := time.Now()

	plan := Compute(roster, ballots, s.settings.Thresholds)
	plan.Cohort = cohort

	s.recorder.PlanComputed(trigger, time.Since(start))

	logger(ctx).Debug("plan computed",
		slog.String(logx.FieldCohort, cohort.String()),
		slog.Int(logx.FieldGroups, len(plan.Groups)),
		slog.Float64("success-rate", plan.Quality.SuccessRate),
	)

	return plan
}

// Layout seats the cohort's current groups. Layouts for a fixed seed are
// served from the cache until ballots or the roster change.
func (s *Service) Layout(ctx context.Context, cohort value.Cohort, req LayoutRequest) (entity.ClassroomLayout, error) {
	key, err := s.layoutKey(cohort, req)
	if err != nil {
		return entity.ClassroomLayout{}, err
	}

	if !req.Regenerate {
		layout, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logger(ctx).Warn("cache.Get", slog.String("key", key.String()), logx.Error(err))
		} else if ok {
			return layout, nil
		}
	}

	_, layout, err := s.seat(ctx, key, req.Regenerate)

	return layout, err
}

// Seating computes the groups once and seats them, so the layout always
// matches the returned plan. The cache is written but never read.
func (s *Service) Seating(ctx context.Context, cohort value.Cohort, req LayoutRequest) (Plan, entity.ClassroomLayout, error) {
	key, err := s.layoutKey(cohort, req)
	if err != nil {
		return Plan{}, entity.ClassroomLayout{}, err
	}

	return s.seat(ctx, key, req.Regenerate)
}

func (s *Service) seat(ctx context.Context, key LayoutKey, regenerate bool) (Plan, entity.ClassroomLayout, error) {
	plan, err := s.plan(ctx, key.Cohort, triggerRequest)
	if err != nil {
		return Plan{}, entity.ClassroomLayout{}, err
	}

	layout := seating.AssignSeats(plan.Groups, key.Columns, s.settings.SeatCapacity, key.Seed)

	if !regenerate {
		if err = s.cache.Set(ctx, key, layout); err != nil {
			logger(ctx).Warn("cache.Set", slog.String("key", key.String()), logx.Error(err))
		}
	}

	return plan, layout, nil
}

func (s *Service) layoutKey(cohort value.Cohort, req LayoutRequest) (LayoutKey, error) {
	columns := req.Columns
	if columns == 0 {
		columns = s.settings.Columns
	}

	if columns < 1 || columns > MaxColumns {
		return LayoutKey{}, domain.NewError(
			errcodes.InvalidColumns,
			fmt.Sprintf("columns must be between 1 and %d", MaxColumns),
		)
	}

	seed := value.DefaultSeed
	switch {
	case req.Regenerate:
		seed = value.FreshSeed()
	case req.Seed != nil:
		seed = *req.Seed
	}

	return LayoutKey{Cohort: cohort, Columns: columns, Seed: seed}, nil
}

// Refresh recomputes the default layout of cohort, caches it and notifies
// the configured chat. Ballots stored while it computes start another pass,
// so the cached layout is never older than the ballots seen at return.
func (s *Service) Refresh(ctx context.Context, cohort value.Cohort) error {
	key := LayoutKey{Cohort: cohort, Columns: s.settings.Columns, Seed: value.DefaultSeed}

	var (
		plan   Plan
		layout entity.ClassroomLayout
	)

	for pass := 1; ; pass++ {
		if err := s.cache.Invalidate(ctx, cohort); err != nil {
			return fmt.Errorf("cache.Invalidate: %w", err)
		}

		roster, ballots, err := s.load(ctx, cohort)
		if err != nil {
			return err
		}

		plan = s.compute(ctx, cohort, roster, ballots, triggerRefresh)
		layout = seating.AssignSeats(plan.Groups, key.Columns, s.settings.SeatCapacity, key.Seed)

		if err = s.cache.Set(ctx, key, layout); err != nil {
			return fmt.Errorf("cache.Set: %w", err)
		}

		latest, err := s.ballots.List(ctx, cohort)
		if err != nil {
			return fmt.Errorf("ballots.List: %w", err)
		}

		if versionOf(latest) == versionOf(ballots) {
			break
		}

		if pass == maxRefreshPasses {
			// The cohort keeps voting; leave the cache empty so requests compute.
			if err = s.cache.Invalidate(ctx, cohort); err != nil {
				return fmt.Errorf("cache.Invalidate: %w", err)
			}

			logger(ctx).Warn("ballots still changing, layout left uncached", slog.String(logx.FieldCohort, cohort.String()))

			return nil
		}
	}

	if s.notifier != nil {
		if err := s.notifier.LayoutRefreshed(ctx, plan, layout); err != nil {
			logger(ctx).Error("notifier.LayoutRefreshed", slog.String(logx.FieldCohort, cohort.String()), logx.Error(err))
		}
	}

	logger(ctx).Info("layout refreshed",
		slog.String(logx.FieldCohort, cohort.String()),
		slog.Int(logx.FieldGroups, len(plan.Groups)),
	)

	return nil
}

// ballotsVersion changes whenever a ballot is stored or the ballots are reset.
type ballotsVersion struct {
	count  int
	latest int64
}

func versionOf(ballots entity.Ballots) ballotsVersion {
	v := ballotsVersion{count: len(ballots)}
	for _, b := range ballots {
		v.latest = max(v.latest, b.CastAt.UnixNano())
	}
	return v
}
