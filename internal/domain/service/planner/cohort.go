package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/affinity"
	"seatplan/internal/domain/service/insight"
	"seatplan/internal/domain/value"
	"seatplan/pkg/logx"
)

const topAffinities = 10

// Cohorts lists every cohort with a roster, by name.
func (s *Service) Cohorts(ctx context.Context) ([]value.Cohort, error) {
	cohorts, err := s.rosters.Cohorts(ctx)
	if err != nil {
		return nil, fmt.Errorf("rosters.Cohorts: %w", err)
	}

	return cohorts, nil
}

func (s *Service) Roster(ctx context.Context, cohort value.Cohort) (entity.Roster, error) {
	roster, err := s.rosters.Get(ctx, cohort)
	if err != nil {
		return nil, fmt.Errorf("rosters.Get: %w", err)
	}

	return roster, nil
}

// ImportRoster replaces the students of cohort. Surrounding whitespace is
// trimmed; blank and repeated ids are dropped.
func (s *Service) ImportRoster(ctx context.Context, cohort value.Cohort, ids []entity.StudentID) (entity.Roster, error) {
	trimmed := make([]entity.StudentID, len(ids))
	for i, id := range ids {
		trimmed[i] = entity.StudentID(strings.TrimSpace(id.String()))
	}

	roster, err := normalizeRoster(trimmed)
	if err != nil {
		return nil, err
	}

	if err = s.rosters.Replace(ctx, cohort, roster); err != nil {
		return nil, fmt.Errorf("rosters.Replace: %w", err)
	}

	if err = s.cache.Invalidate(ctx, cohort); err != nil {
		logger(ctx).Warn("cache.Invalidate", slog.String(logx.FieldCohort, cohort.String()), logx.Error(err))
	}

	logger(ctx).Info("roster imported", slog.String(logx.FieldCohort, cohort.String()), slog.Int("students", len(roster)))

	return roster, nil
}

// SubmitBallot validates and stores one voter's ballot, drops the cohort's
// cached layouts and schedules a refresh.
func (s *Service) SubmitBallot(ctx context.Context, cohort value.Cohort, voter entity.StudentID, ballot entity.Ballot) error {
	roster, err := s.rosters.Get(ctx, cohort)
	if err != nil {
		return fmt.Errorf("rosters.Get: %w", err)
	}

	if err = ValidateBallot(roster, voter, ballot, value.MaxScore); err != nil {
		return err
	}

	ballot.CastAt = s.now()

	if err = s.ballots.Insert(ctx, cohort, voter, ballot); err != nil {
		return fmt.Errorf("ballots.Insert: %w", err)
	}

	s.recorder.BallotAccepted()

	logger(ctx).Info("ballot accepted", slog.String(logx.FieldCohort, cohort.String()), slog.String(logx.FieldStudent, voter.String()))

	if err = s.cache.Invalidate(ctx, cohort); err != nil {
		logger(ctx).Warn("cache.Invalidate", slog.String(logx.FieldCohort, cohort.String()), logx.Error(err))
	}

	s.scheduleRefresh(ctx, cohort)

	return nil
}

func (s *Service) scheduleRefresh(ctx context.Context, cohort value.Cohort) {
	if s.queue != nil {
		err := s.queue.EnqueueRefresh(ctx, cohort)
		if err == nil {
			return
		}

		logger(ctx).Error("queue.EnqueueRefresh", slog.String(logx.FieldCohort, cohort.String()), logx.Error(err))
	}

	if err := s.Refresh(ctx, cohort); err != nil {
		logger(ctx).Error("Refresh", slog.String(logx.FieldCohort, cohort.String()), logx.Error(err))
	}
}

// ResetBallots starts a new voting round: ballots, saved arrangements and
// cached layouts of cohort are removed. The roster stays.
func (s *Service) ResetBallots(ctx context.Context, cohort value.Cohort) error {
	if _, err := s.rosters.Get(ctx, cohort); err != nil {
		return fmt.Errorf("rosters.Get: %w", err)
	}

	if err := s.ballots.DeleteAll(ctx, cohort); err != nil {
		return fmt.Errorf("ballots.DeleteAll: %w", err)
	}

	if err := s.arrangements.DeleteAll(ctx, cohort); err != nil {
		return fmt.Errorf("arrangements.DeleteAll: %w", err)
	}

	if err := s.cache.Invalidate(ctx, cohort); err != nil {
		return fmt.Errorf("cache.Invalidate: %w", err)
	}

	logger(ctx).Info("ballots reset", slog.String(logx.FieldCohort, cohort.String()))

	return nil
}

// Insights are descriptive statistics of a cohort's ballots.
type Insights struct {
	Blocks     entity.BlockReport
	Popularity []entity.Popularity
	TopPairs   []entity.AffinityPair
}

func (s *Service) Insights(ctx context.Context, cohort value.Cohort) (Insights, error) {
	_, ballots, err := s.load(ctx, cohort)
	if err != nil {
		return Insights{}, err
	}

	pairs, _ := affinity.Build(ballots)

	return Insights{
		Blocks:     insight.Blocks(ballots),
		Popularity: insight.Popularity(ballots),
		TopPairs:   insight.TopAffinities(pairs, topAffinities),
	}, nil
}
