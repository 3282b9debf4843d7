package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"seatplan/internal/domain"
	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/value"
	"seatplan/pkg/errcodes"
	"seatplan/pkg/logx"
)

// SaveArrangement stores layout under name as the cohort's current
// arrangement.
func (s *Service) SaveArrangement(
	ctx context.Context,
	cohort value.Cohort,
	name string,
	layout entity.ClassroomLayout,
) (entity.Arrangement, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Arrangement{}, domain.NewError(errcodes.ValidationError, "arrangement name is required")
	}

	saved, err := s.arrangements.Save(ctx, entity.Arrangement{
		Cohort:    cohort.String(),
		Name:      name,
		Layout:    layout,
		Students:  len(layout.Students()),
		IsCurrent: true,
		CreatedAt: s.now(),
	})
	if err != nil {
		return entity.Arrangement{}, fmt.Errorf("arrangements.Save: %w", err)
	}

	logger(ctx).Info("arrangement saved",
		slog.String(logx.FieldCohort, cohort.String()),
		slog.Int64("arrangement-id", saved.ID),
		slog.Int64(logx.FieldSeed, layout.Seed),
	)

	return saved, nil
}

func (s *Service) CurrentArrangement(ctx context.Context, cohort value.Cohort) (entity.Arrangement, error) {
	a, err := s.arrangements.Current(ctx, cohort)
	if err != nil {
		return entity.Arrangement{}, fmt.Errorf("arrangements.Current: %w", err)
	}

	return a, nil
}

// ListArrangements returns saved arrangements, newest first.
func (s *Service) ListArrangements(ctx context.Context, cohort value.Cohort) ([]entity.Arrangement, error) {
	list, err := s.arrangements.List(ctx, cohort)
	if err != nil {
		return nil, fmt.Errorf("arrangements.List: %w", err)
	}

	return list, nil
}
