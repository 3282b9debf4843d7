// Package handler answers the admin's bot commands.
package handler

import (
	"context"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/planner"
	"seatplan/internal/domain/value"
	"seatplan/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type plannerService interface {
	Groups(ctx context.Context, cohort value.Cohort) (planner.Plan, error)
	Layout(ctx context.Context, cohort value.Cohort, req planner.LayoutRequest) (entity.ClassroomLayout, error)
}

type Handler struct {
	svc plannerService
}

func New(svc plannerService) *Handler {
	return &Handler{
		svc: svc,
	}
}
