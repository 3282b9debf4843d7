package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/planner"
	"seatplan/internal/domain/value"
	"seatplan/internal/infrastructure/spreadsheet"
	"seatplan/pkg/httpx/reply"
	"seatplan/pkg/httpx/req"
	"seatplan/pkg/rest"
)

type layoutService interface {
	Layout(context.Context, value.Cohort, planner.LayoutRequest) (entity.ClassroomLayout, error)
	Seating(context.Context, value.Cohort, planner.LayoutRequest) (planner.Plan, entity.ClassroomLayout, error)
	SaveArrangement(context.Context, value.Cohort, string, entity.ClassroomLayout) (entity.Arrangement, error)
	CurrentArrangement(context.Context, value.Cohort) (entity.Arrangement, error)
	ListArrangements(context.Context, value.Cohort) ([]entity.Arrangement, error)
}

// LayoutServer serves seating grids and saved arrangements.
type LayoutServer struct {
	layoutService layoutService
}

func NewLayoutServer(layoutService layoutService) LayoutServer {
	return LayoutServer{
		layoutService: layoutService,
	}
}

func layoutRequest(r *http.Request) (planner.LayoutRequest, error) {
	columns, err := req.QueryInt(r, "columns", 0)
	if err != nil {
		return planner.LayoutRequest{}, err
	}

	regenerate, err := req.QueryBool(r, "regenerate")
	if err != nil {
		return planner.LayoutRequest{}, err
	}

	out := planner.LayoutRequest{Columns: columns, Regenerate: regenerate}

	if r.URL.Query().Has("seed") {
		seed, err := req.QueryInt(r, "seed", 0)
		if err != nil {
			return planner.LayoutRequest{}, err
		}

		s := value.Seed(seed)
		out.Seed = &s
	}

	return out, nil
}

func (s LayoutServer) getV1Layout(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohort, err := cohortParam(r)
	if err != nil {
		return err
	}

	lr, err := layoutRequest(r)
	if err != nil {
		return err
	}

	layout, err := s.layoutService.Layout(ctx, cohort, lr)
	if err != nil {
		return fmt.Errorf("layoutService.Layout: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTLayout(layout))

	return nil
}

func (s LayoutServer) getV1LayoutXLSX(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohort, err := cohortParam(r)
	if err != nil {
		return err
	}

	lr, err := layoutRequest(r)
	if err != nil {
		return err
	}

	plan, layout, err := s.layoutService.Seating(ctx, cohort, lr)
	if err != nil {
		return fmt.Errorf("layoutService.Seating: %w", err)
	}

	var buf bytes.Buffer

	if err = spreadsheet.WriteLayout(&buf, layout, plan.Groups); err != nil {
		return fmt.Errorf("spreadsheet.WriteLayout: %w", err)
	}

	reply.Attachment(ctx, w, spreadsheet.ContentType, fmt.Sprintf("layout-%s-%d.xlsx", cohort, layout.Seed), buf.Bytes())

	return nil
}

func (s LayoutServer) postV1Arrangement(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohort, err := cohortParam(r)
	if err != nil {
		return err
	}

	var request rest.SaveArrangement

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	lr := planner.LayoutRequest{Columns: request.Columns}
	if request.Seed != nil {
		seed := value.Seed(*request.Seed)
		lr.Seed = &seed
	}

	layout, err := s.layoutService.Layout(ctx, cohort, lr)
	if err != nil {
		return fmt.Errorf("layoutService.Layout: %w", err)
	}

	saved, err := s.layoutService.SaveArrangement(ctx, cohort, request.Name, layout)
	if err != nil {
		return fmt.Errorf("layoutService.SaveArrangement: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTArrangement(saved))

	return nil
}

func (s LayoutServer) getV1Arrangements(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohort, err := cohortParam(r)
	if err != nil {
		return err
	}

	list, err := s.layoutService.ListArrangements(ctx, cohort)
	if err != nil {
		return fmt.Errorf("layoutService.ListArrangements: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTArrangements(list))

	return nil
}

func (s LayoutServer) getV1CurrentArrangement(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohort, err := cohortParam(r)
	if err != nil {
		return err
	}

	a, err := s.layoutService.CurrentArrangement(ctx, cohort)
	if err != nil {
		return fmt.Errorf("layoutService.CurrentArrangement: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTArrangement(a))

	return nil
}
