package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/planner"
	"seatplan/internal/domain/value"
	"seatplan/internal/infrastructure/spreadsheet"
	"seatplan/pkg/errcodes"
	"seatplan/pkg/httpx/reply"
	"seatplan/pkg/httpx/req"
	"seatplan/pkg/lox"
	"seatplan/pkg/rest"
)

const rosterField = "file"

type cohortService interface {
	Cohorts(context.Context) ([]value.Cohort, error)
	Roster(context.Context, value.Cohort) (entity.Roster, error)
	ImportRoster(context.Context, value.Cohort, []entity.StudentID) (entity.Roster, error)
	SubmitBallot(context.Context, value.Cohort, entity.StudentID, entity.Ballot) error
	ResetBallots(context.Context, value.Cohort) error
	Groups(context.Context, value.Cohort) (planner.Plan, error)
	Insights(context.Context, value.Cohort) (planner.Insights, error)
}

// CohortServer serves rosters, ballots and the derived groups.
type CohortServer struct {
	cohortService cohortService
}

func NewCohortServer(cohortService cohortService) CohortServer {
	return CohortServer{
		cohortService: cohortService,
	}
}

func (s CohortServer) getV1Cohorts(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohorts, err := s.cohortService.Cohorts(ctx)
	if err != nil {
		return fmt.Errorf("cohortService.Cohorts: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Cohorts{Cohorts: lox.Strings[string](cohorts)})

	return nil
}

func (s CohortServer) getV1Students(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohort, err := cohortParam(r)
	if err != nil {
		return err
	}

	roster, err := s.cohortService.Roster(ctx, cohort)
	if err != nil {
		return fmt.Errorf("cohortService.Roster: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTStudents(cohort.String(), roster))

	return nil
}

func (s CohortServer) postV1StudentsImport(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohort, err := cohortParam(r)
	if err != nil {
		return err
	}

	body, err := req.File(r, rosterField)
	if err != nil {
		return fmt.Errorf("req.File: %w", err)
	}

	ids, err := spreadsheet.ReadRoster(bytes.NewReader(body))
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("spreadsheet.ReadRoster: %w", err),
			failure.WithCode(errcodes.InvalidRoster),
			failure.WithDescription("roster must be an xlsx file with student ids in column A"),
		)
	}

	roster, err := s.cohortService.ImportRoster(ctx, cohort, ids)
	if err != nil {
		return fmt.Errorf("cohortService.ImportRoster: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, rest.Imported{Cohort: cohort.String(), Imported: len(roster)})

	return nil
}

func (s CohortServer) postV1Ballot(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohort, err := cohortParam(r)
	if err != nil {
		return err
	}

	var request rest.Ballot

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	voter, ballot := newDomainBallot(request)

	if err = s.cohortService.SubmitBallot(ctx, cohort, voter, ballot); err != nil {
		return fmt.Errorf("cohortService.SubmitBallot: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s CohortServer) deleteV1Ballots(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohort, err := cohortParam(r)
	if err != nil {
		return err
	}

	if err = s.cohortService.ResetBallots(ctx, cohort); err != nil {
		return fmt.Errorf("cohortService.ResetBallots: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s CohortServer) getV1Groups(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohort, err := cohortParam(r)
	if err != nil {
		return err
	}

	plan, err := s.cohortService.Groups(ctx, cohort)
	if err != nil {
		return fmt.Errorf("cohortService.Groups: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPlan(plan))

	return nil
}

func (s CohortServer) getV1Insights(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	cohort, err := cohortParam(r)
	if err != nil {
		return err
	}

	insights, err := s.cohortService.Insights(ctx, cohort)
	if err != nil {
		return fmt.Errorf("cohortService.Insights: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTInsights(insights))

	return nil
}
