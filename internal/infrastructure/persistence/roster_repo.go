package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"seatplan/internal/domain"
	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/value"
	"seatplan/pkg/errcodes"
	"seatplan/pkg/lox"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// Get returns the students of cohort in import order.
func (r *RosterRepository) Get(ctx context.Context, cohort value.Cohort) (entity.Roster, error) {
	query := `
		SELECT student_id
		FROM students
		WHERE cohort = $1
		ORDER BY position`

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, cohort.String()); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get roster")
	}

	if len(ids) == 0 {
		return nil, domain.ErrCohortNotFound
	}

	return lox.Strings[entity.StudentID](ids), nil
}

// Replace swaps the whole roster of cohort atomically.
func (r *RosterRepository) Replace(ctx context.Context, cohort value.Cohort, roster entity.Roster) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM students WHERE cohort = $1`, cohort.String()); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to clear roster")
		}

		if len(roster) == 0 {
			return nil
		}

		rows := make([]studentSchema, len(roster))
		for i, id := range roster {
			rows[i] = studentSchema{Cohort: cohort.String(), Position: i, StudentID: id.String()}
		}

		query := `
			INSERT INTO students (cohort, position, student_id)
			VALUES (:cohort, :position, :student_id)`

		if _, err := tx.NamedExecContext(ctx, query, rows); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert roster")
		}

		return nil
	})
}

// Cohorts lists every cohort with a roster.
func (r *RosterRepository) Cohorts(ctx context.Context) ([]value.Cohort, error) {
	var names []string
	if err := r.db.SelectContext(ctx, &names, `SELECT DISTINCT cohort FROM students ORDER BY cohort`); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list cohorts")
	}

	return lox.Strings[value.Cohort](names), nil
}
