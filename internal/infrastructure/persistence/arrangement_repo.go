package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"seatplan/internal/domain"
	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/value"
	"seatplan/pkg/errcodes"
	"seatplan/pkg/lox"
)

const arrangementColumns = `id, cohort, name, layout, grid_rows, grid_columns, seed, students, is_current, created_at`

type ArrangementRepository struct {
	db *sqlx.DB
}

func NewArrangementRepository(db *sqlx.DB) *ArrangementRepository {
	return &ArrangementRepository{db: db}
}

// Save inserts a and makes it the only current arrangement of its cohort.
func (r *ArrangementRepository) Save(ctx context.Context, a entity.Arrangement) (entity.Arrangement, error) {
	schema, err := fromArrangement(a)
	if err != nil {
		return entity.Arrangement{}, domain.WrapError(err, errcodes.InternalServerError, "failed to encode layout")
	}

	err = withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE arrangements SET is_current = FALSE WHERE cohort = $1 AND is_current`,
			schema.Cohort,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to reset current arrangement")
		}

		query := `
			INSERT INTO arrangements (cohort, name, layout, grid_rows, grid_columns, seed, students, is_current, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, $8)
			RETURNING id`

		if err := tx.GetContext(ctx, &schema.ID, query,
			schema.Cohort, schema.Name, schema.Layout, schema.Rows, schema.Columns,
			schema.Seed, schema.Students, schema.CreatedAt,
		); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert arrangement")
		}

		return nil
	})
	if err != nil {
		return entity.Arrangement{}, err
	}

	a.ID = schema.ID
	a.IsCurrent = true

	return a, nil
}

func (r *ArrangementRepository) Current(ctx context.Context, cohort value.Cohort) (entity.Arrangement, error) {
	query := `SELECT ` + arrangementColumns + `
		FROM arrangements
		WHERE cohort = $1 AND is_current`

	var schema arrangementSchema
	if err := r.db.GetContext(ctx, &schema, query, cohort.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Arrangement{}, domain.ErrArrangementNotFound
		}
		return entity.Arrangement{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get arrangement")
	}

	a, err := schema.toDomain()
	if err != nil {
		return entity.Arrangement{}, domain.WrapError(err, errcodes.InternalServerError, "failed to convert arrangement")
	}

	return a, nil
}

// List returns the arrangements of cohort, newest first.
func (r *ArrangementRepository) List(ctx context.Context, cohort value.Cohort) ([]entity.Arrangement, error) {
	query := `SELECT ` + arrangementColumns + `
		FROM arrangements
		WHERE cohort = $1
		ORDER BY created_at DESC, id DESC`

	var schemas []arrangementSchema
	if err := r.db.SelectContext(ctx, &schemas, query, cohort.String()); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list arrangements")
	}

	out, err := lox.MapErr(schemas, arrangementSchema.toDomain)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert arrangement")
	}

	return out, nil
}

func (r *ArrangementRepository) DeleteAll(ctx context.Context, cohort value.Cohort) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM arrangements WHERE cohort = $1`, cohort.String()); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to delete arrangements")
	}

	return nil
}
