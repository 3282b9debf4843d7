package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"seatplan/internal/domain"
	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/value"
	"seatplan/pkg/errcodes"
)

type BallotRepository struct {
	db *sqlx.DB
}

func NewBallotRepository(db *sqlx.DB) *BallotRepository {
	return &BallotRepository{db: db}
}

func (r *BallotRepository) List(ctx context.Context, cohort value.Cohort) (entity.Ballots, error) {
	query := `
		SELECT cohort, voter, ratings, blocked, cast_at
		FROM ballots
		WHERE cohort = $1`

	var schemas []ballotSchema
	if err := r.db.SelectContext(ctx, &schemas, query, cohort.String()); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get ballots")
	}

	ballots := make(entity.Ballots, len(schemas))
	for _, s := range schemas {
		b, err := s.toDomain()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert ballot")
		}
		ballots[entity.StudentID(s.Voter)] = b
	}

	return ballots, nil
}

// Insert stores a ballot once per voter and cohort.
func (r *BallotRepository) Insert(ctx context.Context, cohort value.Cohort, voter entity.StudentID, ballot entity.Ballot) error {
	schema, err := fromBallot(cohort.String(), voter, ballot)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode ballot")
	}

	query := `
		INSERT INTO ballots (cohort, voter, ratings, blocked, cast_at)
		VALUES (:cohort, :voter, :ratings, :blocked, :cast_at)
		ON CONFLICT (cohort, voter) DO NOTHING`

	res, err := r.db.NamedExecContext(ctx, query, schema)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert ballot")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to get affected rows")
	}

	if n == 0 {
		return domain.ErrBallotAlreadyCast
	}

	return nil
}

func (r *BallotRepository) DeleteAll(ctx context.Context, cohort value.Cohort) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ballots WHERE cohort = $1`, cohort.String()); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to delete ballots")
	}

	return nil
}
