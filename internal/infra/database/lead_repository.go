package database

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/xavierca1/leadcapture/internal/entity"
)

type LeadRepository struct {
	DB *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (user_id, phone, name, message, timestamp, handled)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	return r.DB.QueryRowxContext(ctx, query,
		lead.UserID,
		lead.Phone,
		lead.Name,
		lead.Message,
		lead.Timestamp,
		lead.Handled,
	).Scan(&lead.ID)
}

// ListByUser returns the user's leads, most recent first. Reads are always
// scoped by owner.
func (r *LeadRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Lead, error) {
	query := `
		SELECT id, user_id, phone, name, message, timestamp, handled
		FROM leads
		WHERE user_id = $1
		ORDER BY id DESC
	`

	leads := []*entity.Lead{}
	if err := r.DB.SelectContext(ctx, &leads, query, userID); err != nil {
		return nil, err
	}
	return leads, nil
}
