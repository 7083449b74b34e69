package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/sbilibin2017/gw-remittance/internal/models"
)

// ErrRecipientNotFound is returned when the sender has no such recipient.
var ErrRecipientNotFound = errors.New("recipient not found")

// RecipientWriteRepository persists recipients.
type RecipientWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRecipientWriteRepository(db *sqlx.DB, txGetter TxGetter) *RecipientWriteRepository {
	return &RecipientWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts recipients in order; ListBySender returns them in the same
// order. It stops at the first failure.
func (r *RecipientWriteRepository) Save(ctx context.Context, recipients ...models.RecipientDB) error {
	const query = `
		INSERT INTO recipients (recipient_id, sender_id, name, account_number, initials, delivery_methods, country, is_self, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`

	ext := executor(ctx, r.db, r.txGetter)
	for _, rec := range recipients {
		args := []any{rec.RecipientID, rec.SenderID, rec.Name, rec.AccountNumber, rec.Initials, rec.DeliveryMethods, rec.Country, rec.IsSelf}
		_, err := ext.ExecContext(ctx, query, args...)

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(query), " "),
			"args", args,
			"error", err,
		)

		if err != nil {
			return err
		}
	}
	return nil
}

// RecipientReadRepository reads recipients.
type RecipientReadRepository struct {
	db *sqlx.DB
}

func NewRecipientReadRepository(db *sqlx.DB) *RecipientReadRepository {
	return &RecipientReadRepository{db: db}
}

// ListBySender returns the sender's recipients, self entry first, then in
// insertion order.
func (r *RecipientReadRepository) ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.RecipientDB, error) {
	const query = `
		SELECT recipient_id, sender_id, name, account_number, initials, delivery_methods, country, is_self, created_at
		FROM recipients
		WHERE sender_id = $1
		ORDER BY is_self DESC, position ASC
	`

	var rows []models.RecipientDB
	err := r.db.SelectContext(ctx, &rows, query, senderID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{senderID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID returns one of the sender's recipients or ErrRecipientNotFound.
func (r *RecipientReadRepository) GetByID(ctx context.Context, senderID, recipientID uuid.UUID) (*models.RecipientDB, error) {
	const query = `
		SELECT recipient_id, sender_id, name, account_number, initials, delivery_methods, country, is_self, created_at
		FROM recipients
		WHERE sender_id = $1 AND recipient_id = $2
	`

	var row models.RecipientDB
	err := r.db.GetContext(ctx, &row, query, senderID, recipientID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{senderID, recipientID},
		"result", row.Name,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecipientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
