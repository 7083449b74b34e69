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

// ErrSenderNotFound is returned when no sender has the requested id.
var ErrSenderNotFound = errors.New("sender not found")

// SenderWriteRepository persists sender profiles.
type SenderWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSenderWriteRepository(db *sqlx.DB, txGetter TxGetter) *SenderWriteRepository {
	return &SenderWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a sender or refreshes the name of an existing one.
func (r *SenderWriteRepository) Save(ctx context.Context, sender models.SenderDB) error {
	const query = `
		INSERT INTO senders (sender_id, first_name, middle_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (sender_id) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    middle_name = EXCLUDED.middle_name,
		    last_name = EXCLUDED.last_name,
		    updated_at = NOW()
	`
	args := []any{sender.SenderID, sender.FirstName, sender.MiddleName, sender.LastName}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// SenderReadRepository reads sender profiles.
type SenderReadRepository struct {
	db *sqlx.DB
}

func NewSenderReadRepository(db *sqlx.DB) *SenderReadRepository {
	return &SenderReadRepository{db: db}
}

// GetByID returns the sender or ErrSenderNotFound.
func (r *SenderReadRepository) GetByID(ctx context.Context, senderID uuid.UUID) (*models.SenderDB, error) {
	const query = `
		SELECT sender_id, first_name, middle_name, last_name, created_at, updated_at
		FROM senders
		WHERE sender_id = $1
	`

	var sender models.SenderDB
	err := r.db.GetContext(ctx, &sender, query, senderID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{senderID},
		"result", sender,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSenderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sender, nil
}
