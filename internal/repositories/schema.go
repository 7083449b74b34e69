package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
)

// schema creates the tables owned by the service. Every statement is idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS senders (
	sender_id   UUID PRIMARY KEY,
	first_name  VARCHAR(50) NOT NULL,
	middle_name VARCHAR(50) NOT NULL DEFAULT '',
	last_name   VARCHAR(50) NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS recipients (
	recipient_id     UUID PRIMARY KEY,
	sender_id        UUID NOT NULL REFERENCES senders(sender_id) ON DELETE CASCADE,
	name             VARCHAR(120) NOT NULL,
	account_number   VARCHAR(64) NOT NULL DEFAULT '',
	initials         VARCHAR(4) NOT NULL DEFAULT '',
	delivery_methods VARCHAR(16) NOT NULL,
	country          VARCHAR(8) NOT NULL DEFAULT '',
	is_self          BOOLEAN NOT NULL DEFAULT FALSE,
	position         BIGSERIAL,
	created_at       TIMESTAMP NOT NULL DEFAULT NOW()
);

ALTER TABLE recipients ADD COLUMN IF NOT EXISTS position BIGSERIAL;

DROP INDEX IF EXISTS recipients_sender_idx;
CREATE INDEX IF NOT EXISTS recipients_sender_position_idx ON recipients (sender_id, position);
`

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	logger.Log.Infow("schema migration", "error", err)
	return err
}
