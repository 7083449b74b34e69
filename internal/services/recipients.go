package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/recipients"
)

//go:generate mockgen -source=recipients.go -destination=mock_recipients.go -package=services

// RecipientReader reads a sender's recipients.
type RecipientReader interface {
	ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.RecipientDB, error)
	GetByID(ctx context.Context, senderID, recipientID uuid.UUID) (*models.RecipientDB, error)
}

// RecipientService backs the recipients screen.
type RecipientService struct {
	reader RecipientReader
	writer RecipientWriter
}

func NewRecipientService(reader RecipientReader, writer RecipientWriter) *RecipientService {
	return &RecipientService{reader: reader, writer: writer}
}

// List returns the sender's recipients matching search within tab.
func (svc *RecipientService) List(ctx context.Context, senderID uuid.UUID, search, tab string) ([]recipients.Recipient, error) {
	rows, err := svc.reader.ListBySender(ctx, senderID)
	if err != nil {
		logger.Log.Errorw("failed to list recipients", "sender_id", senderID, "error", err)
		return nil, err
	}

	list := make([]recipients.Recipient, 0, len(rows))
	for _, row := range rows {
		list = append(list, fromRecipientDB(row))
	}

	return recipients.Filter(list, search, tab), nil
}

// Get returns one of the sender's recipients.
func (svc *RecipientService) Get(ctx context.Context, senderID, recipientID uuid.UUID) (recipients.Recipient, error) {
	row, err := svc.reader.GetByID(ctx, senderID, recipientID)
	if err != nil {
		logger.Log.Errorw("failed to get recipient", "sender_id", senderID, "recipient_id", recipientID, "error", err)
		return recipients.Recipient{}, err
	}
	return fromRecipientDB(*row), nil
}

// Create adds a recipient to the sender's list.
func (svc *RecipientService) Create(ctx context.Context, senderID uuid.UUID, r recipients.Recipient) (recipients.Recipient, error) {
	r, err := recipients.Normalize(r)
	if err != nil {
		return recipients.Recipient{}, err
	}

	row := toRecipientDB(senderID, r)
	if err := svc.writer.Save(ctx, row); err != nil {
		logger.Log.Errorw("failed to save recipient", "sender_id", senderID, "error", err)
		return recipients.Recipient{}, err
	}

	return fromRecipientDB(row), nil
}
