package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/sbilibin2017/gw-remittance/internal/models"
)

//go:generate mockgen -source=sender.go -destination=mock_sender.go -package=services

// SenderReader loads sender profiles.
type SenderReader interface {
	GetByID(ctx context.Context, senderID uuid.UUID) (*models.SenderDB, error)
}

// SenderService serves the signed-in sender's profile.
type SenderService struct {
	reader SenderReader
}

func NewSenderService(reader SenderReader) *SenderService {
	return &SenderService{reader: reader}
}

// Profile returns the sender behind senderID.
func (svc *SenderService) Profile(ctx context.Context, senderID uuid.UUID) (*models.SenderDB, error) {
	sender, err := svc.reader.GetByID(ctx, senderID)
	if err != nil {
		logger.Log.Errorw("failed to load sender", "sender_id", senderID, "err", err)
		return nil, err
	}
	return sender, nil
}
