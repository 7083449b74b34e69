package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSenderService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	senderID := uuid.New()
	reader := NewMockSenderReader(ctrl)
	svc := NewSenderService(reader)

	reader.EXPECT().GetByID(ctx, senderID).Return(&models.SenderDB{SenderID: senderID, FirstName: "Leela"}, nil)

	sender, err := svc.Profile(ctx, senderID)
	require.NoError(t, err)
	assert.Equal(t, "Leela", sender.FirstName)

	errMissing := errors.New("sender not found")
	reader.EXPECT().GetByID(ctx, senderID).Return(nil, errMissing)

	sender, err = svc.Profile(ctx, senderID)
	assert.ErrorIs(t, err, errMissing)
	assert.Nil(t, sender)
}
