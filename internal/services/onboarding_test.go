package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/onboarding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardingService_Onboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	senders := NewMockSenderWriter(ctrl)
	recipientsRepo := NewMockRecipientWriter(ctrl)
	jwt := NewMockJWTGenerator(ctrl)

	var saved models.SenderDB
	senders.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s models.SenderDB) error {
		saved = s
		return nil
	})

	var seeded []models.RecipientDB
	recipientsRepo.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows ...models.RecipientDB) error {
			seeded = rows
			return nil
		})

	jwt.EXPECT().Generate(ctx, gomock.Any()).Return("token", nil)

	svc := NewOnboardingService(senders, recipientsRepo, jwt)
	id, token, err := svc.Onboard(ctx, onboarding.Name{First: "  Leela ", Last: "Delphine"})
	require.NoError(t, err)

	assert.Equal(t, "token", token)
	assert.Equal(t, saved.SenderID, id)
	assert.Equal(t, "Leela", saved.FirstName)
	assert.Equal(t, "Delphine", saved.LastName)

	require.Len(t, seeded, 5)
	assert.Equal(t, "You (Leela Delphine)", seeded[0].Name)
	assert.Equal(t, "LD", seeded[0].Initials)
	assert.Equal(t, "us", seeded[0].Country)
	assert.True(t, seeded[0].IsSelf)
	assert.Equal(t, "Andrew Caligh", seeded[1].Name)
	for _, row := range seeded {
		assert.Equal(t, id, row.SenderID)
		assert.NotEqual(t, uuid.Nil, row.RecipientID)
	}
}

func TestOnboardingService_OnboardErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   onboarding.Name
		setup   func(s *MockSenderWriter, r *MockRecipientWriter, j *MockJWTGenerator)
		wantErr error
	}{
		{
			name:    "missing first name",
			input:   onboarding.Name{Last: "Delphine"},
			setup:   func(s *MockSenderWriter, r *MockRecipientWriter, j *MockJWTGenerator) {},
			wantErr: onboarding.ErrFirstNameRequired,
		},
		{
			name:    "missing last name",
			input:   onboarding.Name{First: "Leela", Last: "   "},
			setup:   func(s *MockSenderWriter, r *MockRecipientWriter, j *MockJWTGenerator) {},
			wantErr: onboarding.ErrLastNameRequired,
		},
		{
			name:  "sender save fails",
			input: onboarding.Name{First: "Leela", Last: "Delphine"},
			setup: func(s *MockSenderWriter, r *MockRecipientWriter, j *MockJWTGenerator) {
				s.EXPECT().Save(ctx, gomock.Any()).Return(errSave)
			},
			wantErr: errSave,
		},
		{
			name:  "seeding fails",
			input: onboarding.Name{First: "Leela", Last: "Delphine"},
			setup: func(s *MockSenderWriter, r *MockRecipientWriter, j *MockJWTGenerator) {
				s.EXPECT().Save(ctx, gomock.Any()).Return(nil)
				r.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errSave)
			},
			wantErr: errSave,
		},
		{
			name:  "token fails",
			input: onboarding.Name{First: "Leela", Last: "Delphine"},
			setup: func(s *MockSenderWriter, r *MockRecipientWriter, j *MockJWTGenerator) {
				s.EXPECT().Save(ctx, gomock.Any()).Return(nil)
				r.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				j.EXPECT().Generate(ctx, gomock.Any()).Return("", errSave)
			},
			wantErr: errSave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := NewMockSenderWriter(ctrl)
			r := NewMockRecipientWriter(ctrl)
			j := NewMockJWTGenerator(ctrl)
			tt.setup(s, r, j)

			id, token, err := NewOnboardingService(s, r, j).Onboard(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, uuid.Nil, id)
			assert.Empty(t, token)
		})
	}
}

var errSave = errors.New("db error")
