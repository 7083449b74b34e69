package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-remittance/internal/models"
)

func TestSenderRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewSenderWriteRepository(db, nil)
	readRepo := NewSenderReadRepository(db)
	ctx := context.Background()

	id := uuid.New()

	t.Run("Save", func(t *testing.T) {
		err := writeRepo.Save(ctx, models.SenderDB{SenderID: id, FirstName: "Leela", LastName: "Delphine"})
		require.NoError(t, err)

		got, err := readRepo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Leela", got.FirstName)
		assert.Equal(t, "", got.MiddleName)
		assert.Equal(t, "Delphine", got.LastName)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("Save again updates the name", func(t *testing.T) {
		err := writeRepo.Save(ctx, models.SenderDB{SenderID: id, FirstName: "Leela", MiddleName: "Maria", LastName: "Turanga"})
		require.NoError(t, err)

		got, err := readRepo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Maria", got.MiddleName)
		assert.Equal(t, "Turanga", got.LastName)
	})

	t.Run("NotFound", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrSenderNotFound)
		assert.Nil(t, got)
	})
}

func TestRecipientRepositories_Postgres(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	senderID := uuid.New()
	require.NoError(t, NewSenderWriteRepository(db, nil).Save(ctx, models.SenderDB{SenderID: senderID, FirstName: "Leela", LastName: "Delphine"}))

	writeRepo := NewRecipientWriteRepository(db, nil)
	readRepo := NewRecipientReadRepository(db)

	self := models.RecipientDB{RecipientID: uuid.New(), SenderID: senderID, Name: "You (Leela Delphine)", Initials: "LD", DeliveryMethods: "multiple", Country: "us", IsSelf: true}
	rohan := models.RecipientDB{RecipientID: uuid.New(), SenderID: senderID, Name: "Rohan Singh", AccountNumber: "Account •••• 1234", Initials: "RS", DeliveryMethods: "bank", Country: "in"}

	require.NoError(t, writeRepo.Save(ctx, rohan, self))

	list, err := readRepo.ListBySender(ctx, senderID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].IsSelf, "self entry is listed first")
	assert.Equal(t, "Rohan Singh", list[1].Name)

	got, err := readRepo.GetByID(ctx, senderID, rohan.RecipientID)
	require.NoError(t, err)
	assert.Equal(t, "in", got.Country)

	_, err = readRepo.GetByID(ctx, uuid.New(), rohan.RecipientID)
	assert.ErrorIs(t, err, ErrRecipientNotFound)

	empty, err := readRepo.ListBySender(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
