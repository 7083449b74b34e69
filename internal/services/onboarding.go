package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/catalog"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/onboarding"
	"github.com/sbilibin2017/gw-remittance/internal/recipients"
)

//go:generate mockgen -source=onboarding.go -destination=mock_onboarding.go -package=services

// SenderCountry is the country of every sender's own entry.
const SenderCountry = "us"

// SenderWriter persists sender profiles.
type SenderWriter interface {
	Save(ctx context.Context, sender models.SenderDB) error
}

// RecipientWriter persists recipients.
type RecipientWriter interface {
	Save(ctx context.Context, recipients ...models.RecipientDB) error
}

// JWTGenerator issues sender tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, senderID uuid.UUID) (string, error)
}

// OnboardingService creates senders from the name step.
type OnboardingService struct {
	senders    SenderWriter
	recipients RecipientWriter
	jwt        JWTGenerator
}

func NewOnboardingService(senders SenderWriter, recipients RecipientWriter, jwt JWTGenerator) *OnboardingService {
	return &OnboardingService{
		senders:    senders,
		recipients: recipients,
		jwt:        jwt,
	}
}

// Onboard validates name, stores the sender with a starter recipient list
// and returns the new sender id with a token.
func (svc *OnboardingService) Onboard(ctx context.Context, name onboarding.Name) (uuid.UUID, string, error) {
	name, err := onboarding.Validate(name)
	if err != nil {
		logger.Log.Errorw("invalid name", "err", err)
		return uuid.Nil, "", err
	}

	senderID := uuid.New()
	if err := svc.senders.Save(ctx, models.SenderDB{
		SenderID:   senderID,
		FirstName:  name.First,
		MiddleName: name.Middle,
		LastName:   name.Last,
	}); err != nil {
		logger.Log.Errorw("failed to save sender", "err", err)
		return uuid.Nil, "", err
	}

	if err := svc.recipients.Save(ctx, starterRecipients(senderID, name)...); err != nil {
		logger.Log.Errorw("failed to seed recipients", "sender_id", senderID, "err", err)
		return uuid.Nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, senderID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return uuid.Nil, "", err
	}

	logger.Log.Infow("sender onboarded", "sender_id", senderID)

	return senderID, token, nil
}

func starterRecipients(senderID uuid.UUID, name onboarding.Name) []models.RecipientDB {
	seeds := catalog.RecipientSeeds()
	rows := make([]models.RecipientDB, 0, len(seeds)+1)
	rows = append(rows, toRecipientDB(senderID, recipients.Self(name.Display(), SenderCountry)))
	for _, seed := range seeds {
		rows = append(rows, toRecipientDB(senderID, recipients.Recipient{
			Name:            seed.Name,
			AccountNumber:   seed.AccountNumber,
			Initials:        seed.Initials,
			DeliveryMethods: seed.DeliveryMethods,
			Country:         seed.Country,
		}))
	}
	return rows
}

func toRecipientDB(senderID uuid.UUID, r recipients.Recipient) models.RecipientDB {
	return models.RecipientDB{
		RecipientID:     uuid.New(),
		SenderID:        senderID,
		Name:            r.Name,
		AccountNumber:   r.AccountNumber,
		Initials:        r.Initials,
		DeliveryMethods: r.DeliveryMethods,
		Country:         r.Country,
		IsSelf:          r.IsSelf,
	}
}

func fromRecipientDB(row models.RecipientDB) recipients.Recipient {
	return recipients.Recipient{
		ID:              row.RecipientID.String(),
		Name:            row.Name,
		AccountNumber:   row.AccountNumber,
		Initials:        row.Initials,
		DeliveryMethods: row.DeliveryMethods,
		Country:         row.Country,
		IsSelf:          row.IsSelf,
	}
}
