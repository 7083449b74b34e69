package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sbilibin2017/gw-remittance/internal/engine"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=transfer.go -destination=mock_transfer.go -package=services

var (
	ErrEmptyTransfer     = errors.New("transfer amount must be positive")
	ErrTransferNotQueued = errors.New("transfer could not be queued")
	ErrUnknownCurrency   = errors.New("unknown currency")
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Quoter prices transfers.
type Quoter interface {
	Quote(ctx context.Context, p QuoteParams) (engine.ConversionQuote, QuoteParams)
}

// RecipientGetter resolves a sender's recipient.
type RecipientGetter interface {
	GetByID(ctx context.Context, senderID, recipientID uuid.UUID) (*models.RecipientDB, error)
}

// CurrencyChecker reports whether a currency code is offered.
type CurrencyChecker func(code string) bool

// TransferService turns a confirmed quote into a transfer intent event.
type TransferService struct {
	quoter      Quoter
	recipients  RecipientGetter
	kafkaWriter KafkaWriter
	known       CurrencyChecker
	now         func() time.Time
}

func NewTransferService(quoter Quoter, recipients RecipientGetter, kafkaWriter KafkaWriter, known CurrencyChecker) *TransferService {
	return &TransferService{
		quoter:      quoter,
		recipients:  recipients,
		kafkaWriter: kafkaWriter,
		known:       known,
		now:         time.Now,
	}
}

// Submit re-prices p, checks the recipient belongs to the sender and
// publishes the intent. The quote is always computed here, never trusted
// from the client.
func (s *TransferService) Submit(ctx context.Context, senderID, recipientID uuid.UUID, p QuoteParams) (models.TransferIntent, engine.ConversionQuote, error) {
	q, p := s.quoter.Quote(ctx, p)
	if s.known != nil && (!s.known(p.From) || !s.known(p.To)) {
		return models.TransferIntent{}, q, ErrUnknownCurrency
	}
	if !q.SendAmount.IsPositive() {
		return models.TransferIntent{}, q, ErrEmptyTransfer
	}

	if _, err := s.recipients.GetByID(ctx, senderID, recipientID); err != nil {
		logger.Log.Errorw("recipient lookup failed", "sender_id", senderID, "recipient_id", recipientID, "error", err)
		return models.TransferIntent{}, q, err
	}

	now := s.now()
	intent := models.TransferIntent{
		IntentID:             ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		SenderID:             senderID.String(),
		RecipientID:          recipientID.String(),
		FromCurrency:         q.From,
		ToCurrency:           q.To,
		Rate:                 q.Rate.String(),
		RateFallback:         q.RateFallback,
		SendAmount:           q.SendAmount.String(),
		Fee:                  q.Fee.String(),
		TotalToPay:           q.TotalToPay.String(),
		RegularReceiveAmount: q.RegularReceiveAmount.String(),
		BoostedReceiveAmount: q.BoostedReceiveAmount.String(),
		ExtraAmount:          q.ExtraAmount,
		DeliveryMethod:       p.DeliveryMethod,
		PaymentMethod:        p.PaymentMethod,
		Timestamp:            now.Unix(),
		BoostMultiplier:      q.BoostMultiplier.InexactFloat64(),
	}

	if err := s.publish(ctx, intent); err != nil {
		return models.TransferIntent{}, q, err
	}

	return intent, q, nil
}

func (s *TransferService) publish(ctx context.Context, intent models.TransferIntent) error {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "intent_id", intent.IntentID)
		return nil
	}

	data, err := json.Marshal(intent)
	if err != nil {
		logger.Log.Errorw("failed to marshal transfer intent", "intent_id", intent.IntentID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(intent.SenderID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transfer intent", "intent_id", intent.IntentID, "error", err)
		return errors.Join(ErrTransferNotQueued, err)
	}

	logger.Log.Infow("transfer intent published", "intent_id", intent.IntentID, "total_to_pay", intent.TotalToPay)
	return nil
}
