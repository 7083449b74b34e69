package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/recipients"
	"github.com/sbilibin2017/gw-remittance/internal/repositories"
)

//go:generate mockgen -source=recipients.go -destination=mock_recipients.go -package=handlers

// RecipientLister lists a sender's recipients.
type RecipientLister interface {
	List(ctx context.Context, senderID uuid.UUID, search, tab string) ([]recipients.Recipient, error)
}

// RecipientCreator adds a recipient.
type RecipientCreator interface {
	Create(ctx context.Context, senderID uuid.UUID, r recipients.Recipient) (recipients.Recipient, error)
}

// RecipientGetter loads one recipient.
type RecipientGetter interface {
	Get(ctx context.Context, senderID, recipientID uuid.UUID) (recipients.Recipient, error)
}

// NewRecipientsHandler serves the recipients screen.
// @Summary List recipients
// @Description Filters the sender's recipients by name and tab (all, my-recipients, contacts). Unknown tabs list everything.
// @Tags recipients
// @Produce json
// @Param search query string false "Name search"
// @Param filter query string false "Tab" Enums(all, my-recipients, contacts)
// @Success 200 {object} models.RecipientsResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recipients [get]
// @Security BearerAuth
func NewRecipientsHandler(tokener Tokener, svc RecipientLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		senderID, err := senderFromRequest(tokener, r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		query := r.URL.Query()
		list, err := svc.List(r.Context(), senderID, query.Get("search"), query.Get("filter"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		resp := models.RecipientsResponse{Recipients: make([]models.RecipientResponse, 0, len(list))}
		for _, rec := range list {
			resp.Recipients = append(resp.Recipients, toRecipientResponse(rec))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateRecipientHandler adds a recipient to the sender's list.
// @Summary Add a recipient
// @Tags recipients
// @Accept json
// @Produce json
// @Param request body models.CreateRecipientRequest true "Recipient"
// @Success 201 {object} models.RecipientResponse
// @Failure 400 {object} models.ErrorResponse "Invalid recipient"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recipients [post]
// @Security BearerAuth
func NewCreateRecipientHandler(tokener Tokener, svc RecipientCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		senderID, err := senderFromRequest(tokener, r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req models.CreateRecipientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		created, err := svc.Create(r.Context(), senderID, recipients.Recipient{
			Name:            req.Name,
			AccountNumber:   req.AccountNumber,
			DeliveryMethods: req.DeliveryMethods,
			Country:         req.Country,
		})
		if err != nil {
			switch {
			case errors.Is(err, recipients.ErrNameRequired), errors.Is(err, recipients.ErrInvalidDelivery), errors.Is(err, recipients.ErrFieldTooLong):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toRecipientResponse(created))
	}
}

// NewRecipientHandler returns a single recipient of the sender.
// @Summary Get a recipient
// @Tags recipients
// @Produce json
// @Param id path string true "Recipient ID"
// @Success 200 {object} models.RecipientResponse
// @Failure 400 {object} models.ErrorResponse "Invalid recipient id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Recipient not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recipients/{id} [get]
// @Security BearerAuth
func NewRecipientHandler(tokener Tokener, svc RecipientGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		senderID, err := senderFromRequest(tokener, r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		recipientID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid recipient id")
			return
		}

		rec, err := svc.Get(r.Context(), senderID, recipientID)
		if err != nil {
			if errors.Is(err, repositories.ErrRecipientNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, toRecipientResponse(rec))
	}
}
