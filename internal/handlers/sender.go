package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/onboarding"
	"github.com/sbilibin2017/gw-remittance/internal/repositories"
)

//go:generate mockgen -source=sender.go -destination=mock_sender.go -package=handlers

// SenderProfiler loads the signed-in sender.
type SenderProfiler interface {
	Profile(ctx context.Context, senderID uuid.UUID) (*models.SenderDB, error)
}

// NewSenderProfileHandler returns the sender behind the token.
// @Summary Current sender
// @Tags onboarding
// @Produce json
// @Success 200 {object} models.SenderResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Sender not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /senders/me [get]
// @Security BearerAuth
func NewSenderProfileHandler(tokener Tokener, svc SenderProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		senderID, err := senderFromRequest(tokener, r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		sender, err := svc.Profile(r.Context(), senderID)
		if err != nil {
			if errors.Is(err, repositories.ErrSenderNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		name := onboarding.Name{First: sender.FirstName, Middle: sender.MiddleName, Last: sender.LastName}
		writeJSON(w, http.StatusOK, models.SenderResponse{
			SenderID:    sender.SenderID.String(),
			FirstName:   sender.FirstName,
			MiddleName:  sender.MiddleName,
			LastName:    sender.LastName,
			DisplayName: name.Display(),
		})
	}
}
