package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/onboarding"
)

//go:generate mockgen -source=onboarding.go -destination=mock_onboarding.go -package=handlers

// Onboarder creates senders.
type Onboarder interface {
	Onboard(ctx context.Context, name onboarding.Name) (uuid.UUID, string, error)
}

// NewOnboardingHandler handles the name step of onboarding.
// @Summary Create a sender
// @Description Stores the sender's legal name, seeds their recipient list and returns a token.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body models.OnboardingRequest true "Legal name"
// @Success 201 {object} models.OnboardingResponse
// @Failure 400 {object} models.ErrorResponse "Invalid name"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /onboarding [post]
func NewOnboardingHandler(svc Onboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.OnboardingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		senderID, token, err := svc.Onboard(r.Context(), onboarding.Name{
			First:  req.FirstName,
			Middle: req.MiddleName,
			Last:   req.LastName,
		})
		if err != nil {
			switch {
			case errors.Is(err, onboarding.ErrFirstNameRequired),
				errors.Is(err, onboarding.ErrLastNameRequired),
				errors.Is(err, onboarding.ErrNameTooLong):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.OnboardingResponse{
			SenderID: senderID.String(),
			Token:    token,
		})
	}
}
