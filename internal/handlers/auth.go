package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/jwt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=handlers

// Tokener extracts and verifies the sender token of a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

func senderFromRequest(tokener Tokener, r *http.Request) (uuid.UUID, error) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		return uuid.Nil, err
	}

	return claims.SenderID, nil
}
