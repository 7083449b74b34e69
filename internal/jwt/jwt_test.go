package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	senderID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, senderID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, senderID, claims.SenderID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New())
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()
	token, err := New(WithSecretKey("one")).Generate(ctx, uuid.New())
	require.NoError(t, err)

	assert.Error(t, New(WithSecretKey("two")).Validate(ctx, token))
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	assert.Error(t, j.Validate(context.Background(), "invalid.token.string"))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc", want: "abc"},
		{name: "case-insensitive scheme", header: "bearer abc", want: "abc"},
		{name: "missing", header: "", wantErr: ErrMissingAuthHeader},
		{name: "wrong scheme", header: "Basic abc", wantErr: ErrInvalidAuthHeader},
		{name: "extra parts", header: "Bearer a b", wantErr: ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
