package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/models"
	"github.com/sbilibin2017/gw-remittance/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSenderProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderID := uuid.New()

	tests := []struct {
		name       string
		tokener    *MockTokener
		setup      func(m *MockSenderProfiler)
		wantStatus int
	}{
		{
			name:    "profile",
			tokener: authorizedTokener(ctrl, senderID),
			setup: func(m *MockSenderProfiler) {
				m.EXPECT().Profile(gomock.Any(), senderID).Return(&models.SenderDB{
					SenderID:   senderID,
					FirstName:  "Leela",
					MiddleName: "Maria",
					LastName:   "Delphine",
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "not found",
			tokener: authorizedTokener(ctrl, senderID),
			setup: func(m *MockSenderProfiler) {
				m.EXPECT().Profile(gomock.Any(), senderID).Return(nil, repositories.ErrSenderNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "storage failure",
			tokener: authorizedTokener(ctrl, senderID),
			setup: func(m *MockSenderProfiler) {
				m.EXPECT().Profile(gomock.Any(), senderID).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unauthorized",
			tokener:    unauthorizedTokener(ctrl),
			setup:      func(m *MockSenderProfiler) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockSenderProfiler(ctrl)
			tt.setup(svc)

			rr := httptest.NewRecorder()
			NewSenderProfileHandler(tt.tokener, svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/senders/me", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp models.SenderResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, senderID.String(), resp.SenderID)
			assert.Equal(t, "Maria", resp.MiddleName)
			assert.Equal(t, "Leela Delphine", resp.DisplayName)
		})
	}
}
