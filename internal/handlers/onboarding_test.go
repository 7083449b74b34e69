package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-remittance/internal/onboarding"
	"github.com/stretchr/testify/assert"
)

func TestOnboardingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockOnboarder)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"first_name":"Leela","middle_name":"","last_name":"Delphine"}`,
			mockSetup: func(m *MockOnboarder) {
				m.EXPECT().
					Onboard(gomock.Any(), onboarding.Name{First: "Leela", Last: "Delphine"}).
					Return(senderID, "token", nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: fmt.Sprintf(`{"sender_id":%q,"token":"token"}`, senderID.String()),
		},
		{
			name: "missing last name",
			body: `{"first_name":"Leela"}`,
			mockSetup: func(m *MockOnboarder) {
				m.EXPECT().Onboard(gomock.Any(), gomock.Any()).Return(uuid.Nil, "", onboarding.ErrLastNameRequired)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"last name is required"}`,
		},
		{
			name: "name too long",
			body: `{"first_name":"Leela","last_name":"Delphine"}`,
			mockSetup: func(m *MockOnboarder) {
				m.EXPECT().Onboard(gomock.Any(), gomock.Any()).Return(uuid.Nil, "", fmt.Errorf("last name: %w", onboarding.ErrNameTooLong))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"last name: name is too long"}`,
		},
		{
			name: "internal server error",
			body: `{"first_name":"Leela","last_name":"Delphine"}`,
			mockSetup: func(m *MockOnboarder) {
				m.EXPECT().Onboard(gomock.Any(), gomock.Any()).Return(uuid.Nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "invalid json",
			body:         `{"first_name":`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockOnboarder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			rec := httptest.NewRecorder()
			NewOnboardingHandler(m).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/onboarding", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
