package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		handlerStatus  int
		handlerBody    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "OK response",
			handlerStatus:  http.StatusOK,
			handlerBody:    "hello",
			expectedStatus: http.StatusOK,
			expectedBody:   "hello",
		},
		{
			name:           "Internal server error",
			handlerStatus:  http.StatusInternalServerError,
			handlerBody:    "error",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)

			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(zap.New(core).Sugar())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.expectedBody, string(bodyBytes))

			reqID := rr.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, strings.TrimSpace(reqID))
			assert.Equal(t, reqID, seenID)

			entries := logs.FilterMessage("response").All()
			require.Len(t, entries, 1)
			assert.Equal(t, int64(tt.expectedStatus), entries[0].ContextMap()["status"])
			assert.Equal(t, "5B", entries[0].ContextMap()["response_size"])
		})
	}
}

func TestLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	handler := LoggingMiddleware(zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc-123", RequestIDFromContext(r.Context()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
}

func TestResponseWriter_HijackUnsupported(t *testing.T) {
	rw := wrapResponseWriter(httptest.NewRecorder())
	_, _, err := rw.Hijack()
	assert.Error(t, err)
	assert.Same(t, rw, wrapResponseWriter(rw))
}
