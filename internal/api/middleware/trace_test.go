package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blissful-trails/trails-api/internal/api/shared"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		withRequestID bool
		header        string
		check         func(t *testing.T, traceID string, reqID string)
	}{
		{
			name:          "uses chi request id",
			withRequestID: true,
			check: func(t *testing.T, traceID, reqID string) {
				assert.NotEmpty(t, reqID)
				assert.Equal(t, reqID, traceID)
			},
		},
		{
			name:          "keeps incoming request id",
			withRequestID: true,
			header:        "edge-42",
			check: func(t *testing.T, traceID, reqID string) {
				assert.Equal(t, "edge-42", traceID)
			},
		},
		{
			name: "falls back to uuid",
			check: func(t *testing.T, traceID, reqID string) {
				assert.Empty(t, reqID)
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var traceID, reqID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				traceID = shared.GetTraceID(r.Context())
				reqID = chimw.GetReqID(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			var h http.Handler = TraceMiddleware(next)
			if tt.withRequestID {
				h = chimw.RequestID(h)
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(chimw.RequestIDHeader, tt.header)
			}
			recorder := httptest.NewRecorder()
			h.ServeHTTP(recorder, req)

			require.NotEmpty(t, traceID)
			assert.Equal(t, traceID, recorder.Header().Get(TraceIDHeader))
			tt.check(t, traceID, reqID)
		})
	}
}
