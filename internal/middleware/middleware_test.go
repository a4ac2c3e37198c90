package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cuisinecraft-hub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	allowed := []string{"http://localhost:5173", " https://cuisinecraft.example "}

	tests := []struct {
		name           string
		method         string
		origin         string
		expectedStatus int
		expectHandler  bool
		expectOrigin   string
	}{
		{
			name:           "Preflight from allowed origin",
			method:         http.MethodOptions,
			origin:         "http://localhost:5173",
			expectedStatus: http.StatusNoContent,
			expectOrigin:   "http://localhost:5173",
		},
		{
			name:           "GET from trimmed allowed origin",
			method:         http.MethodGet,
			origin:         "https://cuisinecraft.example",
			expectedStatus: http.StatusOK,
			expectHandler:  true,
			expectOrigin:   "https://cuisinecraft.example",
		},
		{
			name:           "Unknown origin gets no CORS headers",
			method:         http.MethodPost,
			origin:         "https://evil.example",
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
		{
			name:           "Same-origin request",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			handler := CORS(allowed)(okHandler(&handlerCalled))

			req := httptest.NewRequest(tt.method, "/menu", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectHandler, handlerCalled)
			assert.Equal(t, tt.expectOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.expectOrigin != "" {
				assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	handlerCalled := false
	w := httptest.NewRecorder()

	SecurityHeaders(okHandler(&handlerCalled)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, handlerCalled)
	assert.Equal(t,
		"default-src 'self'; style-src 'self' 'unsafe-inline'; script-src 'self' 'unsafe-inline'; "+
			"frame-ancestors 'self'; form-action 'self'; connect-src 'self' https://group-study-assignment-a7832.web.app",
		w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
}

func TestRequestID(t *testing.T) {
	t.Run("Generates an id", func(t *testing.T) {
		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("Propagates the caller's id", func(t *testing.T) {
		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("Empty outside the middleware", func(t *testing.T) {
		assert.Empty(t, RequestIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
	})
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
	}{
		{name: "Successful request", method: http.MethodGet, path: "/menu", handlerStatus: http.StatusOK},
		{name: "Bad request", method: http.MethodGet, path: "/paymentHistoryPurchaseDetails", handlerStatus: http.StatusBadRequest},
		{name: "Server error", method: http.MethodPost, path: "/payments", handlerStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			handler := RequestID(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
			})))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(RequestIDHeader, "req-1")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.handlerStatus, w.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, float64(tt.handlerStatus), entry["status"])
			assert.Equal(t, "req-1", entry["request_id"])
		})
	}
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name           string
		shouldPanic    bool
		panicValue     interface{}
		expectedStatus int
	}{
		{name: "No panic", expectedStatus: http.StatusOK},
		{name: "Panic with string", shouldPanic: true, panicValue: "something went wrong", expectedStatus: http.StatusInternalServerError},
		{name: "Panic with error", shouldPanic: true, panicValue: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.shouldPanic {
					panic(tt.panicValue)
				}
				w.WriteHeader(http.StatusOK)
			})

			handler := Recovery(zerolog.Nop())(testHandler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.shouldPanic {
				var body model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, model.ErrCodeInternalError, body.Error)
				assert.Equal(t, "internal server error", body.Message)
			}
		})
	}
}

func TestResponseWriter(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusCreated, http.StatusForbidden, http.StatusMethodNotAllowed} {
		w := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		rw.WriteHeader(code)

		assert.Equal(t, code, rw.statusCode)
		assert.Equal(t, code, w.Code)
	}
}
