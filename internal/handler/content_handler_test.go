package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cuisinecraft-hub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContentHandler(t *testing.T) {
	svc := new(MockContentService)
	svc.On("Reviews", mock.Anything).Return([]model.Review{{ID: "r1", Name: "Ann", Rating: 4.5}}, nil)
	svc.On("Recommendations", mock.Anything).Return(nil, errors.New("db down"))
	svc.On("ContactMessages", mock.Anything).Return([]model.ContactMessage{}, nil)
	svc.On("CreateContactMessage", mock.Anything, mock.AnythingOfType("*model.ContactMessage")).
		Return(&model.InsertResult{Acknowledged: true, InsertedID: "m1"}, nil)

	h := NewContentHandler(svc, zerolog.Nop())

	w := httptest.NewRecorder()
	h.Reviews(w, httptest.NewRequest(http.MethodGet, "/review", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rating":4.5`)

	w = httptest.NewRecorder()
	h.Recommendations(w, httptest.NewRequest(http.MethodGet, "/chef_recommendation", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")

	w = httptest.NewRecorder()
	h.ContactMessages(w, httptest.NewRequest(http.MethodGet, "/contactUs", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = httptest.NewRecorder()
	body := `{"name":"Ann","email":"e@x.com","message":"Lovely pho"}`
	h.CreateContactMessage(w, httptest.NewRequest(http.MethodPost, "/contactUs", strings.NewReader(body)))
	assert.Equal(t, http.StatusCreated, w.Code)
}
