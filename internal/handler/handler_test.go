package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/luiscarbonel1991/campsite/internal/domain"
	"github.com/luiscarbonel1991/campsite/internal/handler/dto"
	hmocks "github.com/luiscarbonel1991/campsite/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockReservationSvc, http.Handler) {
	t.Helper()
	svc := hmocks.NewMockReservationSvc(t)

	h := NewHandler(svc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/reservations/availability", h.GetAvailability)
		api.POST("/reservations", h.CreateReservation)
		api.PUT("/reservations/:id", h.UpdateReservation)
		api.DELETE("/reservations/:id", h.CancelReservation)
	}

	return svc, r
}

func testReservation() *domain.Reservation {
	now := time.Now().UTC()
	return &domain.Reservation{
		ID:            uuid.New().String(),
		Name:          "John Doe",
		Email:         "john@example.com",
		ArrivalDate:   time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
		CreatedAt:     now,
		UpdatedAt:     now,
		Version:       1,
	}
}

// --- Availability ---

func TestHandler_GetAvailability_Success(t *testing.T) {
	svc, r := setupRouter(t)

	svc.EXPECT().FindAvailability(mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]bool{"2026-09-10": true, "2026-09-11": false}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/availability?from=2026-09-10&to=2026-09-11", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["2026-09-10"])
	assert.False(t, resp["2026-09-11"])
}

func TestHandler_GetAvailability_NoParams(t *testing.T) {
	svc, r := setupRouter(t)

	var gotFrom, gotTo *time.Time
	svc.EXPECT().FindAvailability(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, from *time.Time, to *time.Time) {
			gotFrom, gotTo = from, to
		}).
		Return(map[string]bool{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, gotFrom)
	assert.Nil(t, gotTo)
}

func TestHandler_GetAvailability_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/availability?from=10-09-2026", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAvailability_MissingBound(t *testing.T) {
	svc, r := setupRouter(t)

	svc.EXPECT().FindAvailability(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrMissingParameter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/availability?from=2026-09-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Create ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	svc, r := setupRouter(t)

	res := testReservation()
	svc.EXPECT().Create(mock.Anything, mock.Anything).Return(res, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		Name:          "John Doe",
		Email:         "john@example.com",
		ArrivalDate:   "2026-09-10",
		DepartureDate: "2026-09-12",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, res.ID, resp.ID)
	assert.Equal(t, "2026-09-10", resp.ArrivalDate)
	assert.Equal(t, "2026-09-12", resp.DepartureDate)
	assert.Empty(t, resp.CancelledAt)
}

func TestHandler_CreateReservation_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"name":"John","email":"john@example.com","arrival_date":"not-a-date","departure_date":"2026-09-12"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_CapacityExhausted(t *testing.T) {
	svc, r := setupRouter(t)

	svc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrCapacityExhausted)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		Name:          "John Doe",
		Email:         "john@example.com",
		ArrivalDate:   "2026-09-10",
		DepartureDate: "2026-09-12",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateReservation_LockTimeout(t *testing.T) {
	svc, r := setupRouter(t)

	svc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrTooHighDemand)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		Name:          "John Doe",
		Email:         "john@example.com",
		ArrivalDate:   "2026-09-10",
		DepartureDate: "2026-09-12",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

// --- Update ---

func TestHandler_UpdateReservation_Success(t *testing.T) {
	svc, r := setupRouter(t)

	res := testReservation()
	svc.EXPECT().Update(mock.Anything, res.ID, mock.Anything).Return(res, nil)

	name := "Jane Doe"
	body, _ := json.Marshal(dto.UpdateReservationRequest{Name: &name})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/reservations/"+res.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateReservation_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"name":"Jane"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/reservations/not-a-uuid", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateReservation_NotFound(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	svc.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, domain.ErrReservationNotFound)

	body := []byte(`{"name":"Jane"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/reservations/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateReservation_Cancelled(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	svc.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, domain.ErrReservationCancelled)

	body := []byte(`{"arrival_date":"2026-09-15","departure_date":"2026-09-17"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/reservations/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Cancel ---

func TestHandler_CancelReservation_Success(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	svc.EXPECT().Cancel(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp.Status)
}

func TestHandler_CancelReservation_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelReservation_AlreadyCancelled(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	svc.EXPECT().Cancel(mock.Anything, id).Return(domain.ErrAlreadyCancelled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
