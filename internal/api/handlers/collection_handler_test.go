package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gudangops/whmonitor/internal/domain"
	"github.com/gudangops/whmonitor/internal/repository"
)

type stubCollections struct {
	repository.CollectionRepository

	arrivals  []domain.Arrival
	locations []domain.Location
	gotFrom   string
	gotTo     string
	sohErr    error
}

func (s *stubCollections) ListArrivals(_ context.Context, from, to string) ([]domain.Arrival, error) {
	s.gotFrom, s.gotTo = from, to
	return s.arrivals, nil
}

func (s *stubCollections) ListLocations(context.Context) ([]domain.Location, error) {
	return s.locations, nil
}

func (s *stubCollections) ListSoh(context.Context) ([]domain.Soh, error) {
	return nil, s.sohErr
}

func TestCollectionRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubCollections{
		arrivals:  []domain.Arrival{{ReceiptNo: "R-1", Brand: "Acme", PoQty: 10}},
		locations: []domain.Location{{Location: "A-01"}, {Location: "A-02"}},
	}
	router := gin.New()
	NewCollectionHandler(stub).Register(router.Group("/collections"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/collections/arrivals?from=2026-08-01&to=2026-08-31", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("arrivals status = %d, body %s", w.Code, w.Body.String())
	}
	if stub.gotFrom != "2026-08-01" || stub.gotTo != "2026-08-31" {
		t.Errorf("range = %q..%q, want query passed through", stub.gotFrom, stub.gotTo)
	}
	var arrivals []domain.Arrival
	if err := json.Unmarshal(w.Body.Bytes(), &arrivals); err != nil {
		t.Fatalf("decode arrivals: %v", err)
	}
	if len(arrivals) != 1 || arrivals[0].ReceiptNo != "R-1" {
		t.Errorf("arrivals = %+v", arrivals)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/collections/locations", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("locations status = %d", w.Code)
	}
	var locations []domain.Location
	if err := json.Unmarshal(w.Body.Bytes(), &locations); err != nil {
		t.Fatalf("decode locations: %v", err)
	}
	if len(locations) != 2 {
		t.Errorf("locations = %+v", locations)
	}
}

func TestCollectionRoutesRepositoryFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubCollections{sohErr: errors.New("boom")}
	router := gin.New()
	NewCollectionHandler(stub).Register(router.Group("/collections"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/collections/soh", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("soh status = %d, want 500", w.Code)
	}
}
