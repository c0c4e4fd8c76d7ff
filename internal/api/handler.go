// internal/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"restaurant-finder/internal/common/errors"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/models"
	"restaurant-finder/pkg/registry"

	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// PlacesService is the restaurant lookup the handlers delegate to.
type PlacesService interface {
	Search(ctx context.Context, query string) []models.SearchResult
	GetDetails(ctx context.Context, placeID string) (*models.Restaurant, bool)
	ClearCache()
	MockMode() bool
}

type SearchRequest struct {
	Query string `json:"query"`
}

type SearchResponse struct {
	Results []models.SearchResult `json:"results"`
}

// DetailsResponse is the restaurant record plus a stable id derived from its place_id.
type DetailsResponse struct {
	ID string `json:"id"`
	*models.Restaurant
}

type Handler struct {
	places   PlacesService
	registry *registry.APIRegistry
	errors   *errors.ErrorHandler
	logger   logger.Logger
}

func NewHandler(places PlacesService, reg *registry.APIRegistry, log logger.Logger) *Handler {
	l := log.With(map[string]interface{}{"component": "api"})
	return &Handler{
		places:   places,
		registry: reg,
		errors:   errors.NewErrorHandler(l),
		logger:   l,
	}
}

// Search handles POST /search/ with body {"query": "..."}.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.errors.HandleHTTPError(w, r, errors.NewInvalidRequestBodyError(err.Error()))
		return
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		h.errors.HandleHTTPError(w, r, errors.NewInvalidRequestBodyError(err.Error()))
		return
	}
	if err := h.validate(registry.EndpointSearch, doc); err != nil {
		h.errors.HandleHTTPError(w, r, errors.NewInvalidRequestBodyError(err.Error()))
		return
	}

	var req SearchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.errors.HandleHTTPError(w, r, errors.NewInvalidRequestBodyError(err.Error()))
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		h.errors.HandleHTTPError(w, r, errors.NewInvalidQueryError("query is empty after trimming"))
		return
	}

	results := h.places.Search(r.Context(), query)
	if results == nil {
		results = []models.SearchResult{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// Details handles GET /details/?place_id=...
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	doc := map[string]interface{}{}
	if values, ok := r.URL.Query()["place_id"]; ok && len(values) > 0 {
		doc["place_id"] = values[0]
	}
	placeID, _ := doc["place_id"].(string)
	if err := h.validate(registry.EndpointDetails, doc); err != nil || placeID == "" {
		h.errors.HandleHTTPError(w, r, errors.NewMissingPlaceIDError())
		return
	}

	restaurant, found := h.places.GetDetails(r.Context(), placeID)
	if !found {
		h.errors.HandleHTTPError(w, r, errors.NewRestaurantNotFoundError(placeID))
		return
	}

	writeJSON(w, http.StatusOK, DetailsResponse{
		ID:         RestaurantID(placeID),
		Restaurant: restaurant,
	})
}

// ClearCache handles GET /clear-cache/.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.places.ClearCache()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cache cleared successfully"})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	mode := "live"
	if h.places.MockMode() {
		mode = "mock"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"mode":   mode,
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) validate(endpointID string, doc interface{}) error {
	if h.registry == nil {
		return nil
	}
	ep := h.registry.Find(endpointID)
	if ep == nil {
		return nil
	}
	return ep.ValidateInput(doc)
}

// RestaurantID derives a stable UUIDv5 from a place_id.
func RestaurantID(placeID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(placeID)).String()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
