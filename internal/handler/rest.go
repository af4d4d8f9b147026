package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/library-api/internal/model"
	"github.com/vyrodovalexey/library-api/internal/store"
)

// Version is the application version.
const Version = "1.0.0"

// EventPublisher receives catalog change events for the WebSocket feed.
type EventPublisher interface {
	Publish(event model.CatalogEvent)
}

// BookHandler handles REST API requests for the book catalog.
type BookHandler struct {
	catalog store.Catalog
	events  EventPublisher
	logger  *zap.Logger
}

// NewBookHandler creates a new BookHandler instance. The events publisher is
// optional; pass nil to disable the change feed.
func NewBookHandler(catalog store.Catalog, events EventPublisher, logger *zap.Logger) *BookHandler {
	return &BookHandler{
		catalog: catalog,
		events:  events,
		logger:  logger,
	}
}

// RegisterRoutes registers the REST API routes with the router.
func (h *BookHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	router.HandleFunc("/ready", h.ReadyCheck).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/books", h.ListBooks).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/books", h.CreateBook).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/books/{id}", h.GetBook).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/books/{id}", h.UpdateBook).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/books/{id}", h.DeleteBook).Methods(http.MethodDelete)
}

// HealthCheck handles GET /health requests.
func (h *BookHandler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	response := HealthResponse{
		Status:  "healthy",
		Version: Version,
	}
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(response))
}

// ReadyCheck handles GET /ready requests.
func (h *BookHandler) ReadyCheck(w http.ResponseWriter, _ *http.Request) {
	response := ReadyResponse{
		Status: "ready",
	}
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(response))
}

// ListBooks handles GET /api/v1/books requests.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	books, err := h.catalog.List(ctx)
	if err != nil {
		h.logger.Error("failed to list books", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to retrieve books")
		return
	}

	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(books))
}

// GetBook handles GET /api/v1/books/{id} requests.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	book, err := h.catalog.Get(ctx, id)
	if err != nil {
		h.handleCatalogError(w, err, "get book")
		return
	}

	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(book))
}

// CreateBook handles POST /api/v1/books requests.
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, ok := h.decodeBook(w, r)
	if !ok {
		return
	}

	book, err := h.catalog.Add(ctx, *input)
	if err != nil {
		h.handleCatalogError(w, err, "create book")
		return
	}

	h.publish(model.EventBookCreated, *book)
	h.writeJSON(w, http.StatusCreated, model.NewSuccessResponse(book))
}

// UpdateBook handles PUT /api/v1/books/{id} requests. The replacement record
// is stored as submitted, including its ID, which may differ from the path
// identifier.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	input, ok := h.decodeBook(w, r)
	if !ok {
		return
	}

	book, err := h.catalog.Replace(ctx, id, *input)
	if err != nil {
		h.handleCatalogError(w, err, "update book")
		return
	}

	h.publish(model.EventBookReplaced, *book)
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(book))
}

// DeleteBook handles DELETE /api/v1/books/{id} requests.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	removed, err := h.catalog.Remove(ctx, id)
	if err != nil {
		h.handleCatalogError(w, err, "delete book")
		return
	}

	h.publish(model.EventBookRemoved, *removed)
	response := DeleteResponse{Message: "book removed successfully"}
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(response))
}

// bookID extracts and parses the {id} path variable. Writes a 400 response
// and returns false when the value is not an integer.
func (h *BookHandler) bookID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)

	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		h.logger.Warn("invalid book id", zap.String("id", vars["id"]))
		h.writeError(w, http.StatusBadRequest, "invalid book id")
		return 0, false
	}

	return id, true
}

// decodeBook decodes and validates the request body. Writes a 400 response
// and returns false on failure.
func (h *BookHandler) decodeBook(w http.ResponseWriter, r *http.Request) (*model.Book, bool) {
	var input model.Book
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	if err := input.Validate(); err != nil {
		h.logger.Warn("validation failed", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return &input, true
}

// publish sends a catalog event to the change feed when one is configured.
func (h *BookHandler) publish(eventType string, book model.Book) {
	if h.events == nil {
		return
	}
	h.events.Publish(model.NewCatalogEvent(eventType, book))
}

// handleCatalogError maps catalog errors to HTTP responses: not-found to
// 404, duplicate id to 409 Conflict, everything else to 500.
func (h *BookHandler) handleCatalogError(w http.ResponseWriter, err error, operation string) {
	var notFound *store.NotFoundError
	var duplicate *store.DuplicateIDError

	switch {
	case errors.As(err, &notFound):
		h.writeError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &duplicate):
		h.writeError(w, http.StatusConflict, duplicate.Error())
	default:
		h.logger.Error("catalog operation failed", zap.String("operation", operation), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeJSON writes a JSON response with the given status code.
func (h *BookHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes an error response with the given status code and message.
func (h *BookHandler) writeError(w http.ResponseWriter, status int, message string) {
	response := model.ErrorResponse{
		Code:    status,
		Message: message,
	}
	h.writeJSON(w, status, response)
}
