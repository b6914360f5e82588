package handlers

import (
	"net/http"
	"time"

	"dailylect/internal/catalog"
	"dailylect/internal/validation"
)

// CatalogHandler serves the static word bank: dialects and the daily word
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListDialects returns every dialect in the catalog
func (h *CatalogHandler) ListDialects(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.Dialects())
}

// WordOfTheDay returns the deterministic daily word for one dialect.
// Every user sees the same word on the same date.
func (h *CatalogHandler) WordOfTheDay(w http.ResponseWriter, r *http.Request) {
	dialectID := r.PathValue("id")
	if err := validation.ValidateDialectID(dialectID); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	word, ok := h.catalog.WordOfTheDay(dialectID, time.Now())
	if !ok {
		respondWithError(w, http.StatusNotFound, "Unknown dialect", "", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, word)
}
