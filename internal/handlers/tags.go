package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/models"
)

// TagLister defines the interface that the service must implement.
type TagLister interface {
	List(ctx context.Context) ([]models.TagResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*models.TagResponse, error)
}

// NewTagListHandler returns an HTTP handler listing all tags.
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} models.TagResponse
// @Router /tags [get]
func NewTagListHandler(svc TagLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tags)
	}
}

// NewTagDetailHandler returns an HTTP handler for one tag.
// @Summary Get a tag
// @Tags tags
// @Produce json
// @Param id path string true "Tag id"
// @Success 200 {object} models.TagResponse
// @Failure 404 {object} handlers.ErrorResponse "Unknown tag"
// @Router /tags/{id} [get]
func NewTagDetailHandler(svc TagLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusNotFound, "tag does not exist")
			return
		}

		tag, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tag)
	}
}
