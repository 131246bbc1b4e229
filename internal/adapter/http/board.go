package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mesa-board/internal/core/domain"
)

// pageParams parses the {id} path parameter and the optional `offset` and
// `limit` query parameters. A missing limit is passed on as zero.
func pageParams(r *http.Request) (id int64, offset, limit int, err error) {
	if id, err = strconv.ParseInt(chi.URLParam(r, "id"), 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid id: %w", domain.ErrBadRequest)
	}
	q := r.URL.Query()
	if s := q.Get("offset"); s != "" {
		if offset, err = strconv.Atoi(s); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid offset: %w", domain.ErrBadRequest)
		}
	}
	if s := q.Get("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil || limit < 0 {
			return 0, 0, 0, fmt.Errorf("invalid limit: %w", domain.ErrBadRequest)
		}
	}
	return id, offset, limit, nil
}

// handleCampaignRows returns one page of a campaign board.
func (h *Handler) handleCampaignRows(w http.ResponseWriter, r *http.Request) {
	id, offset, limit, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.board.ReadCampaignRows(r.Context(), principalFrom(r.Context()), id, offset, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

// handleSourceRows returns one page of a CSV-origin source.
func (h *Handler) handleSourceRows(w http.ResponseWriter, r *http.Request) {
	id, offset, limit, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.board.ReadSourceRows(r.Context(), principalFrom(r.Context()), id, offset, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}
