package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"misterMoAPI/internal/content"
	"misterMoAPI/internal/tier"
	"misterMoAPI/middleware"
	"misterMoAPI/services"
)

// ContentHandler serves the gated library. The tier always comes from the
// stored user record, never from the request.
type ContentHandler struct {
	catalog     *content.Catalog
	userService *services.UserService
}

func NewContentHandler(catalog *content.Catalog, userService *services.UserService) *ContentHandler {
	return &ContentHandler{catalog: catalog, userService: userService}
}

func (h *ContentHandler) callerTier(w http.ResponseWriter, r *http.Request) (tier.Tier, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := authorizedUserID(w, r, "")
	if !ok {
		return "", false
	}
	return h.userService.Tier(ctx, userID), true
}

func (h *ContentHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	t, ok := h.callerTier(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, h.catalog.Books(t))
}

func (h *ContentHandler) GetBookPage(w http.ResponseWriter, r *http.Request) {
	t, ok := h.callerTier(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	number, err := strconv.Atoi(vars["page"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "page must be a number")
		return
	}

	page, err := h.catalog.Page(vars["id"], number, t)
	if err != nil {
		var gate tier.GateError
		if errors.As(err, &gate) {
			middleware.RecordContentDenial("book_page", gate.Required.String())
		}
		respondWithServiceError(w, "BookPage Handler", err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

func (h *ContentHandler) GetVideos(w http.ResponseWriter, r *http.Request) {
	t, ok := h.callerTier(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, h.catalog.Videos(t))
}

func (h *ContentHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	t, ok := h.callerTier(w, r)
	if !ok {
		return
	}

	video, err := h.catalog.Video(mux.Vars(r)["id"], t)
	if err != nil {
		var gate tier.GateError
		if errors.As(err, &gate) {
			middleware.RecordContentDenial("video", gate.Required.String())
		}
		respondWithServiceError(w, "Video Handler", err)
		return
	}
	respondWithJSON(w, http.StatusOK, video)
}

func (h *ContentHandler) GetDownloads(w http.ResponseWriter, r *http.Request) {
	t, ok := h.callerTier(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, h.catalog.Downloads(t))
}

func (h *ContentHandler) GetPanels(w http.ResponseWriter, r *http.Request) {
	t, ok := h.callerTier(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, h.catalog.PanelsFor(t))
}
