package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/skip2/go-qrcode"
)

// ShareHandler renders the app link as a QR code for the Sunday sharing prompt.
type ShareHandler struct {
	link string
}

func NewShareHandler(link string) *ShareHandler {
	return &ShareHandler{link: link}
}

func (h *ShareHandler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	size := 256
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 64 || n > 1024 {
			respondWithError(w, http.StatusBadRequest, "size must be between 64 and 1024")
			return
		}
		size = n
	}

	png, err := qrcode.Encode(h.link, qrcode.Medium, size)
	if err != nil {
		log.Printf("Share Handler: failed to generate QR png: %v", err)
		respondWithError(w, http.StatusInternalServerError, "unable to generate qr code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
