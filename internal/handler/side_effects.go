package handler

import "net/http"

// CopyRequest тело запроса копирования
type CopyRequest struct {
	Text string `json:"text"`
}

// OpenRequest тело запроса открытия URL
type OpenRequest struct {
	URL string `json:"url"`
}

// Copy копирует текст в буфер обмена хоста консоли
func (h *Handler) Copy(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}

	var req CopyRequest
	if !h.decode(w, r, &req) {
		return
	}

	c.CopyToClipboard(req.Text)
	h.writeView(w, c)
}

// Open открывает URL в браузере хоста консоли
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}

	var req OpenRequest
	if !h.decode(w, r, &req) {
		return
	}

	c.OpenURL(req.URL)
	h.writeView(w, c)
}
