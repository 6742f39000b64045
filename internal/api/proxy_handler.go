package api

import (
	"net/http"

	"github.com/phrazzld/lingua-api/internal/api/shared"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/service/proxy"
)

// ProxyHandler exposes the translation and chat proxies.
type ProxyHandler struct {
	proxy proxy.Service
}

// NewProxyHandler creates a new ProxyHandler.
func NewProxyHandler(p proxy.Service) *ProxyHandler {
	return &ProxyHandler{proxy: p}
}

// Translate handles POST /api/translate.
func (h *ProxyHandler) Translate(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	var req TranslateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out, err := h.proxy.Translate(r.Context(), req.Text, req.Src, req.Tgt)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, TranslateResponse{Translated: out})
}

// Chat handles POST /api/chatbot.
func (h *ProxyHandler) Chat(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	var req ChatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reply, err := h.proxy.Chat(r.Context(), req.Message)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ChatResponse{Reply: reply})
}
