package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-music-profiles/internal/errors"
	"github.com/pribylovaa/go-music-profiles/internal/models"
)

func (h *Handlers) CreateListener(w http.ResponseWriter, r *http.Request) {
	var in CreateListenerRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.CreateListener(r.Context(), in.toModel())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// ListListeners: GET /listeners[?user_id=].
func (h *Handlers) ListListeners(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Listeners(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(resp))
}

func (h *Handlers) GetListener(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.Listener(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) UpdateListener(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in UpdateListenerRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.UpdateListener(r.Context(), id, in.toModel())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) DeleteListener(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.DeleteListener(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddListenerPlaylist: POST /listeners/{id}/playlists.
func (h *Handlers) AddListenerPlaylist(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in models.PlaylistCreate
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.AddListenerPlaylist(r.Context(), id, in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// AddListenerInterest: POST /listeners/{id}/interests.
func (h *Handlers) AddListenerInterest(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in AddInterestRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.AddListenerInterest(r.Context(), id, in.Interest)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Recommendations: GET /listeners/{id}/recommendations.
func (h *Handlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.Recommendations(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(resp))
}
