package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-music-profiles/internal/errors"
	"github.com/pribylovaa/go-music-profiles/internal/models"
)

func (h *Handlers) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var in CreateArtistRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.CreateArtist(r.Context(), in.toModel())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// ListArtists: GET /artists[?user_id=].
func (h *Handlers) ListArtists(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Artists(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(resp))
}

func (h *Handlers) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.Artist(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in UpdateArtistRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.UpdateArtist(r.Context(), id, in.toModel())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.DeleteArtist(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddArtistAlbum: POST /artists/{id}/albums: альбом с песнями создаётся
// в multimedia-сервисе и привязывается к артисту.
func (h *Handlers) AddArtistAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in models.AlbumCreate
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.AddArtistAlbum(r.Context(), id, in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handlers) AddArtistSong(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in models.SongCreate
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.AddArtistSong(r.Context(), id, in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// AddSongToAlbum: POST /artists/{id}/albums/{album_id}/songs.
func (h *Handlers) AddSongToAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	albumID, err := pathParam(r, "album_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in models.SongCreate
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.AddSongToAlbum(r.Context(), id, albumID, in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
