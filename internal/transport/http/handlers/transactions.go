package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-music-profiles/internal/errors"
	"github.com/pribylovaa/go-music-profiles/internal/models"
)

func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in CreateTransactionRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.CreateTransaction(r.Context(), in.toModel())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Transactions(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(resp))
}

func (h *Handlers) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.Transaction(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in models.TransactionUpdate
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.UpdateTransaction(r.Context(), id, in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
