package service

import (
	"context"
	"strings"

	"github.com/pribylovaa/go-music-profiles/internal/models"
	"github.com/pribylovaa/go-music-profiles/internal/pkg/log"
)

// CreateTransaction сохраняет перевод. Отправитель и получатель обязательны,
// сумма не может быть отрицательной.
func (s *Service) CreateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	const op = "service/transactions/CreateTransaction"

	lg := log.From(ctx).With("op", op)

	tx.ID = ""
	tx.Sender = strings.TrimSpace(tx.Sender)
	tx.Receiver = strings.TrimSpace(tx.Receiver)

	switch {
	case tx.Sender == "":
		return nil, invalid(lg, op, "empty sender")
	case tx.Receiver == "":
		return nil, invalid(lg, op, "empty receiver")
	case tx.Amount < 0:
		return nil, invalid(lg, op, "negative amount")
	}

	out, err := s.transactions.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	return out, nil
}

func (s *Service) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	const op = "service/transactions/Transaction"

	lg := log.From(ctx).With("op", op, "id", id)

	out, err := s.transactions.TransactionByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	return out, nil
}

// Transactions: список переводов (не больше лимита выдачи).
func (s *Service) Transactions(ctx context.Context) ([]models.Transaction, error) {
	const op = "service/transactions/Transactions"

	lg := log.From(ctx).With("op", op)

	out, err := s.transactions.ListTransactions(ctx, s.listLimit)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	return out, nil
}

// UpdateTransaction меняет только переданные поля.
func (s *Service) UpdateTransaction(ctx context.Context, id string, upd models.TransactionUpdate) (*models.Transaction, error) {
	const op = "service/transactions/UpdateTransaction"

	lg := log.From(ctx).With("op", op, "id", id)

	if upd.Amount != nil && *upd.Amount < 0 {
		return nil, invalid(lg, op, "negative amount")
	}

	out, err := s.transactions.UpdateTransaction(ctx, id, upd)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	return out, nil
}
