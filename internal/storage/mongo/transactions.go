package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-music-profiles/internal/models"
	"github.com/pribylovaa/go-music-profiles/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type transactionDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	Sender   string             `bson:"sender"`
	Receiver string             `bson:"receiver"`
	Amount   float64            `bson:"amount"`
	Date     string             `bson:"date"`
}

func (d transactionDoc) model() *models.Transaction {
	return &models.Transaction{
		ID:       d.ID.Hex(),
		Sender:   d.Sender,
		Receiver: d.Receiver,
		Amount:   d.Amount,
		Date:     d.Date,
	}
}

func (m *Mongo) CreateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	const op = "storage/mongo/CreateTransaction"

	oid, err := newObjectID(tx.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	doc := transactionDoc{
		ID:       oid,
		Sender:   tx.Sender,
		Receiver: tx.Receiver,
		Amount:   tx.Amount,
		Date:     tx.Date,
	}

	if _, err := m.transactions.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	return doc.model(), nil
}

func (m *Mongo) TransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	const op = "storage/mongo/TransactionByID"

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc transactionDoc
	if err := m.transactions.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.model(), nil
}

func (m *Mongo) ListTransactions(ctx context.Context, limit int64) ([]models.Transaction, error) {
	const op = "storage/mongo/ListTransactions"

	cur, err := m.transactions.Find(ctx, bson.D{}, options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var docs []transactionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	out := make([]models.Transaction, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.model())
	}

	return out, nil
}

func (m *Mongo) UpdateTransaction(ctx context.Context, id string, upd models.TransactionUpdate) (*models.Transaction, error) {
	const op = "storage/mongo/UpdateTransaction"

	if upd.IsEmpty() {
		return m.TransactionByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc transactionDoc
	err = m.transactions.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		setDoc(upd.Fields()),
		afterUpdate(),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.model(), nil
}
