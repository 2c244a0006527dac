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

// listenerDoc: представление профиля слушателя в коллекции listeners.
type listenerDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	UserID       string             `bson:"user_id"`
	Interests    []string           `bson:"interests"`
	Playlists    []string           `bson:"playlists"`
	Subscription string             `bson:"subscription"`
}

func (d listenerDoc) model() *models.Listener {
	sub := models.Subscription(d.Subscription)
	// Документы ранних ревизий могли не содержать подписки.
	if sub == "" {
		sub = models.SubscriptionFree
	}

	return &models.Listener{
		ID:           d.ID.Hex(),
		UserID:       d.UserID,
		Interests:    refs(d.Interests),
		Playlists:    refs(d.Playlists),
		Subscription: sub,
	}
}

var listenerRefs = map[string]struct{}{
	models.RefPlaylists: {},
	models.RefInterests: {},
}

func (m *Mongo) CreateListener(ctx context.Context, listener models.Listener) (*models.Listener, error) {
	const op = "storage/mongo/CreateListener"

	oid, err := newObjectID(listener.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sub := listener.Subscription
	if sub == "" {
		sub = models.SubscriptionFree
	}

	doc := listenerDoc{
		ID:           oid,
		UserID:       listener.UserID,
		Interests:    models.UniqueRefs(listener.Interests),
		Playlists:    models.UniqueRefs(listener.Playlists),
		Subscription: string(sub),
	}

	if _, err := m.listeners.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	return doc.model(), nil
}

func (m *Mongo) ListenerByID(ctx context.Context, id string) (*models.Listener, error) {
	const op = "storage/mongo/ListenerByID"

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc listenerDoc
	if err := m.listeners.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.model(), nil
}

func (m *Mongo) ListListeners(ctx context.Context, userID string, limit int64) ([]models.Listener, error) {
	const op = "storage/mongo/ListListeners"

	filter := bson.D{}
	if userID != "" {
		filter = bson.D{{Key: "user_id", Value: userID}}
	}

	cur, err := m.listeners.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var docs []listenerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	out := make([]models.Listener, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.model())
	}

	return out, nil
}

func (m *Mongo) UpdateListener(ctx context.Context, id string, upd models.ListenerUpdate) (*models.Listener, error) {
	const op = "storage/mongo/UpdateListener"

	if upd.IsEmpty() {
		return m.ListenerByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc listenerDoc
	err = m.listeners.FindOneAndUpdate(ctx,
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

func (m *Mongo) AddListenerReference(ctx context.Context, id, collection, ref string) (*models.Listener, error) {
	const op = "storage/mongo/AddListenerReference"

	if err := checkRef(listenerRefs, collection, ref); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc listenerDoc
	err = m.listeners.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$addToSet", Value: bson.D{{Key: collection, Value: ref}}}},
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

func (m *Mongo) DeleteListener(ctx context.Context, id string) (int64, error) {
	const op = "storage/mongo/DeleteListener"

	oid, err := objectID(id)
	if err != nil {
		return 0, nil
	}

	res, err := m.listeners.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.DeletedCount, nil
}
