package sellersession

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultCollection is the collection used by MongoRepository.
const DefaultCollection = "seller_sessions"

type sessionDocument struct {
	DeviceID    string    `bson:"device_id"`
	SellerPhone string    `bson:"seller_phone"`
	SellerName  string    `bson:"seller_name"`
	LastActive  time.Time `bson:"last_active"`
}

// MongoRepository stores one document per device in a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a repository over the DefaultCollection of db.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(DefaultCollection)}
}

// EnsureIndexes creates the unique device_id index.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "device_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Join(ErrRepository, err)
	}
	return nil
}

func (r *MongoRepository) Upsert(ctx context.Context, session *Session) error {
	if session == nil || session.DeviceID == "" {
		return ErrInvalidSession
	}
	update := bson.M{"$set": sessionDocument{
		DeviceID:    session.DeviceID,
		SellerPhone: session.SellerPhone,
		SellerName:  session.SellerName,
		LastActive:  session.LastActive.UTC(),
	}}
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"device_id": session.DeviceID},
		update,
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrRepository, err)
	}
	return nil
}

func (r *MongoRepository) FindByDeviceID(ctx context.Context, deviceID string) (*Session, error) {
	var doc sessionDocument
	if err := r.coll.FindOne(ctx, bson.M{"device_id": deviceID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Join(ErrRepository, err)
	}
	return &Session{
		DeviceID:    doc.DeviceID,
		SellerPhone: doc.SellerPhone,
		SellerName:  doc.SellerName,
		LastActive:  doc.LastActive,
	}, nil
}

func (r *MongoRepository) UpdateLastActive(ctx context.Context, deviceID string, at time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"device_id": deviceID},
		bson.M{"$set": bson.M{"last_active": at.UTC()}},
	)
	if err != nil {
		return errors.Join(ErrRepository, err)
	}
	if res.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, deviceID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"device_id": deviceID}); err != nil {
		return errors.Join(ErrRepository, err)
	}
	return nil
}
