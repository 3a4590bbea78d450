package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/betdesk/backoffice/internal/models"
)

type userStore struct {
	Collection *mongo.Collection
}

func NewUserStore(users *mongo.Collection) *userStore {
	return &userStore{Collection: users}
}

// EnsureIndexes enforces username/whatsapp uniqueness at the database, so a
// racing duplicate registration loses on insert rather than slipping past the
// pre-check.
func (us *userStore) EnsureIndexes(ctx context.Context) error {
	_, err := us.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "whatsapp", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (us *userStore) Insert(ctx context.Context, user *models.User) error {
	res, err := us.Collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindConflict returns an existing user matching either unique field, or nil.
func (us *userStore) FindConflict(ctx context.Context, username, whatsapp string) (*models.User, error) {
	var user models.User
	err := us.Collection.FindOne(ctx, bson.M{
		"$or": bson.A{
			bson.M{"username": username},
			bson.M{"whatsapp": whatsapp},
		},
	}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIdentifier matches a login identifier against username or whatsapp.
func (us *userStore) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	err := us.Collection.FindOne(ctx, bson.M{
		"$or": bson.A{
			bson.M{"username": identifier},
			bson.M{"whatsapp": identifier},
		},
	}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (us *userStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = us.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first. The password hash is excluded at the
// query so it never leaves the database.
func (us *userStore) List(ctx context.Context) ([]*models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"password": 0})

	cursor, err := us.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []*models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user when present; an invalid or unknown id is a no-op.
func (us *userStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = us.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// UpdatePartial sets only the provided fields; nil pointers leave the stored
// values untouched.
func (us *userStore) UpdatePartial(ctx context.Context, id string, password *string, isActive *bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	fields := bson.M{"updatedAt": time.Now().UTC()}
	if password != nil {
		fields["password"] = *password
	}
	if isActive != nil {
		fields["isActive"] = *isActive
	}

	res, err := us.Collection.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IsDuplicate reports whether an insert failed on a unique index.
func IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
