package groupRepo

import (
	"context"
	"time"

	"gatherandgo/database"
	"gatherandgo/database/repository"
	"gatherandgo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const groupsCollection = "groups"

// MongoGroupRepo implements GroupRepository using MongoDB.
type MongoGroupRepo struct {
	coll *mongo.Collection
}

// NewMongoGroupRepo creates a new instance of GroupRepository using MongoDB.
func NewMongoGroupRepo() GroupRepository {
	coll := database.MongoClient.Database("gatherandgo").Collection(groupsCollection)
	repo := &MongoGroupRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		// Index creation is best effort; queries still work without it.
		_ = err
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoGroupRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "memberIds", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	return err
}

// Create inserts a new group document. Mongo has no server-assigned string
// key for our "id" field, so the repository assigns one.
func (r *MongoGroupRepo) Create(group *models.Group) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if group.ID == "" {
		group.ID = uuid.NewString()
	}
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, group); err != nil {
		return "", &repository.StoreWriteError{Collection: groupsCollection, Err: err}
	}
	return group.ID, nil
}

// GetByID retrieves a group by its unique ID.
func (r *MongoGroupRepo) GetByID(id string) (*models.Group, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var group models.Group
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&group); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &repository.NotFoundError{Collection: groupsCollection, Key: id}
		}
		return nil, &repository.StoreReadError{Collection: groupsCollection, Err: err}
	}
	return &group, nil
}

// GetAll retrieves all group documents.
func (r *MongoGroupRepo) GetAll() ([]models.Group, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, &repository.StoreReadError{Collection: groupsCollection, Err: err}
	}
	defer cursor.Close(ctx)

	var groups []models.Group
	for cursor.Next(ctx) {
		var g models.Group
		if err := cursor.Decode(&g); err != nil {
			return nil, &repository.StoreReadError{Collection: groupsCollection, Err: err}
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// AddMember atomically unions userID into memberIds via $addToSet.
func (r *MongoGroupRepo) AddMember(groupID, userID string) error {
	return r.addToSet(groupID, "memberIds", userID)
}

// AddInvitedEmail atomically unions email into invitedEmails.
func (r *MongoGroupRepo) AddInvitedEmail(groupID, email string) error {
	return r.addToSet(groupID, "invitedEmails", email)
}

// addToSet wraps the update in $addToSet so the union happens server-side;
// no read-modify-write from the caller.
func (r *MongoGroupRepo) addToSet(groupID, field string, value any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{field: value}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": groupID}, update)
	if err != nil {
		return &repository.StoreWriteError{Collection: groupsCollection, Err: err}
	}
	if result.MatchedCount == 0 {
		return &repository.NotFoundError{Collection: groupsCollection, Key: groupID}
	}
	return nil
}

// SetStatus updates the group's status string.
func (r *MongoGroupRepo) SetStatus(groupID, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": groupID}, update)
	if err != nil {
		return &repository.StoreWriteError{Collection: groupsCollection, Err: err}
	}
	if result.MatchedCount == 0 {
		return &repository.NotFoundError{Collection: groupsCollection, Key: groupID}
	}
	return nil
}
