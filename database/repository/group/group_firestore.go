package groupRepo

import (
	"time"

	"gatherandgo/database"
	"gatherandgo/database/repository"
	"gatherandgo/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreGroupRepo implements GroupRepository using Firestore. The
// document key is the group id, so the struct's ID field is not stored.
type FirestoreGroupRepo struct {
	client *firestore.Client
}

// NewFirestoreGroupRepo creates a new instance of GroupRepository using Firestore.
func NewFirestoreGroupRepo() GroupRepository {
	return &FirestoreGroupRepo{client: database.FirestoreClient}
}

// Create inserts a new group document with a Firestore auto-generated id.
func (r *FirestoreGroupRepo) Create(group *models.Group) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now()
	}

	ref := r.client.Collection(groupsCollection).NewDoc()
	group.ID = ref.ID
	if _, err := ref.Set(ctx, group); err != nil {
		return "", &repository.StoreWriteError{Collection: groupsCollection, Err: err}
	}
	return group.ID, nil
}

// GetByID retrieves a group by its document id.
func (r *FirestoreGroupRepo) GetByID(id string) (*models.Group, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	snap, err := r.client.Collection(groupsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, &repository.NotFoundError{Collection: groupsCollection, Key: id}
		}
		return nil, &repository.StoreReadError{Collection: groupsCollection, Err: err}
	}

	var group models.Group
	if err := snap.DataTo(&group); err != nil {
		return nil, &repository.StoreReadError{Collection: groupsCollection, Err: err}
	}
	group.ID = snap.Ref.ID
	return &group, nil
}

// GetAll retrieves all group documents.
func (r *FirestoreGroupRepo) GetAll() ([]models.Group, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	iter := r.client.Collection(groupsCollection).Documents(ctx)
	defer iter.Stop()

	var groups []models.Group
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &repository.StoreReadError{Collection: groupsCollection, Err: err}
		}
		var g models.Group
		if err := snap.DataTo(&g); err != nil {
			return nil, &repository.StoreReadError{Collection: groupsCollection, Err: err}
		}
		g.ID = snap.Ref.ID
		groups = append(groups, g)
	}
	return groups, nil
}

// AddMember atomically unions userID into memberIds via ArrayUnion.
func (r *FirestoreGroupRepo) AddMember(groupID, userID string) error {
	return r.arrayUnion(groupID, "memberIds", userID)
}

// AddInvitedEmail atomically unions email into invitedEmails.
func (r *FirestoreGroupRepo) AddInvitedEmail(groupID, email string) error {
	return r.arrayUnion(groupID, "invitedEmails", email)
}

func (r *FirestoreGroupRepo) arrayUnion(groupID, field string, value any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.client.Collection(groupsCollection).Doc(groupID).Update(ctx, []firestore.Update{
		{Path: field, Value: firestore.ArrayUnion(value)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &repository.NotFoundError{Collection: groupsCollection, Key: groupID}
		}
		return &repository.StoreWriteError{Collection: groupsCollection, Err: err}
	}
	return nil
}

// SetStatus updates the group's status string.
func (r *FirestoreGroupRepo) SetStatus(groupID, newStatus string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.client.Collection(groupsCollection).Doc(groupID).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &repository.NotFoundError{Collection: groupsCollection, Key: groupID}
		}
		return &repository.StoreWriteError{Collection: groupsCollection, Err: err}
	}
	return nil
}
