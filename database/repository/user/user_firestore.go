package userRepo

import (
	"strings"
	"time"

	"gatherandgo/database"
	"gatherandgo/database/repository"
	"gatherandgo/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreUserRepo implements UserRepository using Firestore.
type FirestoreUserRepo struct {
	client *firestore.Client
}

// NewFirestoreUserRepo creates a new instance of UserRepository using Firestore.
func NewFirestoreUserRepo() UserRepository {
	return &FirestoreUserRepo{client: database.FirestoreClient}
}

// GetByID retrieves a user by its document id. Absence is not an error.
func (r *FirestoreUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, &repository.StoreReadError{Collection: usersCollection, Err: err}
	}

	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, &repository.StoreReadError{Collection: usersCollection, Err: err}
	}
	user.ID = snap.Ref.ID
	return &user, nil
}

// GetAll retrieves all user documents.
func (r *FirestoreUserRepo) GetAll() ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var users []models.User
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &repository.StoreReadError{Collection: usersCollection, Err: err}
		}
		var u models.User
		if err := snap.DataTo(&u); err != nil {
			return nil, &repository.StoreReadError{Collection: usersCollection, Err: err}
		}
		u.ID = snap.Ref.ID
		users = append(users, u)
	}
	return users, nil
}

// UpsertMerge writes the given dotted-path fields with Set+MergeAll so the
// stored document keeps every field the map does not mention. Dotted paths
// are expanded into nested maps first; MergeAll merges map values key by key.
func (r *FirestoreUserRepo) UpsertMerge(id string, fields map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doc := expandDottedPaths(fields)
	_, err := r.client.Collection(usersCollection).Doc(id).Set(ctx, doc, firestore.MergeAll)
	if err != nil {
		return &repository.StoreWriteError{Collection: usersCollection, Err: err}
	}
	return nil
}

// expandDottedPaths turns {"preferences.notes": "x"} into
// {"preferences": {"notes": "x"}}.
func expandDottedPaths(fields map[string]any) map[string]any {
	doc := make(map[string]any, len(fields))
	for path, value := range fields {
		parts := strings.Split(path, ".")
		node := doc
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return doc
}
