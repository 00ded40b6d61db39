// models/group.go
package models

import "time"

// Group status values. The only transition is planning -> finalized.
const (
	GroupStatusPlanning  = "planning"
	GroupStatusFinalized = "finalized"
)

// Group is a document in the "groups" collection (store-assigned id).
// MemberIDs has set semantics: no duplicates, and CreatedBy is always a
// member. Membership only grows through the atomic union-append in the
// repository; groups are never deleted by this system.
type Group struct {
	ID            string    `bson:"id" firestore:"-" json:"id"`
	Name          string    `bson:"name" firestore:"name" json:"name"`
	CreatedBy     string    `bson:"createdBy" firestore:"createdBy" json:"createdBy"`
	MemberIDs     []string  `bson:"memberIds" firestore:"memberIds" json:"memberIds"`
	InvitedEmails []string  `bson:"invitedEmails" firestore:"invitedEmails" json:"invitedEmails"`
	Status        string    `bson:"status" firestore:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" firestore:"createdAt" json:"createdAt"`
}

// HasMember reports whether userID is already in the member set.
func (g *Group) HasMember(userID string) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
