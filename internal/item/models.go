package item

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound    = errors.New("item not found")
	ErrInvalidID   = errors.New("malformed item id")
	ErrInvalidName = errors.New("item name must be a non-empty string")
)

// Item is a single shopping-list entry. It is stored in the "items" collection
// and rendered to clients as {"id": "<hex>", "name": "..."}.
type Item struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

// ParseID converts a path identifier into an ObjectID. Anything that is not a
// 24-char hex string yields ErrInvalidID, so callers never need the store to
// tell a malformed id apart from a missing one.
func ParseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// ValidName reports whether name is acceptable for a stored item.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
