package repository

import (
	"context"

	"github.com/shoppinglist/shopping-list/internal/item"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the persistence contract for shopping-list items.
// UpdateName returns item.ErrNotFound when no item has the given id; Delete
// reports how many items were removed and treats a missing id as a no-op.
type Repository interface {
	List(ctx context.Context) ([]*item.Item, error)
	Create(ctx context.Context, name string) (*item.Item, error)
	UpdateName(ctx context.Context, id primitive.ObjectID, name string) (*item.Item, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Ping(ctx context.Context) error
}
