package service

import (
	"context"
	"errors"

	"github.com/shoppinglist/shopping-list/internal/item"
	"github.com/shoppinglist/shopping-list/internal/item/repository"
	"github.com/shoppinglist/shopping-list/pkg/metrics"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service defines the item operations used by the handler layer.
type Service interface {
	List(ctx context.Context) ([]*item.Item, error)
	Create(ctx context.Context, name string) (*item.Item, error)
	Update(ctx context.Context, id, name string) (*item.Item, error)
	Delete(ctx context.Context, id string) (int64, error)
	Ping(ctx context.Context) error
}

// New returns a Service backed by the given repository.
func New(repo repository.Repository) Service {
	return &itemService{repo: repo}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return New(repository.NewMemoryRepo())
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller owns the client and is responsible for disconnecting it.
func NewMongoService(col *mongo.Collection) Service {
	return New(repository.NewMongoRepo(col))
}

type itemService struct {
	repo repository.Repository
}

func (s *itemService) List(ctx context.Context) ([]*item.Item, error) {
	items, err := s.repo.List(ctx)
	record("list", err)
	return items, err
}

func (s *itemService) Create(ctx context.Context, name string) (*item.Item, error) {
	if !item.ValidName(name) {
		record("create", item.ErrInvalidName)
		return nil, item.ErrInvalidName
	}
	it, err := s.repo.Create(ctx, name)
	record("create", err)
	return it, err
}

func (s *itemService) Update(ctx context.Context, id, name string) (*item.Item, error) {
	oid, err := item.ParseID(id)
	if err != nil {
		record("update", err)
		return nil, err
	}
	if !item.ValidName(name) {
		record("update", item.ErrInvalidName)
		return nil, item.ErrInvalidName
	}
	it, err := s.repo.UpdateName(ctx, oid, name)
	record("update", err)
	return it, err
}

func (s *itemService) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := item.ParseID(id)
	if err != nil {
		record("delete", err)
		return 0, err
	}
	n, err := s.repo.Delete(ctx, oid)
	record("delete", err)
	return n, err
}

func (s *itemService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func record(op string, err error) {
	metrics.ItemOperations.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, item.ErrInvalidID), errors.Is(err, item.ErrInvalidName):
		return "invalid"
	case errors.Is(err, item.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
