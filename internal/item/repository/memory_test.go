package repository

import (
	"context"
	"testing"

	"github.com/shoppinglist/shopping-list/internal/item"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryRepoCRUD(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	for _, n := range []string{"Broad beans", "Tomatoes", "Peppers"} {
		_, err := r.Create(ctx, n)
		require.NoError(t, err)
	}
	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Broad beans", list[0].Name)
	require.Equal(t, "Tomatoes", list[1].Name)
	require.Equal(t, "Peppers", list[2].Name)

	id := list[0].ID
	got, err := r.UpdateName(ctx, id, "Spinach")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "Spinach", got.Name)

	n, err := r.Delete(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	// second delete is a no-op
	n, err = r.Delete(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Tomatoes", list[0].Name)
}

func TestMemoryRepoUpdateMissing(t *testing.T) {
	r := NewMemoryRepo()
	_, err := r.UpdateName(context.Background(), primitive.NewObjectID(), "x")
	require.ErrorIs(t, err, item.ErrNotFound)
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	created, err := r.Create(ctx, "Kale")
	require.NoError(t, err)
	created.Name = "mutated"

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Kale", list[0].Name)
}
