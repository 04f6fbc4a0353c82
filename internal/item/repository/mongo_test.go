package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shoppinglist/shopping-list/internal/database"
	"github.com/shoppinglist/shopping-list/internal/item"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testDBEnv = "MONGODB_TEST_URI"

func newTestMongoRepo(t *testing.T) *MongoRepo {
	t.Helper()
	uri, ok := os.LookupEnv(testDBEnv)
	if !ok {
		t.Skipf("set %q to run Mongo repository tests", testDBEnv)
	}
	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, uri, 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	db := client.Database("shopping-list-test")
	require.NoError(t, db.Collection(CollectionName).Drop(ctx))
	return NewMongoRepo(db.Collection(CollectionName))
}

func TestMongoRepoCRUD(t *testing.T) {
	r := newTestMongoRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Ping(ctx))

	for _, n := range []string{"Broad beans", "Tomatoes", "Peppers"} {
		_, err := r.Create(ctx, n)
		require.NoError(t, err)
	}
	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Broad beans", list[0].Name)
	require.Equal(t, "Peppers", list[2].Name)

	id := list[0].ID
	got, err := r.UpdateName(ctx, id, "Spinach")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "Spinach", got.Name)

	_, err = r.UpdateName(ctx, primitive.NewObjectID(), "nope")
	require.ErrorIs(t, err, item.ErrNotFound)

	n, err := r.Delete(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	n, err = r.Delete(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}
