package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()
	got, err := ParseID(oid.Hex())
	require.NoError(t, err)
	require.Equal(t, oid, got)

	for _, bad := range []string{"", "1", "not-an-id", oid.Hex() + "0", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseID(bad)
		require.ErrorIs(t, err, ErrInvalidID, "input %q", bad)
	}
}

func TestItemJSONUsesHexID(t *testing.T) {
	oid := primitive.NewObjectID()
	b, err := json.Marshal(&Item{ID: oid, Name: "Kale"})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"`+oid.Hex()+`","name":"Kale"}`, string(b))
}

func TestValidName(t *testing.T) {
	require.True(t, ValidName("Tomatoes"))
	require.False(t, ValidName(""))
	require.False(t, ValidName("   "))
}
