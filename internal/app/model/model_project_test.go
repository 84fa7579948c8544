package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestProjectMemberDecodeUnion(t *testing.T) {
	t.Run("flat string entry", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"members": bson.A{"u1", "u2"}})
		require.NoError(t, err)

		var doc struct {
			Members []ProjectMember `bson:"members"`
		}
		require.NoError(t, bson.Unmarshal(raw, &doc))
		require.Len(t, doc.Members, 2)

		assert.Equal(t, "u1", doc.Members[0].UserId)
		assert.True(t, doc.Members[0].IsLegacyEntry())
		assert.Empty(t, doc.Members[0].Role)
	})

	t.Run("structured entry", func(t *testing.T) {
		joined := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		raw, err := bson.Marshal(bson.M{"members": bson.A{
			bson.M{"userId": "alice", "role": "Viewer", "joinedAt": joined, "invitedBy": "owner"},
		}})
		require.NoError(t, err)

		var doc struct {
			Members []ProjectMember `bson:"members"`
		}
		require.NoError(t, bson.Unmarshal(raw, &doc))
		require.Len(t, doc.Members, 1)

		m := doc.Members[0]
		assert.Equal(t, "alice", m.UserId)
		assert.Equal(t, "Viewer", m.Role)
		assert.Equal(t, "owner", m.InvitedBy)
		assert.True(t, joined.Equal(m.JoinedAt))
		assert.False(t, m.IsLegacyEntry())
	})

	t.Run("mixed array", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"members": bson.A{
			"u1",
			bson.M{"userId": "alice", "role": "Editor"},
		}})
		require.NoError(t, err)

		var doc struct {
			Members []ProjectMember `bson:"members"`
		}
		require.NoError(t, bson.Unmarshal(raw, &doc))
		require.Len(t, doc.Members, 2)
		assert.True(t, doc.Members[0].IsLegacyEntry())
		assert.False(t, doc.Members[1].IsLegacyEntry())
	})
}

func TestProjectMemberEncodeAlwaysStructured(t *testing.T) {
	doc := struct {
		Members []ProjectMember `bson:"members"`
	}{
		Members: []ProjectMember{LegacyMember("u1")},
	}

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var out bson.M
	require.NoError(t, bson.Unmarshal(raw, &out))
	arr, ok := out["members"].(bson.A)
	require.True(t, ok)
	require.Len(t, arr, 1)

	// even a flat-decoded entry re-encodes as a document, never a bare string
	entry, ok := arr[0].(bson.M)
	require.True(t, ok, "expected embedded document, got %T", arr[0])
	assert.Equal(t, "u1", entry["userId"])
}
