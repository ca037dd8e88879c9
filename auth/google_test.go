package auth

import (
	"strings"
	"testing"
	"time"

	"wanderlog/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLoginUpsert(t *testing.T) {
	info := &tokenInfo{
		Sub:        "google-sub-1",
		Email:      "alice@example.com",
		Name:       "Alice",
		GivenName:  "Alice",
		FamilyName: "Lee",
		Picture:    "https://example.com/a.jpg",
	}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	update := loginUpsert(info, now)

	// a returning login only stamps last_login; everything else is
	// insert-only so concurrent first logins cannot clobber each other
	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	require.Equal(t, bson.M{"last_login": now}, set)

	insert, ok := update["$setOnInsert"].(bson.M)
	require.True(t, ok)
	require.Equal(t, "google-sub-1", insert["googleid"])
	require.Equal(t, "alice@example.com", insert["email"])
	require.Equal(t, "Alice", insert["name"])
	require.Equal(t, true, insert["isactive"])
	require.Equal(t, models.DefaultPreferences(), insert["preferences"])
	require.Equal(t, now, insert["created_at"])

	userID, ok := insert["userid"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(userID, "u"))
	require.Len(t, userID, 11)
}
