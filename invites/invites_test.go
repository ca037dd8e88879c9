package invites

import (
	"testing"

	"wanderlog/config"

	"github.com/stretchr/testify/require"
)

func TestJoinLink(t *testing.T) {
	config.BaseURL = "https://trips.example.com"

	link := JoinLink("trip123", "friend@example.com")
	require.Equal(t, "https://trips.example.com/joinTrip?email=friend%40example.com&tripId=trip123", link)
}

func TestInviteBody(t *testing.T) {
	body := inviteBody("Alice", "Kyoto 2024", "https://trips.example.com/joinTrip?tripId=t1")

	require.Contains(t, body, "Alice")
	require.Contains(t, body, "Kyoto 2024")
	require.Contains(t, body, `href="https://trips.example.com/joinTrip?tripId=t1"`)
	// the raw link is repeated for clients that strip buttons
	require.Contains(t, body, "<p>https://trips.example.com/joinTrip?tripId=t1</p>")
}
