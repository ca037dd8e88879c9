package trips

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildSearchFilterDefaults(t *testing.T) {
	filter := BuildSearchFilter("", "", "")
	require.Equal(t, bson.M{"visibility": "public"}, filter)
}

func TestBuildSearchFilterQuery(t *testing.T) {
	filter := BuildSearchFilter("kyoto", "", "")
	require.Equal(t, "public", filter["visibility"])

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)

	re, ok := or[0]["tripname"].(primitive.Regex)
	require.True(t, ok)
	require.Equal(t, "kyoto", re.Pattern)
	require.Equal(t, "i", re.Options)
	require.Contains(t, or[1], "notes")
}

func TestBuildSearchFilterTagsAndStatus(t *testing.T) {
	filter := BuildSearchFilter("", "beach,food", "planning")
	require.Equal(t, bson.M{"$in": []string{"beach", "food"}}, filter["tags"])
	require.Equal(t, "planning", filter["status"])
	require.NotContains(t, filter, "$or")
}

// Tag input is normalized the same way tags are stored: trimmed,
// lowercased, deduplicated. Whitespace-only input filters nothing.
func TestBuildSearchFilterNormalizesTags(t *testing.T) {
	filter := BuildSearchFilter("", " Beach, food ,BEACH", "")
	require.Equal(t, bson.M{"$in": []string{"beach", "food"}}, filter["tags"])

	filter = BuildSearchFilter("", " , ", "")
	require.NotContains(t, filter, "tags")
}
