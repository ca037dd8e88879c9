package places

import (
	"strings"
	"testing"

	"wanderlog/config"
	"wanderlog/models"

	"github.com/stretchr/testify/require"
)

func sampleResult() detailsResult {
	var res detailsResult
	res.PlaceID = "gp1"
	res.Name = "Nishiki Market"
	res.FormattedAddress = "Kyoto, Japan"
	res.Types = []string{"market", "point_of_interest"}
	res.Geometry.Location = models.LatLng{Lat: 35.005, Lng: 135.764}
	return res
}

func TestFromDetails(t *testing.T) {
	config.PlacesAPIKey = "test-key"

	res := sampleResult()
	res.OpeningHours = &struct {
		WeekdayText []string `json:"weekday_text"`
	}{WeekdayText: []string{"Monday: 9AM-6PM"}}
	res.Photos = []struct {
		PhotoReference string `json:"photo_reference"`
	}{{PhotoReference: "ref1"}, {PhotoReference: "ref2"}}
	res.Reviews = []struct {
		AuthorName string  `json:"author_name"`
		Rating     float64 `json:"rating"`
		Text       string  `json:"text"`
	}{{AuthorName: "Bob", Rating: 4.5, Text: "great food"}}
	res.EditorialSummary = &struct {
		Overview string `json:"overview"`
	}{Overview: "A famous food market."}

	place := fromDetails(res)
	require.Equal(t, "gp1", place.GooglePlaceID)
	require.Equal(t, "Nishiki Market", place.Name)
	require.Equal(t, "Kyoto, Japan", place.FormattedAddress)
	require.Equal(t, []string{"Monday: 9AM-6PM"}, place.OpeningHours)
	require.Len(t, place.Photos, 2)
	require.True(t, strings.Contains(place.Photos[0], "photoreference=ref1"))
	require.Len(t, place.Reviews, 1)
	require.Equal(t, "Bob", place.Reviews[0].AuthorName)
	require.Equal(t, "A famous food market.", place.BriefDescription)
	require.Equal(t, 35.005, place.Geometry.Location.Lat)
}

// Without an editorial summary the first review text stands in as the
// brief description.
func TestFromDetailsReviewFallback(t *testing.T) {
	res := sampleResult()
	res.Reviews = []struct {
		AuthorName string  `json:"author_name"`
		Rating     float64 `json:"rating"`
		Text       string  `json:"text"`
	}{{AuthorName: "Ann", Rating: 5, Text: "must visit"}}

	place := fromDetails(res)
	require.Equal(t, "must visit", place.BriefDescription)

	res.Reviews = nil
	place = fromDetails(res)
	require.Empty(t, place.BriefDescription)
}

func TestPhotoURL(t *testing.T) {
	config.PlacesAPIKey = "test-key"
	u := PhotoURL("abc def")
	require.Contains(t, u, "maxwidth=400")
	require.Contains(t, u, "photoreference=abc+def")
	require.Contains(t, u, "key=test-key")

	config.PlacesAPIKey = ""
	require.Empty(t, PhotoURL("abc"))
}
