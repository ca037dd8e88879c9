package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wanderlog/config"
	"wanderlog/models"
)

const (
	placesBaseURL  = "https://maps.googleapis.com/maps/api/place"
	detailFields   = "place_id,name,formatted_address,formatted_phone_number,website,opening_hours,photos,reviews,types,geometry,editorial_summary"
	photoMaxWidth  = 400
	lookupTimeout  = 10 * time.Second
	maxPlacePhotos = 5
)

var httpClient = &http.Client{Timeout: lookupTimeout}

type detailsResponse struct {
	Status string        `json:"status"`
	Result detailsResult `json:"result"`
}

type detailsResult struct {
	PlaceID          string `json:"place_id"`
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
	PhoneNumber      string `json:"formatted_phone_number"`
	Website          string `json:"website"`
	OpeningHours     *struct {
		WeekdayText []string `json:"weekday_text"`
	} `json:"opening_hours"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
	Reviews []struct {
		AuthorName string  `json:"author_name"`
		Rating     float64 `json:"rating"`
		Text       string  `json:"text"`
	} `json:"reviews"`
	Types    []string `json:"types"`
	Geometry struct {
		Location models.LatLng `json:"location"`
		Viewport *struct {
			Northeast models.LatLng `json:"northeast"`
			Southwest models.LatLng `json:"southwest"`
		} `json:"viewport"`
	} `json:"geometry"`
	EditorialSummary *struct {
		Overview string `json:"overview"`
	} `json:"editorial_summary"`
}

// FetchDetails resolves a Google place id into a Place via the Places
// Details API. Any upstream failure is returned to the caller; there
// is no cached or stubbed fallback.
func FetchDetails(ctx context.Context, placeID string) (models.Place, error) {
	var place models.Place
	if config.PlacesAPIKey == "" {
		return place, fmt.Errorf("places API key not configured")
	}

	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("key", config.PlacesAPIKey)
	q.Set("fields", detailFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, placesBaseURL+"/details/json?"+q.Encode(), nil)
	if err != nil {
		return place, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return place, fmt.Errorf("places details request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return place, fmt.Errorf("places details returned status %d", resp.StatusCode)
	}

	var parsed detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return place, fmt.Errorf("places details decode failed: %w", err)
	}
	if parsed.Status != "OK" {
		return place, fmt.Errorf("places API error: %s", parsed.Status)
	}

	return fromDetails(parsed.Result), nil
}

// PhotoURL builds a fetchable URL from an opaque photo reference.
func PhotoURL(photoReference string) string {
	if config.PlacesAPIKey == "" || photoReference == "" {
		return ""
	}
	return fmt.Sprintf("%s/photo?maxwidth=%d&photoreference=%s&key=%s",
		placesBaseURL, photoMaxWidth, url.QueryEscape(photoReference), config.PlacesAPIKey)
}

func fromDetails(res detailsResult) models.Place {
	place := models.Place{
		GooglePlaceID:    res.PlaceID,
		Name:             res.Name,
		FormattedAddress: res.FormattedAddress,
		PhoneNumber:      res.PhoneNumber,
		Website:          res.Website,
		Types:            res.Types,
	}

	if res.OpeningHours != nil {
		place.OpeningHours = res.OpeningHours.WeekdayText
	}

	for i, p := range res.Photos {
		if i >= maxPlacePhotos {
			break
		}
		if u := PhotoURL(p.PhotoReference); u != "" {
			place.Photos = append(place.Photos, u)
		}
	}

	for _, rv := range res.Reviews {
		place.Reviews = append(place.Reviews, models.Review{
			AuthorName: rv.AuthorName,
			Rating:     rv.Rating,
			Text:       rv.Text,
		})
	}

	place.Geometry.Location = res.Geometry.Location
	if res.Geometry.Viewport != nil {
		place.Geometry.Viewport = &models.Viewport{
			Northeast: res.Geometry.Viewport.Northeast,
			Southwest: res.Geometry.Viewport.Southwest,
		}
	}

	if res.EditorialSummary != nil && res.EditorialSummary.Overview != "" {
		place.BriefDescription = res.EditorialSummary.Overview
	} else if len(place.Reviews) > 0 {
		place.BriefDescription = place.Reviews[0].Text
	}

	return place
}
