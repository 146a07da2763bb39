package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultAPIURL = "https://nominatim.openstreetmap.org"

// Nominatim требует осмысленный User-Agent для всех клиентов
const userAgent = "heavy-profile-site/1.0 (contacts-map-autocomplete)"

// Place — найденный адрес для автодополнения карты контактов
type Place struct {
	DisplayName string `json:"displayName"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Client — клиент геокодера Nominatim для подсказок адресов в админке
type Client struct {
	apiURL     string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		apiURL: defaultAPIURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetAPIURL подменяет адрес геокодера (нужно для тестов)
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search ищет адреса по строке запроса: не больше пяти результатов,
// русская локаль выдачи
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "5")
	params.Set("addressdetails", "1")
	params.Set("accept-language", "ru")

	reqURL := fmt.Sprintf("%s/search?%s", c.apiURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoder request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query geocoder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Geocoder error: status=%d", resp.StatusCode)
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var raw []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode geocoder response: %w", err)
	}

	places := make([]Place, 0, len(raw))
	for _, item := range raw {
		places = append(places, Place{
			DisplayName: item.DisplayName,
			Lat:         item.Lat,
			Lon:         item.Lon,
		})
	}
	return places, nil
}
