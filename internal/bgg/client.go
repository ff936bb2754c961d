// Package bgg reads game statistics from the BoardGameGeek XML API2.
package bgg

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://boardgamegeek.com/xmlapi2"

// ErrUnknownGame is returned when the API has no item for the requested id.
var ErrUnknownGame = errors.New("bgg: unknown game")

// Stats are the BoardGameGeek average rating and overall board game rank.
// Either may be nil when BoardGameGeek has no value.
type Stats struct {
	Rating *float64
	Rank   *int
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type thingResponse struct {
	Items []struct {
		ID      int `xml:"id,attr"`
		Ratings struct {
			Average struct {
				Value string `xml:"value,attr"`
			} `xml:"average"`
			Ranks []struct {
				Type  string `xml:"type,attr"`
				Name  string `xml:"name,attr"`
				Value string `xml:"value,attr"`
			} `xml:"ranks>rank"`
		} `xml:"statistics>ratings"`
	} `xml:"item"`
}

// FetchStats loads rating and rank for one BoardGameGeek thing id.
func (c *Client) FetchStats(ctx context.Context, bggID int) (Stats, error) {
	endpoint := fmt.Sprintf("%s/thing?%s", c.baseURL, url.Values{
		"id":    {strconv.Itoa(bggID)},
		"stats": {"1"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Stats{}, err
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Stats{}, fmt.Errorf("bgg: request thing %d: %w", bggID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Stats{}, fmt.Errorf("bgg: thing %d: unexpected status %d", bggID, resp.StatusCode)
	}

	return parseThing(resp.Body)
}

func parseThing(r io.Reader) (Stats, error) {
	var doc thingResponse
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Stats{}, fmt.Errorf("bgg: decode thing: %w", err)
	}
	if len(doc.Items) == 0 {
		return Stats{}, ErrUnknownGame
	}

	item := doc.Items[0]
	var stats Stats

	if v := strings.TrimSpace(item.Ratings.Average.Value); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Stats{}, fmt.Errorf("bgg: parse average %q: %w", v, err)
		}
		rating = math.Round(rating*100) / 100
		stats.Rating = &rating
	}

	for _, rank := range item.Ratings.Ranks {
		if rank.Name != "boardgame" {
			continue
		}
		// Unranked games report "Not Ranked".
		if n, err := strconv.Atoi(rank.Value); err == nil {
			stats.Rank = &n
		}
		break
	}

	return stats, nil
}
