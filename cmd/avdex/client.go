package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps HTTP calls to the avdex server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new avdex API client.
func NewClient(serverURL, token string) *Client {
	return &Client{
		baseURL: serverURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) do(method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) get(path string, result any) error {
	return c.do(http.MethodGet, path, nil, result)
}

func (c *Client) post(path string, body any, result any) error {
	return c.do(http.MethodPost, path, body, result)
}

// API response types (mirror server types)

type ActressResponse struct {
	ID          int64   `json:"actress_id"`
	Name        string  `json:"actress_name"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

type VideoHitResponse struct {
	ID          int64    `json:"video_id"`
	Name        string   `json:"video_name"`
	ContentID   *string  `json:"content_id"`
	PublishDate *string  `json:"publish_date"`
	Censored    *bool    `json:"censored"`
	Length      *int     `json:"length"`
	MatchedBy   string   `json:"matched_by"`
	Cast        []string `json:"cast"`
}

type SearchResponse struct {
	Query     string             `json:"query"`
	Actresses []ActressResponse  `json:"actresses"`
	Videos    []VideoHitResponse `json:"videos"`
	Filtered  []VideoHitResponse `json:"filtered"`
	Error     string             `json:"error,omitempty"`
}

type CastMemberResponse struct {
	ID   int64  `json:"actress_id"`
	Name string `json:"actress_name"`
	Age  *int   `json:"age,omitempty"`
}

type VideoDetailResponse struct {
	Video struct {
		ID          int64   `json:"video_id"`
		Name        string  `json:"video_name"`
		ContentID   *string `json:"content_id"`
		PublishDate *string `json:"publish_date"`
		Censored    *bool   `json:"censored"`
		HasSpecial  *bool   `json:"has_special"`
		Length      *int    `json:"length"`
		Storyline   *string `json:"storyline,omitempty"`
	} `json:"video"`
	PublisherName *string              `json:"publisher_name"`
	Cast          []CastMemberResponse `json:"cast"`
	ActressTypes  []string             `json:"actress_types"`
	Costumes      []string             `json:"costumes"`
	Scenes        []string             `json:"scenes"`
	Tags          []string             `json:"tags"`
}

type ActressDetailResponse struct {
	ID              int64   `json:"actress_id"`
	Name            string  `json:"actress_name"`
	DateOfBirth     *string `json:"date_of_birth"`
	Height          *int    `json:"height"`
	Cup             *string `json:"cup"`
	PersonalRate    *int    `json:"personal_rate"`
	PersonalComment *string `json:"personal_comment,omitempty"`
}

type LookupOptionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Search(query string, criteria map[string]any) (*SearchResponse, error) {
	req := map[string]any{"query": query}
	if criteria != nil {
		req["criteria"] = criteria
	}
	var resp SearchResponse
	if err := c.post("/api/v1/search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Video(id int64) (*VideoDetailResponse, error) {
	var resp VideoDetailResponse
	if err := c.get(fmt.Sprintf("/api/v1/videos/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Actress(id int64) (*ActressDetailResponse, error) {
	var resp ActressDetailResponse
	if err := c.get(fmt.Sprintf("/api/v1/actresses/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Lookups(kind string) ([]LookupOptionResponse, error) {
	var resp []LookupOptionResponse
	if err := c.get("/api/v1/lookups/"+url.PathEscape(kind), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) RefreshLookups(kind string) ([]LookupOptionResponse, error) {
	var resp []LookupOptionResponse
	if err := c.post("/api/v1/lookups/"+url.PathEscape(kind)+"/refresh", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
