// Package client provides a Go HTTP client for the churchboard REST API.
//
// The API wraps every domain outcome, including failures, in an HTTP 200
// envelope with a success flag; only transport problems (malformed payloads,
// bad record ids, missing identity) surface as non-200 status codes. The
// client mirrors that contract: a non-2xx status is returned as an error,
// while an envelope with success=false is returned to the caller to inspect.
//
// Identity travels in the X-User-ID header. Set it once with SetUserID and
// the client includes it on every request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Pagination is the page window block attached to list responses.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	PerPage     int   `json:"per_page"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// Response is the generic API envelope. Data is left raw so callers can
// decode it into the shape of the endpoint they called.
type Response struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
}

// DecodeData unmarshals the envelope's data payload into target.
func (r *Response) DecodeData(target any) error {
	if r.Data == nil {
		return fmt.Errorf("response has no data payload")
	}
	return json.Unmarshal(r.Data, target)
}

// ListQuery carries the common list parameters. Filters holds the
// endpoint-specific query values such as status or search.
type ListQuery struct {
	Page    int
	Limit   int
	Filters url.Values
}

func (q ListQuery) encode() string {
	values := url.Values{}
	for key, vals := range q.Filters {
		for _, v := range vals {
			values.Add(key, v)
		}
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// Client provides typed access to the churchboard REST API. Instances are
// safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userID     int64
}

// NewClient creates a client for the given base URL, which should include
// protocol and host without a trailing slash.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetUserID sets the identity sent in the X-User-ID header.
func (c *Client) SetUserID(id int64) {
	c.userID = id
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.userID != 0 {
		req.Header.Set("X-User-ID", strconv.FormatInt(c.userID, 10))
	}

	return c.httpClient.Do(req)
}

func decodeResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeResponse(resp)
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*Response, error) {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return decodeResponse(resp)
}

// Health checks the health endpoint. It is served without identity.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: status=%d, body=%s", resp.StatusCode, string(body))
	}
	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}

// Church events

func (c *Client) ListChurchEvents(ctx context.Context, q ListQuery) (*Response, error) {
	return c.get(ctx, "/api/church-events"+q.encode())
}

func (c *Client) CreateChurchEvent(ctx context.Context, event any) (*Response, error) {
	return c.send(ctx, http.MethodPost, "/api/church-events", event)
}

func (c *Client) GetChurchEvent(ctx context.Context, id int64) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/api/church-events/%d", id))
}

func (c *Client) UpdateChurchEvent(ctx context.Context, id int64, event any) (*Response, error) {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/api/church-events/%d", id), event)
}

func (c *Client) DeleteChurchEvent(ctx context.Context, id int64) (*Response, error) {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/church-events/%d", id), nil)
}

// Church news

func (c *Client) ListChurchNews(ctx context.Context, q ListQuery) (*Response, error) {
	return c.get(ctx, "/api/church-news"+q.encode())
}

func (c *Client) CreateChurchNews(ctx context.Context, news any) (*Response, error) {
	return c.send(ctx, http.MethodPost, "/api/church-news", news)
}

func (c *Client) GetChurchNews(ctx context.Context, id int64) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/api/church-news/%d", id))
}

func (c *Client) UpdateChurchNews(ctx context.Context, id int64, news any) (*Response, error) {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/api/church-news/%d", id), news)
}

func (c *Client) DeleteChurchNews(ctx context.Context, id int64) (*Response, error) {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/church-news/%d", id), nil)
}

func (c *Client) LikeChurchNews(ctx context.Context, id int64) (*Response, error) {
	return c.send(ctx, http.MethodPost, fmt.Sprintf("/api/church-news/%d/like", id), nil)
}

// Community requests

func (c *Client) ListCommunityRequests(ctx context.Context, q ListQuery) (*Response, error) {
	return c.get(ctx, "/api/requests"+q.encode())
}

func (c *Client) CreateCommunityRequest(ctx context.Context, request any) (*Response, error) {
	return c.send(ctx, http.MethodPost, "/api/requests", request)
}

func (c *Client) GetCommunityRequest(ctx context.Context, id int64) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/api/requests/%d", id))
}

func (c *Client) UpdateCommunityRequest(ctx context.Context, id int64, request any) (*Response, error) {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/api/requests/%d", id), request)
}

func (c *Client) UpdateCommunityRequestStatus(ctx context.Context, id int64, status string) (*Response, error) {
	return c.send(ctx, http.MethodPatch, fmt.Sprintf("/api/requests/%d/status", id), map[string]string{"status": status})
}

func (c *Client) DeleteCommunityRequest(ctx context.Context, id int64) (*Response, error) {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/requests/%d", id), nil)
}

// Jobs

func (c *Client) ListJobPostings(ctx context.Context, q ListQuery) (*Response, error) {
	return c.get(ctx, "/api/job-posting"+q.encode())
}

func (c *Client) CreateJobPost(ctx context.Context, post any) (*Response, error) {
	return c.send(ctx, http.MethodPost, "/api/job-posting", post)
}

func (c *Client) ListJobSeekers(ctx context.Context, q ListQuery) (*Response, error) {
	return c.get(ctx, "/api/job-seekers"+q.encode())
}

func (c *Client) CreateJobSeeker(ctx context.Context, seeker any) (*Response, error) {
	return c.send(ctx, http.MethodPost, "/api/job-seekers", seeker)
}

// Music team

func (c *Client) ListMusicTeamRecruitments(ctx context.Context, q ListQuery) (*Response, error) {
	return c.get(ctx, "/api/music-team-recruitments"+q.encode())
}

func (c *Client) CreateMusicTeamRecruitment(ctx context.Context, recruitment any) (*Response, error) {
	return c.send(ctx, http.MethodPost, "/api/music-team-recruitments", recruitment)
}

func (c *Client) GetMusicTeamRecruitment(ctx context.Context, id int64) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/api/music-team-recruitments/%d", id))
}

func (c *Client) UpdateMusicTeamRecruitment(ctx context.Context, id int64, recruitment any) (*Response, error) {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/api/music-team-recruitments/%d", id), recruitment)
}

func (c *Client) DeleteMusicTeamRecruitment(ctx context.Context, id int64) (*Response, error) {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/music-team-recruitments/%d", id), nil)
}

func (c *Client) ApplyMusicTeamRecruitment(ctx context.Context, id int64) (*Response, error) {
	return c.send(ctx, http.MethodPost, fmt.Sprintf("/api/music-team-recruitments/%d/apply", id), nil)
}

func (c *Client) ListMusicTeamSeekers(ctx context.Context, q ListQuery) (*Response, error) {
	return c.get(ctx, "/api/music-team-seekers"+q.encode())
}

func (c *Client) CreateMusicTeamSeeker(ctx context.Context, seeker any) (*Response, error) {
	return c.send(ctx, http.MethodPost, "/api/music-team-seekers", seeker)
}

func (c *Client) GetMusicTeamSeeker(ctx context.Context, id int64) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/api/music-team-seekers/%d", id))
}

func (c *Client) UpdateMusicTeamSeeker(ctx context.Context, id int64, seeker any) (*Response, error) {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/api/music-team-seekers/%d", id), seeker)
}

func (c *Client) DeleteMusicTeamSeeker(ctx context.Context, id int64) (*Response, error) {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/music-team-seekers/%d", id), nil)
}
