// Package storeapi queries the remote student store through its
// PostgREST-style table endpoint. All persistence belongs to the store;
// this client only reads.
package storeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dkoosis/classboard/pkg/roster"
)

const defaultQueryTimeout = 30 * time.Second

const (
	studentsTable = "students"
	orderColumn   = "latest_percentage"
)

// Client reads student records from the store over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the store at baseURL. apiKey may be
// empty for stores that do not require one.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultQueryTimeout},
	}
}

// QueryStudents fetches every student whose class-section is in
// sections, ordered by latest percentage descending by the store
// itself. An empty section set performs no network call and returns an
// empty result. Fetched records have absent percentages coerced to
// exactly 0. The fetch is all-or-nothing: any failure returns a single
// wrapped error and no records.
func (c *Client) QueryStudents(ctx context.Context, sections []string) ([]roster.Student, error) {
	if len(sections) == 0 {
		return nil, nil
	}

	u, err := url.Parse(c.baseURL + "/" + studentsTable)
	if err != nil {
		return nil, fmt.Errorf("store url: %w", err)
	}
	q := u.Query()
	q.Set("select", "*")
	q.Set("class_section", "in.("+joinQuoted(sections)+")")
	q.Set("order", orderColumn+".desc")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build students query: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("query students: store returned %s", resp.Status)
	}

	var students []roster.Student
	if err := json.NewDecoder(resp.Body).Decode(&students); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	normalize(students)
	return students, nil
}

func joinQuoted(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ",")
}

// normalize coerces absent percentages so downstream consumers never
// see a nil field.
func normalize(students []roster.Student) {
	for i := range students {
		if students[i].LatestPercentage == nil {
			students[i].LatestPercentage = roster.Float(0)
		}
	}
}
