package vectordb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"ragpipe/internal/domain"
)

// RemoteIndex is a REST client for the vector index service. Create and
// insert are plain JSON calls; search responses come back as packed msgpack,
// so decoding branches on the declared content type instead of assuming one
// wire format throughout.
type RemoteIndex struct {
	baseURL   string
	authToken string
	client    *http.Client
	diag      io.Writer
}

func NewRemoteIndex(baseURL, authToken string, timeout time.Duration) *RemoteIndex {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteIndex{
		baseURL:   strings.TrimRight(baseURL, "/"),
		authToken: authToken,
		client:    &http.Client{Timeout: timeout},
		diag:      os.Stderr,
	}
}

// SetDiagnostics redirects out-of-band diagnostics (unexpected search
// response types) away from stderr.
func (x *RemoteIndex) SetDiagnostics(w io.Writer) {
	x.diag = w
}

type createRequest struct {
	IndexName string `json:"index_name"`
	Dim       int    `json:"dim"`
	SpaceType string `json:"space_type"`
}

// Create provisions the index. Not idempotent: creating an existing index is
// an error the remote store reports and this client passes through.
func (x *RemoteIndex) Create(name string, dimension int, spaceType string) error {
	resp, err := x.postJSON("/api/v1/index/create", createRequest{
		IndexName: name,
		Dim:       dimension,
		SpaceType: spaceType,
	})
	if err != nil {
		return fmt.Errorf("create index request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return &domain.RemoteError{Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}

type insertVector struct {
	ID     string    `json:"id"`
	Vector []float32 `json:"vector"`
}

// Insert bulk-inserts vectors. Partial failure surfaces as one error for the
// whole batch; there is no per-item retry.
func (x *RemoteIndex) Insert(name string, items []domain.VectorItem) error {
	payload := make([]insertVector, len(items))
	for i, item := range items {
		payload[i] = insertVector{ID: item.ID, Vector: item.Vector}
	}

	resp, err := x.postJSON("/api/v1/index/"+name+"/vector/insert", payload)
	if err != nil {
		return fmt.Errorf("insert request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return &domain.RemoteError{Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}

type searchRequest struct {
	Vector []float32 `json:"vector"`
	K      int       `json:"k"`
}

// Search runs a top-k query. A response with an unexpected content type is
// treated as "no results": a preview goes to the diagnostics writer and an
// empty result comes back, never a decode attempt against unknown bytes.
func (x *RemoteIndex) Search(name string, vector []float32, k int) ([]domain.SearchResult, error) {
	resp, err := x.postJSON("/api/v1/index/"+name+"/search", searchRequest{Vector: vector, K: k})
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.RemoteError{Status: resp.StatusCode, Body: string(body)}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/msgpack") {
		preview := string(body)
		if len(preview) > 300 {
			preview = preview[:300]
		}
		fmt.Fprintf(x.diag, "unexpected search response type %q from index %q: %s\n", contentType, name, preview)
		return nil, nil
	}

	return decodeSearchPayload(body)
}

// decodeSearchPayload unpacks the ranked (score, id) tuples. The payload is
// either a bare list or a map keyed "results" or "dense".
func decodeSearchPayload(data []byte) ([]domain.SearchResult, error) {
	var payload interface{}
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, &domain.DecodeError{Err: err}
	}

	var items []interface{}
	switch v := payload.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		if r, ok := v["results"].([]interface{}); ok {
			items = r
		} else if r, ok := v["dense"].([]interface{}); ok {
			items = r
		}
	}

	var results []domain.SearchResult
	for _, item := range items {
		tuple, ok := item.([]interface{})
		if !ok || len(tuple) < 2 {
			continue
		}
		id, ok := asString(tuple[1])
		if !ok {
			continue
		}
		results = append(results, domain.SearchResult{
			Score: asFloat(tuple[0]),
			ID:    id,
		})
	}
	return results, nil
}

func (x *RemoteIndex) postJSON(path string, body interface{}) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, x.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if x.authToken != "" {
		req.Header.Set("Authorization", x.authToken)
	}
	return x.client.Do(req)
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	default:
		return 0
	}
}

func asString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return "", false
	}
}
