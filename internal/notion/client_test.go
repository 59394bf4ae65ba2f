package notion_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/edgard/studybot/internal/config"
	"github.com/edgard/studybot/internal/logger"
	"github.com/edgard/studybot/internal/notion"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *notion.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return notion.NewClient(config.NotionConfig{
		Token:   "secret",
		BaseURL: srv.URL + "/",
		Version: config.DefaultNotionVersion,
		Timeout: 5 * time.Second,
	}, logger.Discard())
}

func TestQueryDatabase_Request(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.February, 3, 23, 30, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v1/databases/db-1/query" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Notion-Version"); got != "2022-06-28" {
			t.Errorf("Notion-Version = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		raw, _ := json.Marshal(body)
		want := `{"filter":{"date":{"equals":"2026-02-03"},"property":"Tarih"},"sorts":[{"direction":"ascending","property":"Ders"}]}`
		if string(raw) != want {
			t.Errorf("body = %s, want %s", raw, want)
		}

		fmt.Fprint(w, `{"object":"list","results":[{"id":"p1","properties":{"Ders":{"type":"select","select":{"name":"Türkçe"}}}}],"has_more":false,"next_cursor":null}`)
	})

	resp, err := client.QueryDatabase(context.Background(), "db-1", notion.TasksForDay(day))
	if err != nil {
		t.Fatalf("QueryDatabase() error = %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != "p1" {
		t.Fatalf("QueryDatabase() results = %+v", resp.Results)
	}
	if got := resp.Results[0].Properties["Ders"].Select.Name; got != "Türkçe" {
		t.Errorf("Ders = %q, want Türkçe", got)
	}
}

func TestQueryDatabase_ProgressQuery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var q notion.Query
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		if q.Filter == nil || q.Filter.Property != "Tarih" || q.Filter.Date.Equals != "2026-02-03" {
			t.Errorf("filter = %+v", q.Filter)
		}
		if len(q.Sorts) != 0 {
			t.Errorf("sorts = %+v, want none", q.Sorts)
		}
		if q.PageSize != 1 {
			t.Errorf("page_size = %d, want 1", q.PageSize)
		}
		fmt.Fprint(w, `{"results":[]}`)
	})

	day := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	resp, err := client.QueryDatabase(context.Background(), "db-2", notion.ProgressForDay(day))
	if err != nil {
		t.Fatalf("QueryDatabase() error = %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("results = %+v, want none", resp.Results)
	}
}

func TestQueryDatabase_APIError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`)
	})

	_, err := client.QueryDatabase(context.Background(), "db-1", notion.Query{})

	var apiErr *notion.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("QueryDatabase() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if apiErr.Body == "" {
		t.Error("APIError.Body is empty")
	}
}

func TestQueryDatabase_InvalidJSON(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":`)
	})

	if _, err := client.QueryDatabase(context.Background(), "db-1", notion.Query{}); err == nil {
		t.Error("QueryDatabase() error = nil, want decode error")
	}
}

func TestQueryAll_FollowsCursor(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		cursors []string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var q notion.Query
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		mu.Lock()
		cursors = append(cursors, q.StartCursor)
		mu.Unlock()

		switch q.StartCursor {
		case "":
			fmt.Fprint(w, `{"results":[{"id":"a"},{"id":"b"}],"has_more":true,"next_cursor":"c2"}`)
		case "c2":
			fmt.Fprint(w, `{"results":[{"id":"c"}],"has_more":false,"next_cursor":null}`)
		default:
			t.Errorf("unexpected cursor %q", q.StartCursor)
		}
	})

	pages, err := client.QueryAll(context.Background(), "db-1", notion.Query{})
	if err != nil {
		t.Fatalf("QueryAll() error = %v", err)
	}

	var ids []string
	for _, p := range pages {
		ids = append(ids, p.ID)
	}
	if fmt.Sprint(ids) != "[a b c]" {
		t.Errorf("QueryAll() ids = %v, want [a b c]", ids)
	}
	mu.Lock()
	defer mu.Unlock()
	if fmt.Sprint(cursors) != "[ c2]" {
		t.Errorf("cursors = %q", cursors)
	}
}

func TestQueryAll_ErrorMidway(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			fmt.Fprint(w, `{"results":[{"id":"a"}],"has_more":true,"next_cursor":"c2"}`)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	})

	pages, err := client.QueryAll(context.Background(), "db-1", notion.Query{})
	if err == nil {
		t.Fatal("QueryAll() error = nil, want error")
	}
	if pages != nil {
		t.Errorf("QueryAll() pages = %v, want nil on error", pages)
	}
}

func TestPagePropertyNames(t *testing.T) {
	t.Parallel()

	page := notion.Page{Properties: map[string]notion.Property{"Süre": {}, "Ders": {}, "Konu": {}}}
	if got := fmt.Sprint(page.PropertyNames()); got != "[Ders Konu Süre]" {
		t.Errorf("PropertyNames() = %s", got)
	}
}
