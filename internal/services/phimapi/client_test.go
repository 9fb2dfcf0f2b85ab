package phimapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hoanvu/gophim/internal/config"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.Config{APIBaseURL: server.URL}, testLogger())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func TestLatest(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/danh-sach/phim-moi-cap-nhat" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("Unexpected page: %s", r.URL.Query().Get("page"))
		}
		w.Write([]byte(`{
			"items": [{"_id": "1", "name": "Phim A", "slug": "phim-a"}],
			"pagination": {"totalItems": 24, "totalItemsPerPage": 24, "currentPage": 2, "totalPages": 1}
		}`))
	}))

	page, err := client.Latest(context.Background(), 2)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Slug != "phim-a" {
		t.Errorf("Unexpected page: %+v", page)
	}
}

func TestSearchSendsKeyword(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/api/tim-kiem" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("keyword") != "one piece" {
			t.Errorf("Unexpected keyword: %s", r.URL.Query().Get("keyword"))
		}
		w.Write([]byte(`{
			"data": {
				"items": [{"_id": "1", "name": "Đảo Hải Tặc", "slug": "dao-hai-tac"}],
				"params": {"pagination": {"totalItems": 1, "totalItemsPerPage": 10, "currentPage": 1, "totalPages": 1}}
			}
		}`))
	}))

	page, err := client.Search(context.Background(), "one piece", 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(page.Items) != 1 {
		t.Errorf("Expected one result, got %d", len(page.Items))
	}
}

func TestPageParamClampedToOne(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			t.Errorf("Expected page clamped to 1, got %s", r.URL.Query().Get("page"))
		}
		w.Write([]byte(`{"items": [], "pagination": {"currentPage": 1, "totalPages": 1, "totalItems": 0, "totalItemsPerPage": 24}}`))
	}))

	if _, err := client.Latest(context.Background(), 0); err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
}

func TestDetail(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/phim/dao-hai-tac" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"status": true,
			"movie": {"_id": "1", "name": "Đảo Hải Tặc", "slug": "dao-hai-tac"},
			"episodes": [{"server_name": "Vietsub #1", "server_data": [{"name": "Tập 01", "slug": "tap-01"}]}]
		}`))
	}))

	movie, groups, err := client.Detail(context.Background(), "dao-hai-tac")
	if err != nil {
		t.Fatalf("Detail failed: %v", err)
	}
	if movie.Slug != "dao-hai-tac" || len(groups) != 1 {
		t.Errorf("Unexpected detail: %+v %+v", movie, groups)
	}
}

func TestNonOKStatusIsError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))

	if _, err := client.Latest(context.Background(), 1); err == nil {
		t.Fatal("Expected error for non-200 response")
	}
}

func TestUnknownEnvelopeIsError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"surprise": true}`))
	}))

	if _, err := client.Latest(context.Background(), 1); err == nil {
		t.Fatal("Expected error for unrecognized envelope")
	}
}

func TestContextCancellation(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Latest(ctx, 1); err == nil {
		t.Fatal("Expected error for cancelled context")
	}
}
