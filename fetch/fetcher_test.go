package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func newTestFetcher(t *testing.T, handler http.HandlerFunc) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := New(t.TempDir())
	f.BaseURL = srv.URL
	return f
}

func TestFetchSavesDiagram(t *testing.T) {
	var gotPath string
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("%PDF-1.4 fake"))
	})

	path, err := f.Fetch(context.Background(), "jfk", "00610", "2602")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if gotPath != "/2602/00610AD.PDF" {
		t.Errorf("requested path %q, want /2602/00610AD.PDF", gotPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Errorf("file content = %q", data)
	}
	if want := f.FilePath("JFK", "2602"); path != want {
		t.Errorf("saved to %q, want %q", path, want)
	}
}

func TestFetchSkipsExisting(t *testing.T) {
	calls := 0
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("first"))
	})

	ctx := context.Background()
	if _, err := f.Fetch(ctx, "JFK", "00610", "2602"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Fetch(ctx, "JFK", "00610", "2602"); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("server hit %d times, want 1", calls)
	}
}

func TestFetchForceRedownloads(t *testing.T) {
	calls := 0
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("again"))
	})
	f.Force = true

	ctx := context.Background()
	if _, err := f.Fetch(ctx, "JFK", "00610", "2602"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Fetch(ctx, "JFK", "00610", "2602"); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("server hit %d times, want 2", calls)
	}
}

func TestFetchNotAvailable(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := f.Fetch(context.Background(), "JFK", "00610", "1901")
	if !errors.Is(err, ErrNotAvailable) {
		t.Errorf("expected ErrNotAvailable, got %v", err)
	}
	if _, statErr := os.Stat(f.FilePath("JFK", "1901")); statErr == nil {
		t.Error("failed download left a file behind")
	}
}

func TestFetchServerError(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := f.Fetch(context.Background(), "JFK", "00610", "2602")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if errors.Is(err, ErrNotAvailable) {
		t.Error("500 should not map to ErrNotAvailable")
	}
}

func TestFetchContextCancelled(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Fetch(ctx, "JFK", "00610", "2602"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestURL(t *testing.T) {
	f := New("data")
	got := f.URL("00610", "2602")
	want := "https://aeronav.faa.gov/d-tpp/2602/00610AD.PDF"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}
