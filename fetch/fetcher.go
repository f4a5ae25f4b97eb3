package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL is the FAA digital terminal procedures endpoint.
const DefaultBaseURL = "https://aeronav.faa.gov/d-tpp"

// ErrNotAvailable is returned when the FAA has no diagram for the
// requested cycle.
var ErrNotAvailable = errors.New("diagram not available")

// Fetcher downloads airport diagram PDFs into a local data directory.
// The zero value is not usable; construct with New.
type Fetcher struct {
	// BaseURL is the root of the diagram archive.
	BaseURL string

	// DataDir receives downloaded PDFs.
	DataDir string

	// Client performs the HTTP requests.
	Client *http.Client

	// Force re-downloads files that already exist on disk.
	Force bool
}

// New returns a Fetcher writing into dataDir with the default FAA base
// URL and a 30-second request timeout.
func New(dataDir string) *Fetcher {
	return &Fetcher{
		BaseURL: DefaultBaseURL,
		DataDir: dataDir,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// URL returns the download URL for a chart number and cycle.
func (f *Fetcher) URL(chartNumber, cycle string) string {
	return fmt.Sprintf("%s/%s/%sAD.PDF", strings.TrimRight(f.BaseURL, "/"), cycle, chartNumber)
}

// FilePath returns the local path a diagram is saved to.
func (f *Fetcher) FilePath(airportCode, cycle string) string {
	return filepath.Join(f.DataDir, fmt.Sprintf("%s_%s.pdf", strings.ToUpper(airportCode), cycle))
}

// Fetch downloads the diagram for one airport and cycle, returning the
// local file path. An existing file short-circuits the download unless
// Force is set. A 404 from the archive is reported as ErrNotAvailable.
func (f *Fetcher) Fetch(ctx context.Context, airportCode, chartNumber, cycle string) (string, error) {
	dest := f.FilePath(airportCode, cycle)

	if !f.Force {
		if _, err := os.Stat(dest); err == nil {
			return dest, nil
		}
	}

	if err := os.MkdirAll(f.DataDir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}

	url := f.URL(chartNumber, cycle)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%s cycle %s: %w", strings.ToUpper(airportCode), cycle, ErrNotAvailable)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}

	if err := writeFile(dest, resp.Body); err != nil {
		return "", fmt.Errorf("saving %s: %w", dest, err)
	}
	return dest, nil
}

// writeFile streams body to path via a temp file so a failed download
// never leaves a truncated PDF behind.
func writeFile(path string, body io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
