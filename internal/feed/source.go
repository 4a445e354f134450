// backend-go/internal/feed/source.go
package feed

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/venperf/backend-go/internal/sheet"
)

// Source produces one raw snapshot of the sheet feed per fetch.
type Source interface {
	Fetch(ctx context.Context) ([][]string, error)
}

// SheetURLSource pulls the spreadsheet's CSV export URL over HTTP.
type SheetURLSource struct {
	URL    string
	Client *http.Client
}

// NewSheetURLSource creates a source for a spreadsheet CSV export URL.
func NewSheetURLSource(url string) *SheetURLSource {
	return &SheetURLSource{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SheetURLSource) Fetch(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheet request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet export returned status %d", resp.StatusCode)
	}

	rows, err := sheet.ReadCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet export: %w", err)
	}
	return rows, nil
}

// FileSource reads a local CSV or XLSX snapshot, useful for offline runs and
// the report CLI.
type FileSource struct {
	Path string
}

func (s *FileSource) Fetch(ctx context.Context) ([][]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".xlsx":
		return sheet.ReadXLSX(s.Path)
	case ".csv":
		f, err := os.Open(s.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open feed file %s: %w", s.Path, err)
		}
		defer f.Close()
		return sheet.ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported feed file type: %s", s.Path)
	}
}
