package trips

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Loader fetches the quarterly trip CSV files from the content store and
// parses them into records. Each file is parsed independently with its own
// header row; the results are concatenated in file-declared order.
type Loader struct {
	baseURL    string
	files      []string
	httpClient *http.Client
}

// NewLoader creates a Loader for the given base URL and ordered file list.
func NewLoader(baseURL string, files []string, timeout time.Duration) *Loader {
	return &Loader{
		baseURL:    strings.TrimRight(baseURL, "/"),
		files:      files,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Load fetches every configured file concurrently and returns the combined
// record sequence. Any failed fetch or parse fails the whole load; no
// partial-quarter dataset is ever returned.
func (l *Loader) Load(ctx context.Context) ([]TripRecord, error) {
	parsed := make([][]TripRecord, len(l.files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range l.files {
		g.Go(func() error {
			records, err := l.fetchFile(ctx, file)
			if err != nil {
				return err
			}
			parsed[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []TripRecord
	for _, records := range parsed {
		out = append(out, records...)
	}
	log.WithField("trips", len(out)).Info("trip dataset loaded")
	return out, nil
}

func (l *Loader) fetchFile(ctx context.Context, file string) ([]TripRecord, error) {
	url := l.baseURL + "/" + file
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", file, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	records, err := ParseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return records, nil
}

// ParseCSV reads one trip CSV with a header row and normalizes every data
// row into a TripRecord. Blank lines are skipped by the reader; short rows
// leave their missing fields empty.
func ParseCSV(r io.Reader) ([]TripRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	var out []TripRecord
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(fields) {
				row[name] = fields[i]
			}
		}
		out = append(out, RecordFromRow(row))
	}
	return out, nil
}
