package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vbelov/wedding-invite/lib/logger/sl"
)

// OpenSheetSource reads the guest table through a public sheet-to-JSON
// proxy. The proxy returns the whole sheet as one JSON array per call, no
// pagination. Every failure mode (transport, status, body shape) yields an
// empty slice towards callers; the detail stays in the log.
type OpenSheetSource struct {
	base          string
	spreadsheetID string
	sheetName     string
	client        *http.Client
	log           *slog.Logger
}

func NewOpenSheetSource(base, spreadsheetID, sheetName string, timeout time.Duration, log *slog.Logger) *OpenSheetSource {
	if log == nil {
		log = slog.Default()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OpenSheetSource{
		base:          strings.TrimRight(base, "/"),
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		client:        &http.Client{Timeout: timeout},
		log:           log,
	}
}

func (s *OpenSheetSource) Rows(ctx context.Context) []Row {
	const op = "repository.opensheet.rows"

	endpoint := fmt.Sprintf("%s/%s/%s", s.base, s.spreadsheetID, url.PathEscape(s.sheetName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		s.log.Warn("sheet request build failed", slog.String("op", op), sl.Err(err))
		return nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("sheet fetch failed", slog.String("op", op), sl.Err(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.log.Warn("sheet fetch returned non-success status",
			slog.String("op", op), slog.Int("status", resp.StatusCode))
		return nil
	}

	// The proxy normally emits string cells, but numeric-looking cells can
	// come back as JSON numbers. Decode loosely, then stringify.
	var raw []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		s.log.Warn("sheet response is not a json array", slog.String("op", op), sl.Err(err))
		return nil
	}

	rows := make([]Row, 0, len(raw))
	for _, cells := range raw {
		row := make(Row, len(cells))
		for key, value := range cells {
			row[key] = cellString(value)
		}
		rows = append(rows, row)
	}
	return rows
}

func cellString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
