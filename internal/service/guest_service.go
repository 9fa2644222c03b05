package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/vbelov/wedding-invite/internal/domain"
	"github.com/vbelov/wedding-invite/internal/repository"
)

// ErrGuestNotFound covers every lookup miss: unknown code, empty code, a
// matched row without a name, and read failures. Guests see one friendly
// outcome for all of them; the read failures are distinguishable only in
// the operator log.
var ErrGuestNotFound = errors.New("guest not found")

type GuestService struct {
	rows       repository.RowSource
	cols       repository.Columns
	headerRows int
	log        *slog.Logger
}

func NewGuestService(rows repository.RowSource, cols repository.Columns, headerRows int, log *slog.Logger) *GuestService {
	if log == nil {
		log = slog.Default()
	}
	if headerRows < 0 {
		headerRows = 0
	}
	return &GuestService{
		rows:       rows,
		cols:       cols,
		headerRows: headerRows,
		log:        log,
	}
}

// Resolve maps an invitation code to its guest record. The scan is linear
// and stops at the first row whose code matches exactly; on duplicate
// codes the earliest row wins, by policy.
func (s *GuestService) Resolve(ctx context.Context, code string) (*domain.Guest, error) {
	const op = "service.guest.resolve"

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrGuestNotFound
	}

	for i, row := range s.rows.Rows(ctx) {
		if s.cols.Code(row) != code {
			continue
		}

		guest := domain.NewGuest(s.cols.Name(row), code, s.rowIndex(i), s.cols.Confirmed(row))
		if guest == nil {
			s.log.Warn("matched row has no guest name",
				slog.String("op", op), slog.Int("row", s.rowIndex(i)))
			return nil, ErrGuestNotFound
		}

		s.log.Info("guest resolved",
			slog.String("op", op), slog.Int("row", guest.RowIndex),
			slog.Bool("confirmed", guest.Confirmed))
		return guest, nil
	}

	s.log.Info("code not present in sheet", slog.String("op", op))
	return nil, ErrGuestNotFound
}

// List returns every materializable guest in sheet order. Rows missing a
// name or a code are silently skipped.
func (s *GuestService) List(ctx context.Context) []domain.Guest {
	const op = "service.guest.list"

	rows := s.rows.Rows(ctx)
	guests := make([]domain.Guest, 0, len(rows))
	for i, row := range rows {
		guest := domain.NewGuest(s.cols.Name(row), s.cols.Code(row), s.rowIndex(i), s.cols.Confirmed(row))
		if guest == nil {
			continue
		}
		guests = append(guests, *guest)
	}

	s.log.Info("roster listed",
		slog.String("op", op), slog.Int("rows", len(rows)), slog.Int("guests", len(guests)))
	return guests
}

func (s *GuestService) rowIndex(i int) int {
	return i + s.headerRows + 1
}
