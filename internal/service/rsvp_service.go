package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vbelov/wedding-invite/internal/domain"
	"github.com/vbelov/wedding-invite/internal/repository"
)

// RSVPService performs the two supported write actions. Submissions are
// fire-and-forget: the script's immediate answer is the only success
// signal, nothing is re-read from the sheet afterwards, and a failure is
// surfaced once for the guest to retry by hand.
type RSVPService struct {
	sink repository.Submitter
	log  *slog.Logger
}

func NewRSVPService(sink repository.Submitter, log *slog.Logger) *RSVPService {
	if log == nil {
		log = slog.Default()
	}
	return &RSVPService{sink: sink, log: log}
}

func (s *RSVPService) Confirm(ctx context.Context, code, message string) domain.SubmitResult {
	const op = "service.rsvp.confirm"

	result := s.sink.Submit(ctx, repository.ActionConfirm, map[string]any{
		"code":    strings.TrimSpace(code),
		"message": strings.TrimSpace(message),
	})
	if result.OK {
		s.log.Info("attendance confirmed", slog.String("op", op))
	} else {
		s.log.Warn("confirm rejected", slog.String("op", op), slog.String("reason", result.Error))
	}
	return result
}

func (s *RSVPService) Survey(ctx context.Context, code string, answers domain.SurveyAnswers) domain.SubmitResult {
	const op = "service.rsvp.survey"

	pruned := answers.Pruned()
	result := s.sink.Submit(ctx, repository.ActionSurvey, map[string]any{
		"code":    strings.TrimSpace(code),
		"answers": pruned,
	})
	if result.OK {
		s.log.Info("survey submitted", slog.String("op", op), slog.Int("answers", len(pruned)))
	} else {
		s.log.Warn("survey rejected", slog.String("op", op), slog.String("reason", result.Error))
	}
	return result
}
