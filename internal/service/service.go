package service

import (
	"context"

	"github.com/vbelov/wedding-invite/internal/domain"
)

type GuestInteractor interface {
	Resolve(ctx context.Context, code string) (*domain.Guest, error)
	List(ctx context.Context) []domain.Guest
}

type RSVPInteractor interface {
	Confirm(ctx context.Context, code, message string) domain.SubmitResult
	Survey(ctx context.Context, code string, answers domain.SurveyAnswers) domain.SubmitResult
}
