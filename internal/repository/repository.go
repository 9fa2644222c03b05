package repository

import (
	"context"

	"github.com/vbelov/wedding-invite/internal/domain"
)

// Row is one record of the backing sheet: header cell text to cell text.
type Row map[string]string

// Actions understood by the script endpoint.
const (
	ActionConfirm = "confirm"
	ActionSurvey  = "survey"
)

// RowSource returns the entire guest table in sheet order. Fetch failures
// collapse to an empty slice; callers cannot tell an empty table from a
// failed read, and the cause is only kept in the operator log.
type RowSource interface {
	Rows(ctx context.Context) []Row
}

// Submitter posts one state-changing action to the write endpoint and
// normalizes the heterogeneous response shapes into a SubmitResult.
type Submitter interface {
	Submit(ctx context.Context, action string, payload map[string]any) domain.SubmitResult
}
