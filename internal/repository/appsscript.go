package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vbelov/wedding-invite/internal/domain"
	"github.com/vbelov/wedding-invite/lib/logger/sl"
)

// The script endpoint only accepts a text/plain content type; anything
// else trips its CORS preflight.
const scriptContentType = "text/plain;charset=utf-8"

// ScriptSubmitter posts confirm/survey actions to the deployed sheet
// script. The endpoint answers with `{ok?, error?}`; an absent ok flag on
// an HTTP success counts as success, some deployments simply omit it.
type ScriptSubmitter struct {
	url    string
	client *http.Client
	log    *slog.Logger
}

func NewScriptSubmitter(url string, timeout time.Duration, log *slog.Logger) *ScriptSubmitter {
	if log == nil {
		log = slog.Default()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ScriptSubmitter{
		url:    strings.TrimSpace(url),
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

func (s *ScriptSubmitter) Submit(ctx context.Context, action string, payload map[string]any) domain.SubmitResult {
	const op = "repository.script.submit"

	if s.url == "" {
		return domain.SubmitFailed("Не настроен URL скрипта (APP_SCRIPT_URL)")
	}

	body := make(map[string]any, len(payload)+1)
	body["action"] = action
	for key, value := range payload {
		body[key] = value
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		s.log.Error("script payload marshal failed", slog.String("op", op), sl.Err(err))
		return domain.SubmitFailed(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(encoded))
	if err != nil {
		s.log.Error("script request build failed", slog.String("op", op), sl.Err(err))
		return domain.SubmitFailed(err.Error())
	}
	req.Header.Set("Content-Type", scriptContentType)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("script request failed", slog.String("op", op), slog.String("action", action), sl.Err(err))
		return domain.SubmitFailed(err.Error())
	}
	defer resp.Body.Close()

	text, _ := io.ReadAll(resp.Body)

	var parsed struct {
		OK    *bool  `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(text, &parsed); err != nil {
		// Non-JSON bodies become the error detail verbatim.
		parsed.OK = nil
		parsed.Error = strings.TrimSpace(string(text))
		if parsed.Error == "" {
			parsed.Error = fmt.Sprintf("Ошибка %d", resp.StatusCode)
		}
	}

	httpOK := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if httpOK && (parsed.OK == nil || *parsed.OK) {
		return domain.SubmitOK()
	}

	reason := parsed.Error
	if reason == "" {
		reason = fmt.Sprintf("Ошибка %d", resp.StatusCode)
	}
	s.log.Warn("script rejected submission",
		slog.String("op", op), slog.String("action", action),
		slog.Int("status", resp.StatusCode), slog.String("reason", reason))
	return domain.SubmitFailed(reason)
}
