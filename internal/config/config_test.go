package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vbelov/wedding-invite/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMustLoadPathDefaults(t *testing.T) {
	path := writeConfig(t, "env: \"local\"\n")

	cfg := MustLoadPath(path)

	require.Equal(t, "local", cfg.Env)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "https://opensheet.elk.sh", cfg.Sheet.ProxyBase)
	require.Equal(t, "Лист1", cfg.Sheet.SheetName)
	require.Equal(t, "да", cfg.Sheet.Affirmative)
	require.Equal(t, 1, cfg.Sheet.HeaderRows)
	require.Equal(t, 10*time.Second, cfg.Sheet.Timeout)
	require.Equal(t, []string{"ФИО", "ФИО гостей"}, cfg.Sheet.Columns.Name)
	require.Equal(t, []string{"КОД", "Код"}, cfg.Sheet.Columns.Code)
	require.Equal(t, []string{"Подтвердили", "Подтвердили "}, cfg.Sheet.Columns.Confirmed)
	require.Equal(t, "https://api.qrserver.com/v1/create-qr-code/", cfg.Site.QRImageBase)
	require.Equal(t, 200, cfg.Site.QRSize)
	require.Equal(t, 500, cfg.Site.ConfirmMessageLimit)
}

func TestMustLoadPathFullConfig(t *testing.T) {
	path := writeConfig(t, `
env: "prod"
http:
  address: ":9000"
site:
  base_url: "https://wedding.example.com"
sheet:
  spreadsheet_id: "sheet-id"
  sheet_name: "guests"
  script_url: "https://script.example.com/exec"
  header_rows: 2
event:
  groom_name: "Вениамин"
  bride_name: "Ольга"
  date: "23 мая 2026"
  starts_at: 2026-05-23T11:00:00Z
survey:
  - id: "withPartner"
    label: "Будете с парой?"
    column: 5
    type: "select"
    options: ["Да", "Нет"]
  - id: "alcohol"
    label: "Предпочтения по алкоголю"
    column: 6
    type: "textarea"
`)

	cfg := MustLoadPath(path)

	require.Equal(t, ":9000", cfg.HTTP.Address)
	require.Equal(t, "sheet-id", cfg.Sheet.SpreadsheetID)
	require.Equal(t, "guests", cfg.Sheet.SheetName)
	require.Equal(t, 2, cfg.Sheet.HeaderRows)
	require.Equal(t, "Вениамин", cfg.Event.GroomName)
	require.Equal(t, time.Date(2026, 5, 23, 11, 0, 0, 0, time.UTC), cfg.Event.StartsAt)

	require.Len(t, cfg.Survey, 2)
	require.Equal(t, "withPartner", cfg.Survey[0].ID)
	require.Equal(t, domain.QuestionSelect, cfg.Survey[0].Type)
	require.Equal(t, []string{"Да", "Нет"}, cfg.Survey[0].Options)
	require.Equal(t, 6, cfg.Survey[1].Column)
}

func TestMustLoadPathMissingFile(t *testing.T) {
	require.Panics(t, func() {
		MustLoadPath(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}
