package repository

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenSheetSourceRows(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"ФИО": "Иван Иванов", "КОД": "abc123", "Подтвердили": "Да"},
			{"ФИО": "Мария", "КОД": 777}
		]`)
	}))
	defer server.Close()

	source := NewOpenSheetSource(server.URL, "sheet-id", "Лист1", time.Second, discardLogger())
	rows := source.Rows(context.Background())

	require.Equal(t, "/sheet-id/Лист1", gotPath)
	require.Len(t, rows, 2)
	require.Equal(t, "Иван Иванов", rows[0]["ФИО"])
	require.Equal(t, "abc123", rows[0]["КОД"])
	// Numeric cells come back as JSON numbers; they must stringify.
	require.Equal(t, "777", rows[1]["КОД"])
}

func TestOpenSheetSourceSwallowsFailures(t *testing.T) {
	t.Run("non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		source := NewOpenSheetSource(server.URL, "id", "guests", time.Second, discardLogger())
		require.Empty(t, source.Rows(context.Background()))
	})

	t.Run("non-json body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "<html>maintenance</html>")
		}))
		defer server.Close()

		source := NewOpenSheetSource(server.URL, "id", "guests", time.Second, discardLogger())
		require.Empty(t, source.Rows(context.Background()))
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		source := NewOpenSheetSource(server.URL, "id", "guests", time.Second, discardLogger())
		require.Empty(t, source.Rows(context.Background()))
	})
}
