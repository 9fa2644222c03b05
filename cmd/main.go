package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	httpapi "github.com/vbelov/wedding-invite/internal/api/http"
	"github.com/vbelov/wedding-invite/internal/config"
	"github.com/vbelov/wedding-invite/internal/repository"
	"github.com/vbelov/wedding-invite/internal/service"
	"github.com/vbelov/wedding-invite/lib/logger/slogpretty"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	rows := repository.NewOpenSheetSource(
		cfg.Sheet.ProxyBase,
		cfg.Sheet.SpreadsheetID,
		cfg.Sheet.SheetName,
		cfg.Sheet.Timeout,
		log,
	)
	sink := repository.NewScriptSubmitter(cfg.Sheet.ScriptURL, cfg.Sheet.Timeout, log)

	cols := repository.Columns{
		NameKeys:      cfg.Sheet.Columns.Name,
		CodeKeys:      cfg.Sheet.Columns.Code,
		ConfirmedKeys: cfg.Sheet.Columns.Confirmed,
		Affirmative:   cfg.Sheet.Affirmative,
	}

	guestService := service.NewGuestService(rows, cols, cfg.Sheet.HeaderRows, log)
	rsvpService := service.NewRSVPService(sink, log)

	pagesController := httpapi.NewPagesController(guestService, cfg.Event, cfg.Site, cfg.Survey, log)
	guestController := httpapi.NewGuestController(guestService, cfg.Site.BaseURL)
	rsvpController := httpapi.NewRSVPController(rsvpService, cfg.Site.ConfirmMessageLimit)

	router := httpapi.SetupRouter(
		pagesController,
		guestController,
		rsvpController,
		cfg.Site.AllowedOrigins,
		"web/templates/*.tmpl",
	)

	log.Info("starting application", slog.String("addr", cfg.HTTP.Address))
	if err := router.Run(cfg.HTTP.Address); err != nil {
		log.Error("http server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = setupPrettySlog()
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
