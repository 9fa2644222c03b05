// Command roster is the operator-side companion to the invitation site:
// it pulls the guest list from the same sheet proxy and produces offline
// artifacts (an xlsx snapshot, per-guest QR images) for printing.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/vbelov/wedding-invite/internal/config"
	"github.com/vbelov/wedding-invite/internal/domain"
	"github.com/vbelov/wedding-invite/internal/qr"
	"github.com/vbelov/wedding-invite/internal/repository"
	"github.com/vbelov/wedding-invite/internal/service"
)

var (
	configPath string
	outputPath string
	outputDir  string
	qrSize     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Operator tooling for the wedding guest roster",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/local.yaml", "path to config file")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the roster to an xlsx workbook",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "guests.xlsx", "output xlsx path")

	qrCmd := &cobra.Command{
		Use:   "qrcodes",
		Short: "Write one QR PNG per guest invitation link",
		RunE:  runQRCodes,
	}
	qrCmd.Flags().StringVarP(&outputDir, "dir", "d", "qrcodes", "output directory")
	qrCmd.Flags().IntVar(&qrSize, "size", 512, "PNG size in pixels")

	rootCmd.AddCommand(exportCmd, qrCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRoster() (*config.Config, []domain.Guest, error) {
	_ = godotenv.Load(".env")

	cfg := config.MustLoadPath(configPath)
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	rows := repository.NewOpenSheetSource(
		cfg.Sheet.ProxyBase,
		cfg.Sheet.SpreadsheetID,
		cfg.Sheet.SheetName,
		cfg.Sheet.Timeout,
		log,
	)
	cols := repository.Columns{
		NameKeys:      cfg.Sheet.Columns.Name,
		CodeKeys:      cfg.Sheet.Columns.Code,
		ConfirmedKeys: cfg.Sheet.Columns.Confirmed,
		Affirmative:   cfg.Sheet.Affirmative,
	}

	guests := service.NewGuestService(rows, cols, cfg.Sheet.HeaderRows, log).List(context.Background())
	if len(guests) == 0 {
		return nil, nil, fmt.Errorf("no guests: the sheet is empty or unreachable")
	}
	return cfg, guests, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, guests, err := loadRoster()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{
		cfg.Sheet.Columns.Name[0],
		cfg.Sheet.Columns.Code[0],
		cfg.Sheet.Columns.Confirmed[0],
		"Ссылка",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, guest := range guests {
		confirmed := ""
		if guest.Confirmed {
			confirmed = cfg.Sheet.Affirmative
		}
		values := []string{
			guest.Name,
			guest.Code,
			confirmed,
			qr.InvitationURL(cfg.Site.BaseURL, guest.Code),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	fmt.Printf("wrote %d guests to %s\n", len(guests), outputPath)
	return nil
}

func runQRCodes(cmd *cobra.Command, args []string) error {
	cfg, guests, err := loadRoster()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	for _, guest := range guests {
		link := qr.InvitationURL(cfg.Site.BaseURL, guest.Code)
		path := filepath.Join(outputDir, guest.Code+".png")
		if err := qrcode.WriteFile(link, qrcode.Medium, qrSize, path); err != nil {
			return fmt.Errorf("qr for %s: %w", guest.Code, err)
		}
	}

	fmt.Printf("wrote %d QR codes to %s\n", len(guests), outputDir)
	return nil
}
