package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"finanzas/internal/core"
	applog "finanzas/internal/log"
)

// SheetsExporter writes each user's snapshot to a dedicated tab of one
// Google spreadsheet, authenticated with a service account.
type SheetsExporter struct {
	svc           *gsheet.Service
	spreadsheetID string
}

var _ Exporter = (*SheetsExporter)(nil)

// NewSheetsExporter builds a Sheets client from service account credentials.
// Inline JSON wins over a credentials file path.
func NewSheetsExporter(ctx context.Context, spreadsheetID, credentialsJSON, credentialsFile string) (*SheetsExporter, error) {
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}

	var creds []byte
	switch {
	case credentialsJSON != "":
		creds = []byte(credentialsJSON)
	case credentialsFile != "":
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		creds = data
	default:
		return nil, errors.New("missing service account credentials")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(creds),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &SheetsExporter{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// ExportTransactions replaces the user's tab with the given snapshot.
func (e *SheetsExporter) ExportTransactions(ctx context.Context, userID string, transactions []core.Transaction) error {
	if e.svc == nil {
		return errors.New("sheets service not initialized")
	}

	sheetName := sheetNameFor(userID)
	if err := e.ensureSheet(ctx, sheetName); err != nil {
		return fmt.Errorf("ensure sheet %s: %w", sheetName, err)
	}

	clearRange := fmt.Sprintf("%s!A:E", sheetName)
	_, err := e.svc.Spreadsheets.Values.Clear(e.spreadsheetID, clearRange, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear %s: %w", clearRange, err)
	}

	vr := &gsheet.ValueRange{Values: buildRows(transactions)}
	_, err = e.svc.Spreadsheets.Values.Update(e.spreadsheetID, sheetName+"!A1", vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write snapshot to %s: %w", sheetName, err)
	}

	slog.InfoContext(ctx, "Exported transaction snapshot",
		applog.FieldUserID, userID,
		"sheet", sheetName,
		"rows", len(transactions))
	return nil
}

// ensureSheet creates the user's tab when it does not exist yet.
func (e *SheetsExporter) ensureSheet(ctx context.Context, sheetName string) error {
	spreadsheet, err := e.svc.Spreadsheets.Get(e.spreadsheetID).
		Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == sheetName {
			return nil
		}
	}

	req := &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			AddSheet: &gsheet.AddSheetRequest{
				Properties: &gsheet.SheetProperties{Title: sheetName},
			},
		}},
	}
	if _, err := e.svc.Spreadsheets.BatchUpdate(e.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	return nil
}
