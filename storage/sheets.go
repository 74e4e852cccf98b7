package storage

import (
	"context"
	"fmt"
	"log"
	"os"

	"procurement-backend/models"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsStore keeps the ledger in one worksheet of a Google
// spreadsheet. Row 1 is the header naming the columns; every order is
// one row below it. The store authenticates with a service account
// and builds its API client per call, so a revoked credential shows
// up on the next request rather than at startup.
type SheetsStore struct {
	spreadsheetID   string
	sheetName       string
	credentialsFile string
}

func NewSheetsStore(spreadsheetID, sheetName, credentialsFile string) *SheetsStore {
	return &SheetsStore{
		spreadsheetID:   spreadsheetID,
		sheetName:       sheetName,
		credentialsFile: credentialsFile,
	}
}

func (s *SheetsStore) service(ctx context.Context) (*sheets.Service, error) {
	data, err := os.ReadFile(s.credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("service account credentials file not found at %q", s.credentialsFile)
	}
	conf, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials: %w", err)
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// FetchAll reads the whole worksheet and maps each row below the
// header onto a Record. Cells come back unformatted, so numbers stay
// numbers instead of their display strings.
func (s *SheetsStore) FetchAll(ctx context.Context) ([]models.Record, error) {
	svc, err := s.service(ctx)
	if err != nil {
		log.Printf("[ERROR] Google Sheets access failed: %v", err)
		return nil, &StoreError{Backend: "Google Sheet", Err: err}
	}
	resp, err := svc.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetName).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).Do()
	if err != nil {
		log.Printf("[ERROR] Google Sheets access failed: %v", err)
		return nil, &StoreError{Backend: "Google Sheet", Err: err}
	}
	return recordsFromValues(resp.Values), nil
}

// Append writes one row after the last filled row of the worksheet.
// RAW input keeps the values as submitted; nothing is reformatted or
// re-parsed on the way in.
func (s *SheetsStore) Append(ctx context.Context, row []interface{}) error {
	svc, err := s.service(ctx)
	if err != nil {
		log.Printf("[ERROR] Google Sheets access failed: %v", err)
		return &StoreError{Backend: "Google Sheet", Err: err}
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err = svc.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		log.Printf("[ERROR] Google Sheets access failed: %v", err)
		return &StoreError{Backend: "Google Sheet", Err: err}
	}
	return nil
}

// Ping fetches the spreadsheet metadata as a cheap liveness and
// credential check.
func (s *SheetsStore) Ping(ctx context.Context) error {
	svc, err := s.service(ctx)
	if err != nil {
		return &StoreError{Backend: "Google Sheet", Err: err}
	}
	if _, err := svc.Spreadsheets.Get(s.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		return &StoreError{Backend: "Google Sheet", Err: err}
	}
	return nil
}

// recordsFromValues zips the header row with each data row. Rows
// shorter than the header are padded with empty strings, the way a
// sheet hands back rows whose trailing cells were never filled.
func recordsFromValues(values [][]interface{}) []models.Record {
	if len(values) == 0 {
		return nil
	}
	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = fmt.Sprintf("%v", cell)
	}
	records := make([]models.Record, 0, len(values)-1)
	for _, row := range values[1:] {
		rec := make(models.Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}
