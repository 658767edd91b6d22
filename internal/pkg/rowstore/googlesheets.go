package rowstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/google"
)

const sheetsBaseURL = "https://sheets.googleapis.com/v4"

const sheetsScope = "https://www.googleapis.com/auth/spreadsheets"

// SheetsStore talks to the Google Sheets values API with a service-account
// credential. One instance serves one spreadsheet.
type SheetsStore struct {
	spreadsheetKey string
	baseURL        string
	http           *http.Client
}

// SheetsOption configures the store.
type SheetsOption func(*SheetsStore)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) SheetsOption {
	return func(s *SheetsStore) {
		s.baseURL = url
	}
}

// WithHTTPClient overrides the OAuth2-derived http.Client.
func WithHTTPClient(hc *http.Client) SheetsOption {
	return func(s *SheetsStore) {
		s.http = hc
	}
}

// NewSheetsStore builds a store from a service-account credentials JSON
// blob (the GCF_CREDENTIALS environment value).
func NewSheetsStore(ctx context.Context, spreadsheetKey string, credentialsJSON []byte, opts ...SheetsOption) (*SheetsStore, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, sheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	client := jwtConfig.Client(ctx)
	client.Timeout = 30 * time.Second

	s := &SheetsStore{
		spreadsheetKey: spreadsheetKey,
		baseURL:        sheetsBaseURL,
		http:           client,
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

type valueRange struct {
	Values [][]string `json:"values"`
}

// AppendRow implements Store.
func (s *SheetsStore) AppendRow(ctx context.Context, sheet string, row Row) error {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED&insertDataOption=INSERT_ROWS",
		s.baseURL, s.spreadsheetKey, url.PathEscape(sheet))

	body, err := json.Marshal(valueRange{Values: [][]string{row}})
	if err != nil {
		return fmt.Errorf("failed to marshal append body: %w", err)
	}

	return s.do(ctx, http.MethodPost, endpoint, body, nil)
}

// ReadAllRows implements Store.
func (s *SheetsStore) ReadAllRows(ctx context.Context, sheet string) ([]Row, error) {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s",
		s.baseURL, s.spreadsheetKey, url.PathEscape(sheet))

	var resp valueRange
	if err := s.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(resp.Values))
	for _, v := range resp.Values {
		rows = append(rows, Row(v))
	}
	return rows, nil
}

// UpdateCell implements Store.
func (s *SheetsStore) UpdateCell(ctx context.Context, sheet string, cellRef string, value string) error {
	if _, _, err := ParseCellRef(cellRef); err != nil {
		return err
	}
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s?valueInputOption=USER_ENTERED",
		s.baseURL, s.spreadsheetKey, url.PathEscape(sheet+"!"+cellRef))

	body, err := json.Marshal(valueRange{Values: [][]string{{value}}})
	if err != nil {
		return fmt.Errorf("failed to marshal update body: %w", err)
	}

	return s.do(ctx, http.MethodPut, endpoint, body, nil)
}

func (s *SheetsStore) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create sheets request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		// network-level failures are always worth retrying
		return &TransientError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &TransientError{Err: fmt.Errorf("sheets API status %d: %s", resp.StatusCode, payload)}
	}
	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("sheets API status %d: %s", resp.StatusCode, payload)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode sheets response: %w", err)
		}
	}
	return nil
}
