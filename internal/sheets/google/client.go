// Package google implements the spreadsheet port on the Google Sheets API.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"finbot/internal/config"
	"finbot/internal/core"
	ports "finbot/internal/sheets"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

var _ ports.ExpenseWriter = (*Client)(nil)

// NewClient builds a Sheets client. Service account credentials (inline JSON
// or a file path, inline wins) take precedence; otherwise it falls back to
// the user token saved by the oauth-init command.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.GoogleSpreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}

	var authOption goption.ClientOption
	switch {
	case cfg.GoogleCredentialsJSON != "":
		authOption = goption.WithCredentialsJSON([]byte(cfg.GoogleCredentialsJSON))
	case cfg.GoogleCredentialsFile != "":
		data, err := os.ReadFile(cfg.GoogleCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		authOption = goption.WithCredentialsJSON(data)
	case cfg.GoogleOAuthClientFile != "" && cfg.GoogleOAuthTokenFile != "":
		source, err := userTokenSource(ctx, cfg.GoogleOAuthClientFile, cfg.GoogleOAuthTokenFile)
		if err != nil {
			return nil, err
		}
		authOption = goption.WithTokenSource(source)
	default:
		return nil, errors.New("missing Google credentials")
	}

	svc, err := gsheet.NewService(ctx,
		authOption,
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.GoogleSpreadsheetID,
		sheetName:     cfg.GoogleSheetName,
	}, nil
}

// userTokenSource loads the OAuth client definition and the saved refresh
// token and returns a source that renews access tokens as needed.
func userTokenSource(ctx context.Context, clientFile, tokenFile string) (oauth2.TokenSource, error) {
	clientJSON, err := os.ReadFile(clientFile)
	if err != nil {
		return nil, fmt.Errorf("read OAuth client file: %w", err)
	}
	oauthCfg, err := oauthgoogle.ConfigFromJSON(clientJSON, gsheet.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse OAuth client file: %w", err)
	}

	tokenJSON, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("read OAuth token file: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(tokenJSON, &token); err != nil {
		return nil, fmt.Errorf("parse OAuth token file: %w", err)
	}

	return oauthCfg.TokenSource(ctx, &token), nil
}

// Append writes one expense as a new row: date, description, category,
// amount in reais. Returns the updated range as the row reference.
func (c *Client) Append(ctx context.Context, e core.Expense) (string, error) {
	rng := fmt.Sprintf("%s!A:D", c.sheetName)
	vr := &gsheet.ValueRange{Values: [][]any{{
		e.CreatedAt.Format("02/01/2006"),
		e.Description,
		e.Category,
		e.Value.Reais(),
	}}}

	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("append to sheet %s: %w", c.sheetName, err)
	}

	if resp.Updates != nil {
		return resp.Updates.UpdatedRange, nil
	}
	return "", nil
}
