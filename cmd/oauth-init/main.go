// oauth-init runs the one-time OAuth consent flow for the Sheets export and
// saves the resulting refresh token where the sync worker reads it (the
// GOOGLE_OAUTH_TOKEN_FILE path). Only needed when the export authenticates
// as a user instead of a service account.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	gsheet "google.golang.org/api/sheets/v4"

	"finbot/internal/config"
)

func main() {
	cfg := config.Load()

	clientFile := flag.String("client", cfg.GoogleOAuthClientFile, "OAuth client JSON file (download from Google Cloud console)")
	tokenFile := flag.String("token", cfg.GoogleOAuthTokenFile, "where to save the token")
	port := flag.String("port", "8085", "loopback port; the client must authorize http://localhost:<port>/callback")
	timeout := flag.Duration("timeout", 5*time.Minute, "how long to wait for the browser consent")
	flag.Parse()

	if err := run(*clientFile, *tokenFile, *port, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, "oauth-init:", err)
		os.Exit(1)
	}
}

func run(clientFile, tokenFile, port string, timeout time.Duration) error {
	if clientFile == "" {
		return fmt.Errorf("no OAuth client file (use -client or GOOGLE_OAUTH_CLIENT_FILE)")
	}
	if tokenFile == "" {
		tokenFile = "token.json"
	}

	clientJSON, err := os.ReadFile(clientFile)
	if err != nil {
		return fmt.Errorf("read client file: %w", err)
	}
	oauthCfg, err := oauthgoogle.ConfigFromJSON(clientJSON, gsheet.SpreadsheetsScope)
	if err != nil {
		return fmt.Errorf("parse client file: %w", err)
	}
	oauthCfg.RedirectURL = "http://localhost:" + port + "/callback"

	state, err := randomState()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	code, err := waitForConsent(ctx, oauthCfg, port, state)
	if err != nil {
		return err
	}

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("token exchange: %w", err)
	}
	if err := saveToken(tokenFile, token); err != nil {
		return err
	}
	fmt.Printf("Token saved to %s. Point GOOGLE_OAUTH_TOKEN_FILE at it and restart the worker.\n", tokenFile)
	return nil
}

// waitForConsent serves the loopback callback, prints the consent URL and
// blocks until the redirect arrives or ctx expires.
func waitForConsent(ctx context.Context, oauthCfg *oauth2.Config, port, state string) (string, error) {
	type result struct {
		code string
		err  error
	}
	resultCh := make(chan result, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("error") != "":
			http.Error(w, "Authorization failed: "+q.Get("error"), http.StatusBadRequest)
			resultCh <- result{err: fmt.Errorf("authorization denied: %s", q.Get("error"))}
		case q.Get("state") != state:
			http.Error(w, "State mismatch, restart the flow.", http.StatusBadRequest)
			resultCh <- result{err: fmt.Errorf("state mismatch in callback")}
		default:
			fmt.Fprintln(w, "Authorized. You can close this tab.")
			resultCh <- result{code: q.Get("code")}
		}
	})

	srv := &http.Server{Addr: ":" + port, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			resultCh <- result{err: fmt.Errorf("callback server: %w", err)}
		}
	}()
	defer srv.Close()

	fmt.Printf("Open this URL in a browser to authorize:\n\n  %s\n\n", oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline))

	select {
	case r := <-resultCh:
		return r.code, r.err
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for consent: %w", ctx.Err())
	}
}

func randomState() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open token file: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}
