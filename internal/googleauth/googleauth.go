package googleauth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Load builds an authenticated HTTP client for the Google Calendar API.
//
// The OAuth client configuration is read from the secrets file downloaded
// from the Google Cloud console. A cached token is reused when still valid,
// refreshed when expired, and re-acquired through the interactive browser
// flow otherwise. Refreshed and newly issued tokens are written back to the
// token file.
func Load(ctx context.Context, secretsFile, tokenFile string, scopes []string) (*http.Client, error) {
	data, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("reading Google API secrets file: %w", err)
	}

	config, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parsing Google API secrets file: %w", err)
	}

	token, err := ReadToken(tokenFile)
	if err == nil {
		if token.Valid() {
			return config.Client(ctx, token), nil
		}
		if token.RefreshToken != "" {
			fresh, refreshErr := config.TokenSource(ctx, token).Token()
			if refreshErr == nil {
				if err := SaveToken(tokenFile, fresh); err != nil {
					return nil, err
				}
				return config.Client(ctx, fresh), nil
			}
			// Refresh tokens die when revoked or when scopes change;
			// fall back to the interactive flow.
		}
	}

	token, err = authorize(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("authorizing with Google: %w", err)
	}
	if err := SaveToken(tokenFile, token); err != nil {
		return nil, err
	}

	return config.Client(ctx, token), nil
}

// authorize runs the interactive authorization-code flow: a loopback server
// receives the redirect while the user approves access in their browser.
func authorize(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("starting callback listener: %w", err)
	}
	defer listener.Close()

	// The registered redirect must match the ephemeral port we got.
	flowConfig := *config
	flowConfig.RedirectURL = fmt.Sprintf("http://%s/callback", listener.Addr().String())

	state, err := randomState()
	if err != nil {
		return nil, err
	}

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			errCh <- fmt.Errorf("authorization callback state mismatch")
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			errCh <- fmt.Errorf("authorization callback missing code")
			return
		}
		fmt.Fprintln(w, "Authorization received. You can close this window.")
		codeCh <- code
	})

	server := &http.Server{Handler: mux}
	go server.Serve(listener) // nolint:errcheck
	defer server.Close()

	authURL := flowConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser to authorize calendar access:\n%s\n", authURL)

	select {
	case code := <-codeCh:
		return flowConfig.Exchange(ctx, code)
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating state parameter: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
