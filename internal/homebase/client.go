package homebase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http/cookiejar"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/megabyte6/calendar-updater/internal/schedule"
)

const (
	// DefaultBaseURL is the production Homebase site.
	DefaultBaseURL = "https://app.joinhomebase.com"

	loginPath    = "/accounts/sign-in"
	schedulePath = "/"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
	timeout   = 30 * time.Second
)

// ErrLoginFailed indicates Homebase rejected the configured credentials.
var ErrLoginFailed = errors.New("homebase: login failed")

// Client is an authenticated session against the Homebase site.
type Client struct {
	http *resty.Client
}

// New creates a client for the site at the given base URL. An empty base
// URL selects the production site.
func New(baseURL string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetCookieJar(jar)
	client.SetHeader("User-Agent", userAgent)
	client.SetTimeout(timeout)

	return &Client{http: client}, nil
}

// Login posts the sign-in form. The session cookie is kept in the client's
// cookie jar for subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"account_login":    username,
			"account_password": password,
		}).
		Post(loginPath)
	if err != nil {
		return fmt.Errorf("posting sign-in form: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("%w: status %s", ErrLoginFailed, res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return fmt.Errorf("parsing sign-in response: %w", err)
	}
	// Being served the sign-in form again means the credentials were rejected.
	if doc.Find("#account_login").Length() > 0 {
		return ErrLoginFailed
	}

	return nil
}

// FetchShifts reads today's instructor shifts from the schedule dashboard.
func (c *Client) FetchShifts(ctx context.Context, day time.Time, loc *time.Location) ([]schedule.Instructor, error) {
	res, err := c.http.R().SetContext(ctx).Get(schedulePath)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule dashboard: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("unexpected status %s for schedule dashboard", res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parsing schedule dashboard: %w", err)
	}

	return parseShifts(doc, day, loc)
}
