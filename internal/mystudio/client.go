package mystudio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http/cookiejar"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/megabyte6/calendar-updater/internal/schedule"
)

const (
	// DefaultBaseURL is the production MyStudio web portal.
	DefaultBaseURL = "https://cn.mystudio.io"

	loginPath    = "/v43/WebPortal/login"
	schedulePath = "/v43/WebPortal/class-schedule"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
	timeout   = 30 * time.Second

	// The portal intermittently serves the schedule page before its data has
	// loaded, so the whole read is attempted up to three times.
	fetchAttempts = 3
	retryInterval = 2 * time.Second
)

// ErrLoginFailed indicates the portal rejected the configured credentials.
var ErrLoginFailed = errors.New("mystudio: login failed")

// Client is an authenticated session against the MyStudio web portal.
type Client struct {
	http *resty.Client
}

// New creates a client for the portal at the given base URL. An empty base
// URL selects the production portal.
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

// Login posts the portal login form. The session cookie is kept in the
// client's cookie jar for subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"login_email":    username,
			"login_password": password,
		}).
		Post(loginPath)
	if err != nil {
		return fmt.Errorf("posting login form: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("%w: status %s", ErrLoginFailed, res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return fmt.Errorf("parsing login response: %w", err)
	}
	// Being served the login form again means the credentials were rejected.
	if doc.Find("#login_email").Length() > 0 {
		return ErrLoginFailed
	}

	return nil
}

// FetchSessions reads today's CREATE and JR sessions with their student
// rosters. The read is retried up to three attempts.
func (c *Client) FetchSessions(ctx context.Context, day time.Time, loc *time.Location) (create, jr []*schedule.Session, err error) {
	operation := func() error {
		create, jr, err = c.fetchSessionsOnce(ctx, day, loc)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), fetchAttempts-1),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, nil, err
	}

	return create, jr, nil
}

func (c *Client) fetchSessionsOnce(ctx context.Context, day time.Time, loc *time.Location) ([]*schedule.Session, []*schedule.Session, error) {
	doc, err := c.getDocument(ctx, schedulePath)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching class schedule: %w", err)
	}

	create, err := c.readCurriculum(ctx, doc, schedule.CurriculumCreate, day, loc)
	if err != nil {
		return nil, nil, fmt.Errorf("reading CREATE classes: %w", err)
	}

	jr, err := c.readCurriculum(ctx, doc, schedule.CurriculumJr, day, loc)
	if err != nil {
		return nil, nil, fmt.Errorf("reading JR classes: %w", err)
	}

	return create, jr, nil
}

// readCurriculum builds sessions from one curriculum's class list and fills
// each roster from the linked class page.
func (c *Client) readCurriculum(ctx context.Context, doc *goquery.Document, curriculum schedule.Curriculum, day time.Time, loc *time.Location) ([]*schedule.Session, error) {
	entries, err := parseClassList(doc, curriculum, day, loc)
	if err != nil {
		return nil, err
	}

	sessions := make([]*schedule.Session, 0, len(entries))
	for _, entry := range entries {
		sessions = append(sessions, schedule.NewSession(entry.start))
	}

	for _, entry := range entries {
		if entry.href == "" {
			continue
		}

		rosterDoc, err := c.getDocument(ctx, entry.href)
		if err != nil {
			return nil, fmt.Errorf("fetching class page %s: %w", entry.href, err)
		}

		roster, err := parseRoster(rosterDoc, day, loc)
		if err != nil {
			return nil, err
		}

		session := schedule.SessionAt(sessions, roster.start)
		if session == nil {
			return nil, fmt.Errorf("class time %s not found in schedule",
				roster.start.Format("3:04 PM"))
		}
		for _, name := range roster.studentNames {
			session.Students = append(session.Students, schedule.Student{
				Name:       name,
				Curriculum: curriculum,
			})
		}
	}

	return sessions, nil
}

func (c *Client) getDocument(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("unexpected status %s for %s", res.Status(), path)
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
}
