package adminsdk

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// EnvBaseURL is the environment variable consulted for the API base URL
	// when no explicit value is configured.
	EnvBaseURL = "AMORA_API_URL"

	// DefaultBaseURL is the fallback base URL for local development.
	DefaultBaseURL = "http://localhost:8080/api"
)

// Config holds the construction-time settings for a Client. The zero value
// is usable: it resolves the base URL from the environment and stores the
// bearer token in memory.
type Config struct {
	// BaseURL overrides environment-based base URL resolution.
	BaseURL string

	// HTTPClient is the underlying HTTP client. Defaults to a client with a
	// 30 second timeout.
	HTTPClient *http.Client

	// Credentials is the injected bearer-token store. Defaults to an
	// in-memory store.
	Credentials CredentialStore

	// OnAuthFailure is invoked after a 401 response has cleared the
	// credential store. The host decides whether to navigate to a login
	// flow, log, or ignore; leaving it nil suppresses any side effect
	// beyond the token clear.
	OnAuthFailure func(*APIError)

	// Limiter optionally throttles outbound requests client-side.
	Limiter *rate.Limiter

	// Logger receives debug lines for each request. Defaults to a silent
	// logger.
	Logger *slog.Logger
}

// Client is the single point of HTTP egress for the admin API. All
// specialized services issue their requests through it, so bearer-token
// injection and 401 handling apply uniformly.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	creds         CredentialStore
	onAuthFailure func(*APIError)
	limiter       *rate.Limiter
	logger        *slog.Logger

	// Specialized services, one per admin API resource.
	Auth              *AuthService
	Plans             *PlansService
	Users             *UsersService
	Matches           *MatchesService
	Transactions      *TransactionsService
	Lounges           *LoungesService
	DatePlans         *DatePlansService
	DatePlanTemplates *DatePlanTemplatesService
	Subscriptions     *SubscriptionsService
	Dashboard         *DashboardService
	EmailTemplates    *EmailTemplatesService
}

// New creates a Client from cfg, applying defaults for any unset field.
// Base URL resolution happens exactly once, here; the client never
// reconfigures it later.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	creds := cfg.Credentials
	if creds == nil {
		creds = NewMemoryStore()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Client{
		baseURL:       ResolveBaseURL(cfg.BaseURL),
		httpClient:    httpClient,
		creds:         creds,
		onAuthFailure: cfg.OnAuthFailure,
		limiter:       cfg.Limiter,
		logger:        logger,
	}

	c.Auth = &AuthService{client: c}
	c.Plans = NewPlansService(c)
	c.Users = NewUsersService(c)
	c.Matches = NewMatchesService(c)
	c.Transactions = NewTransactionsService(c)
	c.Lounges = NewLoungesService(c)
	c.DatePlans = NewDatePlansService(c)
	c.DatePlanTemplates = NewDatePlanTemplatesService(c)
	c.Subscriptions = NewSubscriptionsService(c)
	c.Dashboard = NewDashboardService(c)
	c.EmailTemplates = NewEmailTemplatesService(c)

	return c
}

// ResolveBaseURL picks the API base URL: the explicit value when non-empty,
// then the AMORA_API_URL environment variable, then the local default.
// Trailing slashes are trimmed so path joining stays uniform.
func ResolveBaseURL(explicit string) string {
	base := explicit
	if base == "" {
		base = os.Getenv(EnvBaseURL)
	}
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimSuffix(base, "/")
}

// BaseURL returns the resolved base URL this client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Credentials returns the credential store this client reads tokens from.
func (c *Client) Credentials() CredentialStore {
	return c.creds
}
