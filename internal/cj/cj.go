package cj

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/evandalmeida/eDashboard/internal/entity"
	gerr "github.com/evandalmeida/eDashboard/internal/errors"
	"github.com/evandalmeida/eDashboard/internal/paginate"
	"github.com/evandalmeida/eDashboard/internal/ratelimit"
	"github.com/evandalmeida/eDashboard/internal/timeseries"
	"github.com/evandalmeida/eDashboard/internal/tokencache"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const (
	source       = "CJ"
	authSource   = "CJ auth"
	listSource   = "CJ list"
	createLayout = "2006-01-02 15:04:05"

	// ReportLive and ReportCache tell where a CostReport came from.
	ReportLive  = "live"
	ReportCache = "cache"
)

var baseURL = "https://developers.cjdropshipping.com/api2.0/v1"

type Config struct {
	Email          string        `mapstructure:"email"`
	APIKey         string        `mapstructure:"api_key"`
	PageSize       int           `mapstructure:"page_size"`
	MaxPages       int           `mapstructure:"max_pages"`
	OrderStatus    string        `mapstructure:"order_status"`
	TokenCooldown  time.Duration `mapstructure:"token_cooldown"`
	CreateDateZone string        `mapstructure:"create_date_zone"`
	HTTPTimeout    time.Duration `mapstructure:"http_timeout"`
}

func DefaultConfig() Config {
	return Config{
		PageSize:       100,
		MaxPages:       20,
		TokenCooldown:  300 * time.Second,
		CreateDateZone: "UTC",
		HTTPTimeout:    30 * time.Second,
	}
}

// CostReport is the fulfillment cost of a range, bucketed by local day.
type CostReport struct {
	Daily     []entity.TimeSeriesPoint
	Total     decimal.Decimal
	Orders    int
	Pages     int
	Truncated bool
	Source    string
	CachedAt  time.Time
}

// StaleWarning is set when the report was served from memory.
func (r *CostReport) StaleWarning() (gerr.PartialResultWarning, bool) {
	if r.Source != ReportCache {
		return gerr.PartialResultWarning{}, false
	}
	return gerr.PartialResultWarning{
		Source: source,
		Reason: fmt.Sprintf("COGS from cache (cached_at: %s)", r.CachedAt.Format(time.RFC3339)),
	}, true
}

// TruncationWarning is set when the page cap stopped the listing early.
func (r *CostReport) TruncationWarning() (gerr.PartialResultWarning, bool) {
	if !r.Truncated {
		return gerr.PartialResultWarning{}, false
	}
	return gerr.PartialResultWarning{
		Source: source,
		Reason: fmt.Sprintf("stopped after %d pages, costs are partial. Narrow the date range or try later", r.Pages),
	}, true
}

// maxCachedReports bounds the stale-report cache; the oldest range is evicted first.
const maxCachedReports = 16

type cachedReport struct {
	report CostReport
	at     time.Time
}

// Client lists dropshipping orders and sums their fulfillment cost.
type Client struct {
	c      *Config
	cli    *resty.Client
	zone   *time.Location
	tokens *tokencache.Cache
	now    func() time.Time

	mu    sync.Mutex
	cache map[string]cachedReport
}

type Option func(*Client)

// WithClock replaces time.Now for the token cache, its cooldown and the report cache.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func New(c *Config, opts ...Option) (*Client, error) {
	def := DefaultConfig()
	if c.PageSize <= 0 {
		c.PageSize = def.PageSize
	}
	if c.MaxPages < 0 {
		c.MaxPages = 0
	}
	if c.TokenCooldown <= 0 {
		c.TokenCooldown = def.TokenCooldown
	}
	if c.CreateDateZone == "" {
		c.CreateDateZone = def.CreateDateZone
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = def.HTTPTimeout
	}
	zone, err := time.LoadLocation(c.CreateDateZone)
	if err != nil {
		return nil, fmt.Errorf("can't load cj create date zone %q: %w", c.CreateDateZone, err)
	}

	cli := resty.New()
	cli.SetTimeout(c.HTTPTimeout)
	cli.SetHeader("Content-Type", "application/json")

	client := &Client{
		c:     c,
		cli:   cli,
		zone:  zone,
		now:   time.Now,
		cache: make(map[string]cachedReport),
	}
	for _, o := range opts {
		o(client)
	}

	limiter := ratelimit.NewLimiter(c.TokenCooldown, 1).WithClock(client.now)
	client.tokens = tokencache.New(client.acquireToken,
		tokencache.WithClock(client.now),
		tokencache.WithCooldown(source, c.Email, limiter),
	)
	return client, nil
}

type envelope struct {
	Code    int             `json:"code"`
	Result  bool            `json:"result"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(src string, resp *resty.Response, data any) error {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("could not unmarshal %s response: %w", src, err)
	}
	if !env.Result {
		return gerr.NewUpstreamError(src, resp.StatusCode(), fmt.Sprintf("code %d: %s", env.Code, env.Message))
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, data); err != nil {
		return fmt.Errorf("could not unmarshal %s data: %w", src, err)
	}
	return nil
}

func (c *Client) credentials() error {
	var missing []string
	if c.c.Email == "" {
		missing = append(missing, "CJ_EMAIL")
	}
	if c.c.APIKey == "" {
		missing = append(missing, "CJ_API_KEY")
	}
	if len(missing) > 0 {
		return &gerr.CredentialError{Source: source, Missing: missing}
	}
	return nil
}

type tokenData struct {
	AccessToken           string `json:"accessToken"`
	AccessTokenExpiryDate string `json:"accessTokenExpiryDate"`
}

func (c *Client) acquireToken(ctx context.Context) (tokencache.Token, error) {
	if err := c.credentials(); err != nil {
		return tokencache.Token{}, err
	}

	resp, err := c.cli.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"email":  c.c.Email,
			"apiKey": c.c.APIKey,
		}).
		Post(baseURL + "/authentication/getAccessToken")
	if err != nil {
		return tokencache.Token{}, fmt.Errorf("cj auth request: %w", err)
	}
	if !resp.IsSuccess() {
		return tokencache.Token{}, gerr.NewUpstreamError(authSource, resp.StatusCode(), resp.String())
	}

	var data tokenData
	if err := decodeEnvelope(authSource, resp, &data); err != nil {
		return tokencache.Token{}, err
	}
	return tokencache.Token{
		Value:  data.AccessToken,
		Expiry: c.parseTime(data.AccessTokenExpiryDate),
	}, nil
}

// parseTime accepts RFC3339 or the provider's zone-less layout. Unparseable
// values yield the zero time.
func (c *Client) parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(createLayout, s, c.zone); err == nil {
		return t
	}
	return time.Time{}
}

type listData struct {
	PageNum  int          `json:"pageNum"`
	PageSize int          `json:"pageSize"`
	Total    int          `json:"total"`
	List     []orderEntry `json:"list"`
}

type orderEntry struct {
	OrderID       string        `json:"orderId"`
	CreateDate    string        `json:"createDate"`
	OrderAmount   entity.Amount `json:"orderAmount"`
	ProductAmount entity.Amount `json:"productAmount"`
	PostageAmount entity.Amount `json:"postageAmount"`
}

func (c *Client) listOrders(ctx context.Context, pageNum, pageSize int) ([]entity.FulfillmentOrder, int, error) {
	token, err := c.tokens.Get(ctx, false)
	if err != nil {
		return nil, 0, err
	}

	params := map[string]string{
		"pageNum":  strconv.Itoa(pageNum),
		"pageSize": strconv.Itoa(pageSize),
	}
	if c.c.OrderStatus != "" {
		params["status"] = c.c.OrderStatus
	}

	resp, err := c.cli.R().
		SetContext(ctx).
		SetHeader("CJ-Access-Token", token).
		SetQueryParams(params).
		Get(baseURL + "/shopping/order/list")
	if err != nil {
		return nil, 0, fmt.Errorf("cj list request: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		c.tokens.Invalidate()
	}
	if !resp.IsSuccess() {
		return nil, 0, gerr.NewUpstreamError(listSource, resp.StatusCode(), resp.String())
	}

	var data listData
	if err := decodeEnvelope(listSource, resp, &data); err != nil {
		return nil, 0, err
	}

	// undated orders stay in the page: an empty page is what ends the listing
	orders := make([]entity.FulfillmentOrder, 0, len(data.List))
	for _, it := range data.List {
		orders = append(orders, entity.FulfillmentOrder{
			OrderID:       it.OrderID,
			CreateDate:    c.parseTime(it.CreateDate),
			OrderAmount:   it.OrderAmount,
			ProductAmount: it.ProductAmount,
			PostageAmount: it.PostageAmount,
		})
	}
	return orders, data.Total, nil
}

// FetchCosts sums the cost of every order created within the range. When the
// token cooldown refuses a live fetch, the last report of the same range is
// served from memory instead.
func (c *Client) FetchCosts(ctx context.Context, r entity.DateRange) (*CostReport, error) {
	if err := c.credentials(); err != nil {
		return nil, err
	}

	report, err := c.fetchLive(ctx, r)
	if err == nil {
		c.remember(r.String(), report)
		return report, nil
	}

	if !gerr.IsRateLimited(err) {
		return nil, err
	}

	c.mu.Lock()
	cached, ok := c.cache[r.String()]
	c.mu.Unlock()
	if !ok {
		return nil, err
	}

	slog.Default().WarnContext(ctx, "serving cached cj costs",
		slog.String("range", r.String()),
		slog.Time("cached_at", cached.at),
		slog.String("err", err.Error()),
	)
	stale := cached.report
	stale.Daily = append([]entity.TimeSeriesPoint(nil), cached.report.Daily...)
	stale.Source = ReportCache
	stale.CachedAt = cached.at
	return &stale, nil
}

func (c *Client) remember(key string, report *CostReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = cachedReport{report: *report, at: c.now()}
	for len(c.cache) > maxCachedReports {
		oldest := ""
		for k, v := range c.cache {
			if oldest == "" || v.at.Before(c.cache[oldest].at) {
				oldest = k
			}
		}
		delete(c.cache, oldest)
	}
}

func (c *Client) fetchLive(ctx context.Context, r entity.DateRange) (*CostReport, error) {
	p := &paginate.PageCountPaginator[entity.FulfillmentOrder]{
		PageSize: c.c.PageSize,
		Fetch:    c.listOrders,
	}
	res, err := paginate.Walk[entity.FulfillmentOrder](ctx, p, c.c.MaxPages)
	if err != nil {
		return nil, err
	}

	points := make([]entity.TimeSeriesPoint, 0, len(res.Items))
	for _, o := range res.Items {
		if o.CreateDate.IsZero() {
			slog.Default().DebugContext(ctx, "skipping cj order without create date",
				slog.String("order_id", o.OrderID),
			)
			continue
		}
		if !r.Contains(o.CreateDate) {
			continue
		}
		points = append(points, entity.TimeSeriesPoint{
			Date:  o.CreateDate,
			Value: o.Cost(),
			Count: 1,
		})
	}
	daily := timeseries.BucketDaily(points, r)

	report := &CostReport{
		Daily:     daily,
		Total:     timeseries.Total(daily),
		Orders:    len(points),
		Pages:     res.Pages,
		Truncated: res.Truncated,
		Source:    ReportLive,
	}
	slog.Default().InfoContext(ctx, "fetched cj costs",
		slog.String("range", r.String()),
		slog.Int("orders", report.Orders),
		slog.Int("pages", report.Pages),
		slog.Bool("truncated", report.Truncated),
		slog.String("total", report.Total.StringFixed(2)),
	)
	return report, nil
}
