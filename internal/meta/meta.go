package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/evandalmeida/eDashboard/internal/entity"
	gerr "github.com/evandalmeida/eDashboard/internal/errors"
	"github.com/evandalmeida/eDashboard/internal/paginate"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

const (
	source        = "Meta"
	accountPrefix = "act_"
)

var (
	graphBaseURL = "https://graph.facebook.com"

	defaultAPIVersion = "v19.0"
)

type Config struct {
	AccessToken string        `mapstructure:"access_token"`
	AdAccountID string        `mapstructure:"ad_account_id"`
	APIVersion  string        `mapstructure:"api_version"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// Client reads daily account spend from the Graph insights edge.
type Client struct {
	c   *Config
	cli *resty.Client
}

func New(c *Config) *Client {
	if c.APIVersion == "" {
		c.APIVersion = defaultAPIVersion
	}
	timeout := c.HTTPTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	cli := resty.New()
	cli.SetTimeout(timeout)

	return &Client{
		c:   c,
		cli: cli,
	}
}

// AccountID returns the configured ad account id with the act_ prefix.
func (c *Client) AccountID() string {
	id := strings.TrimSpace(c.c.AdAccountID)
	if id == "" || strings.HasPrefix(id, accountPrefix) {
		return id
	}
	return accountPrefix + id
}

type insightsResponse struct {
	Data []insightRow `json:"data"`
}

type insightRow struct {
	DateStart string `json:"date_start"`
	Spend     string `json:"spend"`
}

type timeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// FetchSpend returns the account spend for every day the platform reports in
// the range, sorted by date, and their total.
func (c *Client) FetchSpend(ctx context.Context, r entity.DateRange) (decimal.Decimal, []entity.AdSpendDay, error) {
	var missing []string
	if c.c.AccessToken == "" {
		missing = append(missing, "token")
	}
	if c.c.AdAccountID == "" {
		missing = append(missing, "account")
	}
	if len(missing) > 0 {
		return decimal.Zero, nil, &gerr.CredentialError{Source: source, Missing: missing}
	}

	p := &paginate.SinglePage[entity.AdSpendDay]{
		Fetch: func(ctx context.Context) ([]entity.AdSpendDay, error) {
			return c.getInsights(ctx, r)
		},
	}
	res, err := paginate.Walk[entity.AdSpendDay](ctx, p, 1)
	if err != nil {
		return decimal.Zero, nil, err
	}

	days := res.Items
	slices.SortFunc(days, func(a, b entity.AdSpendDay) int {
		return a.Date.Compare(b.Date)
	})

	total := decimal.Zero
	for _, d := range days {
		total = total.Add(d.Spend)
	}

	slog.Default().InfoContext(ctx, "fetched meta spend",
		slog.String("range", r.String()),
		slog.Int("days", len(days)),
		slog.String("total", total.StringFixed(2)),
	)
	return total, days, nil
}

func (c *Client) getInsights(ctx context.Context, r entity.DateRange) ([]entity.AdSpendDay, error) {
	tr, err := json.Marshal(timeRange{
		Since: r.Start.Format(entity.DateLayout),
		Until: r.End.Format(entity.DateLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("can't marshal time range: %w", err)
	}

	u := fmt.Sprintf("%s/%s/%s/insights", graphBaseURL, c.c.APIVersion, c.AccountID())
	resp, err := c.cli.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_token":   c.c.AccessToken,
			"time_range":     string(tr),
			"fields":         "date_start,spend",
			"level":          "account",
			"time_increment": "1",
			"limit":          strconv.Itoa(r.Len()),
		}).
		Get(u)
	if err != nil {
		return nil, fmt.Errorf("meta insights request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, gerr.NewUpstreamError(source, resp.StatusCode(), resp.String())
	}

	var body insightsResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("could not unmarshal meta insights: %w", err)
	}

	loc := r.Location()
	days := make([]entity.AdSpendDay, 0, len(body.Data))
	for _, row := range body.Data {
		date, err := time.ParseInLocation(entity.DateLayout, row.DateStart, loc)
		if err != nil {
			slog.Default().WarnContext(ctx, "skipping meta row with bad date_start",
				slog.String("date_start", row.DateStart),
			)
			continue
		}
		spend, err := decimal.NewFromString(row.Spend)
		if err != nil {
			spend = decimal.Zero
		}
		days = append(days, entity.AdSpendDay{Date: date, Spend: spend})
	}
	return days, nil
}
