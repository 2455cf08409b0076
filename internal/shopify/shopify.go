package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/evandalmeida/eDashboard/internal/entity"
	gerr "github.com/evandalmeida/eDashboard/internal/errors"
	"github.com/evandalmeida/eDashboard/internal/paginate"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const (
	source      = "Shopify"
	orderFields = "id,created_at,total_price,subtotal_price,total_line_items_price"
)

var (
	baseURLFormat = "https://%s/admin/api/%s"

	defaultAPIVersion = "2024-10"
	defaultPageLimit  = 250
)

type Config struct {
	StoreDomain string        `mapstructure:"store_domain"`
	AccessToken string        `mapstructure:"access_token"`
	APIVersion  string        `mapstructure:"api_version"`
	PageLimit   int           `mapstructure:"page_limit"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// Client lists storefront orders through the Admin REST API.
type Client struct {
	c   *Config
	cli *resty.Client
}

func New(c *Config) *Client {
	if c.APIVersion == "" {
		c.APIVersion = defaultAPIVersion
	}
	if c.PageLimit <= 0 || c.PageLimit > defaultPageLimit {
		c.PageLimit = defaultPageLimit
	}
	timeout := c.HTTPTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	cli := resty.New()
	cli.SetTimeout(timeout)
	cli.SetHeader("Accept", "application/json")

	return &Client{
		c:   c,
		cli: cli,
	}
}

type ordersResponse struct {
	Orders []orderPayload `json:"orders"`
}

type orderPayload struct {
	ID                  int64         `json:"id"`
	CreatedAt           string        `json:"created_at"`
	TotalPrice          entity.Amount `json:"total_price"`
	SubtotalPrice       entity.Amount `json:"subtotal_price"`
	TotalLineItemsPrice entity.Amount `json:"total_line_items_price"`
}

// FetchOrders returns every order created within the range and the sum of
// their amounts under basis.
func (c *Client) FetchOrders(ctx context.Context, r entity.DateRange, basis entity.RevenueBasis) (decimal.Decimal, []entity.Order, error) {
	var missing []string
	if c.c.StoreDomain == "" {
		missing = append(missing, "domain")
	}
	if c.c.AccessToken == "" {
		missing = append(missing, "token")
	}
	if len(missing) > 0 {
		return decimal.Zero, nil, &gerr.CredentialError{Source: source, Missing: missing}
	}

	from, to := r.Bounds()
	first := map[string]string{
		"status":         "any",
		"limit":          strconv.Itoa(c.c.PageLimit),
		"created_at_min": from.UTC().Format(time.RFC3339),
		"created_at_max": to.UTC().Format(time.RFC3339),
		"fields":         orderFields,
	}

	p := &paginate.CursorPaginator[entity.Order]{
		Fetch: func(ctx context.Context, cursor string) ([]entity.Order, string, error) {
			params := first
			if cursor != "" {
				// page_info requests reject any filter besides limit
				params = map[string]string{
					"limit":     strconv.Itoa(c.c.PageLimit),
					"page_info": cursor,
				}
			}
			return c.getOrdersPage(ctx, params)
		},
	}

	res, err := paginate.Walk[entity.Order](ctx, p, 0)
	if err != nil {
		return decimal.Zero, nil, err
	}

	total := basis.Sum(res.Items)
	slog.Default().InfoContext(ctx, "fetched shopify orders",
		slog.String("range", r.String()),
		slog.Int("orders", len(res.Items)),
		slog.Int("pages", res.Pages),
		slog.String("total", total.StringFixed(2)),
	)
	return total, res.Items, nil
}

func (c *Client) getOrdersPage(ctx context.Context, params map[string]string) ([]entity.Order, string, error) {
	u := fmt.Sprintf(baseURLFormat, c.c.StoreDomain, c.c.APIVersion) + "/orders.json"
	resp, err := c.cli.R().
		SetContext(ctx).
		SetHeader("X-Shopify-Access-Token", c.c.AccessToken).
		SetQueryParams(params).
		Get(u)
	if err != nil {
		return nil, "", fmt.Errorf("shopify orders request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, "", gerr.NewUpstreamError(source, resp.StatusCode(), resp.String())
	}

	var body ordersResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, "", fmt.Errorf("could not unmarshal shopify orders: %w", err)
	}

	orders := make([]entity.Order, 0, len(body.Orders))
	for _, o := range body.Orders {
		created, err := time.Parse(time.RFC3339, o.CreatedAt)
		if err != nil {
			slog.Default().WarnContext(ctx, "failed to parse shopify order created_at",
				slog.Int64("order_id", o.ID),
				slog.String("created_at", o.CreatedAt),
			)
		}
		orders = append(orders, entity.Order{
			ID:                  o.ID,
			CreatedAt:           created,
			TotalPrice:          o.TotalPrice,
			SubtotalPrice:       o.SubtotalPrice,
			TotalLineItemsPrice: o.TotalLineItemsPrice,
		})
	}
	return orders, nextPageInfo(resp.Header().Get("Link")), nil
}

// nextPageInfo extracts the page_info cursor of the rel="next" entry of a Link header.
func nextPageInfo(link string) string {
	for _, part := range strings.Split(link, ",") {
		segs := strings.Split(part, ";")
		if len(segs) < 2 {
			continue
		}
		next := false
		for _, s := range segs[1:] {
			if strings.TrimSpace(s) == `rel="next"` {
				next = true
			}
		}
		if !next {
			continue
		}
		u, err := url.Parse(strings.Trim(strings.TrimSpace(segs[0]), "<>"))
		if err != nil {
			return ""
		}
		return u.Query().Get("page_info")
	}
	return ""
}
