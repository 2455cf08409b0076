package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	v "github.com/asaskevich/govalidator"
	httpapi "github.com/evandalmeida/eDashboard/internal/api/http"
	"github.com/evandalmeida/eDashboard/internal/cj"
	"github.com/evandalmeida/eDashboard/internal/dashboard"
	"github.com/evandalmeida/eDashboard/internal/meta"
	"github.com/evandalmeida/eDashboard/internal/shopify"
	"github.com/evandalmeida/eDashboard/internal/warmer"
	"github.com/evandalmeida/eDashboard/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Shopify   shopify.Config   `mapstructure:"shopify"`
	Meta      meta.Config      `mapstructure:"meta"`
	CJ        cj.Config        `mapstructure:"cj"`
	Dashboard dashboard.Config `mapstructure:"dashboard"`
	Warmer    warmer.Config    `mapstructure:"warmer"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested keys map to double underscores, e.g. CJ__PAGE_SIZE for cj.page_size,
// and the flat names bound in bindEnvVars work too.
func LoadConfig(cfgFile string) (*Config, error) {
	vp := viper.New()
	vp.SetConfigType("toml")
	vp.AutomaticEnv()
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(vp)
	if err := bindEnvVars(vp); err != nil {
		return nil, fmt.Errorf("can't bind env vars: %w", err)
	}

	// the config file is optional, env vars alone are enough
	if cfgFile != "" {
		vp.SetConfigFile(cfgFile)
		if err := vp.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		vp.SetConfigName("config")
		vp.AddConfigPath("./config")
		vp.AddConfigPath("$HOME/config/edashboard")
		vp.AddConfigPath("/etc/edashboard")
		_ = vp.ReadInConfig()
	}

	var config Config
	if err := vp.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the format of values that are set. Missing credentials are
// not an error here: the source reports them when it is fetched.
func (c *Config) Validate() error {
	var errs []error
	if c.CJ.Email != "" && !v.IsEmail(c.CJ.Email) {
		errs = append(errs, fmt.Errorf("cj.email %q is not an email address", c.CJ.Email))
	}
	if c.Shopify.StoreDomain != "" && !v.IsDNSName(c.Shopify.StoreDomain) {
		errs = append(errs, fmt.Errorf("shopify.store_domain %q is not a host name", c.Shopify.StoreDomain))
	}
	if c.Meta.AdAccountID != "" && !v.IsNumeric(strings.TrimPrefix(c.Meta.AdAccountID, "act_")) {
		errs = append(errs, fmt.Errorf("meta.ad_account_id %q is not numeric", c.Meta.AdAccountID))
	}
	if c.HTTP.Port != "" && !v.IsPort(c.HTTP.Port) {
		errs = append(errs, fmt.Errorf("http.port %q is not a port", c.HTTP.Port))
	}
	if c.CJ.PageSize <= 0 || c.CJ.MaxPages <= 0 {
		errs = append(errs, fmt.Errorf("cj.page_size and cj.max_pages must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func setDefaults(vp *viper.Viper) {
	cjc := cj.DefaultConfig()
	vp.SetDefault("cj.page_size", cjc.PageSize)
	vp.SetDefault("cj.max_pages", cjc.MaxPages)
	vp.SetDefault("cj.token_cooldown", cjc.TokenCooldown)
	vp.SetDefault("cj.create_date_zone", cjc.CreateDateZone)
	vp.SetDefault("cj.http_timeout", cjc.HTTPTimeout)

	dc := dashboard.DefaultConfig()
	vp.SetDefault("dashboard.timezone", dc.Timezone)
	vp.SetDefault("dashboard.default_lookback_days", dc.DefaultLookbackDays)
	vp.SetDefault("dashboard.source_timeout", dc.SourceTimeout)

	wc := warmer.DefaultConfig()
	vp.SetDefault("warmer.worker_interval", wc.WorkerInterval)
	vp.SetDefault("warmer.basis", wc.Basis)

	vp.SetDefault("shopify.api_version", "2024-10")
	vp.SetDefault("shopify.http_timeout", "30s")
	vp.SetDefault("meta.api_version", "v19.0")
	vp.SetDefault("meta.http_timeout", "30s")
	vp.SetDefault("http.port", "8080")
}

// bindEnvVars binds the flat environment names to config keys.
func bindEnvVars(vp *viper.Viper) error {
	binds := [][]string{
		// Logger
		{"logger.level", "LOG_LEVEL"},
		{"logger.add_source", "LOG_ADD_SOURCE"},

		// HTTP
		{"http.port", "HTTP_PORT"},
		{"http.address", "HTTP_ADDRESS"},
		{"http.allowed_origins", "HTTP_ALLOWED_ORIGINS"},
		{"http.request_timeout", "HTTP_REQUEST_TIMEOUT"},

		// Shopify
		{"shopify.store_domain", "SHOPIFY_STORE_DOMAIN"},
		{"shopify.access_token", "SHOPIFY_ACCESS_TOKEN"},
		{"shopify.api_version", "SHOPIFY_API_VERSION"},
		{"shopify.page_limit", "SHOPIFY_PAGE_LIMIT"},
		{"shopify.http_timeout", "SHOPIFY_HTTP_TIMEOUT"},

		// Meta
		{"meta.access_token", "FB_ACCESS_TOKEN"},
		{"meta.ad_account_id", "FB_AD_ACCOUNT_ID"},
		{"meta.api_version", "FB_API_VERSION"},
		{"meta.http_timeout", "FB_HTTP_TIMEOUT"},

		// CJ
		{"cj.email", "CJ_EMAIL"},
		{"cj.api_key", "CJ_API_KEY"},
		{"cj.page_size", "CJ_PAGE_SIZE"},
		{"cj.max_pages", "CJ_MAX_PAGES"},
		{"cj.order_status", "CJ_ORDER_STATUS"},
		{"cj.token_cooldown", "CJ_TOKEN_COOLDOWN"},
		{"cj.create_date_zone", "CJ_CREATE_DATE_ZONE"},
		{"cj.http_timeout", "CJ_HTTP_TIMEOUT"},

		// Dashboard
		{"dashboard.timezone", "DASHBOARD_TIMEZONE"},
		{"dashboard.default_lookback_days", "DASHBOARD_DEFAULT_LOOKBACK_DAYS"},
		{"dashboard.source_timeout", "DASHBOARD_SOURCE_TIMEOUT"},

		// Warmer
		{"warmer.worker_interval", "WARMER_WORKER_INTERVAL"},
		{"warmer.basis", "WARMER_BASIS"},
	}
	for _, b := range binds {
		if err := vp.BindEnv(b...); err != nil {
			return err
		}
	}
	return nil
}
