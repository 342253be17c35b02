package woocommerce

import (
	"context"
	"net/http"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// SystemStatusEnvironment is the server environment block of the system
// status report.
type SystemStatusEnvironment struct {
	HomeURL         *string `json:"home_url,omitempty"`
	SiteURL         *string `json:"site_url,omitempty"`
	Version         *string `json:"version,omitempty"`
	WPVersion       *string `json:"wp_version,omitempty"`
	WPMultisite     *bool   `json:"wp_multisite,omitempty"`
	WPMemoryLimit   *int64  `json:"wp_memory_limit,omitempty"`
	WPDebugMode     *bool   `json:"wp_debug_mode,omitempty"`
	WPCron          *bool   `json:"wp_cron,omitempty"`
	Language        *string `json:"language,omitempty"`
	ServerInfo      *string `json:"server_info,omitempty"`
	PHPVersion      *string `json:"php_version,omitempty"`
	CurlVersion     *string `json:"curl_version,omitempty"`
	MySQLVersion    *string `json:"mysql_version,omitempty"`
	DefaultTimezone *string `json:"default_timezone,omitempty"`
}

// SystemStatusDatabase is the database block of the system status report.
type SystemStatusDatabase struct {
	WCDatabaseVersion *string `json:"wc_database_version,omitempty"`
	DatabasePrefix    *string `json:"database_prefix,omitempty"`
	DatabaseSize      any     `json:"database_size,omitempty"`
}

// SystemStatusTheme is the active theme block of the system status
// report.
type SystemStatusTheme struct {
	Name                 *string `json:"name,omitempty"`
	Version              *string `json:"version,omitempty"`
	AuthorURL            *string `json:"author_url,omitempty"`
	IsChildTheme         *bool   `json:"is_child_theme,omitempty"`
	HasWooSupport        *bool   `json:"has_woocommerce_support,omitempty"`
	HasOutdatedTemplates *bool   `json:"has_outdated_templates,omitempty"`
}

// SystemStatusSettings is the store settings block of the system status
// report.
type SystemStatusSettings struct {
	APIEnabled       *bool             `json:"api_enabled,omitempty"`
	ForceSSL         *bool             `json:"force_ssl,omitempty"`
	Currency         *string           `json:"currency,omitempty"`
	CurrencySymbol   *string           `json:"currency_symbol,omitempty"`
	CurrencyPosition *string           `json:"currency_position,omitempty"`
	ThousandSep      *string           `json:"thousand_separator,omitempty"`
	DecimalSep       *string           `json:"decimal_separator,omitempty"`
	NumberOfDecimals *int              `json:"number_of_decimals,omitempty"`
	Taxonomies       map[string]string `json:"taxonomies,omitempty"`
}

// SystemStatus is the store's system status report.
type SystemStatus struct {
	Environment   *SystemStatusEnvironment `json:"environment,omitempty"`
	Database      *SystemStatusDatabase    `json:"database,omitempty"`
	ActivePlugins []string                 `json:"active_plugins,omitempty"`
	Theme         *SystemStatusTheme       `json:"theme,omitempty"`
	Settings      *SystemStatusSettings    `json:"settings,omitempty"`
}

// SystemStatusTool is a maintenance tool exposed by the store.
type SystemStatusTool struct {
	ID          *string `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Action      *string `json:"action,omitempty"`
	Description *string `json:"description,omitempty"`
	// Success and Message are only set on the response of RunSystemStatusTool.
	Success *bool   `json:"success,omitempty"`
	Message *string `json:"message,omitempty"`
}

// GetSystemStatus fetches the system status report.
func (c *Client) GetSystemStatus(ctx context.Context, reqOpts ...RequestOption) (*SystemStatus, error) {
	if c.fakeMode(reqOpts) {
		s := fakeSystemStatus()
		return &s, nil
	}
	return do[*SystemStatus](ctx, c, http.MethodGet, systemStatusPath, nil, nil)
}

// ListSystemStatusTools fetches the available maintenance tools.
func (c *Client) ListSystemStatusTools(ctx context.Context, reqOpts ...RequestOption) ([]SystemStatusTool, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeSystemStatusTool, 3), nil
	}
	return do[[]SystemStatusTool](ctx, c, http.MethodGet, systemStatusToolsPath, nil, nil)
}

// GetSystemStatusTool fetches one maintenance tool by id.
func (c *Client) GetSystemStatusTool(ctx context.Context, id string, reqOpts ...RequestOption) (*SystemStatusTool, error) {
	if c.fakeMode(reqOpts) {
		t := fakeSystemStatusTool()
		t.ID = ptr(id)
		return &t, nil
	}
	return do[*SystemStatusTool](ctx, c, http.MethodGet, systemStatusToolPath(id), nil, nil)
}

// RunSystemStatusTool runs a maintenance tool and returns the outcome.
func (c *Client) RunSystemStatusTool(ctx context.Context, id string, reqOpts ...RequestOption) (*SystemStatusTool, error) {
	if c.fakeMode(reqOpts) {
		t := fakeSystemStatusTool()
		t.ID = ptr(id)
		t.Success = ptr(true)
		t.Message = ptr(faker.Sentence())
		return &t, nil
	}
	return do[*SystemStatusTool](ctx, c, http.MethodPut, systemStatusToolPath(id), nil, nil)
}

func fakeSystemStatus() SystemStatus {
	return SystemStatus{
		Environment: &SystemStatusEnvironment{
			HomeURL:      ptr(faker.URL()),
			SiteURL:      ptr(faker.URL()),
			Version:      ptr("9.0.0"),
			WPVersion:    ptr("6.5"),
			WPMultisite:  ptr(false),
			WPDebugMode:  ptr(false),
			WPCron:       ptr(true),
			Language:     ptr("en_US"),
			ServerInfo:   ptr("nginx"),
			PHPVersion:   ptr("8.2"),
			MySQLVersion: ptr("8.0"),
		},
		Database: &SystemStatusDatabase{
			WCDatabaseVersion: ptr("9.0.0"),
			DatabasePrefix:    ptr("wp_"),
		},
		ActivePlugins: []string{"woocommerce/woocommerce.php"},
		Theme: &SystemStatusTheme{
			Name:          ptr(faker.Word()),
			Version:       ptr("1.0.0"),
			IsChildTheme:  ptr(false),
			HasWooSupport: ptr(true),
		},
		Settings: &SystemStatusSettings{
			APIEnabled:       ptr(true),
			ForceSSL:         ptr(faker.Bool()),
			Currency:         ptr(faker.CurrencyCode()),
			CurrencySymbol:   ptr("$"),
			CurrencyPosition: ptr("left"),
			ThousandSep:      ptr(","),
			DecimalSep:       ptr("."),
			NumberOfDecimals: ptr(2),
		},
	}
}

func fakeSystemStatusTool() SystemStatusTool {
	return SystemStatusTool{
		ID:          ptr(faker.Slug()),
		Name:        ptr(faker.Word()),
		Action:      ptr(faker.Word()),
		Description: ptr(faker.Sentence()),
	}
}
