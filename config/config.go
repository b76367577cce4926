package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "STOREFRONT_CONFIG_FILE"
	envPrefix         = "STOREFRONT"
)

const (
	BackendBigCommerce = "bigcommerce"
	BackendShopify     = "shopify"
)

type cache struct {
	Revalidate time.Duration `mapstructure:"revalidate"`
}

type bigCommerce struct {
	GraphQLURL      string `mapstructure:"graphql_url"`
	RESTURL         string `mapstructure:"rest_url"`
	StorefrontToken string `mapstructure:"storefront_token"`
	AuthToken       string `mapstructure:"auth_token"`
}

type shopify struct {
	GraphQLURL      string `mapstructure:"graphql_url"`
	StorefrontToken string `mapstructure:"storefront_token"`
}

type catalog struct {
	HiddenProductTag string `mapstructure:"hidden_product_tag"`
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	ProductsTopic      string   `mapstructure:"products_topic"`
}

type Config struct {
	LogLevel        slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr  string        `mapstructure:"http_server_addr"`
	Backend         string        `mapstructure:"backend"`
	Cache           cache         `mapstructure:"cache"`
	UpstreamTimeout time.Duration `mapstructure:"upstream_timeout"`
	BigCommerce     bigCommerce   `mapstructure:"bigcommerce"`
	Shopify         shopify       `mapstructure:"shopify"`
	Catalog         catalog       `mapstructure:"catalog"`
	Broker          broker        `mapstructure:"broker"`
}

var defaults = map[string]any{
	"log_level":                    "info",
	"http_server_addr":             ":8080",
	"backend":                      BackendBigCommerce,
	"cache.revalidate":             15 * time.Minute,
	"upstream_timeout":             30 * time.Second,
	"bigcommerce.graphql_url":      "",
	"bigcommerce.rest_url":         "",
	"bigcommerce.storefront_token": "",
	"bigcommerce.auth_token":       "",
	"shopify.graphql_url":          "",
	"shopify.storefront_token":     "",
	"catalog.hidden_product_tag":   "nextjs-frontend-hidden",
	"broker.seed_brokers":          []string{},
	"broker.schema_registry_urls":  []string{},
	"broker.products_topic":        "storefront-products",
}

// Load reads the config file named by the --config flag or the
// STOREFRONT_CONFIG_FILE variable. The process exits when it fails.
func Load() Config {
	_ = godotenv.Load()

	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads the config at path. Variables prefixed with STOREFRONT_
// override file values, so STOREFRONT_SHOPIFY_STOREFRONT_TOKEN sets
// shopify.storefront_token.
func LoadFile(path string) (Config, error) {
	const op = "config.LoadFile"

	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

// Validate reports the settings the selected backend cannot run without.
func (c Config) Validate() error {
	var errs []error
	switch c.Backend {
	case BackendBigCommerce:
		if c.BigCommerce.GraphQLURL == "" {
			errs = append(errs, errors.New("bigcommerce.graphql_url is required"))
		}
		if c.BigCommerce.RESTURL == "" {
			errs = append(errs, errors.New("bigcommerce.rest_url is required"))
		}
	case BackendShopify:
		if c.Shopify.GraphQLURL == "" {
			errs = append(errs, errors.New("shopify.graphql_url is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, c.Backend))
	}
	if c.Cache.Revalidate < time.Second {
		errs = append(errs, errors.New("cache.revalidate must be at least 1s"))
	}
	if c.UpstreamTimeout <= 0 {
		errs = append(errs, errors.New("upstream_timeout must be positive"))
	}
	return errors.Join(errs...)
}

// BrokerEnabled reports whether catalog publishing is configured.
func (c Config) BrokerEnabled() bool {
	return len(c.Broker.SeedBrokers) != 0 &&
		len(c.Broker.SchemaRegistryURLs) != 0 &&
		c.Broker.ProductsTopic != ""
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	Backend=%q
	CacheRevalidate=%q
	UpstreamTimeout=%q

	BigCommerce:
	GraphQLURL=%q
	RESTURL=%q
	StorefrontToken=%s
	AuthToken=%s

	Shopify:
	GraphQLURL=%q
	StorefrontToken=%s

	Catalog:
	HiddenProductTag=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	ProductsTopic=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Backend,
		c.Cache.Revalidate,
		c.UpstreamTimeout,
		c.BigCommerce.GraphQLURL,
		c.BigCommerce.RESTURL,
		secret(c.BigCommerce.StorefrontToken),
		secret(c.BigCommerce.AuthToken),
		c.Shopify.GraphQLURL,
		secret(c.Shopify.StorefrontToken),
		c.Catalog.HiddenProductTag,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.ProductsTopic,
	)
}

func secret(s string) string {
	if s == "" {
		return "<unset>"
	}
	return "<set>"
}
