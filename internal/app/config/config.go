package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
)

// Notify drivers.
const (
	NotifyLocal = "local"
	NotifyRedis = "redis"
)

// Config application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	MySQL   MySQLConfig   `mapstructure:"mysql"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Cart    CartConfig    `mapstructure:"cart"`
	Notify  NotifyConfig  `mapstructure:"notify"`
	Pricing PricingConfig `mapstructure:"pricing"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// StorageConfig selects the key-value backend holding carts.
type StorageConfig struct {
	Driver  string `mapstructure:"driver"`
	FileDir string `mapstructure:"file_dir"`
}

type MySQLConfig struct {
	DSN         string `mapstructure:"dsn"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CartConfig cart behaviour
type CartConfig struct {
	StorageKey    string        `mapstructure:"storage_key"`
	TTL           time.Duration `mapstructure:"ttl"` // redis only, 0 keeps carts forever
	ToastMessage  string        `mapstructure:"toast_message"`
	ToastDuration time.Duration `mapstructure:"toast_duration"`
}

type NotifyConfig struct {
	Driver string `mapstructure:"driver"`
}

// PricingConfig price table and dispatch cutoff
type PricingConfig struct {
	PriceFile  string `mapstructure:"price_file"`
	TimeZone   string `mapstructure:"timezone"`
	CutoffHour int    `mapstructure:"cutoff_hour"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "storefront")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("server.port", "8080")
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.file_dir", "data/carts")
	v.SetDefault("cart.storage_key", "singsing_cart")
	v.SetDefault("cart.toast_message", "장바구니에 담겼습니다 ✅")
	v.SetDefault("cart.toast_duration", "1800ms")
	v.SetDefault("notify.driver", NotifyLocal)
	v.SetDefault("pricing.price_file", "assets/prices.json")
	v.SetDefault("pricing.timezone", "Asia/Seoul")
	v.SetDefault("pricing.cutoff_hour", 9)
}

// Load reads the YAML file at configPath. Environment variables prefixed
// with STOREFRONT_ override file values (STOREFRONT_REDIS_ADDR).
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("storefront")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}
	return &cfg, nil
}

// LoadDefault loads config/config.yaml.
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate checks that the selected drivers have what they need.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverFile:
		if c.Storage.FileDir == "" {
			return fmt.Errorf("storage.file_dir is required for the file driver")
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis driver")
		}
	case DriverMySQL:
		if c.MySQL.DSN == "" {
			return fmt.Errorf("mysql.dsn is required for the mysql driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	switch c.Notify.Driver {
	case NotifyLocal:
	case NotifyRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for redis notifications")
		}
	default:
		return fmt.Errorf("unknown notify.driver %q", c.Notify.Driver)
	}

	if c.Cart.StorageKey == "" {
		return fmt.Errorf("cart.storage_key is required")
	}
	if c.Pricing.CutoffHour < 0 || c.Pricing.CutoffHour > 23 {
		return fmt.Errorf("pricing.cutoff_hour must be within 0-23")
	}
	if _, err := time.LoadLocation(c.Pricing.TimeZone); err != nil {
		return fmt.Errorf("pricing.timezone: %w", err)
	}
	return nil
}

// Location returns the dispatch time zone, falling back to a fixed KST.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Pricing.TimeZone)
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}
