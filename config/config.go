package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	CRM      CRMConfig      `mapstructure:"crm"`
	Drive    DriveConfig    `mapstructure:"drive"`
	Uploads  UploadsConfig  `mapstructure:"uploads"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"` // Used by the PDF renderer to reach its own render endpoint
}

// DatabaseConfig holds database configuration. An empty URL falls back to the
// individual fields.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

// PricingConfig holds pricing knobs. TaxRate of 0 means the quote is a plain
// estimate with no tax line.
type PricingConfig struct {
	TaxRate float64 `mapstructure:"tax_rate"`
}

// CatalogConfig points to an optional option-catalog override file
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// CRMConfig holds the sales webhook settings. An empty URL disables the webhook.
type CRMConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
	Timeout    int    `mapstructure:"timeout"` // Seconds
}

// DriveConfig holds Google Drive upload settings for generated quote PDFs.
// An empty folder ID disables the upload.
type DriveConfig struct {
	CredentialsPath string `mapstructure:"credentials_path"`
	FolderID        string `mapstructure:"folder_id"`
}

// UploadsConfig holds settings for customer-attached inspiration photos
type UploadsConfig struct {
	Dir          string `mapstructure:"dir"`
	MaxSizeBytes int64  `mapstructure:"max_size_bytes"`
}

// Load loads configuration from config.yaml with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// The defaults plus environment variables are a complete configuration,
		// so a missing config.yaml is fine.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.base_url", "http://localhost:8080")

	viper.SetDefault("database.url", "")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "trailercraft")
	viper.SetDefault("database.user", "trailercraft")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.sslmode", "disable")

	viper.SetDefault("pricing.tax_rate", 0.0)

	viper.SetDefault("catalog.path", "")

	viper.SetDefault("crm.webhook_url", "")
	viper.SetDefault("crm.timeout", 10)

	viper.SetDefault("drive.credentials_path", "")
	viper.SetDefault("drive.folder_id", "")

	viper.SetDefault("uploads.dir", "cache/attachments")
	viper.SetDefault("uploads.max_size_bytes", 10<<20)
}

// DSN builds the Postgres connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}
