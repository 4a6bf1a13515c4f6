package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"photo-portfolio/internal/auth"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use --config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML config data, applies environment overrides and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvSessionSecret       = "SESSION_SECRET"
	EnvAdminPasswordHash   = "ADMIN_PASSWORD_HASH"
	EnvStorageHost         = "PORTFOLIO_STORAGE_HOST"
	EnvStoragePort         = "PORTFOLIO_STORAGE_PORT"
	EnvStorageUsername     = "PORTFOLIO_STORAGE_USERNAME"
	EnvStoragePassword     = "PORTFOLIO_STORAGE_PASSWORD"
	EnvStorageDatabase     = "PORTFOLIO_STORAGE_DATABASE"
	EnvBlobAccessKeyID     = "PORTFOLIO_BLOB_ACCESS_KEY_ID"
	EnvBlobSecretAccessKey = "PORTFOLIO_BLOB_SECRET_ACCESS_KEY"
	EnvRedisUsername       = "PORTFOLIO_REDIS_USERNAME"
	EnvRedisPassword       = "PORTFOLIO_REDIS_PASSWORD"
	EnvTrustedProxies      = "PORTFOLIO_TRUSTED_PROXIES"
)

func applyEnvironmentOverrides(config *Config) {
	if proxies := os.Getenv(EnvTrustedProxies); proxies != "" {
		config.Server.TrustedProxies = strings.Split(proxies, ",")
	}

	if secret := os.Getenv(EnvSessionSecret); secret != "" {
		config.Auth.SessionSecret = secret
	}

	if hash := os.Getenv(EnvAdminPasswordHash); hash != "" {
		config.Auth.AdminPasswordHash = hash
	}

	if host := os.Getenv(EnvStorageHost); host != "" {
		config.Storage.Host = host
	}

	if portStr := os.Getenv(EnvStoragePort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Storage.Port = port
		}
	}

	if username := os.Getenv(EnvStorageUsername); username != "" {
		config.Storage.Username = username
	}

	if password := os.Getenv(EnvStoragePassword); password != "" {
		config.Storage.Password = password
	}

	if database := os.Getenv(EnvStorageDatabase); database != "" {
		config.Storage.Database = database
	}

	if accessKey := os.Getenv(EnvBlobAccessKeyID); accessKey != "" {
		if config.Blob == nil {
			config.Blob = &BlobConfig{}
		}
		config.Blob.AccessKeyID = accessKey
	}

	if secretKey := os.Getenv(EnvBlobSecretAccessKey); secretKey != "" {
		if config.Blob == nil {
			config.Blob = &BlobConfig{}
		}
		config.Blob.SecretAccessKey = secretKey
	}

	if username := os.Getenv(EnvRedisUsername); username != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = username
	}

	if password := os.Getenv(EnvRedisPassword); password != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = password
	}
}

func validateConfig(config *Config) error {

	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateAuthConfig()
	if err != nil {
		return err
	}

	err = config.validateSiteConfig()
	if err != nil {
		return err
	}

	err = config.validateStorageConfig()
	if err != nil {
		return err
	}

	err = config.validateBlobConfig()
	if err != nil {
		return err
	}

	err = config.validateThrottleConfig()
	if err != nil {
		return err
	}

	if config.Throttle.Type == ThrottleTypeRedis {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	return config.validateJobsConfig()
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.MaxUploadBytes <= 0 {
		c.Server.MaxUploadBytes = DefaultServerConfig.MaxUploadBytes
	}

	if _, err := ParseTrustedProxies(c.Server.TrustedProxies); err != nil {
		return fmt.Errorf("server.trusted_proxies: %w", err)
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

// validateAuthConfig does not require the secret or hash. A malformed hash is still a
// configuration error since it can never match.
func (c *Config) validateAuthConfig() error {
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = DefaultAuthConfig.CookieName
	}

	if c.Auth.AdminPasswordHash != "" && !auth.IsValidPasswordHash(c.Auth.AdminPasswordHash) {
		return fmt.Errorf("auth.admin_password_hash must be 64 lowercase hex characters")
	}

	return nil
}

func (c *Config) validateSiteConfig() error {
	if c.Site.Title == "" {
		c.Site.Title = DefaultSiteConfig.Title
	}

	if c.Site.Language == "" {
		c.Site.Language = DefaultSiteConfig.Language
	}

	if c.Site.FeedTTL <= 0 {
		c.Site.FeedTTL = DefaultSiteConfig.FeedTTL
	}

	if c.Site.PageSize <= 0 {
		c.Site.PageSize = DefaultSiteConfig.PageSize
	} else if c.Site.PageSize > 100 {
		return fmt.Errorf("site.page_size cannot be more than 100, got %d", c.Site.PageSize)
	}

	if c.Site.BaseURL == "" {
		c.Site.BaseURL = c.Server.ExternalURL
	}

	if c.Site.BaseURL != "" {
		if err := validateURL(c.Site.BaseURL, "site.base_url"); err != nil {
			return err
		}
		c.Site.BaseURL = strings.TrimRight(c.Site.BaseURL, "/")
	}

	if c.Site.MediaBaseURL != "" {
		if err := validateURL(c.Site.MediaBaseURL, "site.media_base_url"); err != nil {
			return err
		}
		c.Site.MediaBaseURL = strings.TrimRight(c.Site.MediaBaseURL, "/")
	}

	if c.Site.CopyrightHolder == "" {
		c.Site.CopyrightHolder = c.Site.Author.Name
	}

	return nil
}

func (c *Config) validateStorageConfig() error {
	if c.Storage.Type == "" {
		c.Storage.Type = DefaultStorageConfig.Type
	}

	switch c.Storage.Type {
	case StorageTypeStatic:
		if c.Storage.StaticDir == "" {
			c.Storage.StaticDir = DefaultStorageConfig.StaticDir
		}
	case StorageTypePostgres:
		if c.Storage.Host == "" {
			return fmt.Errorf("storage.host is required when storage type is postgres")
		}

		if c.Storage.Port == 0 {
			c.Storage.Port = DefaultStorageConfig.Port
		}

		if c.Storage.Port < 0 || c.Storage.Port > 65535 {
			return fmt.Errorf("storage.port must be between 1 and 65535, got %d", c.Storage.Port)
		}

		if c.Storage.Database == "" {
			return fmt.Errorf("storage.database is required when storage type is postgres")
		}

		if c.Storage.SSLMode == "" {
			c.Storage.SSLMode = DefaultStorageConfig.SSLMode
		}
	default:
		return fmt.Errorf("invalid storage type: %s, options are 'postgres' or 'static'", c.Storage.Type)
	}

	return nil
}

func (c *Config) validateBlobConfig() error {
	if c.Blob == nil {
		return nil
	}

	if c.Blob.Endpoint == "" {
		return fmt.Errorf("blob.endpoint is required when blob is configured")
	}

	if strings.Contains(c.Blob.Endpoint, "://") {
		return fmt.Errorf("blob.endpoint must be a host[:port] without scheme, got %s", c.Blob.Endpoint)
	}

	if c.Blob.Bucket == "" {
		return fmt.Errorf("blob.bucket is required when blob is configured")
	}

	if c.Blob.AccessKeyID == "" || c.Blob.SecretAccessKey == "" {
		return fmt.Errorf("blob.access_key_id and blob.secret_access_key are required when blob is configured")
	}

	if c.Blob.Region == "" {
		c.Blob.Region = DefaultBlobConfig.Region
	}

	if c.Site.MediaBaseURL == "" {
		return fmt.Errorf("site.media_base_url is required when blob is configured")
	}

	return nil
}

func (c *Config) validateThrottleConfig() error {
	if c.Throttle.Type == "" {
		c.Throttle.Type = DefaultThrottleConfig.Type
	}

	switch c.Throttle.Type {
	case ThrottleTypeMemory:
	case ThrottleTypeRedis:
		if c.Redis == nil {
			return fmt.Errorf("redis configuration must be present to use redis for login throttling")
		}
	default:
		return fmt.Errorf("invalid throttle type: %s, must be 'memory' or 'redis'", c.Throttle.Type)
	}

	if c.Throttle.MaxAttempts <= 0 {
		c.Throttle.MaxAttempts = DefaultThrottleConfig.MaxAttempts
	}

	if c.Throttle.Window <= 0 {
		c.Throttle.Window = DefaultThrottleConfig.Window
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is nil")
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}

	if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
		return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
	}

	const maxRedisDB = 15
	if c.Redis.Index < 0 || c.Redis.Index > maxRedisDB {
		return fmt.Errorf("redis index must be between 0 and %d, got %d", maxRedisDB, c.Redis.Index)
	}

	return nil
}

func (c *Config) validateJobsConfig() error {
	if c.Jobs.PhotoCountInterval <= 0 {
		c.Jobs.PhotoCountInterval = DefaultJobsConfig.PhotoCountInterval
	} else if c.Jobs.PhotoCountInterval < 10*time.Second {
		return fmt.Errorf("jobs.photo_count_interval must be at least 10s, got %s", c.Jobs.PhotoCountInterval)
	}

	if c.Jobs.AuditPruneInterval <= 0 {
		c.Jobs.AuditPruneInterval = DefaultJobsConfig.AuditPruneInterval
	}

	if c.Jobs.AuditRetention <= 0 {
		c.Jobs.AuditRetention = DefaultJobsConfig.AuditRetention
	}

	return nil
}
