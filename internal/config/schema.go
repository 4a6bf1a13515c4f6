package config

import (
	"net/netip"
	"time"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Auth     AuthConfig     `yaml:"auth"`
	Site     SiteConfig     `yaml:"site"`
	Storage  StorageConfig  `yaml:"storage"`
	Blob     *BlobConfig    `yaml:"blob"`
	Throttle ThrottleConfig `yaml:"throttle"`
	Redis    *RedisConfig   `yaml:"redis"`
	Jobs     JobsConfig     `yaml:"jobs"`
}

type ServerConfig struct {
	Port           int    `yaml:"port"`
	ExternalURL    string `yaml:"external_url"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	// TrustedProxies lists CIDR prefixes or addresses whose forwarding headers are believed.
	// Requests from any other peer are identified by their TCP address.
	TrustedProxies []string           `yaml:"trusted_proxies"`
	Debug          *ServerDebugConfig `yaml:"debug"`
}

// TrustedProxyPrefixes returns the parsed trusted_proxies list. Entries are checked at load
// time, so an unparseable list here yields no trusted proxies.
func (s ServerConfig) TrustedProxyPrefixes() []netip.Prefix {
	prefixes, err := ParseTrustedProxies(s.TrustedProxies)
	if err != nil {
		return nil
	}
	return prefixes
}

var DefaultServerConfig = ServerConfig{
	Port:           8080,
	MaxUploadBytes: 64 << 20,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:5173"},
	AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

// AuthConfig holds the shared session secret and the admin password hash. Both may be
// empty at load time; the login path then fails closed.
type AuthConfig struct {
	SessionSecret     string `yaml:"session_secret"`
	AdminPasswordHash string `yaml:"admin_password_hash"`
	CookieName        string `yaml:"cookie_name"`
	Secure            *bool  `yaml:"secure"`
}

var DefaultAuthConfig = AuthConfig{
	CookieName: "session",
}

// Configured reports whether both the secret and the password hash are present.
func (a AuthConfig) Configured() bool {
	return a.SessionSecret != "" && a.AdminPasswordHash != ""
}

// SecureCookie defaults to true unless explicitly disabled for local development.
func (a AuthConfig) SecureCookie() bool {
	return a.Secure == nil || *a.Secure
}

type SiteConfig struct {
	Title           string        `yaml:"title"`
	Description     string        `yaml:"description"`
	BaseURL         string        `yaml:"base_url"`
	MediaBaseURL    string        `yaml:"media_base_url"`
	Language        string        `yaml:"language"`
	Favicon         string        `yaml:"favicon"`
	CopyrightHolder string        `yaml:"copyright_holder"`
	Author          AuthorConfig  `yaml:"author"`
	FeedTTL         time.Duration `yaml:"feed_ttl"`
	PageSize        int           `yaml:"page_size"`
}

type AuthorConfig struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Link  string `yaml:"link"`
}

var DefaultSiteConfig = SiteConfig{
	Title:    "Photos",
	Language: "en",
	FeedTTL:  60 * time.Minute,
	PageSize: 15,
}

const (
	StorageTypePostgres = "postgres"
	StorageTypeStatic   = "static"
)

type StorageConfig struct {
	Type      string `yaml:"type"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	Database  string `yaml:"database"`
	SSLMode   string `yaml:"ssl_mode"`
	StaticDir string `yaml:"static_dir"`
}

var DefaultStorageConfig = StorageConfig{
	Type:      StorageTypeStatic,
	Port:      5432,
	SSLMode:   "prefer",
	StaticDir: "static/posts",
}

// MediaBaseURL is the prefix for photo media URLs. Static posts are served by this process
// under root relative paths.
func (c *Config) MediaBaseURL() string {
	if c.Storage.Type == StorageTypeStatic {
		return ""
	}
	return c.Site.MediaBaseURL
}

// Writable reports whether the configured photo store accepts writes.
func (s StorageConfig) Writable() bool {
	return s.Type == StorageTypePostgres
}

// BlobConfig points at an S3 compatible bucket (Cloudflare R2 in production).
type BlobConfig struct {
	Endpoint        string `yaml:"endpoint"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UseSSL          *bool  `yaml:"use_ssl"`
}

var DefaultBlobConfig = BlobConfig{
	Region: "auto",
}

// SSL defaults to true.
func (b BlobConfig) SSL() bool {
	return b.UseSSL == nil || *b.UseSSL
}

const (
	ThrottleTypeMemory = "memory"
	ThrottleTypeRedis  = "redis"
)

type ThrottleConfig struct {
	Type        string        `yaml:"type"`
	MaxAttempts int           `yaml:"max_attempts"`
	Window      time.Duration `yaml:"window"`
}

var DefaultThrottleConfig = ThrottleConfig{
	Type:        ThrottleTypeMemory,
	MaxAttempts: 5,
	Window:      15 * time.Minute,
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Index    int    `yaml:"index"`
}

// JobsConfig controls the background housekeeping jobs.
type JobsConfig struct {
	PhotoCountInterval time.Duration `yaml:"photo_count_interval"`
	AuditPruneInterval time.Duration `yaml:"audit_prune_interval"`
	AuditRetention     time.Duration `yaml:"audit_retention"`
}

var DefaultJobsConfig = JobsConfig{
	PhotoCountInterval: 5 * time.Minute,
	AuditPruneInterval: 24 * time.Hour,
	AuditRetention:     90 * 24 * time.Hour,
}
