// Package config loads the service configuration.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/optimode/contactkit"
	"github.com/optimode/contactkit/internal/logging"
)

// EnvPrefix prefixes every environment variable, e.g. CONTACTKIT_HTTP_ADDR.
const EnvPrefix = "CONTACTKIT"

// HTTPConfig groups the HTTP service settings.
type HTTPConfig struct {
	Addr                string `mapstructure:"http_addr"`
	MaxRequestBodyBytes int64  `mapstructure:"max_request_body_bytes"`
	MaxBatchSize        int    `mapstructure:"max_batch_size"`

	RequestTimeout  time.Duration `mapstructure:"-"`
	ShutdownTimeout time.Duration `mapstructure:"-"`
}

// ValidationConfig selects which checks run.
type ValidationConfig struct {
	Tier          string `mapstructure:"tier"` // "free" | "pro"
	CheckMX       bool   `mapstructure:"check_mx"`
	CheckSPF      bool   `mapstructure:"check_spf"`
	CheckDKIM     bool   `mapstructure:"check_dkim"`
	VerifySMTP    bool   `mapstructure:"verify_smtp"`
	DefaultRegion string `mapstructure:"default_region"`
	Locale        string `mapstructure:"locale"`
	SuggestTypos  bool   `mapstructure:"suggest_typos"`
	BatchWorkers  int    `mapstructure:"batch_workers"`

	// MessagesDir holds <locale>.json message overrides.
	MessagesDir string `mapstructure:"messages_dir"`
}

// SMTPConfig configures the mailbox probe.
type SMTPConfig struct {
	HeloDomain string        `mapstructure:"smtp_helo_domain"`
	MailFrom   string        `mapstructure:"smtp_mail_from"`
	Port       string        `mapstructure:"smtp_port"`
	Timeout    time.Duration `mapstructure:"-"`
}

// DNSConfig configures lookups.
type DNSConfig struct {
	Servers []string      `mapstructure:"dns_servers"`
	Timeout time.Duration `mapstructure:"-"`
}

// CacheConfig selects the phone result store.
type CacheConfig struct {
	Backend     string        `mapstructure:"cache_backend"` // "memory" | "redis"
	MaxEntries  int           `mapstructure:"cache_max_entries"`
	RedisURL    string        `mapstructure:"redis_url"`
	RedisPrefix string        `mapstructure:"redis_key_prefix"`
	TTL         time.Duration `mapstructure:"-"`
}

// Config is the complete service configuration.
type Config struct {
	// runtime
	Env      string `mapstructure:"env"`       // "dev" | "prod"
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error …

	HTTP       HTTPConfig       `mapstructure:",squash"`
	Validation ValidationConfig `mapstructure:",squash"`
	SMTP       SMTPConfig       `mapstructure:",squash"`
	DNS        DNSConfig        `mapstructure:",squash"`
	Cache      CacheConfig      `mapstructure:",squash"`
}

// Library returns the validator configuration.
func (c Config) Library() contactkit.Config {
	return contactkit.Config{
		Tier:          contactkit.Tier(c.Validation.Tier),
		CheckMX:       c.Validation.CheckMX,
		CheckSPF:      c.Validation.CheckSPF,
		CheckDKIM:     c.Validation.CheckDKIM,
		VerifySMTP:    c.Validation.VerifySMTP,
		DefaultRegion: c.Validation.DefaultRegion,
		Locale:        c.Validation.Locale,
		SuggestTypos:  c.Validation.SuggestTypos,
	}
}

// SMTPOptions returns the probe settings, or nil when no sender is set.
func (c Config) SMTPOptions() *contactkit.SMTPOptions {
	if c.SMTP.MailFrom == "" {
		return nil
	}
	return &contactkit.SMTPOptions{
		HeloDomain: c.SMTP.HeloDomain,
		MailFrom:   c.SMTP.MailFrom,
		Port:       c.SMTP.Port,
		Timeout:    c.SMTP.Timeout,
	}
}

// DNSOptions returns the lookup settings.
func (c Config) DNSOptions() contactkit.DNSOptions {
	return contactkit.DNSOptions{Servers: c.DNS.Servers, Timeout: c.DNS.Timeout}
}

// Dump returns a pretty, redacted JSON string of the config for debugging.
func (c Config) Dump() string {
	cp := c
	if cp.Cache.RedisURL != "" {
		if u, err := url.Parse(cp.Cache.RedisURL); err == nil {
			cp.Cache.RedisURL = u.Redacted()
		} else {
			cp.Cache.RedisURL = "<redacted>"
		}
	}
	b, _ := json.MarshalIndent(cp, "", "  ")
	return string(b)
}

// durations are decoded by hand so plain seconds ("120") work too.
var durations = []struct {
	key string
	def time.Duration
	set func(*Config, time.Duration)
}{
	{"request_timeout", 15 * time.Second, func(c *Config, d time.Duration) { c.HTTP.RequestTimeout = d }},
	{"shutdown_timeout", 10 * time.Second, func(c *Config, d time.Duration) { c.HTTP.ShutdownTimeout = d }},
	{"smtp_timeout", 5 * time.Second, func(c *Config, d time.Duration) { c.SMTP.Timeout = d }},
	{"dns_timeout", 5 * time.Second, func(c *Config, d time.Duration) { c.DNS.Timeout = d }},
	{"cache_ttl", 24 * time.Hour, func(c *Config, d time.Duration) { c.Cache.TTL = d }},
}

// RegisterFlags defines one flag per configuration key on fs. Only flags
// the user sets explicitly override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Config file (default: config.{yaml,yml,json,toml} in the working directory)")
	fs.String("env", "dev", `Runtime environment "dev"|"prod"`)
	fs.String("log_level", "info", "Log level")

	fs.String("http_addr", ":8080", "HTTP listen address")
	fs.Int64("max_request_body_bytes", 1<<20, "Max HTTP request body size in bytes (0 = unlimited)")
	fs.Int("max_batch_size", 100, "Max items per batch request")
	fs.String("request_timeout", "15s", "Per-request timeout")
	fs.String("shutdown_timeout", "10s", "Graceful shutdown timeout")

	fs.String("tier", "free", `Validation tier "free"|"pro"`)
	fs.Bool("check_mx", false, "Pro: require MX records")
	fs.Bool("check_spf", false, "Pro: require an SPF record")
	fs.Bool("check_dkim", false, "Pro: require a DKIM record")
	fs.Bool("verify_smtp", false, "Pro: probe the mailbox over SMTP")
	fs.String("default_region", "IL", "Region for phone numbers without one")
	fs.String("locale", "en", "Default message locale")
	fs.Bool("suggest_typos", true, "Suggest corrections for misspelled provider domains")
	fs.Int("batch_workers", 5, "Concurrent validations per batch")
	fs.String("messages_dir", "", "Directory of <locale>.json message overrides")

	fs.String("smtp_helo_domain", "", "Domain sent in EHLO")
	fs.String("smtp_mail_from", "", "Sender address sent in MAIL FROM")
	fs.String("smtp_port", "25", "SMTP port")
	fs.String("smtp_timeout", "5s", "SMTP probe timeout")

	fs.String("dns_servers", "", `JSON array of nameservers, e.g. '["1.1.1.1:53"]' (empty = system resolver)`)
	fs.String("dns_timeout", "5s", "DNS lookup timeout per domain")

	fs.String("cache_backend", "memory", `Phone result cache "memory"|"redis"`)
	fs.Int("cache_max_entries", contactkit.DefaultCacheEntries, "Memory cache size")
	fs.String("cache_ttl", "24h", "Phone result TTL")
	fs.String("redis_url", "", "Redis URL for the redis cache backend")
	fs.String("redis_key_prefix", "contactkit:", "Redis key prefix")
}

// Load merges defaults → config file → .env → env vars → explicit flags
// into one Config. Final precedence (highest wins): flags(explicit) > env >
// config > defaults. fs may be nil.
func Load(fs *pflag.FlagSet, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// .env never overrides the real environment
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded .env file")
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, k := range allKeys() {
		_ = v.BindEnv(k)
	}

	if err := mergeConfigFile(v, fs, logger); err != nil {
		return nil, err
	}

	setDefaults(v)

	if fs != nil {
		keys := allKeys()
		fs.VisitAll(func(f *pflag.Flag) {
			// commands may carry flags of their own
			if f.Changed && slices.Contains(keys, f.Name) {
				_ = v.BindPFlag(f.Name, f)
			}
		})
	}

	if err := normalizeListKeys(v, "dns_servers"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	for _, d := range durations {
		dur, err := parseDurationFlexible(v.Get(d.key), d.def)
		if err != nil {
			logger.Warn("invalid duration; using default",
				zap.String("key", d.key), zap.Any("value", v.Get(d.key)),
				zap.Duration("default", d.def), zap.Error(err))
		}
		d.set(&cfg, dur)
	}

	cfg.Validation.Tier = strings.ToLower(strings.TrimSpace(cfg.Validation.Tier))
	cfg.Validation.DefaultRegion = strings.ToUpper(strings.TrimSpace(cfg.Validation.DefaultRegion))
	cfg.Cache.Backend = strings.ToLower(strings.TrimSpace(cfg.Cache.Backend))

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigFile reads the --config file, or the first config.* file in
// the working directory. An explicit file that cannot be read is an error.
func mergeConfigFile(v *viper.Viper, fs *pflag.FlagSet, logger *zap.Logger) error {
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			path := f.Value.String()
			b, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read config file: %w", err)
			}
			v.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))
			if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
				return fmt.Errorf("decode config file %s: %w", path, err)
			}
			logger.Info("Loaded config file", zap.String("file", path))
			return nil
		}
	}

	for _, ext := range [...]string{"yaml", "yml", "json", "toml"} {
		file := "config." + ext
		b, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		v.SetConfigType(ext)
		if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
			logger.Warn("cannot decode config file", zap.String("file", file), zap.Error(err))
			continue
		}
		logger.Info("Loaded config file", zap.String("file", file))
	}
	return nil
}

func allKeys() []string {
	return []string{
		"env", "log_level",
		"http_addr", "max_request_body_bytes", "max_batch_size", "request_timeout", "shutdown_timeout",
		"tier", "check_mx", "check_spf", "check_dkim", "verify_smtp",
		"default_region", "locale", "suggest_typos", "batch_workers", "messages_dir",
		"smtp_helo_domain", "smtp_mail_from", "smtp_port", "smtp_timeout",
		"dns_servers", "dns_timeout",
		"cache_backend", "cache_max_entries", "cache_ttl", "redis_url", "redis_key_prefix",
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("max_request_body_bytes", int64(1<<20))
	v.SetDefault("max_batch_size", 100)
	v.SetDefault("request_timeout", "15s")
	v.SetDefault("shutdown_timeout", "10s")

	v.SetDefault("tier", "free")
	v.SetDefault("check_mx", false)
	v.SetDefault("check_spf", false)
	v.SetDefault("check_dkim", false)
	v.SetDefault("verify_smtp", false)
	v.SetDefault("default_region", "IL")
	v.SetDefault("locale", "en")
	v.SetDefault("suggest_typos", true)
	v.SetDefault("batch_workers", 5)
	v.SetDefault("messages_dir", "")

	v.SetDefault("smtp_helo_domain", "")
	v.SetDefault("smtp_mail_from", "")
	v.SetDefault("smtp_port", "25")
	v.SetDefault("smtp_timeout", "5s")

	v.SetDefault("dns_servers", []string{})
	v.SetDefault("dns_timeout", "5s")

	v.SetDefault("cache_backend", "memory")
	v.SetDefault("cache_max_entries", contactkit.DefaultCacheEntries)
	v.SetDefault("cache_ttl", "24h")
	v.SetDefault("redis_url", "")
	v.SetDefault("redis_key_prefix", "contactkit:")
}

// normalizeListKeys coerces JSON-string values into []string for the given keys.
func normalizeListKeys(v *viper.Viper, keys ...string) error {
	for _, key := range keys {
		switch t := v.Get(key).(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				v.Set(key, []string{})
				continue
			}
			var arr []string
			if err := json.Unmarshal([]byte(s), &arr); err != nil {
				return fmt.Errorf("config key %q expects a JSON array string, got %q: %w", key, s, err)
			}
			v.Set(key, arr)
		case []any:
			arr := make([]string, 0, len(t))
			for _, e := range t {
				arr = append(arr, fmt.Sprint(e))
			}
			v.Set(key, arr)
		}
	}
	return nil
}

func validate(cfg Config) error {
	var missing []string
	var invalid []string

	if cfg.Env != "dev" && cfg.Env != "prod" {
		invalid = append(invalid, `env must be "dev" or "prod"`)
	}
	if !logging.IsValidLogLevel(cfg.LogLevel) {
		invalid = append(invalid, "log_level must be one of "+strings.Join(logging.ValidLogLevels, ", "))
	}

	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		missing = append(missing, "CONTACTKIT_HTTP_ADDR (or --http_addr)")
	}
	if cfg.HTTP.MaxBatchSize <= 0 {
		invalid = append(invalid, "max_batch_size must be > 0")
	}

	switch contactkit.Tier(cfg.Validation.Tier) {
	case contactkit.TierFree, contactkit.TierPro:
	default:
		invalid = append(invalid, `tier must be "free" or "pro"`)
	}
	if cfg.Validation.VerifySMTP {
		if strings.TrimSpace(cfg.SMTP.MailFrom) == "" {
			missing = append(missing, "CONTACTKIT_SMTP_MAIL_FROM (or --smtp_mail_from) when verify_smtp=true")
		} else if !strings.Contains(cfg.SMTP.MailFrom, "@") {
			invalid = append(invalid, "smtp_mail_from must look like an email address")
		}
	}
	if cfg.Validation.BatchWorkers <= 0 {
		invalid = append(invalid, "batch_workers must be > 0")
	}

	switch cfg.Cache.Backend {
	case "memory":
		if cfg.Cache.MaxEntries <= 0 {
			invalid = append(invalid, "cache_max_entries must be > 0")
		}
	case "redis":
		if strings.TrimSpace(cfg.Cache.RedisURL) == "" {
			missing = append(missing, "CONTACTKIT_REDIS_URL (or --redis_url) when cache_backend=redis")
		}
	default:
		invalid = append(invalid, `cache_backend must be "memory" or "redis"`)
	}

	if len(missing) == 0 && len(invalid) == 0 {
		return nil
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid: "+strings.Join(invalid, ", "))
	}
	return fmt.Errorf("configuration errors: %s", strings.Join(parts, " | "))
}
