package contactkit

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/optimode/contactkit/internal/resultcache"
)

// Tier selects the validation strategy.
type Tier string

const (
	// TierFree runs offline syntax checks only.
	TierFree Tier = "free"
	// TierPro adds DNS, SMTP and phone parsing.
	TierPro Tier = "pro"
)

// Config selects which checks run. The DNS and SMTP flags only apply to
// the pro tier.
type Config struct {
	Tier       Tier `json:"tier"`
	CheckMX    bool `json:"checkMX"`
	CheckSPF   bool `json:"checkSPF"`
	CheckDKIM  bool `json:"checkDKIM"`
	VerifySMTP bool `json:"verifySMTP"`
	// DefaultRegion is used for phone requests without a region. Default: IL
	DefaultRegion string `json:"defaultRegion"`
	// Locale is used for requests without a locale. Default: en
	Locale string `json:"locale"`
	// SuggestTypos fills Result.Suggestion for likely provider misspellings.
	SuggestTypos bool `json:"suggestTypos"`
}

// DefaultConfig returns the free tier with typo suggestions on.
func DefaultConfig() Config {
	return Config{
		Tier:          TierFree,
		DefaultRegion: "IL",
		Locale:        "en",
		SuggestTypos:  true,
	}
}

// DNSOptions configures DNS lookups.
type DNSOptions struct {
	// Servers are nameservers to query directly, e.g. "1.1.1.1:53".
	// Empty uses the system resolver.
	Servers []string
	// Timeout bounds all lookups for one domain. Default: 5s
	Timeout time.Duration
}

// SMTPOptions configures the SMTP mailbox probe.
type SMTPOptions struct {
	// HeloDomain is the domain sent in EHLO. Defaults to the MailFrom domain.
	HeloDomain string
	// MailFrom is the address sent in MAIL FROM. Required, e.g. "verify@myapp.com"
	MailFrom string
	// Port is the SMTP port. Default: 25
	Port string
	// Timeout bounds one probe session. Default: 5s
	Timeout time.Duration
}

// ConcurrencyOptions configures concurrent processing for ValidateMany.
type ConcurrencyOptions struct {
	// Workers is the number of concurrent validations. Default: 5
	Workers int
}

// Recorder receives validation measurements. internal/metrics provides
// a Prometheus implementation.
type Recorder interface {
	ObserveValidation(kind Kind, outcome Outcome, d time.Duration)
	ObserveCacheLookup(hit bool)
}

type nopRecorder struct{}

func (nopRecorder) ObserveValidation(Kind, Outcome, time.Duration) {}
func (nopRecorder) ObserveCacheLookup(bool)                       {}

// CacheStore holds encoded phone results.
type CacheStore = resultcache.Store

// Phone cache defaults.
const (
	DefaultCacheEntries = 10000
	DefaultCacheTTL     = 24 * time.Hour
)

// NewMemoryCache returns an in-process store holding at most maxEntries
// results, evicting the least recently used.
func NewMemoryCache(maxEntries int) CacheStore {
	return resultcache.NewMemory(maxEntries)
}

// NewRedisCache returns a store shared through Redis. Keys are prefixed
// with keyPrefix.
func NewRedisCache(client redis.UniversalClient, keyPrefix string) CacheStore {
	return resultcache.NewRedis(client, keyPrefix)
}
