package contactkit

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/optimode/contactkit/check"
	"github.com/optimode/contactkit/internal/dnsclient"
	"github.com/optimode/contactkit/internal/messages"
	"github.com/optimode/contactkit/internal/parse"
	"github.com/optimode/contactkit/internal/resultcache"
	"github.com/optimode/contactkit/types"
)

// Validator is the main fluent builder struct.
// Instantiate with the New() function. The With* methods configure the
// validator in place and must not be called concurrently with Validate.
type Validator struct {
	cfg Config
	err error // configuration error, returned on Validate()

	logger   *zap.Logger
	recorder Recorder
	catalog  *messages.Catalog

	resolver   check.Resolver
	dnsTimeout time.Duration
	smtpOpts   *SMTPOptions
	prober     MailboxProber // set by WithMailboxProber, overrides smtpOpts
	phoneLib   check.NumberLibrary

	store    CacheStore
	cacheTTL time.Duration
	cache    *resultcache.Cache[Result]

	strategy Strategy
}

// New creates a Validator for cfg with an in-memory phone cache and the
// built-in message catalog.
func New(cfg Config) *Validator {
	v := &Validator{
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
		catalog:  messages.Default(),
		store:    NewMemoryCache(DefaultCacheEntries),
		cacheTTL: DefaultCacheTTL,
	}
	v.cfg = v.normalize(cfg)
	v.cache = v.newCache()
	v.build()
	return v
}

// WithResolver replaces the system DNS resolver.
func (v *Validator) WithResolver(r check.Resolver) *Validator {
	v.resolver = r
	v.build()
	return v
}

// WithDNS configures DNS lookups. Servers, when given, are queried
// directly instead of through the system resolver.
func (v *Validator) WithDNS(opts DNSOptions) *Validator {
	v.dnsTimeout = opts.Timeout
	if len(opts.Servers) > 0 {
		client, err := dnsclient.New(dnsclient.Config{Servers: opts.Servers, Timeout: opts.Timeout})
		if err != nil {
			v.err = fmt.Errorf("contactkit: configure dns: %w", err)
			return v
		}
		v.resolver = client
	}
	v.build()
	return v
}

// WithSMTP configures the SMTP mailbox probe. SMTPOptions.MailFrom is
// required; HeloDomain defaults to its domain.
func (v *Validator) WithSMTP(opts SMTPOptions) *Validator {
	if opts.MailFrom == "" {
		v.err = ErrInvalidSMTPOptions
		return v
	}
	if opts.HeloDomain == "" {
		opts.HeloDomain = opts.MailFrom[strings.LastIndex(opts.MailFrom, "@")+1:]
	}
	v.smtpOpts = &opts
	v.build()
	return v
}

// WithMailboxProber replaces the SMTP prober.
func (v *Validator) WithMailboxProber(p MailboxProber) *Validator {
	v.prober = p
	v.build()
	return v
}

// WithPhoneLibrary replaces the phone numbering library used by the pro tier.
func (v *Validator) WithPhoneLibrary(lib check.NumberLibrary) *Validator {
	v.phoneLib = lib
	v.build()
	return v
}

// WithCache replaces the phone result store. ttl <= 0 uses DefaultCacheTTL.
func (v *Validator) WithCache(store CacheStore, ttl time.Duration) *Validator {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	v.store = store
	v.cacheTTL = ttl
	v.cache = v.newCache()
	return v
}

// WithLogger sets the logger for network check diagnostics.
func (v *Validator) WithLogger(l *zap.Logger) *Validator {
	if l == nil {
		l = zap.NewNop()
	}
	v.logger = l
	v.cache = v.newCache()
	v.build()
	return v
}

// WithRecorder sets the metrics recorder.
func (v *Validator) WithRecorder(r Recorder) *Validator {
	if r == nil {
		r = nopRecorder{}
	}
	v.recorder = r
	return v
}

// WithCatalog replaces the message catalog.
func (v *Validator) WithCatalog(c *messages.Catalog) *Validator {
	v.catalog = c
	v.cfg = v.normalize(v.cfg)
	return v
}

// WithConfig returns a new Validator that shares collaborators and the
// phone cache with v but runs cfg.
func (v *Validator) WithConfig(cfg Config) *Validator {
	derived := *v
	derived.cfg = derived.normalize(cfg)
	derived.build()
	return &derived
}

// Config returns the effective configuration.
func (v *Validator) Config() Config { return v.cfg }

// Catalog returns the message catalog.
func (v *Validator) Catalog() *messages.Catalog { return v.catalog }

// Strategy returns the strategy selected for the configured tier.
func (v *Validator) Strategy() Strategy { return v.strategy }

// Ping checks the phone cache backend.
func (v *Validator) Ping(ctx context.Context) error {
	return v.cache.Ping(ctx)
}

// Close releases the phone cache backend.
// Validators derived with WithConfig share it; close only one of them.
func (v *Validator) Close() error {
	return v.cache.Close()
}

func (v *Validator) normalize(cfg Config) Config {
	if cfg.Tier == "" {
		cfg.Tier = TierFree
	}
	if cfg.Tier != TierFree && cfg.Tier != TierPro {
		v.err = fmt.Errorf("contactkit: unknown tier %q", cfg.Tier)
	}
	cfg.DefaultRegion = parse.Region(cfg.DefaultRegion)
	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = "IL"
	}
	if cfg.Locale == "" {
		cfg.Locale = v.catalog.DefaultLocale()
	}
	return cfg
}

func (v *Validator) newCache() *resultcache.Cache[Result] {
	return resultcache.New[Result](v.store, resultcache.Config{TTL: v.cacheTTL, Logger: v.logger})
}

// build selects the strategy for the current tier and wires its checkers.
func (v *Validator) build() {
	syntax := SyntaxValidator{}
	if v.cfg.SuggestTypos {
		syntax.suggester = check.NewTypoSuggester(check.DefaultTypoThreshold, nil)
	}
	if v.cfg.Tier != TierPro {
		v.strategy = &syntax
		return
	}

	prober := v.prober
	if prober == nil && v.smtpOpts != nil {
		prober = check.NewSMTPProber(check.SMTPConfig{
			HeloDomain: v.smtpOpts.HeloDomain,
			MailFrom:   v.smtpOpts.MailFrom,
			Port:       v.smtpOpts.Port,
			Timeout:    v.smtpOpts.Timeout,
			Logger:     v.logger,
		})
	}
	v.strategy = &AdvancedValidator{
		SyntaxValidator: syntax,
		cfg:             v.cfg,
		dns:             check.NewDNSChecker(check.DNSConfig{Timeout: v.dnsTimeout, Logger: v.logger}, v.resolver),
		smtp:            prober,
		phone:           check.NewPhoneParser(v.phoneLib, v.logger),
		logger:          v.logger,
	}
}

// Validate runs the configured checks on req. Input problems are
// reported in the Result; the error is reserved for misuse, such as an
// unknown kind or SMTP verification without SMTPOptions.
// Context can be used for timeout or cancellation.
func (v *Validator) Validate(ctx context.Context, req Request) (Result, error) {
	if v.err != nil {
		return Result{}, v.err
	}
	start := time.Now()

	var (
		res Result
		err error
	)
	switch req.Kind {
	case types.KindEmail:
		res, err = v.validateEmail(ctx, req)
	case types.KindPhone:
		res, err = v.validatePhone(ctx, req)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
	if err != nil {
		return Result{}, err
	}

	res.Kind = req.Kind
	res.Value = req.Value
	res.Message = v.message(res, req.Locale)
	v.recorder.ObserveValidation(res.Kind, res.Outcome, time.Since(start))
	return res, nil
}

func (v *Validator) validateEmail(ctx context.Context, req Request) (Result, error) {
	if v.cfg.Tier == TierPro && v.cfg.VerifySMTP && v.prober == nil && v.smtpOpts == nil {
		return Result{}, ErrInvalidSMTPOptions
	}
	value := strings.TrimSpace(req.Value)
	if value == "" {
		return Result{Outcome: types.OutcomePending}, nil
	}
	return v.strategy.ValidateEmail(ctx, value), nil
}

// validatePhone consults the phone cache before running the strategy.
// Cached results are stored before localization.
func (v *Validator) validatePhone(ctx context.Context, req Request) (Result, error) {
	value := strings.TrimSpace(req.Value)
	if value == "" {
		return Result{Outcome: types.OutcomePending}, nil
	}
	region := parse.Region(req.Region)
	if region == "" {
		region = v.cfg.DefaultRegion
	}

	key := resultcache.Key(parse.Dialable(value), string(v.cfg.Tier)+":"+region)
	res, hit, err := v.cache.GetOrCompute(ctx, key, func(ctx context.Context) (Result, error) {
		return v.strategy.ValidatePhone(ctx, value, region), nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("contactkit: phone cache: %w", err)
	}
	v.recorder.ObserveCacheLookup(hit)
	return res, nil
}

// message renders the result's keys in locale, joined by a space.
func (v *Validator) message(res Result, locale string) string {
	if len(res.MessageKeys) == 0 {
		return ""
	}
	if locale == "" {
		locale = v.cfg.Locale
	}
	args := messages.Args{"region": v.catalog.RegionName(locale, res.Region)}
	texts := make([]string, 0, len(res.MessageKeys))
	for _, key := range res.MessageKeys {
		texts = append(texts, v.catalog.Text(locale, key, args))
	}
	return strings.Join(texts, " ")
}

// ValidateMany validates several requests concurrently.
// The result order matches the input slice order. Emails are processed
// grouped by domain so lookups for the same domain run close together.
// A misuse error on any request aborts the batch.
func (v *Validator) ValidateMany(ctx context.Context, reqs []Request, opts ...ConcurrencyOptions) ([]Result, error) {
	if v.err != nil {
		return nil, v.err
	}
	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}

	workers := 5
	if len(opts) > 0 && opts[0].Workers > 0 {
		workers = opts[0].Workers
	}

	order := make([]int, len(reqs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return groupKey(reqs[order[i]]) < groupKey(reqs[order[j]])
	})

	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, idx := range order {
		g.Go(func() error {
			res, err := v.Validate(gctx, reqs[idx])
			if err != nil {
				return fmt.Errorf("validating request %d: %w", idx, err)
			}
			results[idx] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// groupKey orders a batch by kind, then by email domain.
func groupKey(r Request) string {
	if r.Kind != types.KindEmail {
		return string(r.Kind)
	}
	domain := ""
	if at := strings.LastIndex(r.Value, "@"); at >= 0 {
		domain = strings.ToLower(strings.TrimSpace(r.Value[at+1:]))
	}
	return string(r.Kind) + "|" + domain
}
