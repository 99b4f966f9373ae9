package check

import (
	"context"
	"errors"
	"net"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/optimode/contactkit/types"
)

// Resolver is the subset of *net.Resolver the DNS checker uses.
// dnsclient.Client implements it against explicit nameservers.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupTXT(ctx context.Context, name string) ([]string, error)
}

// DKIMSelectors are probed in order at <selector>._domainkey.<domain>.
var DKIMSelectors = []string{"20161025", "default", "google", "mail", "key1", "dkim"}

// DNSFlags selects which records CheckDomain resolves.
type DNSFlags struct {
	MX   bool
	SPF  bool
	DKIM bool
}

// Any reports whether at least one lookup is enabled.
func (f DNSFlags) Any() bool { return f.MX || f.SPF || f.DKIM }

// DomainReport is the outcome of the enabled DNS lookups for one domain.
type DomainReport struct {
	MXFound   bool     `json:"mxFound"`
	SPFFound  bool     `json:"spfFound"`
	DKIMFound bool     `json:"dkimFound"`
	MXHosts   []string `json:"mxHosts,omitempty"`
	// DKIMSelector is the selector that resolved, "" for the bare
	// _domainkey fallback or when none did.
	DKIMSelector string `json:"dkimSelector,omitempty"`
	// The *LookupFailed flags mark a record reported absent because its
	// lookup timed out or the server failed, rather than a clean NXDOMAIN
	// or empty answer.
	MXLookupFailed   bool `json:"mxLookupFailed,omitempty"`
	SPFLookupFailed  bool `json:"spfLookupFailed,omitempty"`
	DKIMLookupFailed bool `json:"dkimLookupFailed,omitempty"`
}

// LookupFailed reports whether any lookup failed transiently.
func (r DomainReport) LookupFailed() bool {
	return r.MXLookupFailed || r.SPFLookupFailed || r.DKIMLookupFailed
}

// DNSConfig is the DNS checker configuration.
type DNSConfig struct {
	// Timeout bounds all lookups for one domain. Default: 5s
	Timeout time.Duration
	Logger  *zap.Logger
}

// DNSChecker resolves MX, SPF and DKIM records for a domain.
type DNSChecker struct {
	cfg      DNSConfig
	resolver Resolver
}

// NewDNSChecker creates a DNS checker. A nil resolver uses the system
// resolver.
func NewDNSChecker(cfg DNSConfig, r Resolver) *DNSChecker {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if r == nil {
		r = &net.Resolver{}
	}
	return &DNSChecker{cfg: cfg, resolver: r}
}

// CheckDomain runs the enabled lookups concurrently. Resolution errors
// never escape: a failed lookup reads as "absent" and, when the failure
// was transient, sets that record's *LookupFailed flag.
func (c *DNSChecker) CheckDomain(ctx context.Context, domain string, flags DNSFlags) DomainReport {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var (
		report DomainReport
		mu     sync.Mutex
		g      errgroup.Group
	)
	failed := func(flag *bool, record string, err error) {
		mu.Lock()
		*flag = true
		mu.Unlock()
		c.cfg.Logger.Debug("dns lookup failed",
			zap.String("domain", domain), zap.String("record", record), zap.Error(err))
	}

	if flags.MX {
		g.Go(func() error {
			hosts, err := c.lookupMX(ctx, domain)
			if transient(err) {
				failed(&report.MXLookupFailed, "mx", err)
			}
			mu.Lock()
			report.MXFound = len(hosts) > 0
			report.MXHosts = hosts
			mu.Unlock()
			return nil
		})
	}
	if flags.SPF {
		g.Go(func() error {
			found, err := c.lookupSPF(ctx, domain)
			if !found && transient(err) {
				failed(&report.SPFLookupFailed, "spf", err)
			}
			mu.Lock()
			report.SPFFound = found
			mu.Unlock()
			return nil
		})
	}
	if flags.DKIM {
		g.Go(func() error {
			selector, found, err := c.lookupDKIM(ctx, domain)
			if !found && err != nil {
				failed(&report.DKIMLookupFailed, "dkim", err)
			}
			mu.Lock()
			report.DKIMFound = found
			report.DKIMSelector = selector
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return report
}

// lookupMX returns hosts ordered by preference. Equal preferences keep
// the resolver's order.
func (c *DNSChecker) lookupMX(ctx context.Context, domain string) ([]string, error) {
	records, err := c.resolver.LookupMX(ctx, domain)
	if err != nil {
		return nil, err
	}
	sorted := make([]*net.MX, 0, len(records))
	for _, r := range records {
		if r != nil {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pref < sorted[j].Pref
	})

	hosts := make([]string, 0, len(sorted))
	for _, r := range sorted {
		hosts = append(hosts, strings.TrimSuffix(r.Host, "."))
	}
	return hosts, nil
}

func (c *DNSChecker) lookupSPF(ctx context.Context, domain string) (bool, error) {
	records, err := c.resolver.LookupTXT(ctx, domain)
	for _, txt := range records {
		if strings.Contains(txt, "v=spf1") {
			return true, nil
		}
	}
	return false, err
}

// lookupDKIM probes the conventional selectors, then the bare
// _domainkey name. The returned error is the first transient failure
// seen, reported only when nothing resolved.
func (c *DNSChecker) lookupDKIM(ctx context.Context, domain string) (string, bool, error) {
	var firstErr error
	for _, sel := range DKIMSelectors {
		records, err := c.resolver.LookupTXT(ctx, sel+"._domainkey."+domain)
		if err == nil && len(records) > 0 {
			return sel, true, nil
		}
		if firstErr == nil && transient(err) {
			firstErr = err
		}
		if ctx.Err() != nil {
			return "", false, ctx.Err()
		}
	}

	records, err := c.resolver.LookupTXT(ctx, "_domainkey."+domain)
	if err == nil && len(records) > 0 {
		return "", true, nil
	}
	if firstErr == nil && transient(err) {
		firstErr = err
	}
	return "", false, firstErr
}

// transient reports whether err means the answer is unknown rather than
// negative.
func transient(err error) bool {
	if err == nil {
		return false
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return !dnsErr.IsNotFound
	}
	return true
}

// Checks converts the report into one CheckResult per enabled flag. A
// failed check is unverified only when its own lookup failed.
func (r DomainReport) Checks(flags DNSFlags) []types.CheckResult {
	var out []types.CheckResult
	add := func(enabled bool, level types.CheckLevel, found, lookupFailed bool, key types.MessageKey, details string) {
		if !enabled {
			return
		}
		cr := types.CheckResult{Level: level, Passed: found, Details: details}
		if !found {
			cr.Key = key
			cr.Unverified = lookupFailed
		}
		out = append(out, cr)
	}

	mxDetails := "no MX records found"
	if r.MXFound {
		mxDetails = strings.Join(r.MXHosts, ", ")
	}
	add(flags.MX, types.LevelMX, r.MXFound, r.MXLookupFailed, types.KeyEmailNoMX, mxDetails)
	if flags.MX && r.MXFound && len(out) > 0 && len(r.MXHosts) > 0 {
		out[len(out)-1].MXHost = r.MXHosts[0]
	}

	add(flags.SPF, types.LevelSPF, r.SPFFound, r.SPFLookupFailed, types.KeyEmailNoSPF, presence(r.SPFFound, "SPF record"))
	add(flags.DKIM, types.LevelDKIM, r.DKIMFound, r.DKIMLookupFailed, types.KeyEmailNoDKIM, presence(r.DKIMFound, "DKIM record"))
	return out
}

func presence(found bool, what string) string {
	if found {
		return what + " found"
	}
	return "no " + what + " found"
}
