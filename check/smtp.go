package check

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/optimode/contactkit/internal/smtpprobe"
	"github.com/optimode/contactkit/types"
)

// SMTPConfig is the SMTP prober configuration.
type SMTPConfig struct {
	HeloDomain string
	MailFrom   string
	// Port defaults to "25".
	Port string
	// Timeout bounds one session. Default: 5s
	Timeout time.Duration
	// Dial is injectable for testing.
	Dial   func(ctx context.Context, network, address string) (net.Conn, error)
	Logger *zap.Logger
}

// ProbeReport is the outcome of a mailbox probe.
type ProbeReport struct {
	Reachable bool              `json:"reachable"`
	Reason    types.ProbeReason `json:"reason"`
	Host      string            `json:"host,omitempty"`
	Code      int               `json:"code,omitempty"`
	Detail    string            `json:"detail,omitempty"`
	// Temporary marks 4xx replies and transport failures, where the
	// mailbox state is unknown.
	Temporary bool `json:"temporary,omitempty"`
}

// SMTPProber asks the primary MX of a domain whether it would accept
// mail for an address.
type SMTPProber struct {
	cfg    SMTPConfig
	prober *smtpprobe.Prober
}

// NewSMTPProber creates a prober.
func NewSMTPProber(cfg SMTPConfig) *SMTPProber {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &SMTPProber{
		cfg: cfg,
		prober: smtpprobe.New(smtpprobe.Config{
			HeloDomain: cfg.HeloDomain,
			MailFrom:   cfg.MailFrom,
			Port:       cfg.Port,
			Timeout:    cfg.Timeout,
			Dial:       cfg.Dial,
		}),
	}
}

// ProbeMailbox probes the first of mxHosts, which must already be in
// preference order. Only the primary exchanger is tried.
func (p *SMTPProber) ProbeMailbox(ctx context.Context, email string, mxHosts []string) ProbeReport {
	if len(mxHosts) == 0 {
		return NoMailExchanger(true)
	}

	host := mxHosts[0]
	out := p.prober.Probe(ctx, host, email)
	report := ProbeReport{
		Reachable: out.Accepted(),
		Reason:    out.Reason,
		Host:      host,
		Code:      out.Code,
		Detail:    out.Message,
		Temporary: !out.Accepted() && !(out.Reason == types.ReasonRcptRejected && out.Code >= 500),
	}

	p.cfg.Logger.Debug("smtp probe finished",
		zap.String("host", host),
		zap.String("reason", string(out.Reason)),
		zap.Int("code", out.Code),
	)
	return report
}

// NoMailExchanger is the report for a domain without MX hosts to probe.
// It is temporary only when the MX lookup itself failed; after a definite
// NXDOMAIN or empty answer the domain cannot receive mail.
func NoMailExchanger(lookupFailed bool) ProbeReport {
	return ProbeReport{
		Reason:    types.ReasonConnectFailed,
		Detail:    "no MX host to probe",
		Temporary: lookupFailed,
	}
}

// Check converts the report into the smtp level CheckResult.
func (r ProbeReport) Check() types.CheckResult {
	cr := types.CheckResult{
		Level:    types.LevelSMTP,
		Passed:   r.Reachable,
		MXHost:   r.Host,
		SMTPCode: r.Code,
	}
	if r.Reachable {
		cr.Details = "RCPT TO accepted"
		return cr
	}
	cr.Key = probeKeys[r.Reason]
	cr.Details = fmt.Sprintf("%s: %s", r.Reason, r.Detail)
	cr.Unverified = r.Temporary
	return cr
}

var probeKeys = map[types.ProbeReason]types.MessageKey{
	types.ReasonConnectFailed:    types.KeyEmailSMTPConnectFailed,
	types.ReasonHeloFailed:       types.KeyEmailSMTPHeloFailed,
	types.ReasonMailFromRejected: types.KeyEmailSMTPMailFromRejected,
	types.ReasonRcptRejected:     types.KeyEmailSMTPRcptRejected,
	types.ReasonTimeout:          types.KeyEmailSMTPTimeout,
}
