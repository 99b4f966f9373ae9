// Package dnsclient resolves MX and TXT records against explicitly
// configured nameservers. Errors are reported as *net.DNSError so callers
// can tell "no such record" apart from a timeout, as with net.Resolver.
package dnsclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
)

// Config configures a Client.
type Config struct {
	// Servers are nameserver addresses (host or host:port). Port 53 is
	// assumed when missing. Required.
	Servers []string
	// Timeout bounds each exchange with a single server. Default: 3s
	Timeout time.Duration
}

// Client queries the configured servers in order until one answers.
type Client struct {
	servers []string
	udp     *dns.Client
	tcp     *dns.Client
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	if len(cfg.Servers) == 0 {
		return nil, errors.New("dnsclient: at least one server is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	servers := make([]string, len(cfg.Servers))
	for i, s := range cfg.Servers {
		if _, _, err := net.SplitHostPort(s); err != nil {
			s = net.JoinHostPort(s, "53")
		}
		servers[i] = s
	}
	return &Client{
		servers: servers,
		udp:     &dns.Client{Net: "udp", Timeout: cfg.Timeout},
		tcp:     &dns.Client{Net: "tcp", Timeout: cfg.Timeout},
	}, nil
}

// LookupMX returns the MX records for name in the order the server sent them.
func (c *Client) LookupMX(ctx context.Context, name string) ([]*net.MX, error) {
	answer, err := c.query(ctx, name, dns.TypeMX)
	if err != nil {
		return nil, err
	}
	var out []*net.MX
	for _, rr := range answer {
		if mx, ok := rr.(*dns.MX); ok {
			out = append(out, &net.MX{Host: mx.Mx, Pref: mx.Preference})
		}
	}
	if len(out) == 0 {
		return nil, notFound(name)
	}
	return out, nil
}

// LookupTXT returns the TXT records for name. The character strings of
// one record are joined, as net.Resolver does.
func (c *Client) LookupTXT(ctx context.Context, name string) ([]string, error) {
	answer, err := c.query(ctx, name, dns.TypeTXT)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, rr := range answer {
		if txt, ok := rr.(*dns.TXT); ok {
			joined := ""
			for _, s := range txt.Txt {
				joined += s
			}
			out = append(out, joined)
		}
	}
	if len(out) == 0 {
		return nil, notFound(name)
	}
	return out, nil
}

func (c *Client) query(ctx context.Context, name string, qtype uint16) ([]dns.RR, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), qtype)
	m.SetEdns0(4096, false)

	var lastErr error
	for _, server := range c.servers {
		if err := ctx.Err(); err != nil {
			return nil, &net.DNSError{Err: err.Error(), Name: name, IsTimeout: true}
		}

		resp, _, err := c.udp.ExchangeContext(ctx, m, server)
		if err == nil && resp.Truncated {
			resp, _, err = c.tcp.ExchangeContext(ctx, m, server)
		}
		if err != nil {
			lastErr = exchangeError(name, server, err)
			continue
		}

		switch resp.Rcode {
		case dns.RcodeSuccess:
			return resp.Answer, nil
		case dns.RcodeNameError:
			return nil, notFound(name)
		default:
			lastErr = &net.DNSError{
				Err:         fmt.Sprintf("server answered %s", dns.RcodeToString[resp.Rcode]),
				Name:        name,
				Server:      server,
				IsTemporary: resp.Rcode == dns.RcodeServerFailure,
			}
		}
	}
	return nil, lastErr
}

func notFound(name string) error {
	return &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
}

func exchangeError(name, server string, err error) error {
	var ne net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout())
	return &net.DNSError{
		Err:         err.Error(),
		Name:        name,
		Server:      server,
		IsTimeout:   timeout,
		IsTemporary: true,
	}
}
