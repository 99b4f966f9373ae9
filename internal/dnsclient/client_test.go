package dnsclient_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/contactkit/internal/dnsclient"
)

// startServer runs an in-process nameserver answering from zone, keyed by
// FQDN and record type. Names missing from zone get NXDOMAIN; a name
// mapped to nil answers SERVFAIL.
func startServer(t *testing.T, zone map[string]map[uint16][]dns.RR) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &dns.Server{
		PacketConn: pc,
		Handler: dns.HandlerFunc(func(w dns.ResponseWriter, req *dns.Msg) {
			resp := new(dns.Msg)
			resp.SetReply(req)
			q := req.Question[0]
			records, ok := zone[q.Name]
			switch {
			case !ok:
				resp.Rcode = dns.RcodeNameError
			case records == nil:
				resp.Rcode = dns.RcodeServerFailure
			default:
				resp.Answer = records[q.Qtype]
			}
			_ = w.WriteMsg(resp)
		}),
	}
	go func() { _ = srv.ActivateAndServe() }()
	t.Cleanup(func() { _ = srv.Shutdown() })

	return pc.LocalAddr().String()
}

func rr(t *testing.T, s string) dns.RR {
	t.Helper()
	r, err := dns.NewRR(s)
	require.NoError(t, err)
	return r
}

func TestClient_LookupMX(t *testing.T) {
	addr := startServer(t, map[string]map[uint16][]dns.RR{
		"example.com.": {
			dns.TypeMX: {
				rr(t, "example.com. 300 IN MX 20 mx2.example.com."),
				rr(t, "example.com. 300 IN MX 10 mx1.example.com."),
			},
		},
	})
	c, err := dnsclient.New(dnsclient.Config{Servers: []string{addr}, Timeout: time.Second})
	require.NoError(t, err)

	mx, err := c.LookupMX(context.Background(), "example.com")
	require.NoError(t, err)
	require.Len(t, mx, 2)
	assert.Equal(t, "mx2.example.com.", mx[0].Host)
	assert.Equal(t, uint16(20), mx[0].Pref)
	assert.Equal(t, "mx1.example.com.", mx[1].Host)
}

func TestClient_LookupTXTJoinsStrings(t *testing.T) {
	addr := startServer(t, map[string]map[uint16][]dns.RR{
		"example.com.": {
			dns.TypeTXT: {
				rr(t, `example.com. 300 IN TXT "v=spf1 include:_spf.example.com " "~all"`),
				rr(t, `example.com. 300 IN TXT "google-site-verification=abc"`),
			},
		},
	})
	c, err := dnsclient.New(dnsclient.Config{Servers: []string{addr}})
	require.NoError(t, err)

	txt, err := c.LookupTXT(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"v=spf1 include:_spf.example.com ~all", "google-site-verification=abc"}, txt)
}

func TestClient_NotFound(t *testing.T) {
	addr := startServer(t, map[string]map[uint16][]dns.RR{
		"nomx.example.": {dns.TypeTXT: {rr(t, `nomx.example. 300 IN TXT "hello"`)}},
	})
	c, err := dnsclient.New(dnsclient.Config{Servers: []string{addr}})
	require.NoError(t, err)

	for _, name := range []string{"missing.example", "nomx.example"} {
		_, err := c.LookupMX(context.Background(), name)
		var dnsErr *net.DNSError
		require.True(t, errors.As(err, &dnsErr), name)
		assert.True(t, dnsErr.IsNotFound, name)
		assert.False(t, dnsErr.IsTimeout, name)
	}
}

func TestClient_ServerFailureIsTemporary(t *testing.T) {
	addr := startServer(t, map[string]map[uint16][]dns.RR{"broken.example.": nil})
	c, err := dnsclient.New(dnsclient.Config{Servers: []string{addr}})
	require.NoError(t, err)

	_, err = c.LookupTXT(context.Background(), "broken.example")
	var dnsErr *net.DNSError
	require.True(t, errors.As(err, &dnsErr))
	assert.False(t, dnsErr.IsNotFound)
	assert.True(t, dnsErr.IsTemporary)
}

func TestClient_Timeout(t *testing.T) {
	// a bound socket that never answers
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = pc.Close() }()

	c, err := dnsclient.New(dnsclient.Config{Servers: []string{pc.LocalAddr().String()}, Timeout: 100 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.LookupMX(context.Background(), "example.com")
	var dnsErr *net.DNSError
	require.True(t, errors.As(err, &dnsErr))
	assert.True(t, dnsErr.IsTimeout)
}

func TestNew_RequiresServers(t *testing.T) {
	_, err := dnsclient.New(dnsclient.Config{})
	assert.Error(t, err)
}
