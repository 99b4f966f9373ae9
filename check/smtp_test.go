package check_test

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/contactkit/check"
	"github.com/optimode/contactkit/types"
)

// smtpServer answers each command whose prefix is in responses on one end
// of a net.Pipe, until QUIT or the pipe closes.
func smtpServer(server net.Conn, responses map[string]string) {
	defer func() { _ = server.Close() }()

	_, _ = fmt.Fprintf(server, "220 mx.example.com ESMTP\r\n")
	r := bufio.NewReader(server)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.TrimRight(line, "\r\n")
		if cmd == "QUIT" {
			_, _ = fmt.Fprintf(server, "221 Bye\r\n")
			return
		}
		for prefix, resp := range responses {
			if strings.HasPrefix(cmd, prefix) {
				_, _ = fmt.Fprintf(server, "%s\r\n", resp)
				break
			}
		}
	}
}

func newTestProber(t *testing.T, responses map[string]string, dialed *string) *check.SMTPProber {
	t.Helper()
	return check.NewSMTPProber(check.SMTPConfig{
		HeloDomain: "validator.example.org",
		MailFrom:   "probe@validator.example.org",
		Timeout:    2 * time.Second,
		Dial: func(_ context.Context, _, address string) (net.Conn, error) {
			if dialed != nil {
				*dialed = address
			}
			client, server := net.Pipe()
			go smtpServer(server, responses)
			return client, nil
		},
	})
}

var acceptAll = map[string]string{
	"EHLO":      "250 mx.example.com",
	"MAIL FROM": "250 OK",
	"RCPT TO":   "250 Accepted",
}

func TestProbeMailbox_Accepted(t *testing.T) {
	var dialed string
	p := newTestProber(t, acceptAll, &dialed)

	report := p.ProbeMailbox(context.Background(), "user@example.com", []string{"mx1.example.com", "mx2.example.com"})

	assert.True(t, report.Reachable)
	assert.Equal(t, types.ReasonConnectedOK, report.Reason)
	assert.Equal(t, "mx1.example.com", report.Host)
	assert.Equal(t, "mx1.example.com:25", dialed, "only the primary MX is probed")
	assert.Equal(t, 250, report.Code)
	assert.False(t, report.Temporary)

	cr := report.Check()
	assert.True(t, cr.Passed)
	assert.Equal(t, types.LevelSMTP, cr.Level)
	assert.Empty(t, cr.Key)
}

func TestProbeMailbox_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		rcpt          string
		wantReason    types.ProbeReason
		wantKey       types.MessageKey
		wantTemporary bool
	}{
		{"permanent", "550 5.1.1 User unknown", types.ReasonRcptRejected, types.KeyEmailSMTPRcptRejected, false},
		{"greylisted", "451 4.7.1 Try again later", types.ReasonRcptRejected, types.KeyEmailSMTPRcptRejected, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := map[string]string{
				"EHLO":      "250 mx.example.com",
				"MAIL FROM": "250 OK",
				"RCPT TO":   tt.rcpt,
			}
			report := newTestProber(t, responses, nil).
				ProbeMailbox(context.Background(), "ghost@example.com", []string{"mx.example.com"})

			assert.False(t, report.Reachable)
			assert.Equal(t, tt.wantReason, report.Reason)
			assert.Equal(t, tt.wantTemporary, report.Temporary)

			cr := report.Check()
			assert.False(t, cr.Passed)
			assert.Equal(t, tt.wantKey, cr.Key)
			assert.Equal(t, tt.wantTemporary, cr.Unverified)
		})
	}
}

func TestProbeMailbox_MailFromRejectedIsUnverified(t *testing.T) {
	responses := map[string]string{
		"EHLO":      "250 mx.example.com",
		"MAIL FROM": "553 sender rejected",
	}
	report := newTestProber(t, responses, nil).
		ProbeMailbox(context.Background(), "user@example.com", []string{"mx.example.com"})

	assert.Equal(t, types.ReasonMailFromRejected, report.Reason)
	assert.True(t, report.Temporary)
	assert.Equal(t, types.KeyEmailSMTPMailFromRejected, report.Check().Key)
}

func TestProbeMailbox_NoHosts(t *testing.T) {
	p := check.NewSMTPProber(check.SMTPConfig{MailFrom: "probe@example.org"})

	report := p.ProbeMailbox(context.Background(), "user@example.com", nil)

	assert.False(t, report.Reachable)
	assert.Equal(t, types.ReasonConnectFailed, report.Reason)
	assert.Equal(t, types.KeyEmailSMTPConnectFailed, report.Check().Key)
	assert.True(t, report.Temporary, "nothing is known about the domain")
}

func TestNoMailExchanger(t *testing.T) {
	definite := check.NoMailExchanger(false).Check()
	assert.False(t, definite.Passed)
	assert.Equal(t, types.KeyEmailSMTPConnectFailed, definite.Key)
	assert.False(t, definite.Unverified)

	assert.True(t, check.NoMailExchanger(true).Check().Unverified)
}

func TestProbeMailbox_DialError(t *testing.T) {
	p := check.NewSMTPProber(check.SMTPConfig{
		MailFrom: "probe@example.org",
		Dial: func(context.Context, string, string) (net.Conn, error) {
			return nil, errors.New("connection refused")
		},
	})

	report := p.ProbeMailbox(context.Background(), "user@example.com", []string{"mx.example.com"})

	require.False(t, report.Reachable)
	assert.Equal(t, types.ReasonConnectFailed, report.Reason)
	assert.True(t, report.Check().Unverified)
}
