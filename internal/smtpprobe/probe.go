// Package smtpprobe runs a single plaintext SMTP session against one MX
// host to ask whether it would accept mail for a recipient. No message is
// ever sent: the session ends after RCPT TO.
package smtpprobe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/optimode/contactkit/types"
)

// Config configures a Prober.
type Config struct {
	HeloDomain string
	MailFrom   string
	Port       string
	// Timeout bounds the whole session, dial included.
	Timeout time.Duration
	// Dial is injectable for testing. Defaults to net.Dialer.DialContext.
	Dial func(ctx context.Context, network, address string) (net.Conn, error)
}

// Outcome is what a session observed before it ended.
type Outcome struct {
	Reason types.ProbeReason
	// Code is the last reply code read, 0 if none.
	Code int
	// Message is the last reply text or the transport error.
	Message string
	// Temporary is set for 4xx replies, which a later retry may turn around.
	Temporary bool
}

// Accepted reports whether the server accepted the recipient.
func (o Outcome) Accepted() bool {
	return o.Reason == types.ReasonConnectedOK
}

// Prober opens one SMTP session per call. It holds no connections
// between calls and is safe for concurrent use.
type Prober struct {
	cfg Config
}

// New creates a Prober, filling unset Config fields with defaults.
func New(cfg Config) *Prober {
	if cfg.Port == "" {
		cfg.Port = "25"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Dial == nil {
		d := &net.Dialer{}
		cfg.Dial = d.DialContext
	}
	return &Prober{cfg: cfg}
}

type conn struct {
	netConn net.Conn
	reader  *bufio.Reader
	writer  *bufio.Writer
}

// Probe runs banner, EHLO (HELO on rejection), MAIL FROM and RCPT TO
// against host. QUIT is sent and the connection closed on every path
// once the dial succeeded.
func (p *Prober) Probe(ctx context.Context, host, rcpt string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	address := net.JoinHostPort(host, p.cfg.Port)
	netConn, err := p.cfg.Dial(ctx, "tcp", address)
	if err != nil {
		return failure(ctx, types.ReasonConnectFailed, fmt.Errorf("connect to %s: %w", address, err))
	}

	c := &conn{
		netConn: netConn,
		reader:  bufio.NewReader(netConn),
		writer:  bufio.NewWriter(netConn),
	}
	defer func() {
		sendQuit(c)
		_ = c.netConn.Close()
	}()

	if deadline, ok := ctx.Deadline(); ok {
		_ = netConn.SetDeadline(deadline)
	}
	// Deadline expiry is covered by the conn deadline. Cancellation
	// unblocks pending I/O here.
	stop := context.AfterFunc(ctx, func() {
		if errors.Is(ctx.Err(), context.Canceled) {
			_ = netConn.SetDeadline(time.Unix(1, 0))
		}
	})
	defer stop()

	return p.session(ctx, c, rcpt)
}

func (p *Prober) session(ctx context.Context, c *conn, rcpt string) Outcome {
	code, msg, err := readResponse(c.reader)
	if err != nil {
		return failure(ctx, types.ReasonConnectFailed, fmt.Errorf("read banner: %w", err))
	}
	if !positive(code) {
		return rejected(types.ReasonConnectFailed, code, msg)
	}

	code, msg, err = command(c, "EHLO "+p.cfg.HeloDomain)
	if err == nil && code >= 500 {
		code, msg, err = command(c, "HELO "+p.cfg.HeloDomain)
	}
	if err != nil {
		return failure(ctx, types.ReasonHeloFailed, fmt.Errorf("EHLO: %w", err))
	}
	if !positive(code) {
		return rejected(types.ReasonHeloFailed, code, msg)
	}

	code, msg, err = command(c, "MAIL FROM:<"+p.cfg.MailFrom+">")
	if err != nil {
		return failure(ctx, types.ReasonMailFromRejected, fmt.Errorf("MAIL FROM: %w", err))
	}
	if !positive(code) {
		return rejected(types.ReasonMailFromRejected, code, msg)
	}

	code, msg, err = command(c, "RCPT TO:<"+rcpt+">")
	if err != nil {
		return failure(ctx, types.ReasonRcptRejected, fmt.Errorf("RCPT TO: %w", err))
	}
	if !positive(code) {
		return rejected(types.ReasonRcptRejected, code, msg)
	}
	return Outcome{Reason: types.ReasonConnectedOK, Code: code, Message: msg}
}

func positive(code int) bool { return code >= 200 && code < 300 }

func rejected(reason types.ProbeReason, code int, msg string) Outcome {
	return Outcome{Reason: reason, Code: code, Message: msg, Temporary: code >= 400 && code < 500}
}

// failure reports a transport error under reason, or as a timeout when
// the error came from a deadline or the context ending.
func failure(ctx context.Context, reason types.ProbeReason, err error) Outcome {
	if isTimeout(err) || ctx.Err() != nil {
		reason = types.ReasonTimeout
	}
	return Outcome{Reason: reason, Message: err.Error()}
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// command sends one SMTP command line and reads the reply.
func command(c *conn, line string) (int, string, error) {
	if _, err := c.writer.WriteString(line + "\r\n"); err != nil {
		return 0, "", err
	}
	if err := c.writer.Flush(); err != nil {
		return 0, "", err
	}
	return readResponse(c.reader)
}

// sendQuit sends QUIT and waits briefly for the reply. Errors are ignored.
func sendQuit(c *conn) {
	_ = c.netConn.SetDeadline(time.Now().Add(2 * time.Second))
	if _, err := c.writer.WriteString("QUIT\r\n"); err != nil {
		return
	}
	if err := c.writer.Flush(); err != nil {
		return
	}
	_, _, _ = readResponse(c.reader)
}

// readResponse reads a (possibly multi-line) SMTP reply.
func readResponse(r *bufio.Reader) (code int, full string, err error) {
	var lines []string
	for {
		line, readErr := r.ReadString('\n')
		if readErr != nil {
			return 0, "", fmt.Errorf("read SMTP response: %w", readErr)
		}
		line = strings.TrimRight(line, "\r\n")
		if len(line) < 3 {
			return 0, "", errors.New("SMTP response line too short")
		}
		lines = append(lines, line)
		// a '-' after the code marks a continuation line
		if len(line) < 4 || line[3] != '-' {
			break
		}
	}

	last := lines[len(lines)-1]
	code, err = strconv.Atoi(last[:3])
	if err != nil {
		return 0, "", fmt.Errorf("invalid SMTP response code %q: %w", last[:3], err)
	}
	return code, strings.Join(lines, " | "), nil
}
