// Package smtpprobe opens a probe-only SMTP session against a mail
// exchanger: greeting, HELO, MAIL FROM, RCPT TO, QUIT. No DATA is ever sent.
package smtpprobe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"time"

	"github.com/mailscout/mailscout/types"
)

// Config holds the probe identity and timeouts. HeloDomain and MailFrom are
// placeholders by convention; the probe never delivers mail.
type Config struct {
	HeloDomain     string
	MailFrom       string
	Port           string
	ConnectTimeout time.Duration
	CommandTimeout time.Duration
}

// Outcome is the raw result of one probe against one host.
type Outcome struct {
	Status  types.SMTPStatus
	Host    string
	Code    int
	Message string
	Err     error
}

// Probe dials host on cfg.Port and walks the RCPT TO sequence for email.
// The connect is bounded by ConnectTimeout and the whole command exchange by
// a CommandTimeout deadline on the socket. Any network failure or reply code
// other than 250/550-class yields SMTPUnknown: an unreachable or evasive
// server proves nothing about the mailbox.
func Probe(ctx context.Context, cfg Config, host, email string) Outcome {
	out := Outcome{Status: types.SMTPUnknown, Host: host}

	d := net.Dialer{Timeout: cfg.ConnectTimeout}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, cfg.Port))
	if err != nil {
		out.Err = fmt.Errorf("connect to %s failed: %w", host, err)
		return out
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(cfg.CommandTimeout)); err != nil {
		out.Err = fmt.Errorf("set deadline: %w", err)
		return out
	}

	// smtp.NewClient reads the server greeting.
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		out.Err = fmt.Errorf("greeting from %s failed: %w", host, err)
		return out
	}
	defer client.Close()

	if err := client.Hello(cfg.HeloDomain); err != nil {
		out.Code, out.Message = replyFromError(err)
		out.Err = fmt.Errorf("HELO failed: %w", err)
		return out
	}

	if err := client.Mail(cfg.MailFrom); err != nil {
		out.Code, out.Message = replyFromError(err)
		out.Err = fmt.Errorf("MAIL FROM failed: %w", err)
		return out
	}

	err = client.Rcpt(email)
	if err == nil {
		out.Status = types.SMTPConfirmed
		out.Code = 250
		out.Message = "recipient accepted"
		_ = client.Quit()
		return out
	}

	out.Code, out.Message = replyFromError(err)
	switch out.Code {
	case 550, 551, 553:
		// Explicit non-existence signal.
		out.Status = types.SMTPRejected
	case 0:
		// Not an SMTP reply at all (disconnect, timeout mid-command).
		out.Err = fmt.Errorf("RCPT TO failed: %w", err)
	default:
		// Greylisting, quota, policy codes. Inconclusive.
		out.Err = fmt.Errorf("uncertain response: %d %s", out.Code, out.Message)
	}

	_ = client.Quit()
	return out
}

// replyFromError pulls the three-digit reply out of a net/smtp error.
func replyFromError(err error) (int, string) {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		return tpErr.Code, tpErr.Msg
	}
	return 0, err.Error()
}
