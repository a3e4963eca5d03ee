package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/mailscout/mailscout"
	"github.com/mailscout/mailscout/check"
	"github.com/mailscout/mailscout/internal/config"
	"github.com/mailscout/mailscout/internal/logging"
)

// report is the JSON output of one CLI run.
type report struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Total       int                `json:"total"`
	Valid       int                `json:"valid"`
	Results     []mailscout.Result `json:"results"`
}

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML configuration file")
		filePath   = flag.String("file", "", "file with one address per line (\"-\" for stdin)")
		enableSMTP = flag.Bool("smtp", false, "enable the SMTP RCPT TO probe stage")
		formatOnly = flag.Bool("format-only", false, "run the syntax stage only (no network I/O)")
		jsonOut    = flag.Bool("json", false, "emit a JSON report instead of a table")
		delay      = flag.Duration("delay", 0, "inter-call delay between validations (overrides config when set)")
		timeout    = flag.Duration("timeout", 0, "DNS and SMTP timeout (overrides config)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [address ...]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	delaySet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "delay" {
			delaySet = true
		}
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mailscout: %v\n", err)
		os.Exit(2)
	}
	applyOverrides(cfg, *enableSMTP, *delay, delaySet, *timeout)

	if *verbose {
		cfg.Logging.Level = "debug"
	}
	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	emails, err := gatherEmails(flag.Args(), *filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mailscout: %v\n", err)
		os.Exit(2)
	}
	if len(emails) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.New().String()
	logger.Debug("starting run",
		"run_id", runID,
		"addresses", len(emails),
		"smtp", cfg.SMTP.Enabled,
		"format_only", *formatOnly)

	v := buildValidator(cfg)

	if *formatOnly {
		os.Exit(runFormatOnly(v, emails, *jsonOut))
	}

	results, err := v.ValidateMany(ctx, emails, mailscout.BatchOptions{Delay: cfg.Batch.Delay})
	if err != nil {
		logger.Error("batch aborted", "run_id", runID, "err", err, "completed", len(results))
		if len(results) == 0 {
			os.Exit(2)
		}
	}

	validCount := 0
	for _, r := range results {
		if r.Valid {
			validCount++
		}
	}
	logger.Debug("run finished", "run_id", runID, "total", len(results), "valid", validCount)

	if *jsonOut {
		rep := report{
			RunID:       runID,
			GeneratedAt: time.Now().UTC(),
			Total:       len(results),
			Valid:       validCount,
			Results:     results,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintf(os.Stderr, "mailscout: %v\n", err)
			os.Exit(2)
		}
	} else {
		printTable(results)
	}

	if validCount < len(results) {
		os.Exit(1)
	}
}

func applyOverrides(cfg *config.Config, enableSMTP bool, delay time.Duration, delaySet bool, timeout time.Duration) {
	if enableSMTP {
		cfg.SMTP.Enabled = true
	}
	if delaySet {
		cfg.Batch.Delay = delay
	}
	if timeout > 0 {
		cfg.DNS.Timeout = timeout
		cfg.SMTP.ConnectTimeout = timeout
		cfg.SMTP.CommandTimeout = timeout
	}
}

func buildValidator(cfg *config.Config) *mailscout.Validator {
	v := mailscout.New().
		WithBlacklist(mailscout.BlacklistOptions{
			DisposableDomains: cfg.DisposableDomains(check.DefaultDisposableDomains()),
			InvalidDomains:    cfg.InvalidDomains(check.DefaultInvalidDomains()),
		}).
		WithDNS(mailscout.DNSOptions{
			Timeout:     cfg.DNS.Timeout,
			FallbackToA: cfg.DNS.FallbackToA,
		})

	if cfg.SMTP.Enabled {
		v = v.WithSMTP(mailscout.SMTPOptions{
			HeloDomain:     cfg.SMTP.HeloDomain,
			MailFrom:       cfg.SMTP.MailFrom,
			Port:           strconv.Itoa(cfg.SMTP.Port),
			ConnectTimeout: cfg.SMTP.ConnectTimeout,
			CommandTimeout: cfg.SMTP.CommandTimeout,
			MaxMXHosts:     cfg.SMTP.MaxMXHosts,
		})
	}
	return v
}

// gatherEmails merges positional arguments with the optional address file.
func gatherEmails(args []string, filePath string) ([]string, error) {
	emails := append([]string(nil), args...)

	if filePath == "" {
		return emails, nil
	}

	var r *os.File
	if filePath == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open address file: %w", err)
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			emails = append(emails, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read address file: %w", err)
	}
	return emails, nil
}

func runFormatOnly(v *mailscout.Validator, emails []string, jsonOut bool) int {
	type formatResult struct {
		Email string `json:"email"`
		Valid bool   `json:"valid"`
	}

	invalid := 0
	results := make([]formatResult, 0, len(emails))
	for _, e := range emails {
		ok := v.ValidateSyntax(e)
		if !ok {
			invalid++
		}
		results = append(results, formatResult{Email: e, Valid: ok})
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(results)
	} else {
		for _, r := range results {
			printVerdict(r.Valid, r.Email, "")
		}
	}

	if invalid > 0 {
		return 1
	}
	return 0
}

var (
	validTag   = color.New(color.FgGreen).SprintFunc()
	invalidTag = color.New(color.FgRed).SprintFunc()
	noteTag    = color.New(color.FgYellow).SprintFunc()
)

func printTable(results []mailscout.Result) {
	for _, r := range results {
		printVerdict(r.Valid, r.Email, r.ErrorMessage)
	}
}

func printVerdict(valid bool, email, note string) {
	tag := invalidTag("INVALID")
	if valid {
		tag = validTag("VALID  ")
	}
	if note == "" {
		fmt.Printf("%s  %s\n", tag, email)
		return
	}
	fmt.Printf("%s  %s  %s\n", tag, email, noteTag(note))
}
