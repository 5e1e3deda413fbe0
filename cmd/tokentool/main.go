// Command tokentool issues and inspects access tokens using the same
// configuration (JWT_SECRET, JWT_EXPIRES_IN) as the API server. It is meant
// for local debugging against a running server.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/filmly/internal/config"
	"github.com/example/filmly/internal/token"
	"github.com/example/filmly/internal/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	if err := run(os.Args[1:], cfg, os.Stdout); err != nil {
		logrus.WithError(err).Fatal("tokentool")
	}
}

func run(args []string, cfg *config.Config, out io.Writer) error {
	fs := flag.NewFlagSet("tokentool", flag.ContinueOnError)
	var (
		command = fs.String("command", "issue", "Command: issue, verify, ttl")
		email   = fs.String("email", "", "Email to embed (for issue)")
		raw     = fs.String("token", "", "Token to check (for verify)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := token.New(cfg.JwtSecret, cfg.TokenTTL())

	switch *command {
	case "issue":
		normalized := validator.NormalizeEmail(*email)
		if !validator.IsValidEmail(normalized) {
			return fmt.Errorf("invalid email: %q (use -email flag)", *email)
		}
		signed, err := svc.Issue(normalized)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, signed)
	case "verify":
		if *raw == "" {
			return errors.New("token required for verify command (use -token flag)")
		}
		claims, err := svc.Verify(*raw)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "email=%s expires=%s\n", claims.Email, claims.ExpiresAt.Time.UTC().Format(time.RFC3339))
	case "ttl":
		fmt.Fprintf(out, "%d\n", svc.ExpiresIn())
	default:
		return fmt.Errorf("unknown command: %s (supported: issue, verify, ttl)", *command)
	}
	return nil
}
