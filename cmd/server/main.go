package main

import (
	"context"
	"errors"
	"os"

	contactapi "github.com/nuverum/contact-api"
	"github.com/nuverum/contact-api/handlers"
	"github.com/nuverum/contact-api/middlewares"
	"github.com/nuverum/contact-api/pkg/config"
	"github.com/nuverum/contact-api/pkg/health"
	"github.com/nuverum/contact-api/pkg/logger"
	"github.com/nuverum/contact-api/pkg/mailer"
	"github.com/nuverum/contact-api/pkg/mailer/resend"
)

type serverConfig struct {
	Address string `env:"ADDRESS" envDefault:":8080"`
}

var errMailerNotConfigured = errors.New("email provider is not configured")

func main() {
	var (
		srvCfg    serverConfig
		sentryCfg logger.SentryConfig
		resendCfg resend.Config
		mailCfg   mailer.Config
	)
	config.MustLoad(&srvCfg)
	config.MustLoad(&sentryCfg)
	config.MustLoad(&resendCfg)
	config.MustLoad(&mailCfg)

	log := logger.NewWithSentry(sentryCfg, middlewares.RequestIDExtractor())

	// The submission endpoint reports 503 while the provider key is
	// absent; startup proceeds so the failure is a distinct, monitorable
	// configuration error rather than a crash loop.
	var m *mailer.Mailer
	if resendCfg.APIKey != "" {
		m = mailer.New(resend.New(resendCfg))
	} else {
		log.Warn("RESEND_API_KEY is not set; contact submissions will be rejected as unconfigured")
	}

	checks := health.Checks{
		"mailer": func(ctx context.Context) error {
			if m == nil {
				return errMailerNotConfigured
			}
			return nil
		},
	}

	app := contactapi.New(
		contactapi.WithAddress(srvCfg.Address),
		contactapi.WithLogger(log),
		contactapi.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(log),
			middlewares.CORS(),
		),
		contactapi.WithRoutes(
			handlers.NewContactHandler(log, m, mailCfg).Routes,
			handlers.HealthRoutes(log, checks),
		),
	)

	if err := app.Run(); err != nil {
		log.Error("application error", "error", err)
		os.Exit(1)
	}
}
