package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pagepost/pagepost/internal/config"
	"github.com/pagepost/pagepost/internal/logger"
	"github.com/pagepost/pagepost/internal/mailer"
	"github.com/pagepost/pagepost/internal/page"
	"github.com/pagepost/pagepost/internal/pagestore"
	"github.com/pagepost/pagepost/internal/preview"
	"github.com/pagepost/pagepost/internal/render"
	"github.com/pagepost/pagepost/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(slog.String("service", "pagepost")),
	)

	// Required setup: the service cannot render pages without its template.
	tpl, err := render.Load(cfg.TemplateDir, cfg.TemplateFile)
	if err != nil {
		log.Error("failed to load page template", "error", err)
		os.Exit(1)
	}

	// Best-effort setup: a missing data directory is logged and the process
	// keeps running, unless strict mode makes it fatal.
	var store *pagestore.Store
	if cfg.StrictInit {
		store, err = pagestore.NewStrict(cfg.DataDir)
		if err != nil {
			log.Error("failed to prepare data directory", "error", err)
			os.Exit(1)
		}
	} else {
		store = pagestore.New(cfg.DataDir, log)
	}

	notifier := mailer.NewNotifier(cfg.Mail, log)

	var renderer preview.Renderer = preview.Noop{}
	if cfg.PreviewEnabled {
		renderer = preview.NewQRRenderer()
	}

	svc := page.NewService(store, notifier, renderer, tpl, cfg.BaseURL(), cfg.IDLength(log), log)
	static := server.LoadStaticPages(cfg.TemplateDir, log)
	router := server.NewRouter(svc, static, log)

	srv := server.New(
		server.WithAddr(cfg.Addr()),
		server.WithShutdownTimeout(cfg.ShutdownTimeout),
		server.WithLogger(log),
	)
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("http server failed", "error", err)
		os.Exit(1)
	}
}
