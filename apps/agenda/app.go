package agenda

import (
	"embed"
	"html/template"
	"log/slog"

	"site.ateliermosaique.fr/apps/agenda/internal/services"
	"site.ateliermosaique.fr/apps/agenda/pkg/feed"
	"site.ateliermosaique.fr/internal/config"
)

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

//go:embed static/**
var static embed.FS

type Agenda struct {
	logger   *slog.Logger
	config   config.Config
	static   embed.FS
	tpl      *template.Template
	Services *services.Services
}

func New(
	logger *slog.Logger,
	cfg config.Config,
) *Agenda {
	return NewInner(logger, cfg, feed.New(cfg.FeedURL))
}

func NewInner(
	logger *slog.Logger,
	cfg config.Config,
	feedClient feed.Client,
) *Agenda {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	return &Agenda{
		logger:   logger,
		config:   cfg,
		static:   static,
		tpl:      tpl,
		Services: services.New(logger, cfg, feedClient),
	}
}

func (app *Agenda) GetName() string {
	return "agenda"
}
