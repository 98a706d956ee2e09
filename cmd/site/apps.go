package main

import (
	"log/slog"
	"net/http"

	"site.ateliermosaique.fr/apps/agenda"
	"site.ateliermosaique.fr/apps/agenda/pkg/feed"
	"site.ateliermosaique.fr/internal/config"
)

type Apps struct {
	apps []App
}

type App interface {
	Routes(prefix string, mux *http.ServeMux)
	GetName() string
}

func NewApps(
	logger *slog.Logger,
	cfg config.Config,
	feedClient feed.Client,
) *Apps {
	apps := &Apps{
		apps: []App{},
	}

	apps.addApp(agenda.NewInner(logger, cfg, feedClient))

	return apps
}

func (apps *Apps) Routes(mux *http.ServeMux) http.Handler {
	for _, app := range apps.apps {
		app.Routes(app.GetName(), mux)
	}
	return mux
}

func (apps *Apps) addApp(app App) {
	apps.apps = append(apps.apps, app)
}
