package agenda

import (
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"site.ateliermosaique.fr/apps/agenda/internal/models"
)

const (
	noUpcomingMessage = "Aucun événement prévu pour le moment."
	noPastMessage     = "Aucun événement passé."
	loadFailedMessage = "Impossible de charger l'agenda pour le moment."
)

func (app *Agenda) templateRoutes(prefix string, mux *http.ServeMux) {
	mux.Handle(
		fmt.Sprintf("GET /%s/static/", prefix),
		http.StripPrefix(fmt.Sprintf("/%s", prefix), http.FileServerFS(app.static)),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/{$}", prefix),
		app.agendaHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/prochain", prefix),
		app.highlightHandler,
	)
}

type categoryData struct {
	Title        string
	Events       []models.Event
	EmptyMessage string
}

type agendaData struct {
	Error        bool
	ErrorMessage string
	Upcoming     categoryData
	Past         categoryData
}

type highlightData struct {
	Error     bool
	Message   string
	Event     *models.Event
	AgendaURL string
}

func (app *Agenda) agendaHandler(w http.ResponseWriter, r *http.Request) {
	events, err := app.Services.Feed.Load(r.Context())
	if err != nil {
		app.logger.Error("failed to load events feed", logging.ErrAttr(err))
		//nolint:exhaustruct //other fields are optional
		tpltools.RenderWithPanic(app.tpl, w, "agenda.html", agendaData{
			Error:        true,
			ErrorMessage: loadFailedMessage,
		})
		return
	}

	upcoming, past := app.Services.Feed.Partition(events, app.Services.Feed.Today())

	//nolint:exhaustruct //other fields are optional
	tpltools.RenderWithPanic(app.tpl, w, "agenda.html", agendaData{
		Upcoming: categoryData{
			Title:        "À venir",
			Events:       upcoming,
			EmptyMessage: noUpcomingMessage,
		},
		Past: categoryData{
			Title:        "Événements passés",
			Events:       past,
			EmptyMessage: noPastMessage,
		},
	})
}

func (app *Agenda) highlightHandler(w http.ResponseWriter, r *http.Request) {
	events, err := app.Services.Feed.Load(r.Context())
	if err != nil {
		app.logger.Error("failed to load events feed", logging.ErrAttr(err))
		//nolint:exhaustruct //other fields are optional
		tpltools.RenderWithPanic(app.tpl, w, "highlight.html", highlightData{
			Error:   true,
			Message: loadFailedMessage,
		})
		return
	}

	next, ok := app.Services.Feed.NextEvent(events, app.Services.Feed.Today())
	if !ok {
		//nolint:exhaustruct //other fields are optional
		tpltools.RenderWithPanic(app.tpl, w, "highlight.html", highlightData{
			Message: noUpcomingMessage,
		})
		return
	}

	//nolint:exhaustruct //other fields are optional
	tpltools.RenderWithPanic(app.tpl, w, "highlight.html", highlightData{
		Event:     &next,
		AgendaURL: fmt.Sprintf("%s/%s", app.config.WebURL, app.GetName()),
	})
}
