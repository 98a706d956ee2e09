package agenda

import (
	"fmt"
	"net/http"
)

func (app *Agenda) apiRoutes(prefix string, mux *http.ServeMux) {
	apiPrefix := fmt.Sprintf("/%s/api", prefix)

	app.scrollCapRoutes(apiPrefix, mux)
}

func (app *Agenda) Routes(prefix string, mux *http.ServeMux) {
	app.templateRoutes(prefix, mux)
	app.apiRoutes(prefix, mux)
}
