package agenda

import (
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"site.ateliermosaique.fr/apps/agenda/internal/dtos"
)

func (app *Agenda) scrollCapRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("POST %s/scrollcap", prefix),
		app.scrollCapHandler,
	)
}

// scrollCapHandler receives the card heights measured by the page script
// and answers with the height constraint for the past-events list.
func (app *Agenda) scrollCapHandler(w http.ResponseWriter, r *http.Request) {
	var scrollCapDto dtos.ScrollCapDto

	err := httptools.ReadJSON(r.Body, &scrollCapDto)
	if err != nil {
		httptools.BadRequestResponse(w, r, err)
		return
	}

	if ok, errs := scrollCapDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	height, apply := app.Services.ScrollCap.CapHeight(
		scrollCapDto.Heights,
		scrollCapDto.Gap,
	)

	err = httptools.WriteJSON(w, http.StatusOK, dtos.ScrollCapResultDto{
		Height: height,
		Apply:  apply,
	}, nil)
	if err != nil {
		app.logger.Error("failed to write scroll cap response", logging.ErrAttr(err))
	}
}
