package webservices

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/jamesrr39/goutil/errorsx"
	"github.com/jamesrr39/goutil/logpkg"
	"github.com/jamesrr39/semaphore"
	"github.com/wonder-sk/mapbox2qgis/styling"
	"github.com/wonder-sk/mapbox2qgis/styling/mapboxglstyle"
)

const maxConcurrentConversions = 4

type StyleService struct {
	logger *logpkg.Logger
	sema   *semaphore.Semaphore
	chi.Router
}

func NewStyleService(logger *logpkg.Logger) *StyleService {
	ws := &StyleService{logger, semaphore.NewSemaphore(maxConcurrentConversions), chi.NewRouter()}

	ws.Post("/convert", ws.handleConvert)

	return ws
}

type convertResponseType struct {
	Rules       []*styling.StyleRule  `json:"rules"`
	Diagnostics []*styling.Diagnostic `json:"diagnostics"`
}

func (ws *StyleService) handleConvert(w http.ResponseWriter, r *http.Request) {
	ws.sema.Add()
	defer ws.sema.Done()

	rules, diagnostics, err := mapboxglstyle.Parse(r.Body)
	if err != nil {
		errorsx.HTTPError(w, ws.logger, err, http.StatusBadRequest)
		return
	}

	// send empty lists, not nulls
	if rules == nil {
		rules = []*styling.StyleRule{}
	}
	if diagnostics == nil {
		diagnostics = []*styling.Diagnostic{}
	}

	render.JSON(w, r, convertResponseType{rules, diagnostics})
}
