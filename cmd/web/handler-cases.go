package main

import (
	"github.com/myrjola/casefile/internal/casefile"
	"github.com/myrjola/casefile/internal/errors"
	"net/http"
)

// casesResponse reports partial success: the cases that validated together
// with one error string per rejected file.
type casesResponse struct {
	Cases  []casefile.Case `json:"cases"`
	Errors []string        `json:"errors"`
}

// listCases runs the ingestion pipeline over the case directory and reports
// both outcomes. When case files were found but every single one was rejected,
// the batch counts as a hard failure and the response is a 500 carrying the
// error list. An unreadable or empty directory is not a hard failure.
func (app *application) listCases(w http.ResponseWriter, r *http.Request) {
	cases, errStrings := app.loader.Load(r.Context(), app.caseDir)

	status := http.StatusOK
	if len(cases) == 0 && len(errStrings) > 0 {
		if files, err := casefile.Discover(app.caseDir); err == nil && len(files) > 0 {
			status = http.StatusInternalServerError
		}
	}

	if cases == nil {
		cases = []casefile.Case{}
	}
	if errStrings == nil {
		errStrings = []string{}
	}
	app.writeJSON(w, r, status, casesResponse{Cases: cases, Errors: errStrings})
}

// getCase loads a single case by identifier. A case that exists but does not
// satisfy the schema yields a 422 with the field errors so that the author can
// fix the file.
func (app *application) getCase(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	c, err := app.loader.LoadOne(r.Context(), app.caseDir, id)
	if err != nil {
		var caseErr *casefile.CaseError
		switch {
		case errors.Is(err, casefile.ErrNotFound):
			app.notFound(w, r)
		case errors.As(err, &caseErr):
			app.writeJSON(w, r, http.StatusUnprocessableEntity, caseErr)
		default:
			app.serverError(w, r, err)
		}
		return
	}

	app.writeJSON(w, r, http.StatusOK, c)
}
