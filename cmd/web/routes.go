package main

import (
	"github.com/justinas/alice"
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("GET /api/cases", app.listCases)
	mux.HandleFunc("GET /api/cases/{id}", app.getCase)

	base := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	return base.Then(mux)
}
