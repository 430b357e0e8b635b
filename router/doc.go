// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router configures the chi route table.

# Usage

	mux := router.NewRouter(store, log)
	http.ListenAndServe(":5000", mux)

# Middleware

Every request passes through, in order: CORS, request id, chi RealIP,
request logging, chi Recoverer and a 30 second chi Timeout.

# Routes

	GET    /                                       index text
	GET    /health                                 database ping
	POST   /api/enquetes                           create poll
	GET    /api/enquetes                           list active polls
	GET    /api/enquetes/{id}                      poll detail
	DELETE /api/enquetes/{id}                      delete poll
	POST   /api/enquetes/{id}/votar                vote
	GET    /api/enquetes/{id}/resultados           results
	GET    /api/enquetes/{id}/opcoes               list options
	POST   /api/enquetes/{id}/opcoes               add option
	DELETE /api/enquetes/{id}/opcoes/{id_opcao}    delete option

Unknown methods on a known path get 405 from chi.
*/
package router
