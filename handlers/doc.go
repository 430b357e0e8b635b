// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Enquetes API.

# Handler Types

Each handler is a struct holding a store.Store and a logger:

  - PollHandler: create, list, detail and delete polls
  - VotingHandler: vote casting
  - ResultsHandler: vote counts per option
  - OptionHandler: list, add and delete options
  - HealthHandler: index text and database health

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(s, log)

# Routes

	POST   /api/enquetes                         → CreatePoll
	GET    /api/enquetes                         → ListPolls (404 when none are active)
	GET    /api/enquetes/{id}                    → GetPoll
	DELETE /api/enquetes/{id}                    → DeletePoll
	POST   /api/enquetes/{id}/votar              → Vote
	GET    /api/enquetes/{id}/resultados         → GetResults
	GET    /api/enquetes/{id}/opcoes             → ListOptions
	POST   /api/enquetes/{id}/opcoes             → AddOption
	DELETE /api/enquetes/{id}/opcoes/{id_opcao}  → DeleteOption

Path ids are read with chi.URLParam. An id that is not an integer is
answered with 400.

# Existence Checks

Every handler that needs the poll to exist calls store.PollExists first and
answers 404 with "Enquete não encontrada." when it does not. GetPoll relies
on GetPollDetail instead.

# Voting

One vote per user per poll. Voting again replaces the previous choice.
With strict references enabled the store also rejects unknown polls,
unknown users and options from another poll.

# Results

GetResults lists every option with its count. When no option has a vote
the response is a message instead:

	{"mensagem": "Não há votos registrados para esta enquete ainda."}

# Errors

Rule violations come back from the store as *apperr.AppError and are
written by middleware.WriteError. Anything else is logged with the
request id and answered with a generic 500.
*/
package handlers
