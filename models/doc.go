// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON keys keep the Portuguese column names existing clients already use.

# Request Types

  - CreatePollRequest: nome, descricao, opcoes
  - VoteRequest: user_id, opcao_id
  - AddOptionRequest: opcao

Requests carry `validate` tags checked by Validate.

# Response Types

  - CreatePollResponse: enquete_id
  - PollSummary: nome
  - PollDetail: enq_co_enquete, enq_no_nome, enq_in_status, enq_tx_descricao, opcoes
  - ResultsResponse: enquete_id, resultados
  - OptionsResponse: enquete_id, opcoes
  - AddOptionResponse: mensagem, enqo_co_opcao
  - MessageResponse: mensagem
  - ErrorResponse: erro

PollDetail options are OptionPair values, encoded as [id, label] arrays.

# Domain Types

  - User: voter, created outside this service
  - Poll: name, status and description
  - Option: selectable choice of one poll
  - Vote: a user's current choice in a poll
  - OptionResult: vote tally for one option
*/
package models
