package models

// User-facing messages. Clients match on some of these, keep them stable.
const (
	MsgCreatePollInvalid   = "Nome, descrição e pelo menos 2 opções para enquete são obrigatórios!"
	MsgNoActivePolls       = "Não existe enquetes ativas."
	MsgInvalidPollID       = "O ID deve ser um número positivo."
	MsgInvalidOptionID     = "O ID da opção deve ser um número positivo."
	MsgPollNotFound        = "Enquete não encontrada."
	MsgVoteInvalid         = "Identificação do usuário e da opção de voto são obrigatórios para o registro!."
	MsgVoteRecorded        = "Voto registrado com sucesso!"
	MsgNoVotesYet          = "Não há votos registrados para esta enquete ainda."
	MsgOptionRequired      = "A nova opção é obrigatória."
	MsgOptionAdded         = "Opção adicionada com sucesso!"
	MsgPollDeleted         = "Enquete deletada com sucesso."
	MsgOptionDeleted       = "Opção deletada com sucesso."
	MsgMinOptions          = "Não é possível deletar a opção. A enquete deve ter ao menos duas opções após a exclusão."
	MsgInternal            = "Erro interno do servidor."
	MsgVotePollMissing     = "A enquete informada não existe."
	MsgVoteOptionMismatch  = "A opção informada não pertence a esta enquete."
	MsgVoteUserMissing     = "O usuário informado não existe."
	MsgOptionNotInPoll     = "A opção informada não pertence a esta enquete."
	MsgDatabaseUnavailable = "Banco de dados indisponível."
)
