package search

import "errors"

var (
	ErrBackendNotConfigured = errors.New("backend de busca não configurado")
	ErrUpstreamStatus       = errors.New("agregador de busca retornou status inesperado")
	ErrInvalidResponse      = errors.New("resposta inválida do agregador de busca")
)
