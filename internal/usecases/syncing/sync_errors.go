package syncing

import "errors"

var (
	ErrListTrackedPages = errors.New("erro ao listar páginas monitoradas")
	ErrCreateIntegrator = errors.New("erro ao criar integração com o GA4")
	ErrFetchReport      = errors.New("erro ao buscar relatório do GA4")
	ErrReplaceWindow    = errors.New("erro ao substituir janela de métricas")
)
