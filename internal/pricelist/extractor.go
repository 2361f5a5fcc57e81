package pricelist

import (
	"fmt"
	"runtime"
	"time"

	"precario/pkg/models"
)

// cadência dos eventos de progresso e do yield cooperativo durante a
// extração de ficheiros grandes
const intervaloProgresso = 200

// ExtrairLinhas percorre as linhas de dados abaixo do cabeçalho e monta
// um Componente normalizado por linha. Linhas vazias ou sem referência
// são ignoradas e contadas, nunca erram a importação.
func ExtrairLinhas(rows [][]string, linhaCabecalho int, mapeamento Mapeamento, idmarca int, onProgress ProgressFunc) ([]models.Componente, int) {
	inicio := linhaCabecalho + 1
	total := len(rows) - inicio
	if total <= 0 {
		return nil, 0
	}

	colunaRef := mapeamento[CampoReferencia]
	componentes := make([]models.Componente, 0, total)
	ignoradas := 0
	agora := time.Now()

	for i := inicio; i < len(rows); i++ {
		if (i-inicio)%intervaloProgresso == 0 && i > inicio {
			onProgress.Emit(ProcessingStatus{
				Fase:      FaseProcessando,
				Progresso: 30 + ((i-inicio)*60)/total,
				Mensagem:  fmt.Sprintf("Linha %d de %d...", i-inicio, total),
				Total:     total,
				Atual:     i - inicio,
			})
			// ponto de escalonamento cooperativo: mantém o host
			// responsivo em extrações longas
			runtime.Gosched()
		}

		row := rows[i]
		if len(row) == 0 {
			ignoradas++
			continue
		}

		ref := LimparTexto(celula(row, colunaRef))
		if ref == nil {
			ignoradas++
			continue
		}

		texto := func(campo Campo) *string {
			idx, ok := mapeamento[campo]
			if !ok {
				return nil
			}
			return LimparTexto(celula(row, idx))
		}
		numero := func(campo Campo) *float64 {
			idx, ok := mapeamento[campo]
			if !ok {
				return nil
			}
			return ParaNumero(celula(row, idx))
		}

		unidade := "UN"
		if u := texto(CampoUnidade); u != nil {
			unidade = *u
		}

		componentes = append(componentes, models.Componente{
			IDMarca:          idmarca,
			Referencia:       *ref,
			Descricao:        texto(CampoDescricao),
			Familia:          texto(CampoFamilia),
			EAN:              texto(CampoEAN),
			PrecoTabela:      numero(CampoPrecoTabela),
			GrupoDesconto:    texto(CampoGrupoDesconto),
			Unidade:          unidade,
			QuantidadeMinima: numero(CampoQuantidadeMinima),
			Peso:             numero(CampoPeso),
			UpdatedAt:        agora,
		})
	}

	return componentes, ignoradas
}

func celula(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
