package pricelist

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"precario/internal/brands"
	"precario/pkg/models"
)

// Resultado agrega a saída da fase de leitura e extração de um
// preçário, antes da ingestão na base de dados
type Resultado struct {
	Componentes     []models.Componente
	Mensagens       []string
	LinhasIgnoradas int
}

// Processar decodifica um ficheiro Excel e corre o pipeline completo de
// reconciliação: localizar o cabeçalho, mapear as colunas e extrair os
// registros normalizados. Erros estruturais (ficheiro vazio, referência
// não mapeada) são fatais; avisos acumulam em Mensagens.
func Processar(r io.Reader, marca brands.Strategy, onProgress ProgressFunc) (*Resultado, error) {
	onProgress.Emit(ProcessingStatus{Fase: FaseLendo, Progresso: 10, Mensagem: "A ler ficheiro..."})

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir ficheiro Excel: %w", err)
	}
	defer f.Close()

	var mensagens []string

	sheet, aviso := selecionarFolha(f, marca.SheetName())
	if aviso != "" {
		mensagens = append(mensagens, aviso)
		log.Warn().Int("idmarca", marca.ID()).Str("folha", sheet).Msg(aviso)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler folha %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("ficheiro vazio: folha %q tem %d linhas", sheet, len(rows))
	}

	onProgress.Emit(ProcessingStatus{Fase: FaseMapeando, Progresso: 20, Mensagem: "A mapear colunas..."})

	linhaCabecalho, ok := LocalizarLinhaCabecalho(rows)
	if !ok {
		mensagens = append(mensagens,
			"linha de cabeçalho não identificada, a assumir a primeira linha")
	}

	cabecalho := rows[linhaCabecalho]
	mapeamento, erros := MapearColunas(cabecalho, marca)
	if len(erros) > 0 {
		return nil, fmt.Errorf("mapeamento do preçário %s falhou: %s",
			marca.Nome(), strings.Join(erros, "; "))
	}

	log.Debug().
		Int("idmarca", marca.ID()).
		Int("linha_cabecalho", linhaCabecalho).
		Int("campos_mapeados", len(mapeamento)).
		Msg("colunas mapeadas")

	onProgress.Emit(ProcessingStatus{
		Fase:      FaseProcessando,
		Progresso: 30,
		Mensagem:  "A extrair dados...",
		Total:     len(rows) - linhaCabecalho - 1,
	})

	componentes, ignoradas := ExtrairLinhas(rows, linhaCabecalho, mapeamento, marca.ID(), onProgress)

	return &Resultado{
		Componentes:     componentes,
		Mensagens:       mensagens,
		LinhasIgnoradas: ignoradas,
	}, nil
}

// selecionarFolha escolhe a folha de trabalho: nome configurado, depois
// similaridade de nome, por fim a primeira folha do ficheiro. Os dois
// últimos casos rendem um aviso, não um erro.
func selecionarFolha(f *excelize.File, esperada string) (string, string) {
	folhas := f.GetSheetList()
	if len(folhas) == 0 {
		return esperada, ""
	}

	for _, nome := range folhas {
		if nome == esperada {
			return nome, ""
		}
	}

	alvo := Normalizar(esperada)
	for _, nome := range folhas {
		n := Normalizar(nome)
		if n == "" {
			continue
		}
		if n == alvo || strings.Contains(n, alvo) || strings.Contains(alvo, n) {
			return nome, fmt.Sprintf(
				"folha %q não existe, a usar %q por semelhança de nome", esperada, nome)
		}
	}

	return folhas[0], fmt.Sprintf(
		"folha %q não existe, a usar a primeira folha %q", esperada, folhas[0])
}
