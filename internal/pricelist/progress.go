package pricelist

// Fase identifica a etapa corrente de uma importação
type Fase string

const (
	FaseLendo       Fase = "lendo"
	FaseMapeando    Fase = "mapeando"
	FaseProcessando Fase = "processando"
	FaseInserindo   Fase = "inserindo"
	FaseConcluido   Fase = "concluido"
	FaseErro        Fase = "erro"
)

// ProcessingStatus é o evento de progresso emitido pelo pipeline. É
// efêmero: o consumidor decide se persiste, faz broadcast ou ignora.
// Não há garantia de buffering; rajadas são possíveis.
type ProcessingStatus struct {
	Fase      Fase   `json:"fase"`
	Progresso int    `json:"progresso"`
	Mensagem  string `json:"mensagem"`
	Total     int    `json:"total,omitempty"`
	Atual     int    `json:"atual,omitempty"`
}

// ProgressFunc recebe eventos de progresso; pode ser nil
type ProgressFunc func(ProcessingStatus)

// Emit invoca o callback se estiver definido
func (f ProgressFunc) Emit(status ProcessingStatus) {
	if f != nil {
		f(status)
	}
}
