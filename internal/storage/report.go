package storage

import "time"

// Status das operações dentro de uma OP
const (
	OperacaoNaoIniciada = "NAO_INICIADA"
	OperacaoEmAndamento = "EM_ANDAMENTO"
	OperacaoConcluida   = "CONCLUIDA"
)

// Status da própria ordem de produção
const (
	OrdemNoPrazo   = "no_prazo"
	OrdemAtrasada  = "atrasado"
	OrdemConcluida = "concluido"
)

// TableRow é uma linha do relatório de apontamento já normalizada:
// datas resolvidas, números com fallback para 0.
type TableRow struct {
	OrdemProducao       string
	CodProduto          string
	DescProduto         string
	CodOperacao         string
	DescGrupoGerencial  string
	StatusOperacao      string
	Name                string
	DtPrazo             *time.Time
	DtEmissao           *time.Time
	QuantidadePlanejada float64
	QuantidadeReal      float64
	TmpTotalPrevUnid    float64
}

type Operation struct {
	Code   string `json:"code"`
	Desc   string `json:"desc"`
	Status string `json:"status"`
}

type ProductionOrder struct {
	OpID             string       `json:"op_id"`
	Name             string       `json:"name"`
	Status           string       `json:"status"`
	Progress         int          `json:"progress"`
	Deadline         *time.Time   `json:"deadline"`
	EmissionDate     string       `json:"emission_date"`
	DaysLate         int          `json:"days_late"`
	RemainingHours   float64      `json:"remaining_hours"`
	Operations       []*Operation `json:"operations"`
	IsCritical       bool         `json:"is_critical"`
	PlannedQuantity  float64      `json:"planned_quantity"`
	RealQuantity     float64      `json:"real_quantity"`
	HasMissingPieces bool         `json:"has_missing_pieces"`
}

type Piece struct {
	ProductCode    string             `json:"product_code"`
	ProductDesc    string             `json:"product_desc"`
	BaseNumber     string             `json:"base_number"`
	RemainingHours float64            `json:"remaining_hours"`
	Orders         []*ProductionOrder `json:"orders"`
	IsCritical     bool               `json:"is_critical"`
}

type PrefixGroup struct {
	Prefix        string   `json:"prefix"`
	PrefixName    string   `json:"prefix_name"`
	TotalOrders   int      `json:"total_orders"`
	CriticalCount int      `json:"critical_count"`
	LateCount     int      `json:"late_count"`
	Pieces        []*Piece `json:"pieces"`
}

// Report é um relatório processado e guardado no histórico
type Report struct {
	ID        int64          `json:"id"`
	FileName  string         `json:"file_name"`
	CreatedAt time.Time      `json:"created_at"`
	Groups    []*PrefixGroup `json:"groups"`
}

type ReportSummary struct {
	ID         int64     `json:"id"`
	FileName   string    `json:"file_name"`
	CreatedAt  time.Time `json:"created_at"`
	GroupCount int       `json:"group_count"`
	LateCount  int       `json:"late_count"`
}

type PrefixName struct {
	Prefix string `json:"prefix"`
	Name   string `json:"name"`
}
