package domain

// FollowUpItem é um cliente marcado para reaproximação: a última compra dele
// tem 28 dias ou mais. AromaticProfile traz as duas categorias mais compradas
// e LastProducts os três últimos produtos distintos, do mais recente para o
// mais antigo.
type FollowUpItem struct {
	Customer        *Customer `json:"customer"`
	LastSaleDate    string    `json:"lastSaleDate"`
	DaysSince       int       `json:"daysSince"`
	AromaticProfile []string  `json:"aromaticProfile"`
	LastProducts    []string  `json:"lastProducts"`
}

// Receivable é uma parcela enriquecida para a tela de contas a receber:
// carrega o cliente da venda e o estado derivado (OVERDUE incluso).
type Receivable struct {
	Installment
	CustomerName string        `json:"customerName"`
	SaleTotal    float64       `json:"saleTotal"`
	Derived      PaymentStatus `json:"derivedStatus"`
}
