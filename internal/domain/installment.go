package domain

import "time"

// PaymentStatus é o estado de uma parcela. OVERDUE nunca é persistido: é
// derivado na leitura comparando o vencimento com o relógio atual.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "PENDING"
	StatusPaid    PaymentStatus = "PAID"
	StatusOverdue PaymentStatus = "OVERDUE"
)

// Installment é uma parcela devida de uma venda. Number é a sequência
// 1-based dentro da venda e PaidAt só é preenchido na baixa.
type Installment struct {
	ID      string        `json:"id"`
	SaleID  string        `json:"saleId"`
	Number  int           `json:"number"`
	Amount  float64       `json:"amount"`
	DueDate string        `json:"dueDate"`
	Status  PaymentStatus `json:"status"`
	PaidAt  string        `json:"paidAt,omitempty"`
}

// DisplayStatus deriva o estado exibido da parcela: pendente com vencimento
// no passado vira OVERDUE, sem transição gravada.
func (i *Installment) DisplayStatus(now time.Time) PaymentStatus {
	if i.Status == StatusPaid {
		return StatusPaid
	}

	due, err := time.Parse(time.RFC3339, i.DueDate)
	if err == nil && due.Before(now) {
		return StatusOverdue
	}

	return i.Status
}
