package domain

// PaymentMethod é a forma de pagamento escolhida no fechamento da venda.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentPix          PaymentMethod = "PIX"
	PaymentInstallments PaymentMethod = "INSTALLMENTS"
)

// SaleItem é uma linha da venda. Nome e preço unitário são cópias do produto
// no momento da venda: alterações posteriores no catálogo não afetam o
// histórico.
type SaleItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Sale é uma venda concluída. Imutável após a criação: não existe caminho de
// edição nem de exclusão. CustomerName é um retrato do cliente na hora da
// venda, e Date é um timestamp ISO (RFC 3339) gravado na criação.
type Sale struct {
	ID                string        `json:"id"`
	CustomerID        string        `json:"customerId"`
	CustomerName      string        `json:"customerName"`
	Items             []SaleItem    `json:"items"`
	Total             float64       `json:"total"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	InstallmentsCount int           `json:"installmentsCount"`
	Date              string        `json:"date"`
}
