package selling

import (
	"time"

	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/pkg/utils"
)

// CartItem é uma linha do carrinho: produto, quantidade e o preço unitário
// congelado no momento em que o item entrou no carrinho.
type CartItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// CartTotal calcula o total de cada linha (quantidade × preço unitário) e o
// total geral do carrinho.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// SplitInstallments divide o total em n parcelas mensais iguais. Cada parcela
// recebe total/n arredondado a centavos e a última absorve a sobra do
// arredondamento, de modo que a soma das parcelas feche exatamente no total.
// Os vencimentos são mensais, o primeiro um mês após a data da venda.
func SplitInstallments(saleID string, total float64, n int, saleDate time.Time, newID func() (string, error)) ([]*domain.Installment, error) {
	if n < 1 {
		return nil, ErrInvalidInstallments
	}

	base := utils.RoundWithTwoDecimalPlace(total / float64(n))

	installments := make([]*domain.Installment, 0, n)
	for number := 1; number <= n; number++ {
		amount := base
		if number == n {
			amount = utils.RoundWithTwoDecimalPlace(total - base*float64(n-1))
		}

		id, err := newID()
		if err != nil {
			return nil, err
		}

		installments = append(installments, &domain.Installment{
			ID:      id,
			SaleID:  saleID,
			Number:  number,
			Amount:  amount,
			DueDate: saleDate.AddDate(0, number, 0).Format(time.RFC3339),
			Status:  domain.StatusPending,
		})
	}

	return installments, nil
}
