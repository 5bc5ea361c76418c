package selling

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efparfum/perfumaria-api/internal/domain"
)

func sequentialIDs() func() (string, error) {
	counter := 0
	return func() (string, error) {
		counter++
		return fmt.Sprintf("id-%03d", counter), nil
	}
}

func TestSplitInstallments(t *testing.T) {
	saleDate := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		total    float64
		n        int
		expected []float64
	}{
		{
			name:     "Divisão exata não gera sobra",
			total:    450.00,
			n:        3,
			expected: []float64{150.00, 150.00, 150.00},
		},
		{
			name:     "Sobra de arredondamento vai para a última parcela",
			total:    1240.00,
			n:        3,
			expected: []float64{413.33, 413.33, 413.34},
		},
		{
			name:     "Parcela única recebe o total",
			total:    100.00,
			n:        1,
			expected: []float64{100.00},
		},
		{
			name:     "Centavo ímpar em duas parcelas",
			total:    99.99,
			n:        2,
			expected: []float64{50.00, 49.99},
		},
		{
			name:     "Dízima em três parcelas",
			total:    10.00,
			n:        3,
			expected: []float64{3.33, 3.33, 3.34},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			installments, err := SplitInstallments("sale-1", tt.total, tt.n, saleDate, sequentialIDs())
			require.NoError(t, err)
			require.Len(t, installments, tt.n)

			// As n-1 primeiras parcelas têm o valor base; a última absorve a sobra
			base := tt.expected[0]
			last := tt.expected[len(tt.expected)-1]
			for i, installment := range installments {
				if i == tt.n-1 {
					assert.Equal(t, last, installment.Amount)
				} else {
					assert.Equal(t, base, installment.Amount)
				}
			}

			// A soma das parcelas fecha exatamente no total
			var sum float64
			for _, installment := range installments {
				sum += installment.Amount
			}
			assert.InDelta(t, tt.total, sum, 0.001)
		})
	}
}

func TestSplitInstallments_SumAlwaysClosesOnTotal(t *testing.T) {
	saleDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	totals := []float64{1240.00, 999.99, 733.10, 85.50, 1.00}
	counts := []int{2, 3, 4, 5, 6, 10, 12}

	for _, total := range totals {
		for _, n := range counts {
			installments, err := SplitInstallments("sale-1", total, n, saleDate, sequentialIDs())
			require.NoError(t, err)

			var sum float64
			for _, installment := range installments {
				sum += installment.Amount
			}
			assert.InDeltaf(t, total, sum, 0.001, "total=%v n=%d", total, n)
		}
	}
}

func TestSplitInstallments_MonthlyDueDates(t *testing.T) {
	saleDate := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	installments, err := SplitInstallments("sale-1", 300, 3, saleDate, sequentialIDs())
	require.NoError(t, err)

	for i, installment := range installments {
		expected := saleDate.AddDate(0, i+1, 0).Format(time.RFC3339)
		assert.Equal(t, expected, installment.DueDate)
		assert.Equal(t, i+1, installment.Number)
		assert.Equal(t, domain.StatusPending, installment.Status)
		assert.Equal(t, "sale-1", installment.SaleID)
	}
}

func TestSplitInstallments_InvalidCount(t *testing.T) {
	_, err := SplitInstallments("sale-1", 100, 0, time.Now(), sequentialIDs())
	assert.ErrorIs(t, err, ErrInvalidInstallments)
}

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{ProductID: "p1", Quantity: 2, UnitPrice: 150.00},
		{ProductID: "p2", Quantity: 1, UnitPrice: 89.90},
	}

	assert.InDelta(t, 389.90, CartTotal(items), 0.001)
	assert.Zero(t, CartTotal(nil))
}
