// Package reporting deriva os modelos de visão do painel e dos relatórios a
// partir dos snapshots das coleções. Todas as funções são puras: recebem os
// dados e o período, não mutam nada e nunca falham por referência pendurada —
// produto ou cliente removido vira rótulo de fallback, porque o histórico
// precisa continuar legível depois de mudanças no catálogo.
package reporting

import (
	"sort"
	"time"

	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/pkg/utils"
)

// dashboardChartDays limita o gráfico do painel aos dias mais recentes do
// período; os dias elididos continuam contando nos totais.
const dashboardChartDays = 10

// FilterByPeriod retorna as vendas cuja data cai dentro do período,
// comparando o timestamp gravado sem tratamento de fuso.
func FilterByPeriod(sales []*domain.Sale, period *domain.Period) []*domain.Sale {
	filtered := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		date, err := time.Parse(time.RFC3339, sale.Date)
		if err != nil {
			continue
		}
		if period.Contains(date) {
			filtered = append(filtered, sale)
		}
	}
	return filtered
}

// TotalRevenue soma o total das vendas já filtradas.
func TotalRevenue(sales []*domain.Sale) float64 {
	var total float64
	for _, sale := range sales {
		total += sale.Total
	}
	return total
}

// TotalToReceive soma todas as parcelas não pagas, sem filtro de período.
func TotalToReceive(installments []*domain.Installment) float64 {
	var total float64
	for _, installment := range installments {
		if installment.Status != domain.StatusPaid {
			total += installment.Amount
		}
	}
	return total
}

// LowStockProducts lista os produtos no limiar de reposição ou abaixo dele.
// Avaliado sempre sobre o snapshot atual, independente do período do painel.
func LowStockProducts(products []*domain.Product) []*domain.Product {
	low := make([]*domain.Product, 0)
	for _, product := range products {
		if product.LowStock() {
			low = append(low, product)
		}
	}
	return low
}

// CategoryMix acumula unidades e receita por categoria sobre os itens das
// vendas filtradas. Item de produto removido entra na categoria de fallback;
// nada é descartado. O resultado sai ordenado por receita decrescente, com a
// participação ponderada pela receita.
func CategoryMix(sales []*domain.Sale, products []*domain.Product) []*domain.CategoryShare {
	byID := productIndex(products)

	mix := make(map[string]*domain.CategoryShare)
	order := make([]string, 0)

	for _, sale := range sales {
		for _, item := range sale.Items {
			category := domain.CategoryFallback
			if product, ok := byID[item.ProductID]; ok {
				category = product.Category
			}

			share, ok := mix[category]
			if !ok {
				share = &domain.CategoryShare{Name: category}
				mix[category] = share
				order = append(order, category)
			}
			share.Units += item.Quantity
			share.Revenue += item.Total
		}
	}

	shares := make([]*domain.CategoryShare, 0, len(order))
	var totalRevenue float64
	for _, category := range order {
		shares = append(shares, mix[category])
		totalRevenue += mix[category].Revenue
	}

	if totalRevenue > 0 {
		for _, share := range shares {
			share.Share = share.Revenue / totalRevenue
		}
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Revenue > shares[j].Revenue
	})

	return shares
}

// PaymentMix acumula receita e volume por forma de pagamento. Formas sem
// transação no período ficam de fora; ordenação por receita decrescente.
func PaymentMix(sales []*domain.Sale) []*domain.PaymentShare {
	mix := make(map[domain.PaymentMethod]*domain.PaymentShare)
	order := make([]domain.PaymentMethod, 0)

	for _, sale := range sales {
		share, ok := mix[sale.PaymentMethod]
		if !ok {
			share = &domain.PaymentShare{Method: sale.PaymentMethod}
			mix[sale.PaymentMethod] = share
			order = append(order, sale.PaymentMethod)
		}
		share.Revenue += sale.Total
		share.Count++
	}

	shares := make([]*domain.PaymentShare, 0, len(order))
	for _, method := range order {
		shares = append(shares, mix[method])
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Revenue > shares[j].Revenue
	})

	return shares
}

// DashboardSeries monta os buckets diários do gráfico do painel: no máximo
// os 10 dias mais recentes do período, do mais antigo para o mais novo. Cada
// venda entra no bucket cujo dia é prefixo do timestamp gravado.
func DashboardSeries(sales []*domain.Sale, period *domain.Period) []*domain.DailyBucket {
	days := period.Days()
	if days > dashboardChartDays {
		days = dashboardChartDays
	}

	buckets := make([]*domain.DailyBucket, 0, days)
	for i := 0; i < days; i++ {
		day := period.EndDate.AddDate(0, 0, -(days - 1 - i))
		bucket := &domain.DailyBucket{Date: day.Format(time.DateOnly)}

		for _, sale := range sales {
			if utils.DayKey(sale.Date) == bucket.Date {
				bucket.SalesCount++
				bucket.Revenue += sale.Total
			}
		}

		buckets = append(buckets, bucket)
	}

	return buckets
}

// PerformanceSeries monta a série diária de receita e lucro para o relatório
// de KPIs: todos os dias do período, sem teto. O lucro usa o custo atual do
// produto, inclusive para dias antigos — comportamento herdado, mantido de
// propósito (ver testes).
func PerformanceSeries(sales []*domain.Sale, products []*domain.Product, period *domain.Period) []*domain.DailyBucket {
	byID := productIndex(products)
	days := period.Days()

	buckets := make([]*domain.DailyBucket, 0, days)
	for i := 0; i < days; i++ {
		day := period.StartDate.AddDate(0, 0, i)
		bucket := &domain.DailyBucket{Date: day.Format(time.DateOnly)}

		for _, sale := range sales {
			if utils.DayKey(sale.Date) != bucket.Date {
				continue
			}
			bucket.SalesCount++
			bucket.Revenue += sale.Total
			for _, item := range sale.Items {
				if product, ok := byID[item.ProductID]; ok {
					bucket.Profit -= product.Cost * float64(item.Quantity)
				}
			}
		}
		bucket.Profit += bucket.Revenue

		buckets = append(buckets, bucket)
	}

	return buckets
}

// TopProducts ranqueia os produtos mais vendidos por unidades no período,
// acumulando por nome (produtos homônimos se fundem) e cortando no top 5.
func TopProducts(sales []*domain.Sale) []*domain.ProductRanking {
	units := make(map[string]int)
	order := make([]string, 0)

	for _, sale := range sales {
		for _, item := range sale.Items {
			if _, ok := units[item.ProductName]; !ok {
				order = append(order, item.ProductName)
			}
			units[item.ProductName] += item.Quantity
		}
	}

	ranking := make([]*domain.ProductRanking, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, &domain.ProductRanking{Name: name, Quantity: units[name]})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})

	if len(ranking) > 5 {
		ranking = ranking[:5]
	}

	return ranking
}

// CategoryPerformance estende o mix de categorias com a contagem de vendas
// distintas que tocaram cada categoria.
func CategoryPerformance(sales []*domain.Sale, products []*domain.Product) []*domain.PerformanceCategory {
	byID := productIndex(products)

	stats := make(map[string]*domain.PerformanceCategory)
	order := make([]string, 0)

	for _, sale := range sales {
		touched := make(map[string]bool)
		for _, item := range sale.Items {
			category := domain.CategoryFallback
			if product, ok := byID[item.ProductID]; ok {
				category = product.Category
			}

			entry, ok := stats[category]
			if !ok {
				entry = &domain.PerformanceCategory{Name: category}
				stats[category] = entry
				order = append(order, category)
			}
			entry.Units += item.Quantity
			entry.Revenue += item.Total
			touched[category] = true
		}
		for category := range touched {
			stats[category].SalesCount++
		}
	}

	categories := make([]*domain.PerformanceCategory, 0, len(order))
	for _, category := range order {
		categories = append(categories, stats[category])
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Revenue > categories[j].Revenue
	})

	return categories
}

// TotalCost soma o custo das unidades vendidas, resolvendo o custo pelo
// snapshot atual do catálogo; itens de produtos removidos não somam custo.
func TotalCost(sales []*domain.Sale, products []*domain.Product) float64 {
	byID := productIndex(products)

	var total float64
	for _, sale := range sales {
		for _, item := range sale.Items {
			if product, ok := byID[item.ProductID]; ok {
				total += product.Cost * float64(item.Quantity)
			}
		}
	}
	return total
}

func productIndex(products []*domain.Product) map[string]*domain.Product {
	byID := make(map[string]*domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	return byID
}
