package domain

import "time"

// Period é o intervalo de datas [início, fim], inclusivo nas duas pontas,
// usado por todas as agregações de painel e relatório.
type Period struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Contains informa se a data de uma venda cai dentro do período.
func (p *Period) Contains(t time.Time) bool {
	if p == nil || p.StartDate == nil || p.EndDate == nil {
		return false
	}
	return !t.Before(*p.StartDate) && !t.After(*p.EndDate)
}

// Days retorna a quantidade de dias cobertos pelo período (mínimo 1),
// arredondando frações de dia para cima.
func (p *Period) Days() int {
	diff := p.EndDate.Sub(*p.StartDate)
	days := int(diff.Hours() / 24)
	if diff%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// CategoryShare é a fatia de uma categoria no mix de vendas do período.
// Share é a participação ponderada pela receita (0..1).
type CategoryShare struct {
	Name    string  `json:"name"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
	Share   float64 `json:"share"`
}

// PaymentShare agrega receita e volume de transações por forma de pagamento.
type PaymentShare struct {
	Method  PaymentMethod `json:"method"`
	Revenue float64       `json:"revenue"`
	Count   int           `json:"count"`
}

// DailyBucket é um ponto da série temporal diária. Profit só é preenchido na
// série de desempenho (KPI).
type DailyBucket struct {
	Date       string  `json:"date"`
	SalesCount int     `json:"salesCount"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
}

// ProductRanking é uma posição no ranking de produtos mais vendidos,
// acumulado por nome de produto.
type ProductRanking struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DashboardStats é o modelo de visão do painel de controle.
type DashboardStats struct {
	TotalSales           int              `json:"totalSales"`
	TotalRevenue         float64          `json:"totalRevenue"`
	TotalToReceive       float64          `json:"totalToReceive"`
	LowStockItems        int              `json:"lowStockItems"`
	SalesData            []*DailyBucket   `json:"salesData"`
	CategoryDistribution []*CategoryShare `json:"categoryDistribution"`
	Filters              *PeriodFilters   `json:"filters"`
}

// PerformanceCategory estende o mix de categorias com a contagem de vendas
// distintas que tocaram a categoria.
type PerformanceCategory struct {
	Name       string  `json:"name"`
	Units      int     `json:"units"`
	Revenue    float64 `json:"revenue"`
	SalesCount int     `json:"salesCount"`
}

// PerformanceReport é o modelo de visão da página de KPIs.
type PerformanceReport struct {
	TotalRevenue  float64                `json:"totalRevenue"`
	TotalCost     float64                `json:"totalCost"`
	NetProfit     float64                `json:"netProfit"`
	ProfitMargin  float64                `json:"profitMargin"`
	AverageTicket float64                `json:"averageTicket"`
	SalesCount    int                    `json:"salesCount"`
	Categories    []*PerformanceCategory `json:"categories"`
	Payments      []*PaymentShare        `json:"payments"`
	TopProducts   []*ProductRanking      `json:"topProducts"`
	History       []*DailyBucket         `json:"history"`
	Filters       *PeriodFilters         `json:"filters"`
}

// PeriodFilters ecoa o período aplicado, no formato de data simples, para o
// consumidor da API.
type PeriodFilters struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// NewPeriodFilters formata o período para resposta.
func NewPeriodFilters(p *Period) *PeriodFilters {
	if p == nil || p.StartDate == nil || p.EndDate == nil {
		return nil
	}
	return &PeriodFilters{
		StartDate: p.StartDate.Format(time.DateOnly),
		EndDate:   p.EndDate.Format(time.DateOnly),
	}
}
