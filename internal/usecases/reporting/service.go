package reporting

import (
	"fmt"

	"github.com/efparfum/perfumaria-api/infrastructure/repository"
	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/pkg/utils"
)

// Reporter produz os modelos de visão do painel e do relatório de KPIs.
type Reporter interface {
	Dashboard(period *domain.Period) (*domain.DashboardStats, error)
	Performance(period *domain.Period) (*domain.PerformanceReport, error)
}

type Service struct {
	saleRepo        repository.SaleRepository
	productRepo     repository.ProductRepository
	installmentRepo repository.InstallmentRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	installmentRepo repository.InstallmentRepository,
) Reporter {
	return &Service{
		saleRepo:        saleRepo,
		productRepo:     productRepo,
		installmentRepo: installmentRepo,
	}
}

func validatePeriod(period *domain.Period) error {
	if period == nil || period.StartDate == nil || period.EndDate == nil {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}
	if period.StartDate.After(*period.EndDate) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}
	return nil
}

// Dashboard monta o painel de controle para o período: totais de receita e
// volume, contas a receber (todas as parcelas abertas, sem filtro de data),
// alerta de estoque sobre o snapshot atual, série diária e mix de categorias.
func (s *Service) Dashboard(period *domain.Period) (*domain.DashboardStats, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	allSales, err := s.saleRepo.List()
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}

	installments, err := s.installmentRepo.List()
	if err != nil {
		return nil, err
	}

	sales := FilterByPeriod(allSales, period)

	return &domain.DashboardStats{
		TotalSales:           len(sales),
		TotalRevenue:         TotalRevenue(sales),
		TotalToReceive:       TotalToReceive(installments),
		LowStockItems:        len(LowStockProducts(products)),
		SalesData:            DashboardSeries(sales, period),
		CategoryDistribution: CategoryMix(sales, products),
		Filters:              domain.NewPeriodFilters(period),
	}, nil
}

// Performance monta o relatório de KPIs para o período. O custo e o lucro
// usam o custo atual do catálogo, mesmo para vendas antigas.
func (s *Service) Performance(period *domain.Period) (*domain.PerformanceReport, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	allSales, err := s.saleRepo.List()
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}

	sales := FilterByPeriod(allSales, period)

	totalRevenue := TotalRevenue(sales)
	totalCost := TotalCost(sales, products)
	netProfit := totalRevenue - totalCost

	var profitMargin float64
	if totalRevenue > 0 {
		profitMargin = utils.RoundWithTwoDecimalPlace(netProfit / totalRevenue * 100)
	}

	var averageTicket float64
	if len(sales) > 0 {
		averageTicket = utils.RoundWithTwoDecimalPlace(totalRevenue / float64(len(sales)))
	}

	return &domain.PerformanceReport{
		TotalRevenue:  totalRevenue,
		TotalCost:     totalCost,
		NetProfit:     netProfit,
		ProfitMargin:  profitMargin,
		AverageTicket: averageTicket,
		SalesCount:    len(sales),
		Categories:    CategoryPerformance(sales, products),
		Payments:      PaymentMix(sales),
		TopProducts:   TopProducts(sales),
		History:       PerformanceSeries(sales, products, period),
		Filters:       domain.NewPeriodFilters(period),
	}, nil
}
