package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/efparfum/perfumaria-api/internal/domain"
	"github.com/efparfum/perfumaria-api/internal/usecases/reporting"
	"github.com/efparfum/perfumaria-api/pkg/apiErrors"
	"github.com/efparfum/perfumaria-api/pkg/utils"
)

// periodFromRequest monta o período a partir dos parâmetros start_date e
// end_date (formato 2006-01-02). A data final é levada para o último instante
// do dia, para que o limite seja inclusivo.
func periodFromRequest(r *http.Request) (*domain.Period, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"start_date": r.URL.Query().Get("start_date"),
			"error":      err.Error(),
		}).Warn("reports: invalid start_date parameter")
		return nil, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"end_date": r.URL.Query().Get("end_date"),
			"error":    err.Error(),
		}).Warn("reports: invalid end_date parameter")
		return nil, err
	}

	period := &domain.Period{StartDate: startDate, EndDate: endDate}
	if endDate != nil {
		end := utils.EndOfDay(*endDate)
		period.EndDate = &end
	}

	return period, nil
}

// GetDashboard monta o painel de controle para o período informado
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de data inválido, use YYYY-MM-DD", nil)
			return
		}

		stats, err := service.Dashboard(period)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		respondJSON(w, r, http.StatusOK, stats)
	}
}

// GetPerformance monta o relatório de desempenho (KPIs) para o período
func GetPerformance(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de data inválido, use YYYY-MM-DD", nil)
			return
		}

		report, err := service.Performance(period)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		respondJSON(w, r, http.StatusOK, report)
	}
}
