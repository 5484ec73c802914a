package noleggioserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordersports "github.com/cantinota/noleggio-api/internal/domains/orders/ports"
)

// ReportAPI implements the reporting endpoints.
type ReportAPI struct {
	service ordersports.Service
}

// NewReportAPI wires dependencies.
func NewReportAPI(service ordersports.Service) ReportAPI {
	return ReportAPI{service: service}
}

// ProfittoMensile is one month of paid revenue.
type ProfittoMensile struct {
	AnnoMese     string  `json:"anno_mese"`
	Mese         string  `json:"mese"`
	TotalePagato float64 `json:"totale_pagato"`
}

// StatisticaMateriale counts orders referencing a material.
type StatisticaMateriale struct {
	Nome         string `json:"nome"`
	NumeroOrdini int64  `json:"numero_ordini"`
}

// Get /profitti/mensili
// Paid revenue grouped by delivery month
func (api *ReportAPI) ProfittiMensili(c *gin.Context) {
	months, err := api.service.MonthlyRevenue(c.Request.Context())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	result := make([]ProfittoMensile, 0, len(months))
	for _, month := range months {
		result = append(result, ProfittoMensile{
			AnnoMese:     month.YearMonth,
			Mese:         month.Label,
			TotalePagato: month.TotalPaid,
		})
	}
	c.JSON(http.StatusOK, result)
}

// Get /statistiche/materiali
// Order counts per material, most used first
func (api *ReportAPI) StatisticheMateriali(c *gin.Context) {
	stats, err := api.service.MaterialStats(c.Request.Context())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	result := make([]StatisticaMateriale, 0, len(stats))
	for _, stat := range stats {
		result = append(result, StatisticaMateriale{
			Nome:         stat.Name,
			NumeroOrdini: stat.Orders,
		})
	}
	c.JSON(http.StatusOK, result)
}
