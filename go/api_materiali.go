package noleggioserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	materialsapp "github.com/cantinota/noleggio-api/internal/domains/materials/application"
	materialsdomain "github.com/cantinota/noleggio-api/internal/domains/materials/domain"
	materialsports "github.com/cantinota/noleggio-api/internal/domains/materials/ports"
	apierrors "github.com/cantinota/noleggio-api/internal/shared/errors"
)

// MaterialAPI implements the materiali endpoints.
type MaterialAPI struct {
	service *materialsapp.Service
}

// NewMaterialAPI wires dependencies.
func NewMaterialAPI(service *materialsapp.Service) MaterialAPI {
	return MaterialAPI{service: service}
}

// Materiale is the transport representation of a rental material.
type Materiale struct {
	Id                  int64   `json:"id"`
	Nome                string  `json:"nome"`
	QuantitaDisponibile int64   `json:"quantita_disponibile"`
	PrezzoWeekend       float64 `json:"prezzo_weekend"`
}

// Disponibilita is the derived occupancy row for one material.
type Disponibilita struct {
	Id          int64  `json:"id"`
	Nome        string `json:"nome"`
	StockTotale int64  `json:"stock_totale"`
	Occupati    int64  `json:"occupati"`
	Disponibili int64  `json:"disponibili"`
	LowStock    bool   `json:"low_stock"`
}

func toTransportMateriale(material *materialsdomain.Material) Materiale {
	return Materiale{
		Id:                  material.ID,
		Nome:                material.Name,
		QuantitaDisponibile: material.StockTotal,
		PrezzoWeekend:       material.WeekendPrice,
	}
}

func fromTransportMateriale(payload Materiale) *materialsdomain.Material {
	return &materialsdomain.Material{
		ID:           payload.Id,
		Name:         payload.Nome,
		StockTotal:   payload.QuantitaDisponibile,
		WeekendPrice: payload.PrezzoWeekend,
	}
}

// Get /materiali
// List all materials
func (api *MaterialAPI) ListMateriali(c *gin.Context) {
	materials, err := api.service.List(c.Request.Context())
	if err != nil {
		respondMaterialError(c, err)
		return
	}
	result := make([]Materiale, 0, len(materials))
	for i := range materials {
		result = append(result, toTransportMateriale(&materials[i]))
	}
	c.JSON(http.StatusOK, result)
}

// Get /materiali/disponibilita
// Report per-material occupancy derived from open rentals
func (api *MaterialAPI) GetDisponibilita(c *gin.Context) {
	rows, err := api.service.Availability(c.Request.Context())
	if err != nil {
		respondMaterialError(c, err)
		return
	}
	result := make([]Disponibilita, 0, len(rows))
	for _, row := range rows {
		result = append(result, Disponibilita{
			Id:          row.MaterialID,
			Nome:        row.Name,
			StockTotale: row.StockTotal,
			Occupati:    row.Occupied,
			Disponibili: row.Available,
			LowStock:    row.LowStock,
		})
	}
	c.JSON(http.StatusOK, result)
}

// Post /materiali
// Register a new material
func (api *MaterialAPI) AddMateriale(c *gin.Context) {
	var payload Materiale
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.Create(c.Request.Context(), fromTransportMateriale(payload))
	if err != nil {
		respondMaterialError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTransportMateriale(created))
}

// Put /materiali/:id
// Replace a material's data
func (api *MaterialAPI) UpdateMateriale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload Materiale
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, fromTransportMateriale(payload))
	if err != nil {
		respondMaterialError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransportMateriale(updated))
}

// Delete /materiali/:id
// Remove a material not referenced by orders
func (api *MaterialAPI) DeleteMateriale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondMaterialError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Materiale eliminato"})
}

func respondMaterialError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, materialsapp.ErrHasOrders):
		respondProblem(c, apierrors.ErrConflict.WithDetail("Materiale usato in ordini: non eliminabile"))
	case errors.Is(err, materialsapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, materialsports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	default:
		respondProblem(c, apierrors.ErrInternal)
	}
}
