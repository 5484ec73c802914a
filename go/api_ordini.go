package noleggioserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ordersapp "github.com/cantinota/noleggio-api/internal/domains/orders/application"
	ordersdomain "github.com/cantinota/noleggio-api/internal/domains/orders/domain"
	ordersports "github.com/cantinota/noleggio-api/internal/domains/orders/ports"
	apierrors "github.com/cantinota/noleggio-api/internal/shared/errors"
)

// OrderAPI implements the ordini endpoints.
type OrderAPI struct {
	service ordersports.Service
}

// NewOrderAPI wires dependencies.
func NewOrderAPI(service ordersports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Ordine is the transport representation of a rental order.
type Ordine struct {
	Id           int64   `json:"id"`
	ClienteId    int64   `json:"cliente_id"`
	MaterialeId  int64   `json:"materiale_id"`
	Quantita     int64   `json:"quantita"`
	DataConsegna string  `json:"data_consegna"`
	DataRitiro   string  `json:"data_ritiro"`
	Km           float64 `json:"km"`
	Totale       float64 `json:"totale"`
	Consegnato   bool    `json:"consegnato"`
	Ritirato     bool    `json:"ritirato"`
	Pagato       bool    `json:"pagato"`
	Note         string  `json:"note"`
}

// OrdineDettaglio joins the order with customer and material display data.
type OrdineDettaglio struct {
	Ordine
	Cliente             string `json:"cliente"`
	IndirizzoSpedizione string `json:"indirizzo_spedizione"`
	Materiale           string `json:"materiale"`
}

// RigaOrdine is one material line of a creation request.
type RigaOrdine struct {
	MaterialeId int64 `json:"materiale_id"`
	Quantita    int64 `json:"quantita"`
}

// CreaOrdineRequest accepts either a single material line or a materiali
// array; every created row shares the customer, dates, distance, and note.
type CreaOrdineRequest struct {
	ClienteId    int64        `json:"cliente_id"`
	MaterialeId  *int64       `json:"materiale_id"`
	Quantita     *int64       `json:"quantita"`
	Materiali    []RigaOrdine `json:"materiali"`
	DataConsegna string       `json:"data_consegna"`
	DataRitiro   string       `json:"data_ritiro"`
	Km           *float64     `json:"km"`
	Note         string       `json:"note"`
}

// AggiornaOrdineRequest fully replaces an order's rental data.
type AggiornaOrdineRequest struct {
	ClienteId    int64    `json:"cliente_id"`
	MaterialeId  int64    `json:"materiale_id"`
	Quantita     int64    `json:"quantita"`
	DataConsegna string   `json:"data_consegna"`
	DataRitiro   string   `json:"data_ritiro"`
	Km           *float64 `json:"km"`
	Note         string   `json:"note"`
}

// StatoOrdineRequest overwrites the three status flags together.
type StatoOrdineRequest struct {
	Consegnato bool `json:"consegnato"`
	Ritirato   bool `json:"ritirato"`
	Pagato     bool `json:"pagato"`
}

func toTransportOrdine(order *ordersdomain.Order) Ordine {
	return Ordine{
		Id:           order.ID,
		ClienteId:    order.CustomerID,
		MaterialeId:  order.MaterialID,
		Quantita:     order.Quantity,
		DataConsegna: formatDate(order.DeliveryDate),
		DataRitiro:   formatDate(order.PickupDate),
		Km:           order.Km,
		Totale:       order.Total,
		Consegnato:   order.Delivered,
		Ritirato:     order.Returned,
		Pagato:       order.Paid,
		Note:         order.Note,
	}
}

// Get /ordini
// List all orders joined with customer and material names
func (api *OrderAPI) ListOrdini(c *gin.Context) {
	listings, err := api.service.List(c.Request.Context())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	result := make([]OrdineDettaglio, 0, len(listings))
	for i := range listings {
		result = append(result, OrdineDettaglio{
			Ordine:              toTransportOrdine(&listings[i].Order),
			Cliente:             listings[i].CustomerName,
			IndirizzoSpedizione: listings[i].CustomerAddress,
			Materiale:           listings[i].MaterialName,
		})
	}
	c.JSON(http.StatusOK, result)
}

// Post /ordini
// Create one order per material line
func (api *OrderAPI) CreateOrdini(c *gin.Context) {
	var payload CreaOrdineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input, err := payload.toInput()
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.Create(c.Request.Context(), input)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	orders := make([]Ordine, 0, len(created))
	for _, order := range created {
		orders = append(orders, toTransportOrdine(order))
	}
	if len(payload.Materiali) > 0 {
		c.JSON(http.StatusCreated, gin.H{"message": "Ordini creati", "ordini": orders})
		return
	}
	c.JSON(http.StatusCreated, orders[0])
}

// Put /ordini/:id
// Replace an order's rental data and reprice it
func (api *OrderAPI) UpdateOrdine(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload AggiornaOrdineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	deliveryDate, pickupDate, err := parseDates(payload.DataConsegna, payload.DataRitiro)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, ordersports.UpdateOrderInput{
		CustomerID:   payload.ClienteId,
		MaterialID:   payload.MaterialeId,
		Quantity:     payload.Quantita,
		DeliveryDate: deliveryDate,
		PickupDate:   pickupDate,
		Km:           derefKm(payload.Km),
		Note:         payload.Note,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransportOrdine(updated))
}

// Patch /ordini/:id/stato
// Overwrite the delivery, return, and payment flags
func (api *OrderAPI) UpdateStatoOrdine(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload StatoOrdineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.SetStatus(c.Request.Context(), id, payload.Consegnato, payload.Ritirato, payload.Pagato)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransportOrdine(updated))
}

// Delete /ordini/:id
// Remove an order
func (api *OrderAPI) DeleteOrdine(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ordine eliminato"})
}

func (payload CreaOrdineRequest) toInput() (ordersports.CreateOrderInput, error) {
	deliveryDate, pickupDate, err := parseDates(payload.DataConsegna, payload.DataRitiro)
	if err != nil {
		return ordersports.CreateOrderInput{}, err
	}
	lines := make([]ordersports.OrderLine, 0, len(payload.Materiali)+1)
	if len(payload.Materiali) > 0 {
		for _, line := range payload.Materiali {
			lines = append(lines, ordersports.OrderLine{MaterialID: line.MaterialeId, Quantity: line.Quantita})
		}
	} else {
		if payload.MaterialeId == nil || payload.Quantita == nil {
			return ordersports.CreateOrderInput{}, errors.New("materiale_id e quantita sono obbligatori")
		}
		lines = append(lines, ordersports.OrderLine{MaterialID: *payload.MaterialeId, Quantity: *payload.Quantita})
	}
	return ordersports.CreateOrderInput{
		CustomerID:   payload.ClienteId,
		Lines:        lines,
		DeliveryDate: deliveryDate,
		PickupDate:   pickupDate,
		Km:           derefKm(payload.Km),
		Note:         payload.Note,
	}, nil
}

func respondOrderError(c *gin.Context, err error) {
	var unknownMaterial *ordersapp.UnknownMaterialError
	switch {
	case errors.As(err, &unknownMaterial):
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("Materiale non valido"))
	case errors.Is(err, ordersapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, ordersports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	default:
		respondProblem(c, apierrors.ErrInternal)
	}
}

func parseDates(delivery, pickup string) (time.Time, time.Time, error) {
	deliveryDate, err := time.Parse(time.DateOnly, delivery)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("data_consegna non valida, atteso formato YYYY-MM-DD")
	}
	pickupDate, err := time.Parse(time.DateOnly, pickup)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("data_ritiro non valida, atteso formato YYYY-MM-DD")
	}
	return deliveryDate, pickupDate, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func derefKm(km *float64) float64 {
	if km == nil {
		return 0
	}
	return *km
}
