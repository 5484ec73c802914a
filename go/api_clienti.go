package noleggioserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	customersapp "github.com/cantinota/noleggio-api/internal/domains/customers/application"
	customersdomain "github.com/cantinota/noleggio-api/internal/domains/customers/domain"
	customersports "github.com/cantinota/noleggio-api/internal/domains/customers/ports"
	apierrors "github.com/cantinota/noleggio-api/internal/shared/errors"
)

// CustomerAPI implements the clienti endpoints.
type CustomerAPI struct {
	service *customersapp.Service
}

// NewCustomerAPI wires dependencies.
func NewCustomerAPI(service *customersapp.Service) CustomerAPI {
	return CustomerAPI{service: service}
}

// Cliente is the transport representation of a customer.
type Cliente struct {
	Id                  int64  `json:"id"`
	Nome                string `json:"nome"`
	IndirizzoSpedizione string `json:"indirizzo_spedizione"`
	Telefono            string `json:"telefono"`
}

func toTransportCliente(customer *customersdomain.Customer) Cliente {
	return Cliente{
		Id:                  customer.ID,
		Nome:                customer.Name,
		IndirizzoSpedizione: customer.ShippingAddress,
		Telefono:            customer.Phone,
	}
}

func fromTransportCliente(payload Cliente) *customersdomain.Customer {
	return &customersdomain.Customer{
		ID:              payload.Id,
		Name:            payload.Nome,
		ShippingAddress: payload.IndirizzoSpedizione,
		Phone:           payload.Telefono,
	}
}

// Get /clienti
// List all customers
func (api *CustomerAPI) ListClienti(c *gin.Context) {
	customers, err := api.service.List(c.Request.Context())
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	result := make([]Cliente, 0, len(customers))
	for i := range customers {
		result = append(result, toTransportCliente(&customers[i]))
	}
	c.JSON(http.StatusOK, result)
}

// Post /clienti/add
// Register a new customer
func (api *CustomerAPI) AddCliente(c *gin.Context) {
	var payload Cliente
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.service.Create(c.Request.Context(), fromTransportCliente(payload))
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTransportCliente(created))
}

// Put /clienti/:id
// Replace a customer's data
func (api *CustomerAPI) UpdateCliente(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload Cliente
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, fromTransportCliente(payload))
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransportCliente(updated))
}

// Delete /clienti/:id
// Remove a customer without orders
func (api *CustomerAPI) DeleteCliente(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente eliminato"})
}

func respondCustomerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customersapp.ErrHasOrders):
		respondProblem(c, apierrors.ErrConflict.WithDetail("Cliente con ordini: non eliminabile"))
	case errors.Is(err, customersapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, customersports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	default:
		respondProblem(c, apierrors.ErrInternal)
	}
}

// parseIDParam reads the numeric :id segment, replying 400 on garbage.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, errors.New("id non valido"))
		return 0, false
	}
	return id, true
}
