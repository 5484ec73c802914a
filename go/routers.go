package noleggioserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and pattern to a handler. Protected routes go
// through the bearer-token middleware before the handler runs.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
	Protected   bool
}

// ApiHandleFunctions groups the handler sets registered on the router.
type ApiHandleFunctions struct {
	AuthAPI     AuthAPI
	CustomerAPI CustomerAPI
	MaterialAPI MaterialAPI
	OrderAPI    OrderAPI
	ReportAPI   ReportAPI
}

// NewRouter returns a gin engine with all API routes registered.
func NewRouter(handleFunctions ApiHandleFunctions, authMiddleware gin.HandlerFunc) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions, authMiddleware)
}

// NewRouterWithGinEngine registers all API routes on an existing engine, so
// callers can install global middleware before the routes bind.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions, authMiddleware gin.HandlerFunc) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		chain := make([]gin.HandlerFunc, 0, 2)
		if route.Protected && authMiddleware != nil {
			chain = append(chain, authMiddleware)
		}
		chain = append(chain, route.HandlerFunc)
		router.Handle(route.Method, route.Pattern, chain...)
	}
	return router
}

// DefaultHandleFunc is the placeholder for unimplemented routes.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			Name:        "Health",
			Method:      http.MethodGet,
			Pattern:     "/",
			HandlerFunc: handleFunctions.AuthAPI.Health,
		},
		{
			Name:        "Login",
			Method:      http.MethodPost,
			Pattern:     "/login",
			HandlerFunc: handleFunctions.AuthAPI.Login,
		},
		{
			Name:        "ListClienti",
			Method:      http.MethodGet,
			Pattern:     "/clienti",
			HandlerFunc: handleFunctions.CustomerAPI.ListClienti,
			Protected:   true,
		},
		{
			Name:        "AddCliente",
			Method:      http.MethodPost,
			Pattern:     "/clienti/add",
			HandlerFunc: handleFunctions.CustomerAPI.AddCliente,
			Protected:   true,
		},
		{
			Name:        "UpdateCliente",
			Method:      http.MethodPut,
			Pattern:     "/clienti/:id",
			HandlerFunc: handleFunctions.CustomerAPI.UpdateCliente,
			Protected:   true,
		},
		{
			Name:        "DeleteCliente",
			Method:      http.MethodDelete,
			Pattern:     "/clienti/:id",
			HandlerFunc: handleFunctions.CustomerAPI.DeleteCliente,
			Protected:   true,
		},
		{
			Name:        "ListMateriali",
			Method:      http.MethodGet,
			Pattern:     "/materiali",
			HandlerFunc: handleFunctions.MaterialAPI.ListMateriali,
			Protected:   true,
		},
		{
			Name:        "GetDisponibilita",
			Method:      http.MethodGet,
			Pattern:     "/materiali/disponibilita",
			HandlerFunc: handleFunctions.MaterialAPI.GetDisponibilita,
			Protected:   true,
		},
		{
			Name:        "AddMateriale",
			Method:      http.MethodPost,
			Pattern:     "/materiali",
			HandlerFunc: handleFunctions.MaterialAPI.AddMateriale,
			Protected:   true,
		},
		{
			Name:        "UpdateMateriale",
			Method:      http.MethodPut,
			Pattern:     "/materiali/:id",
			HandlerFunc: handleFunctions.MaterialAPI.UpdateMateriale,
			Protected:   true,
		},
		{
			Name:        "DeleteMateriale",
			Method:      http.MethodDelete,
			Pattern:     "/materiali/:id",
			HandlerFunc: handleFunctions.MaterialAPI.DeleteMateriale,
			Protected:   true,
		},
		{
			Name:        "ListOrdini",
			Method:      http.MethodGet,
			Pattern:     "/ordini",
			HandlerFunc: handleFunctions.OrderAPI.ListOrdini,
			Protected:   true,
		},
		{
			Name:        "CreateOrdini",
			Method:      http.MethodPost,
			Pattern:     "/ordini",
			HandlerFunc: handleFunctions.OrderAPI.CreateOrdini,
			Protected:   true,
		},
		{
			Name:        "UpdateOrdine",
			Method:      http.MethodPut,
			Pattern:     "/ordini/:id",
			HandlerFunc: handleFunctions.OrderAPI.UpdateOrdine,
			Protected:   true,
		},
		{
			Name:        "UpdateStatoOrdine",
			Method:      http.MethodPatch,
			Pattern:     "/ordini/:id/stato",
			HandlerFunc: handleFunctions.OrderAPI.UpdateStatoOrdine,
			Protected:   true,
		},
		{
			Name:        "DeleteOrdine",
			Method:      http.MethodDelete,
			Pattern:     "/ordini/:id",
			HandlerFunc: handleFunctions.OrderAPI.DeleteOrdine,
			Protected:   true,
		},
		{
			Name:        "ProfittiMensili",
			Method:      http.MethodGet,
			Pattern:     "/profitti/mensili",
			HandlerFunc: handleFunctions.ReportAPI.ProfittiMensili,
			Protected:   true,
		},
		{
			Name:        "StatisticheMateriali",
			Method:      http.MethodGet,
			Pattern:     "/statistiche/materiali",
			HandlerFunc: handleFunctions.ReportAPI.StatisticheMateriali,
			Protected:   true,
		},
	}
}
