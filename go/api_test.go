package noleggioserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmemory "github.com/cantinota/noleggio-api/internal/domains/auth/adapters/memory"
	"github.com/cantinota/noleggio-api/internal/domains/auth/adapters/token"
	authapp "github.com/cantinota/noleggio-api/internal/domains/auth/application"
	authdomain "github.com/cantinota/noleggio-api/internal/domains/auth/domain"

	customersmemory "github.com/cantinota/noleggio-api/internal/domains/customers/adapters/memory"
	customersrentals "github.com/cantinota/noleggio-api/internal/domains/customers/adapters/rentals"
	customersapp "github.com/cantinota/noleggio-api/internal/domains/customers/application"

	materialsmemory "github.com/cantinota/noleggio-api/internal/domains/materials/adapters/memory"
	materialsrentals "github.com/cantinota/noleggio-api/internal/domains/materials/adapters/rentals"
	materialsapp "github.com/cantinota/noleggio-api/internal/domains/materials/application"

	orderscatalog "github.com/cantinota/noleggio-api/internal/domains/orders/adapters/catalog"
	ordersdirectory "github.com/cantinota/noleggio-api/internal/domains/orders/adapters/directory"
	ordersmemory "github.com/cantinota/noleggio-api/internal/domains/orders/adapters/memory"
	ordersapp "github.com/cantinota/noleggio-api/internal/domains/orders/application"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orderRepo := ordersmemory.NewRepository()
	materialRepo := materialsmemory.NewRepository()
	customerRepo := customersmemory.NewRepository()
	adminRepo := authmemory.NewRepository()

	hash, err := authdomain.HashPassword("segreto")
	require.NoError(t, err)
	_, err = adminRepo.Save(t.Context(), &authdomain.Admin{Username: "admin", Password: hash})
	require.NoError(t, err)

	tokens := token.NewJWT("test-secret", time.Hour)
	orderService := ordersapp.NewService(
		orderRepo,
		orderscatalog.NewCatalog(materialRepo),
		ordersdirectory.NewDirectory(customerRepo),
	)
	handlers := ApiHandleFunctions{
		AuthAPI:     NewAuthAPI(authapp.NewService(adminRepo, tokens)),
		CustomerAPI: NewCustomerAPI(customersapp.NewService(customerRepo, customersrentals.NewBook(orderRepo))),
		MaterialAPI: NewMaterialAPI(materialsapp.NewService(materialRepo, materialsrentals.NewBook(orderRepo))),
		OrderAPI:    NewOrderAPI(orderService),
		ReportAPI:   NewReportAPI(orderService),
	}
	return NewRouter(handlers, AuthMiddleware(tokens))
}

func doJSON(t *testing.T, router *gin.Engine, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/login", "", LoginRequest{Username: "admin", Password: "segreto"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth_NoTokenRequired(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Noleggio backend attivo")
}

func TestLogin_BadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/login", "", LoginRequest{Username: "admin", Password: "sbagliata"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Credenziali non valide")
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/clienti", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/clienti", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token non valido")
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	bearer := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/clienti/add", bearer, Cliente{Nome: "Mario Rossi", IndirizzoSpedizione: "Via Roma 1", Telefono: "333"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var cliente Cliente
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cliente))

	rec = doJSON(t, router, http.MethodPost, "/materiali", bearer, Materiale{Nome: "Sedie", QuantitaDisponibile: 100, PrezzoWeekend: 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	var sedie Materiale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sedie))

	rec = doJSON(t, router, http.MethodPost, "/materiali", bearer, Materiale{Nome: "Tavoli", QuantitaDisponibile: 10, PrezzoWeekend: 10})
	require.Equal(t, http.StatusCreated, rec.Code)
	var tavoli Materiale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tavoli))

	km := 60.0
	rec = doJSON(t, router, http.MethodPost, "/ordini", bearer, CreaOrdineRequest{
		ClienteId: cliente.Id,
		Materiali: []RigaOrdine{
			{MaterialeId: sedie.Id, Quantita: 50},
			{MaterialeId: tavoli.Id, Quantita: 5},
		},
		DataConsegna: "2026-06-05",
		DataRitiro:   "2026-06-08",
		Km:           &km,
		Note:         "matrimonio",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var multi struct {
		Message string   `json:"message"`
		Ordini  []Ordine `json:"ordini"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &multi))
	assert.Equal(t, "Ordini creati", multi.Message)
	require.Len(t, multi.Ordini, 2)
	assert.Equal(t, 130.0, multi.Ordini[0].Totale)
	assert.Equal(t, 80.0, multi.Ordini[1].Totale)

	// both customer and material are now referenced, so deletes must refuse
	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/clienti/%d", cliente.Id), bearer, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cliente con ordini: non eliminabile")

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/materiali/%d", sedie.Id), bearer, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Materiale usato in ordini: non eliminabile")

	rec = doJSON(t, router, http.MethodGet, "/materiali/disponibilita", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var availability []Disponibilita
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &availability))
	require.Len(t, availability, 2)
	assert.Equal(t, "Sedie", availability[0].Nome)
	assert.Equal(t, int64(50), availability[0].Occupati)
	assert.Equal(t, int64(50), availability[0].Disponibili)

	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/ordini/%d/stato", multi.Ordini[0].Id), bearer, StatoOrdineRequest{Consegnato: true, Ritirato: true, Pagato: true})
	require.Equal(t, http.StatusOK, rec.Code)

	// returned stock frees availability
	rec = doJSON(t, router, http.MethodGet, "/materiali/disponibilita", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &availability))
	assert.Equal(t, int64(0), availability[0].Occupati)

	rec = doJSON(t, router, http.MethodGet, "/profitti/mensili", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var months []ProfittoMensile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &months))
	require.Len(t, months, 1)
	assert.Equal(t, "2026-06", months[0].AnnoMese)
	assert.Equal(t, "Giugno", months[0].Mese)
	assert.Equal(t, 130.0, months[0].TotalePagato)

	rec = doJSON(t, router, http.MethodGet, "/statistiche/materiali", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats []StatisticaMateriale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Len(t, stats, 2)
	assert.Equal(t, int64(1), stats[0].NumeroOrdini)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/ordini/%d", multi.Ordini[0].Id), bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ordine eliminato")
}

func TestCreateOrdine_SingleLineShape(t *testing.T) {
	router := newTestRouter(t)
	bearer := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/clienti/add", bearer, Cliente{Nome: "Anna Bianchi"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var cliente Cliente
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cliente))

	rec = doJSON(t, router, http.MethodPost, "/materiali", bearer, Materiale{Nome: "Gazebo", QuantitaDisponibile: 3, PrezzoWeekend: 40})
	require.Equal(t, http.StatusCreated, rec.Code)
	var gazebo Materiale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gazebo))

	materialeID := gazebo.Id
	quantita := int64(1)
	rec = doJSON(t, router, http.MethodPost, "/ordini", bearer, CreaOrdineRequest{
		ClienteId:    cliente.Id,
		MaterialeId:  &materialeID,
		Quantita:     &quantita,
		DataConsegna: "2026-07-11",
		DataRitiro:   "2026-07-13",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var ordine Ordine
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ordine))
	assert.Equal(t, gazebo.Id, ordine.MaterialeId)
	// km omitted coerces to zero, so the total is the base price
	assert.Equal(t, 40.0, ordine.Totale)
}

func TestCreateOrdine_UnknownMaterial(t *testing.T) {
	router := newTestRouter(t)
	bearer := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/clienti/add", bearer, Cliente{Nome: "Anna Bianchi"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var cliente Cliente
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cliente))

	materialeID := int64(999)
	quantita := int64(1)
	rec = doJSON(t, router, http.MethodPost, "/ordini", bearer, CreaOrdineRequest{
		ClienteId:    cliente.Id,
		MaterialeId:  &materialeID,
		Quantita:     &quantita,
		DataConsegna: "2026-07-11",
		DataRitiro:   "2026-07-13",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Materiale non valido")
}

func TestCreateOrdine_BadDate(t *testing.T) {
	router := newTestRouter(t)
	bearer := login(t, router)

	materialeID := int64(1)
	quantita := int64(1)
	rec := doJSON(t, router, http.MethodPost, "/ordini", bearer, CreaOrdineRequest{
		ClienteId:    1,
		MaterialeId:  &materialeID,
		Quantita:     &quantita,
		DataConsegna: "05/06/2026",
		DataRitiro:   "2026-06-08",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "data_consegna")
}

func TestUpdateCliente_NotFound(t *testing.T) {
	router := newTestRouter(t)
	bearer := login(t, router)

	rec := doJSON(t, router, http.MethodPut, "/clienti/999", bearer, Cliente{Nome: "Nessuno"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParseIDParam_Garbage(t *testing.T) {
	router := newTestRouter(t)
	bearer := login(t, router)

	rec := doJSON(t, router, http.MethodDelete, "/clienti/abc", bearer, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "id non valido")
}
