package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/business-launch/modules-api/middleware"
	"github.com/business-launch/modules-api/models"
	"github.com/business-launch/modules-api/routes"
	"github.com/business-launch/modules-api/services"
	"github.com/business-launch/modules-api/utils"
)

func newTestRouter(store services.ModuleStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())
	routes.SetupModuleRoutes(protected, store, nil)

	return router
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(userID, userID+"@example.com")
	require.NoError(t, err)
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeModule(t *testing.T, w *httptest.ResponseRecorder) models.BusinessModule {
	t.Helper()
	var m models.BusinessModule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func sampleCreate() models.CreateModuleRequest {
	return models.CreateModuleRequest{
		Name:        "Etsy shop",
		Description: "Handmade candles",
		Type:        models.TypeRunning,
		Income:      models.Income{Daily: 10, Weekly: 70, Monthly: 300, Yearly: 3650},
		Tasks:       []models.Task{{ID: "t1", Description: "Order wax"}},
	}
}

func TestGetNewDraft_Unauthenticated(t *testing.T) {
	router := newTestRouter(services.NewMemoryModuleStore())

	w := doJSON(router, http.MethodGet, "/api/v1/modules/new", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetNewDraft(t *testing.T) {
	router := newTestRouter(services.NewMemoryModuleStore())

	w := doJSON(router, http.MethodGet, "/api/v1/modules/new", tokenFor(t, "alice"), nil)

	require.Equal(t, http.StatusOK, w.Code)
	draft := decodeModule(t, w)
	assert.Empty(t, draft.ID)
	assert.Equal(t, "alice", draft.UserID)
	assert.Equal(t, "New Module", draft.Name)
	assert.Equal(t, models.TypeIdea, draft.Type)
	assert.Empty(t, draft.Tasks)
}

func TestCreateModule_Unauthenticated_NoStoreWrite(t *testing.T) {
	store := services.NewMemoryModuleStore()
	router := newTestRouter(store)

	w := doJSON(router, http.MethodPost, "/api/v1/modules", "", sampleCreate())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	modules, err := store.ListByOwner("alice")
	require.NoError(t, err)
	assert.Empty(t, modules)
}

func TestCreateThenGet(t *testing.T) {
	router := newTestRouter(services.NewMemoryModuleStore())
	token := tokenFor(t, "alice")

	created := decodeModule(t, doJSON(router, http.MethodPost, "/api/v1/modules", token, sampleCreate()))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	w := doJSON(router, http.MethodGet, "/api/v1/modules/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeModule(t, w)
	assert.Equal(t, created, got)
}

func TestGetModule_NotFound(t *testing.T) {
	router := newTestRouter(services.NewMemoryModuleStore())

	w := doJSON(router, http.MethodGet, "/api/v1/modules/does-not-exist", tokenFor(t, "alice"), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetModule_OtherOwnerDenied(t *testing.T) {
	router := newTestRouter(services.NewMemoryModuleStore())

	created := decodeModule(t, doJSON(router, http.MethodPost, "/api/v1/modules", tokenFor(t, "alice"), sampleCreate()))

	w := doJSON(router, http.MethodGet, "/api/v1/modules/"+created.ID, tokenFor(t, "bob"), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListModules_OwnerScoped(t *testing.T) {
	router := newTestRouter(services.NewMemoryModuleStore())
	alice := tokenFor(t, "alice")

	doJSON(router, http.MethodPost, "/api/v1/modules", alice, sampleCreate())
	doJSON(router, http.MethodPost, "/api/v1/modules", alice, sampleCreate())

	w := doJSON(router, http.MethodGet, "/api/v1/modules", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.BusinessModule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine, 2)
	for _, m := range mine {
		assert.Equal(t, "alice", m.UserID)
	}

	w = doJSON(router, http.MethodGet, "/api/v1/modules", tokenFor(t, "bob"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var theirs []models.BusinessModule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &theirs))
	assert.Empty(t, theirs)
}

func TestUpdateModule_FullOverwrite(t *testing.T) {
	router := newTestRouter(services.NewMemoryModuleStore())
	token := tokenFor(t, "alice")

	created := decodeModule(t, doJSON(router, http.MethodPost, "/api/v1/modules", token, sampleCreate()))

	replacement := sampleCreate()
	replacement.Name = "Renamed"
	replacement.Tasks = nil // whole-document overwrite drops the task list

	w := doJSON(router, http.MethodPut, "/api/v1/modules/"+created.ID, token, replacement)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeModule(t, doJSON(router, http.MethodGet, "/api/v1/modules/"+created.ID, token, nil))
	assert.Equal(t, "Renamed", got.Name)
	assert.Empty(t, got.Tasks)
	assert.Equal(t, "alice", got.UserID)
}

// Raw income edits on the edit screen do not trigger normalization; the
// stored tuple is allowed to go inconsistent.
func TestUpdateModule_NoIncomeRecompute(t *testing.T) {
	router := newTestRouter(services.NewMemoryModuleStore())
	token := tokenFor(t, "alice")

	created := decodeModule(t, doJSON(router, http.MethodPost, "/api/v1/modules", token, sampleCreate()))

	edited := sampleCreate()
	edited.Income.Weekly = 999.99

	doJSON(router, http.MethodPut, "/api/v1/modules/"+created.ID, token, edited)

	got := decodeModule(t, doJSON(router, http.MethodGet, "/api/v1/modules/"+created.ID, token, nil))
	assert.Equal(t, 10.0, got.Income.Daily)
	assert.Equal(t, 999.99, got.Income.Weekly)
	assert.Equal(t, 300.0, got.Income.Monthly)
}

func TestEditModule_Commands(t *testing.T) {
	router := newTestRouter(services.NewMemoryModuleStore())
	token := tokenFor(t, "alice")

	created := decodeModule(t, doJSON(router, http.MethodPost, "/api/v1/modules", token, sampleCreate()))

	w := doJSON(router, http.MethodPatch, "/api/v1/modules/"+created.ID, token, models.EditModuleRequest{
		Commands: []models.EditCommand{
			{Op: models.EditName, Value: "Candle studio"},
			{Op: models.EditIncome, Period: models.PeriodMonthly, Amount: 450},
			{Op: models.EditAddTask, Value: "Build website"},
			{Op: models.EditToggleTask, TaskID: "t1"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeModule(t, doJSON(router, http.MethodGet, "/api/v1/modules/"+created.ID, token, nil))
	assert.Equal(t, "Candle studio", got.Name)
	assert.Equal(t, 450.0, got.Income.Monthly)
	assert.Equal(t, 10.0, got.Income.Daily, "no cross-field recomputation")
	require.Len(t, got.Tasks, 2)
	assert.True(t, got.Tasks[0].Completed)
	assert.Equal(t, "Build website", got.Tasks[1].Description)
}

func TestDeleteModule(t *testing.T) {
	router := newTestRouter(services.NewMemoryModuleStore())
	token := tokenFor(t, "alice")

	created := decodeModule(t, doJSON(router, http.MethodPost, "/api/v1/modules", token, sampleCreate()))

	w := doJSON(router, http.MethodDelete, "/api/v1/modules/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/modules/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/v1/modules/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNormalizeIncomeEndpoint(t *testing.T) {
	router := newTestRouter(services.NewMemoryModuleStore())

	w := doJSON(router, http.MethodPost, "/api/v1/modules/income", tokenFor(t, "alice"), models.NormalizeIncomeRequest{
		Period: models.PeriodMonthly,
		Value:  100,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var income models.Income
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &income))
	assert.Equal(t, models.Income{Daily: 3.33, Weekly: 25, Monthly: 100, Yearly: 1200}, income)
}

// A failing store surfaces as a service-unavailable message; the process
// stays up and the client keeps its in-memory state.
type downStore struct{}

func (downStore) ListByOwner(string) ([]models.BusinessModule, error) {
	return nil, services.ErrStoreUnavailable
}
func (downStore) GetByID(string) (models.BusinessModule, error) {
	return models.BusinessModule{}, services.ErrStoreUnavailable
}
func (downStore) Create(models.BusinessModule) (models.BusinessModule, error) {
	return models.BusinessModule{}, services.ErrStoreUnavailable
}
func (downStore) Update(string, models.BusinessModule) error { return services.ErrStoreUnavailable }
func (downStore) Delete(string) error                        { return services.ErrStoreUnavailable }

func TestStoreUnavailable(t *testing.T) {
	router := newTestRouter(downStore{})
	token := tokenFor(t, "alice")

	w := doJSON(router, http.MethodGet, "/api/v1/modules", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/modules", token, sampleCreate())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
