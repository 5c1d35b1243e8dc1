package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fifa-roster/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fifa-roster/internal/platform/logging"
	"github.com/riskibarqy/fifa-roster/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	service := usecase.NewRosterService(memory.NewPlayerRepository(nil), memory.SeedPlayers(), logger)
	return NewRouter(NewHandler(service, logger), logger, []string{"*"})
}

func doRequest[T any](t *testing.T, router http.Handler, method, target, body string) (int, envelope[T]) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), "body=%s", rec.Body.String())
	return rec.Code, out
}

func TestRouter_Healthz(t *testing.T) {
	code, body := doRequest[map[string]string](t, newTestRouter(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Data["status"])
}

func TestRouter_SeedSearchAndSummary(t *testing.T) {
	router := newTestRouter(t)

	code, seeded := doRequest[rosterSummaryDTO](t, router, http.MethodPost, "/v1/roster/seed", "")
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 30, seeded.Data.Players)

	code, again := doRequest[rosterSummaryDTO](t, router, http.MethodPost, "/v1/roster/seed", "")
	require.Equal(t, http.StatusConflict, code)
	require.NotNil(t, again.Error)
	assert.Equal(t, "alreadySeeded", again.Error.Errors[0].Reason)

	code, all := doRequest[[]playerDTO](t, router, http.MethodGet, "/v1/roster/players", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, all.Data, 30)
	assert.Equal(t, "HamidReza", all.Data[0].FirstName)
	assert.Equal(t, 99, all.Data[0].Overall)

	code, french := doRequest[[]playerDTO](t, router, http.MethodGet, "/v1/roster/players?position=ST&nation=France&overall=90", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, french.Data, 3)

	code, summary := doRequest[rosterSummaryDTO](t, router, http.MethodGet, "/v1/roster/summary", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 30, summary.Data.Players)
}

func TestRouter_SearchValidation(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{
		"/v1/roster/players?overall=abc",
		"/v1/roster/players?overall=29",
		"/v1/roster/players?overall=100",
	} {
		code, body := doRequest[[]playerDTO](t, router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, code, target)
		require.NotNil(t, body.Error, target)
		assert.Equal(t, "invalidInput", body.Error.Errors[0].Reason)
	}
}

func TestRouter_UpdatePlayer(t *testing.T) {
	router := newTestRouter(t)
	code, _ := doRequest[rosterSummaryDTO](t, router, http.MethodPost, "/v1/roster/seed", "")
	require.Equal(t, http.StatusCreated, code)

	code, byLastName := doRequest[rowsAffectedDTO](t, router, http.MethodPut, "/v1/roster/players/Messi", `{"overall":95,"position":"ST","nation":"Argentine"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Zero(t, byLastName.Data.RowsAffected)

	code, updated := doRequest[rowsAffectedDTO](t, router, http.MethodPut, "/v1/roster/players/Lionel", `{"overall":95,"position":"ST","nation":"Argentine"}`)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, updated.Data.RowsAffected)

	code, found := doRequest[[]playerDTO](t, router, http.MethodGet, "/v1/roster/players?name=Lionel", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, found.Data, 1)
	assert.Equal(t, 95, found.Data[0].Overall)
	assert.Equal(t, "ST", found.Data[0].Position)
	assert.Equal(t, "Argentine", found.Data[0].Nation)
}

func TestRouter_UpdatePlayerValidation(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{
		`{"overall":0,"position":"ST","nation":"Iran"}`,
		`{"overall":90,"position":"","nation":"Iran"}`,
		`{"overall":90,"position":"ST","nation":"Any"}`,
		`{"overall":90,"position":"ST","nation":"Iran","club":"Naft"}`,
		`not json`,
	} {
		code, resp := doRequest[rowsAffectedDTO](t, router, http.MethodPut, "/v1/roster/players/Farhad", body)
		assert.Equal(t, http.StatusBadRequest, code, body)
		require.NotNil(t, resp.Error, body)
	}
}

func TestRouter_DeletePlayers(t *testing.T) {
	router := newTestRouter(t)
	code, _ := doRequest[rosterSummaryDTO](t, router, http.MethodPost, "/v1/roster/seed", "")
	require.Equal(t, http.StatusCreated, code)

	code, resp := doRequest[rowsAffectedDTO](t, router, http.MethodDelete, "/v1/roster/players?name=Farhad&position=ST&nation=Any", "")
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, resp.Error)

	code, resp = doRequest[rowsAffectedDTO](t, router, http.MethodDelete, "/v1/roster/players?name=Farhad&overall=99&position=ST&nation=Iran", "")
	require.Equal(t, http.StatusOK, code)
	assert.Zero(t, resp.Data.RowsAffected)

	code, resp = doRequest[rowsAffectedDTO](t, router, http.MethodDelete, "/v1/roster/players?name=Farhad&overall=90&position=ST&nation=Iran", "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, resp.Data.RowsAffected)

	code, summary := doRequest[rosterSummaryDTO](t, router, http.MethodGet, "/v1/roster/summary", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 29, summary.Data.Players)
}

func TestRouter_ClearRoster(t *testing.T) {
	router := newTestRouter(t)
	code, _ := doRequest[rosterSummaryDTO](t, router, http.MethodPost, "/v1/roster/seed", "")
	require.Equal(t, http.StatusCreated, code)

	code, _ = doRequest[rosterSummaryDTO](t, router, http.MethodDelete, "/v1/roster", "")
	require.Equal(t, http.StatusOK, code)

	code, all := doRequest[[]playerDTO](t, router, http.MethodGet, "/v1/roster/players", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, all.Data)
}

func TestRouter_ListNations(t *testing.T) {
	code, body := doRequest[[]string](t, newTestRouter(t), http.MethodGet, "/v1/roster/nations", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data, 14)
	assert.Equal(t, "Any", body.Data[0])
}
