package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/roster/seed", handler.SeedRoster)
	mux.HandleFunc("DELETE /v1/roster", handler.ClearRoster)
	mux.HandleFunc("GET /v1/roster/summary", handler.GetRosterSummary)
	mux.HandleFunc("GET /v1/roster/nations", handler.ListNations)
	mux.HandleFunc("GET /v1/roster/players", handler.SearchPlayers)
	mux.HandleFunc("PUT /v1/roster/players/{firstName}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/roster/players", handler.DeletePlayers)
}
