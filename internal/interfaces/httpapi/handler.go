package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fifa-roster/internal/domain/player"
	"github.com/riskibarqy/fifa-roster/internal/platform/logging"
	"github.com/riskibarqy/fifa-roster/internal/usecase"
)

// defaultMinOverall is the low end of the overall slider.
const defaultMinOverall = 30

type Handler struct {
	rosterService *usecase.RosterService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(rosterService *usecase.RosterService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		rosterService: rosterService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type searchPlayersRequest struct {
	Name     string
	Overall  int `validate:"gte=30,lte=99"`
	Position string
	Nation   string `validate:"required"`
}

// deletePlayersRequest mirrors the guards of the delete button: every field
// must be set and the nation must be a concrete one.
type deletePlayersRequest struct {
	Name     string `validate:"required"`
	Overall  int    `validate:"gte=30,lte=99"`
	Position string `validate:"required"`
	Nation   string `validate:"required,ne=Any"`
}

type updatePlayerRequest struct {
	Overall  int    `json:"overall" validate:"required,gt=0,lte=99"`
	Position string `json:"position" validate:"required"`
	Nation   string `json:"nation" validate:"required,ne=Any"`
}

func parseFilterQuery(query url.Values) (name string, overall int, position, nation string, err error) {
	name = strings.TrimSpace(query.Get("name"))
	position = strings.TrimSpace(query.Get("position"))

	nation = strings.TrimSpace(query.Get("nation"))
	if nation == "" {
		nation = player.AnyNation
	}

	overall = defaultMinOverall
	if raw := strings.TrimSpace(query.Get("overall")); raw != "" {
		overall, err = strconv.Atoi(raw)
		if err != nil {
			return "", 0, "", "", fmt.Errorf("%w: overall must be an integer", usecase.ErrInvalidInput)
		}
	}

	return name, overall, position, nation, nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) SeedRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SeedRoster")
	defer span.End()

	if err := h.rosterService.SeedOnce(ctx); err != nil {
		h.logger.WarnContext(ctx, "seed roster failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	total, err := h.rosterService.Count(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "count roster failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, rosterSummaryDTO{Players: total})
}

func (h *Handler) ClearRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearRoster")
	defer span.End()

	if err := h.rosterService.ClearAll(ctx); err != nil {
		h.logger.WarnContext(ctx, "clear roster failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, rosterSummaryDTO{Players: 0})
}

func (h *Handler) GetRosterSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRosterSummary")
	defer span.End()

	total, err := h.rosterService.Count(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "count roster failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, rosterSummaryDTO{Players: total})
}

func (h *Handler) ListNations(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, h.rosterService.Nations())
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	name, overall, position, nation, err := parseFilterQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := searchPlayersRequest{Name: name, Overall: overall, Position: position, Nation: nation}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.rosterService.Search(ctx, req.Name, req.Overall, req.Position, req.Nation)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}

	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	firstName := strings.TrimSpace(r.PathValue("firstName"))
	if firstName == "" {
		writeError(ctx, w, fmt.Errorf("%w: first name is required", usecase.ErrInvalidInput))
		return
	}

	var req updatePlayerRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	affected, err := h.rosterService.Update(ctx, firstName, req.Overall, req.Position, req.Nation)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "first_name", firstName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, rowsAffectedDTO{RowsAffected: affected})
}

func (h *Handler) DeletePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayers")
	defer span.End()

	name, overall, position, nation, err := parseFilterQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := deletePlayersRequest{Name: name, Overall: overall, Position: position, Nation: nation}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	affected, err := h.rosterService.DeleteFiltered(ctx, req.Name, req.Overall, req.Position, req.Nation)
	if err != nil {
		h.logger.WarnContext(ctx, "delete players failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, rowsAffectedDTO{RowsAffected: affected})
}
