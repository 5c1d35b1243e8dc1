package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fifa-roster/internal/domain/player"
	"github.com/riskibarqy/fifa-roster/internal/platform/logging"
)

// RosterService runs the roster operations against a player repository.
//
// Update and DeleteFiltered key rows by first name only, so two players sharing
// a first name cannot be told apart.
type RosterService struct {
	repo   player.Repository
	seed   []player.Player
	logger *logging.Logger

	seedMu sync.Mutex
	seeded bool
}

func NewRosterService(repo player.Repository, seed []player.Player, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		repo:   repo,
		seed:   append([]player.Player(nil), seed...),
		logger: logger,
	}
}

// Seed inserts the seed set in one batch. Calling it twice duplicates rows.
func (s *RosterService) Seed(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Seed")
	defer span.End()

	for _, p := range s.seed {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: seed player id=%d: %v", ErrInvalidInput, p.ID, err)
		}
	}

	if err := s.repo.InsertMany(ctx, s.seed); err != nil {
		return fmt.Errorf("seed players: %w", err)
	}

	s.logger.InfoContext(ctx, "roster seeded", "players", len(s.seed))
	return nil
}

// SeedOnce seeds the roster unless an earlier call already succeeded. The
// latch lives for the process and survives ClearAll.
func (s *RosterService) SeedOnce(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SeedOnce")
	defer span.End()

	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	if s.seeded {
		return ErrAlreadySeeded
	}
	if err := s.Seed(ctx); err != nil {
		return err
	}
	s.seeded = true

	return nil
}

func (s *RosterService) ClearAll(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ClearAll")
	defer span.End()

	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}

	s.logger.InfoContext(ctx, "roster cleared")
	return nil
}

// Update overwrites overall, position and nation on every player whose first
// name equals name, and returns how many rows changed. Zero is not an error.
func (s *RosterService) Update(ctx context.Context, name string, overall int, position, nation string) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Update")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	patch := player.NewPatch(overall, position, nation)
	if err := patch.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	affected, err := s.repo.UpdateByFirstName(ctx, name, patch)
	if err != nil {
		return 0, fmt.Errorf("update player name=%s: %w", name, err)
	}
	span.SetAttributes(attribute.Int64("roster.rows_affected", affected))

	if affected == 0 {
		s.logger.DebugContext(ctx, "update matched no players", "name", name)
	}
	return affected, nil
}

// DeleteFiltered removes players matching all four fields literally: an empty
// name or position and the Any nation are compared as values, not wildcards.
func (s *RosterService) DeleteFiltered(ctx context.Context, name string, overall int, position, nation string) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.DeleteFiltered")
	defer span.End()

	affected, err := s.repo.DeleteMatching(ctx, player.NewFilter(name, overall, position, nation))
	if err != nil {
		return 0, fmt.Errorf("delete players: %w", err)
	}
	span.SetAttributes(attribute.Int64("roster.rows_affected", affected))

	return affected, nil
}

// Search returns players with overall >= overall, narrowed by name, position
// and nation when set, highest overall first.
func (s *RosterService) Search(ctx context.Context, name string, overall int, position, nation string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Search")
	defer span.End()

	items, err := s.repo.Search(ctx, player.NewFilter(name, overall, position, nation))
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	return items, nil
}

func (s *RosterService) Count(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Count")
	defer span.End()

	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}

	return total, nil
}

func (s *RosterService) Nations() []string {
	return player.Nations()
}
