package usecase

import (
	"errors"

	"github.com/riskibarqy/fifa-roster/internal/domain/player"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadySeeded = errors.New("roster already seeded")
	// ErrStorage matches every failure reported by the player repository's store.
	ErrStorage = player.ErrStorage
)
