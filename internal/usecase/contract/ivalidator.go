package usecasecontract

import "github.com/abelgk/crately/internal/domain/entity"

// IValidator defines the validation operations used by the usecases.
type IValidator interface {
	// ValidateFilter checks that a list filter is well formed.
	ValidateFilter(filter entity.Filter) error
	// ValidateVoteValue checks that a vote direction is one of up/down.
	ValidateVoteValue(value entity.VoteValue) error
}
