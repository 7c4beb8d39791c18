package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/abelgk/crately/internal/domain/entity"
	usecasecontract "github.com/abelgk/crately/internal/usecase/contract"
)

// AppValidator implements the usecase.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateFilter checks that a list filter is well formed.
func (av *AppValidator) ValidateFilter(filter entity.Filter) error {
	if err := av.validate.Var(filter.Page, "required,min=1"); err != nil {
		return fmt.Errorf("%w: page must be >= 1", entity.ErrValidation)
	}
	return nil
}

// ValidateVoteValue checks that a vote direction is one of up/down.
func (av *AppValidator) ValidateVoteValue(value entity.VoteValue) error {
	if err := av.validate.Var(string(value), "required,oneof=up down"); err != nil {
		return fmt.Errorf("%w: vote value must be %q or %q", entity.ErrValidation, entity.VoteUp, entity.VoteDown)
	}
	return nil
}
