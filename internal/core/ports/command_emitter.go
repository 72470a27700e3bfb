package ports

import (
	"github.com/AntonioJCosta/gogo/internal/core/domain/alias"
	"github.com/AntonioJCosta/gogo/internal/core/domain/target"
)

/*
CommandEmitter renders results as shell text for the wrapping shell function
to evaluate. Only Emit produces an actionable command; everything else is
wrapped in echo statements so evaluating it is harmless.
*/
type CommandEmitter interface {
	Emit(t target.Target) error
	Echo(text string) error
	PrintConfig(aliases []alias.Alias) error
}
