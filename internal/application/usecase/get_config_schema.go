package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// ErrUnknownConfigSection is returned when a section filter matches no key.
var ErrUnknownConfigSection = errors.New("unknown config section")

// GetConfigSchemaUseCase lists the config keys behind 'dockyard config keys'.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{provider: provider}
}

// GetConfigSchemaInput narrows the listing.
type GetConfigSchemaInput struct {
	// Section keeps only the keys of one section, matched without regard
	// to case ("dock", "Drop Zones"). Empty lists everything.
	Section string
}

type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKey
	// Sections holds every section name in provider order, unfiltered, so
	// callers can suggest valid filters.
	Sections []string
}

// Execute returns the keys in provider order. A Section that matches no
// key fails with ErrUnknownConfigSection.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	out := &GetConfigSchemaOutput{Keys: make([]entity.ConfigKey, 0, len(all))}
	seen := make(map[string]bool)
	for _, key := range all {
		if !seen[key.Section] {
			seen[key.Section] = true
			out.Sections = append(out.Sections, key.Section)
		}
		if input.Section == "" || strings.EqualFold(key.Section, input.Section) {
			out.Keys = append(out.Keys, key)
		}
	}

	if input.Section != "" && len(out.Keys) == 0 {
		return nil, fmt.Errorf("%w %q (sections: %s)", ErrUnknownConfigSection, input.Section, strings.Join(out.Sections, ", "))
	}
	return out, nil
}
