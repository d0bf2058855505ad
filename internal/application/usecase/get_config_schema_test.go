package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

var schemaKeys = []entity.ConfigKey{
	{
		Key:         "dock.splitter_thickness",
		Type:        "float64",
		Default:     "4",
		Description: "Width of the draggable divider between split children",
		Range:       "1-32",
		Section:     "Dock",
	},
	{
		Key:         "drop_zones.edge_threshold",
		Type:        "float64",
		Default:     "0.25",
		Description: "Fraction of a node's size near each edge that selects an edge zone",
		Range:       "0-0.5",
		Section:     "Drop Zones",
	},
	{
		Key:         "logging.level",
		Type:        "string",
		Default:     "info",
		Description: "Log verbosity level",
		Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
		Section:     "Logging",
	},
	{
		Key:         "logging.format",
		Type:        "string",
		Default:     "console",
		Description: "Console log format",
		Values:      []string{"console", "json"},
		Section:     "Logging",
	},
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		provided []entity.ConfigKey
		section  string
		wantKeys []string
	}{
		{
			name:     "no filter keeps provider order",
			provided: schemaKeys,
			wantKeys: []string{"dock.splitter_thickness", "drop_zones.edge_threshold", "logging.level", "logging.format"},
		},
		{
			name:     "section filter",
			provided: schemaKeys,
			section:  "Logging",
			wantKeys: []string{"logging.level", "logging.format"},
		},
		{
			name:     "section filter ignores case",
			provided: schemaKeys,
			section:  "drop zones",
			wantKeys: []string{"drop_zones.edge_threshold"},
		},
		{
			name:     "empty schema",
			provided: []entity.ConfigKey{},
			wantKeys: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewMockConfigSchemaProvider(t)
			provider.EXPECT().GetSchema().Return(tt.provided).Once()

			result, err := usecase.NewGetConfigSchemaUseCase(provider).
				Execute(context.Background(), usecase.GetConfigSchemaInput{Section: tt.section})

			require.NoError(t, err)
			got := make([]string, 0, len(result.Keys))
			for _, k := range result.Keys {
				got = append(got, k.Key)
			}
			assert.Equal(t, tt.wantKeys, got)
		})
	}
}

func TestGetConfigSchemaUseCase_Sections(t *testing.T) {
	provider := mocks.NewMockConfigSchemaProvider(t)
	provider.EXPECT().GetSchema().Return(schemaKeys).Once()

	result, err := usecase.NewGetConfigSchemaUseCase(provider).
		Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "dock"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Dock", "Drop Zones", "Logging"}, result.Sections)
	require.Len(t, result.Keys, 1)
	assert.Equal(t, "DOCKYARD_DOCK_SPLITTER_THICKNESS", result.Keys[0].EnvVar())
}

func TestGetConfigSchemaUseCase_UnknownSection(t *testing.T) {
	provider := mocks.NewMockConfigSchemaProvider(t)
	provider.EXPECT().GetSchema().Return(schemaKeys).Once()

	result, err := usecase.NewGetConfigSchemaUseCase(provider).
		Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "panels"})

	assert.Nil(t, result)
	require.ErrorIs(t, err, usecase.ErrUnknownConfigSection)
	assert.Contains(t, err.Error(), `"panels" (sections: Dock, Drop Zones, Logging)`)
}
