package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NeuroFarm_Go/configs"
	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

func TestShippedCatalogMatchesDefault(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)

	cat, err := loader.LoadBytes(configs.CatalogJSON)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), cat)
}

func TestLoadBytes_Rejects(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "missing required field",
			data:    `{"crops":[{"name":"Wheat","sell_price":10,"planting_cost":5}]}`,
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "zero growth",
			data:    `{"crops":[{"name":"Wheat","growth_seconds":0,"sell_price":10,"planting_cost":5}]}`,
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "unknown property",
			data:    `{"crops":[],"weather":"rain"}`,
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "duplicate region name",
			data:    `{"regions":[{"name":"Forest","required_level":1,"exploration_cost":10},{"name":"forest","required_level":2,"exploration_cost":20}]}`,
			wantErr: domain.ErrDuplicateCatalogName,
		},
		{
			name:    "not json",
			data:    `crops: []`,
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadBytes([]byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExportThenLoadFile(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, Export(path, DefaultCatalog()))

	cat, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), cat)

	_, err = loader.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestClosestName(t *testing.T) {
	names := []string{"Wheat", "Corn", "Tomato", "Potato", "Carrot"}
	tests := []struct {
		in   string
		want string
	}{
		{"Wheet", "Wheat"},
		{"wheat", "Wheat"},
		{"tom", "Tomato"},
		{"Carot", "Carrot"},
		{"Dragonfruit", ""},
		{"", ""},
		{"x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, closestName(tt.in, names))
		})
	}
}
