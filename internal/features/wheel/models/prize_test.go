package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		prizes  []Prize
		wantErr string
	}{
		{
			name:    "empty catalog",
			prizes:  nil,
			wantErr: "catalog is empty",
		},
		{
			name: "empty code",
			prizes: []Prize{
				{Text: "a", Code: "", Weight: 1},
			},
			wantErr: "code cannot be empty",
		},
		{
			name: "duplicate code",
			prizes: []Prize{
				{Text: "a", Code: "0001", Limit: 1, Weight: 1},
				{Text: "b", Code: "0001", Limit: 1, Weight: 1},
				{Text: "c", Code: "0007", Weight: 1, NoWin: true},
			},
			wantErr: "duplicate code",
		},
		{
			name: "non-positive weight",
			prizes: []Prize{
				{Text: "a", Code: "0001", Limit: 1, Weight: 0},
				{Text: "c", Code: "0007", Weight: 1, NoWin: true},
			},
			wantErr: "weight must be positive",
		},
		{
			name: "capped no-win entry",
			prizes: []Prize{
				{Text: "a", Code: "0001", Limit: 1, Weight: 1},
				{Text: "c", Code: "0007", Limit: 3, Weight: 1, NoWin: true},
			},
			wantErr: "no-win entry must be unbounded",
		},
		{
			name: "missing no-win entry",
			prizes: []Prize{
				{Text: "a", Code: "0001", Limit: 1, Weight: 1},
			},
			wantErr: "exactly one no-win entry",
		},
		{
			name: "two no-win entries",
			prizes: []Prize{
				{Text: "a", Code: "0001", Weight: 1, NoWin: true},
				{Text: "b", Code: "0002", Weight: 1, NoWin: true},
			},
			wantErr: "exactly one no-win entry",
		},
		{
			name: "valid catalog",
			prizes: []Prize{
				{Text: "a", Code: "0001", Limit: 1, Weight: 1},
				{Text: "c", Code: "0007", Weight: 2, NoWin: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Catalog{Prizes: tt.prizes}).Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog := DefaultCatalog()
	require.NoError(t, catalog.Validate())

	assert.Equal(t, 6, catalog.NoWinIndex())
	assert.Equal(t, "0007", catalog.NoWinCode())
	assert.Len(t, catalog.Codes(), 7)
}

func TestCatalogByCode(t *testing.T) {
	catalog := DefaultCatalog()

	prize, ok := catalog.ByCode("0001")
	require.True(t, ok)
	assert.Equal(t, "2 months of free formula", prize.Text)

	_, ok = catalog.ByCode("9999")
	assert.False(t, ok)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("empty path falls back to the built-in catalog", func(t *testing.T) {
		catalog, err := LoadCatalog("")
		require.NoError(t, err)
		assert.Equal(t, DefaultCatalog(), catalog)
	})

	t.Run("reads a prize list from a JSON file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prizes.json")
		data := `[
			{"text": "Mug", "code": "M1", "limit": 3, "weight": 1},
			{"text": "Nothing", "code": "N0", "limit": 0, "weight": 4, "no_win": true}
		]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		catalog, err := LoadCatalog(path)
		require.NoError(t, err)
		require.Len(t, catalog.Prizes, 2)
		assert.Equal(t, "M1", catalog.Prizes[0].Code)
		assert.Equal(t, "N0", catalog.NoWinCode())
	})

	t.Run("rejects a file that fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prizes.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"text":"Mug","code":"M1","weight":1}]`), 0o644))

		_, err := LoadCatalog(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid catalog")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})
}
