package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pois.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPoisFromCSV(t *testing.T) {
	path := writeCSV(t, `id,name,description,category,latitude,longitude,rating,price_level,tags,image_url,opening_hours
juhu-beach,Juhu Beach,Sandy beach with street food stalls,Waterfront,19.0988,72.8267,4.2,0,beach|food|family,https://example.com/juhu.jpg,
sanjay-park,Sanjay Gandhi National Park,Forest park with safaris,Park,19.2147,72.9106,,,nature|hike,,
`)
	pois, err := LoadPoisFromCSV(path)
	require.NoError(t, err)
	require.Len(t, pois, 2)

	juhu := pois[0]
	assert.Equal(t, "juhu-beach", juhu.ID)
	assert.Equal(t, "Waterfront", juhu.Category)
	assert.Equal(t, 19.0988, juhu.Latitude)
	require.NotNil(t, juhu.Rating)
	assert.Equal(t, 4.2, *juhu.Rating)
	require.NotNil(t, juhu.PriceLevel)
	assert.Equal(t, 0, *juhu.PriceLevel)
	assert.Equal(t, []string{"beach", "food", "family"}, []string(juhu.Tags))

	park := pois[1]
	assert.Nil(t, park.Rating)
	assert.Nil(t, park.PriceLevel)
	assert.Equal(t, []string{"nature", "hike"}, []string(park.Tags))
}

func TestLoadPoisFromCSVToleratesColumnOrder(t *testing.T) {
	path := writeCSV(t, `name,id,longitude,latitude
Juhu Beach,juhu-beach,72.8267,19.0988
`)
	pois, err := LoadPoisFromCSV(path)
	require.NoError(t, err)
	require.Len(t, pois, 1)
	assert.Equal(t, "juhu-beach", pois[0].ID)
	assert.Equal(t, 19.0988, pois[0].Latitude)
	assert.Equal(t, 72.8267, pois[0].Longitude)
}

func TestLoadPoisFromCSVMissingColumn(t *testing.T) {
	path := writeCSV(t, `id,name,latitude
x,X,19.0
`)
	_, err := LoadPoisFromCSV(path)
	assert.ErrorContains(t, err, "longitude")
}

func TestLoadPoisFromCSVBadCoordinate(t *testing.T) {
	path := writeCSV(t, `id,name,latitude,longitude
x,X,not-a-number,72.8
`)
	_, err := LoadPoisFromCSV(path)
	assert.ErrorContains(t, err, "latitude")
}

func TestLoadPoisFromCSVMissingFile(t *testing.T) {
	_, err := LoadPoisFromCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestStaticProviderByIDs(t *testing.T) {
	provider := NewStaticProvider(SeedPois())
	got := provider.ByIDs([]string{"marine-drive", "unknown"})
	require.Len(t, got, 1)
	assert.Equal(t, "marine-drive", got[0].ID)
	assert.Len(t, provider.All(), 3)
}
