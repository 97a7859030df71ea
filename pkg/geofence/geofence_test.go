package geofence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceSamePoint(t *testing.T) {
	d := Distance(-2.9795731113284303, 104.73111003716011, -2.9795731113284303, 104.73111003716011)
	assert.Equal(t, 0.0, d)
}

func TestDistanceOneDegreeLatitude(t *testing.T) {
	// 1 derajat latitude kira-kira 111.19 km pada bumi berjari-jari 6371 km
	d := Distance(0, 104, 1, 104)
	assert.InDelta(t, 111195, d, 50)
}

func TestDistanceSymmetric(t *testing.T) {
	d1 := Distance(-2.97957, 104.73111, -2.99000, 104.74000)
	d2 := Distance(-2.99000, 104.74000, -2.97957, 104.73111)
	assert.InDelta(t, d1, d2, 0.000001)
}

func TestCheck(t *testing.T) {
	settings := DefaultSettings()

	tests := []struct {
		name       string
		lat        float64
		lng        float64
		wantWithin bool
	}{
		{
			name:       "tepat di titik kantor",
			lat:        settings.Latitude,
			lng:        settings.Longitude,
			wantWithin: true,
		},
		{
			name: "sekitar 55 meter dari kantor",
			// 0.0005 derajat latitude kira-kira 55.6 meter
			lat:        settings.Latitude + 0.0005,
			lng:        settings.Longitude,
			wantWithin: true,
		},
		{
			name: "sekitar 222 meter dari kantor",
			// 0.002 derajat latitude kira-kira 222 meter
			lat:        settings.Latitude + 0.002,
			lng:        settings.Longitude,
			wantWithin: false,
		},
		{
			name:       "kota lain",
			lat:        -6.2,
			lng:        106.8,
			wantWithin: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			within, distance := settings.Check(tt.lat, tt.lng)
			assert.Equal(t, tt.wantWithin, within)
			assert.GreaterOrEqual(t, distance, 0.0)
		})
	}
}

func TestCheckExactRadiusBoundary(t *testing.T) {
	settings := Settings{Latitude: 0, Longitude: 0, RadiusMeters: 100}

	within, distance := settings.Check(0, 0)
	assert.True(t, within)
	assert.Equal(t, 0.0, distance)

	// Jarak persis sama dengan radius masih dihitung di dalam
	within, distance = settings.Check(0.0008983, 0)
	assert.InDelta(t, 99.9, distance, 0.5)
	assert.True(t, within)
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.InDelta(t, -2.9795731113284303, settings.Latitude, 0.000001)
	assert.InDelta(t, 104.73111003716011, settings.Longitude, 0.000001)
	assert.Equal(t, 100.0, settings.RadiusMeters)
}

func TestCheckLargerRadius(t *testing.T) {
	near := Settings{Latitude: -2.97957, Longitude: 104.73111, RadiusMeters: 100}
	wide := Settings{Latitude: -2.97957, Longitude: 104.73111, RadiusMeters: 500}

	lat := near.Latitude + 0.002
	lng := near.Longitude

	withinNear, _ := near.Check(lat, lng)
	withinWide, _ := wide.Check(lat, lng)

	assert.False(t, withinNear)
	assert.True(t, withinWide)
}
