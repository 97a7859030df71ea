package geofence

import (
	"math"
)

const earthRadiusMeters = 6371000.0

// Settings adalah lokasi kantor dan radius yang diizinkan. Nilai diambil
// dari config store setiap kali pengecekan, tanpa cache, supaya perubahan
// dari admin langsung berlaku.
type Settings struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// DefaultSettings adalah lokasi kantor pusat (Palembang) dan radius 100 m,
// dipakai ketika key konfigurasi belum diisi atau tidak bisa diparse.
func DefaultSettings() Settings {
	return Settings{
		Latitude:     -2.9795731113284303,
		Longitude:    104.73111003716011,
		RadiusMeters: 100,
	}
}

// Distance menghitung jarak haversine antara dua koordinat dalam meter.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Check mengembalikan apakah koordinat berada dalam radius kantor beserta
// jaraknya dalam meter.
func (s Settings) Check(lat, lng float64) (bool, float64) {
	distance := Distance(lat, lng, s.Latitude, s.Longitude)
	return distance <= s.RadiusMeters, distance
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
