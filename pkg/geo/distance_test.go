package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{55.7558, 37.6173, 59.9343, 30.3351}, // Москва - Петербург
		{0, 0, 0, 0.001},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{89.9, 179.9, -89.9, -179.9},
	}

	for _, p := range pairs {
		d1 := DistanceMeters(p[0], p[1], p[2], p[3])
		d2 := DistanceMeters(p[2], p[3], p[0], p[1])
		assert.InDelta(t, d1, d2, 1e-9)
	}
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	// Один градус широты на экваторе — примерно 111.2 км
	d := DistanceMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 200)

	// Совпадающие точки
	assert.Equal(t, 0.0, DistanceMeters(55.75, 37.61, 55.75, 37.61))

	// 0.001 градуса долготы на экваторе — примерно 111 метров
	d = DistanceMeters(0, 0, 0, 0.001)
	assert.InDelta(t, 111.2, d, 1.0)
}

func TestDistanceMeters_TriangleInequality(t *testing.T) {
	a := [2]float64{55.7558, 37.6173}
	b := [2]float64{55.7600, 37.6200}
	c := [2]float64{55.7650, 37.6100}

	ab := DistanceMeters(a[0], a[1], b[0], b[1])
	bc := DistanceMeters(b[0], b[1], c[0], c[1])
	ac := DistanceMeters(a[0], a[1], c[0], c[1])

	assert.LessOrEqual(t, ac, ab+bc+1e-6)
}

func TestDistanceKm(t *testing.T) {
	m := DistanceMeters(0, 0, 1, 1)
	km := DistanceKm(0, 0, 1, 1)
	assert.InDelta(t, m/1000.0, km, 1e-9)
}
