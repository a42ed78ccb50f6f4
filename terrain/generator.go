package terrain

import (
	"math/rand"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Config controls map generation
type Config struct {
	Rows, Cols int

	// WallLevel is the normalized noise threshold above which a tile becomes rock
	// 1.0 or more disables rock entirely
	WallLevel float64

	// GoldCount veins of up to GoldSize tiles each are grown on floor tiles
	GoldCount int
	GoldSize  int

	Seed int64 // Optional (0 = Random)
}

const (
	noiseOctaves     = 4
	noiseFrequency   = 0.09
	noisePersistence = 0.5
	veinAttempts     = 8
)

// Generate builds a rock-and-floor map from fractal noise, then seeds gold veins
func Generate(cfg Config) *Map {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	noise := opensimplex.NewNormalized(seed)

	m := NewMap(cfg.Rows, cfg.Cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			// Terminal cells are about twice as tall as wide
			v := octaveNoise(noise, float64(c)*0.5, float64(r), noiseOctaves, noiseFrequency, noisePersistence)
			if v > cfg.WallLevel {
				m.Set(r, c, KindRock)
			}
		}
	}

	for i := 0; i < cfg.GoldCount; i++ {
		growVein(m, rng, cfg.GoldSize)
	}
	return m
}

// growVein random-walks from a floor tile, converting up to size floor tiles to gold
func growVein(m *Map, rng *rand.Rand, size int) {
	if size <= 0 || m.rows == 0 || m.cols == 0 {
		return
	}

	r, c := -1, -1
	for attempt := 0; attempt < veinAttempts; attempt++ {
		rr, cc := rng.Intn(m.rows), rng.Intn(m.cols)
		if m.At(rr, cc).Kind == KindFloor {
			r, c = rr, cc
			break
		}
	}
	if r < 0 {
		return
	}

	placed := 0
	for step := 0; step < size*4 && placed < size; step++ {
		if m.At(r, c).Kind == KindFloor {
			m.Set(r, c, KindGold)
			placed++
		}
		nr, nc := r, c
		switch rng.Intn(4) {
		case 0:
			nr--
		case 1:
			nr++
		case 2:
			nc++
		case 3:
			nc--
		}
		if m.InBounds(nr, nc) && m.At(nr, nc).Kind != KindRock {
			r, c = nr, nc
		}
	}
}

// octaveNoise layers frequencies of a normalized noise source, result in [0, 1]
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
