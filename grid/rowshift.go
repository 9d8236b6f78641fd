package grid

import "math"

// Offset returns the per-row x-offset for row gy under shift amount k.
// Pure and deterministic; called per coordinate by the oracle and by
// rendering layers for visual alignment.
//
// Rules:
//   - 0 when k == 0, gy == 0, or |gy| > |k|.
//   - Non-randomized: magnitude |k|, sign sign(k), flipped for gy < 0.
//   - Randomized: magnitude is a deterministic function of (gy, |k|,
//     sign(k)) in [0, |k|), same sign law. Reproducible, not random.
func Offset(gy, k int64, randomize bool) int64 {
	if k == 0 || gy == 0 {
		return 0
	}
	ag, ak := abs64(gy), abs64(k)
	if ag > ak {
		return 0
	}
	sign := int64(1)
	if k < 0 {
		sign = -1
	}
	mag := ak
	if randomize {
		mag = pseudoMag(gy, ak, sign)
	}
	if gy > 0 {
		return sign * mag
	}
	return -sign * mag
}

// pseudoMag maps (gy, |k|, sign(k)) to a magnitude in [0, |k|) via a fixed
// multiply-mix hash fed through sine fractional extraction. The constants
// are the splitmix64 increments plus the classic 43758.5453123 scatter.
// Bit-identical results across platforms are best-effort: tests flag
// divergence rather than assume it.
func pseudoMag(gy, ak, sign int64) int64 {
	h := uint64(gy) * 0x9E3779B97F4A7C15
	h ^= uint64(ak) * 0xBF58476D1CE4E5B9
	if sign < 0 {
		h ^= 0x94D049BB133111EB
	}
	h ^= h >> 31
	s := math.Sin(float64(h%1000003)) * 43758.5453123
	f := s - math.Floor(s) // fractional part in [0,1)
	mag := int64(f * float64(ak))
	if mag >= ak { // guard against boundary rounding
		mag = ak - 1
	}
	if mag < 0 {
		mag = 0
	}
	return mag
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
