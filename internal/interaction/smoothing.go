package interaction

import "github.com/chewxy/math32"

// Ease moves current toward target by the fraction k of the remaining gap.
// For 0 < k < 1 it never overshoots and never reaches target exactly.
func Ease(current, target, k float32) float32 {
	return current + (target-current)*k
}

// FrameDamping converts a per-frame damping factor k, tuned at referenceFPS, into the factor for a frame
// that took dt seconds, so the same wall-clock time closes the same share of the gap at any frame rate.
// referenceFPS <= 0 or dt <= 0 returns k unchanged (one reference frame per tick).
func FrameDamping(k, dt, referenceFPS float32) float32 {
	if referenceFPS <= 0 || dt <= 0 || k <= 0 || k >= 1 {
		return k
	}
	return 1 - math32.Pow(1-k, dt*referenceFPS)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
