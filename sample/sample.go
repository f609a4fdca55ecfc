// Package sample draws the random deviates the galaxy generator is built on.
package sample

// Source is a uniform random source on [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Sampler turns a uniform source into the distributions used for placing
// guide points and stars.
type Sampler struct {
	src Source
}

// New returns a Sampler drawing from src.
func New(src Source) *Sampler {
	return &Sampler{src: src}
}

// Uniform returns a value in [lower, upper).
func (s *Sampler) Uniform(lower, upper float64) float64 {
	return lower + (upper-lower)*s.src.Float64()
}

// ApproxNormal returns the sum of three Uniform(-1, 1) draws scaled by stdev
// and shifted by mean. The result always lies within mean ± 3*stdev.
func (s *Sampler) ApproxNormal(stdev, mean float64) float64 {
	sum := 0.0
	for i := 0; i < 3; i++ {
		sum += s.Uniform(-1, 1)
	}
	return sum*stdev + mean
}
