// Package bigo measures how an operation's running time scales with input
// size and fits the result against common complexity classes.
//
// It exists to demonstrate asymptotic behavior of the repository's
// containers and of stock algorithms, in the spirit of the big-o-test style
// of harness: run the operation over a doubling ladder of sizes, take the
// best of several repeats at each size, then least-squares fit the timings
// to each candidate class and pick the one with the smallest residual.
//
// Timing-based classification is inherently noisy; Check tolerates a fit
// one class above the expectation so demonstrations stay stable on loaded
// machines. It is a demonstration tool, not a profiler.
package bigo

import (
	"fmt"
	"math"
	"time"
)

// Class is a complexity class, ordered from cheapest to most expensive.
type Class int

const (
	O1 Class = iota
	OLogN
	ON
	ONLogN
	ON2
)

func (c Class) String() string {
	switch c {
	case O1:
		return "O(1)"
	case OLogN:
		return "O(log n)"
	case ON:
		return "O(n)"
	case ONLogN:
		return "O(n log n)"
	case ON2:
		return "O(n^2)"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// growth evaluates the class's growth function at size n.
func (c Class) growth(n float64) float64 {
	switch c {
	case O1:
		return 1
	case OLogN:
		return math.Log2(n)
	case ON:
		return n
	case ONLogN:
		return n * math.Log2(n)
	case ON2:
		return n * n
	default:
		return math.NaN()
	}
}

// Measurement is one timed run of the probed operation.
type Measurement struct {
	Size    int
	Elapsed time.Duration
}

// Probe describes an operation to measure.
//
// Setup prepares input of the given size and is not timed. Op is the timed
// operation. Teardown, if set, runs untimed after each repeat.
type Probe struct {
	Name     string
	Setup    func(n int)
	Op       func(n int)
	Teardown func(n int)

	// StartSize is the smallest input size. Sizes double each pass.
	StartSize int
	// Passes is the number of sizes measured; must be at least 2.
	Passes int
	// Repeats is how many times each size is timed; the minimum elapsed
	// time is kept. Defaults to 3 when zero.
	Repeats int
}

// Run executes the probe and returns one measurement per pass.
func (p Probe) Run() ([]Measurement, error) {
	if p.Op == nil {
		return nil, fmt.Errorf("bigo: probe %q has no operation", p.Name)
	}
	if p.StartSize <= 0 {
		return nil, fmt.Errorf("bigo: probe %q start size must be positive, got %d", p.Name, p.StartSize)
	}
	if p.Passes < 2 {
		return nil, fmt.Errorf("bigo: probe %q needs at least 2 passes, got %d", p.Name, p.Passes)
	}

	repeats := p.Repeats
	if repeats <= 0 {
		repeats = 3
	}

	measurements := make([]Measurement, 0, p.Passes)
	size := p.StartSize
	for pass := 0; pass < p.Passes; pass++ {
		best := time.Duration(math.MaxInt64)
		for r := 0; r < repeats; r++ {
			if p.Setup != nil {
				p.Setup(size)
			}
			start := time.Now()
			p.Op(size)
			elapsed := time.Since(start)
			if p.Teardown != nil {
				p.Teardown(size)
			}
			if elapsed < best {
				best = elapsed
			}
		}
		measurements = append(measurements, Measurement{Size: size, Elapsed: best})
		size *= 2
	}
	return measurements, nil
}

// Fit returns the complexity class whose scaled growth curve has the
// smallest squared residual against the measurements.
func Fit(measurements []Measurement) Class {
	best := O1
	bestResidual := math.Inf(1)

	for _, class := range []Class{O1, OLogN, ON, ONLogN, ON2} {
		residual := fitResidual(class, measurements)
		if residual < bestResidual {
			bestResidual = residual
			best = class
		}
	}
	return best
}

// fitResidual computes the normalized least-squares residual of fitting
// t(n) = c * growth(n) to the measurements.
func fitResidual(class Class, measurements []Measurement) float64 {
	var num, den, norm float64
	for _, m := range measurements {
		f := class.growth(float64(m.Size))
		t := float64(m.Elapsed)
		num += t * f
		den += f * f
		norm += t * t
	}
	if den == 0 || norm == 0 {
		return math.Inf(1)
	}
	c := num / den

	var residual float64
	for _, m := range measurements {
		f := class.growth(float64(m.Size))
		d := float64(m.Elapsed) - c*f
		residual += d * d
	}
	return residual / norm
}

// Check runs the probe, fits the measurements and verifies the operation
// scales no worse than expected, with a one-class noise margin. It returns
// the fitted class alongside any violation.
func Check(p Probe, expected Class) (Class, error) {
	measurements, err := p.Run()
	if err != nil {
		return 0, err
	}
	fitted := Fit(measurements)
	if fitted > expected+1 {
		return fitted, fmt.Errorf("bigo: %s measured as %s, expected at most %s", p.Name, fitted, expected)
	}
	return fitted, nil
}
