package dice

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/emrzvv/gamerng/internal/rng"
)

// Histogram counts how often each sum of a Spec came up.  Counts[i] is the
// number of sums equal to Min+i.
type Histogram struct {
	Spec   Spec
	Min    int
	Counts []int
	Trials int
}

func NewHistogram(spec Spec) (*Histogram, error) {
	if !spec.valid() {
		return nil, ErrInvalidDiceSpec
	}
	return &Histogram{
		Spec:   spec,
		Min:    spec.Min(),
		Counts: make([]int, spec.Max()-spec.Min()+1),
	}, nil
}

// Distribution rolls spec trials times.
func Distribution(s rng.Sampler, spec Spec, trials int) (*Histogram, error) {
	h, err := NewHistogram(spec)
	if err != nil {
		return nil, err
	}
	for i := 0; i < trials; i++ {
		sum, _ := Sum(s, spec)
		h.Add(sum)
	}
	return h, nil
}

// Add records one sum.  Sums outside the spec range are ignored.
func (h *Histogram) Add(sum int) {
	i := sum - h.Min
	if i < 0 || i >= len(h.Counts) {
		return
	}
	h.Counts[i]++
	h.Trials++
}

// Mode returns the most frequent sum; ties go to the lowest.
func (h *Histogram) Mode() int {
	best := 0
	for i, c := range h.Counts {
		if c > h.Counts[best] {
			best = i
		}
	}
	return h.Min + best
}

// Expected returns the exact probability of every sum, indexed like Counts.
func Expected(spec Spec) []float64 {
	if !spec.valid() {
		return nil
	}

	// Convolve one die at a time; ways[i] counts the ways to reach
	// (dice so far)+i.
	ways := []float64{1}
	for d := 0; d < spec.Count; d++ {
		next := make([]float64, len(ways)+spec.Sides-1)
		for i, w := range ways {
			for f := 0; f < spec.Sides; f++ {
				next[i+f] += w
			}
		}
		ways = next
	}

	total := 0.0
	for _, w := range ways {
		total += w
	}
	for i := range ways {
		ways[i] /= total
	}
	return ways
}

// ChiSquared returns Pearson's statistic for h against the exact
// distribution of its spec, and the degrees of freedom.
func (h *Histogram) ChiSquared() (stat float64, dof int) {
	probs := Expected(h.Spec)
	for i, c := range h.Counts {
		expected := probs[i] * float64(h.Trials)
		if expected == 0 {
			continue
		}
		d := float64(c) - expected
		stat += d * d / expected
	}
	return stat, len(h.Counts) - 1
}

// Fit is the outcome of a goodness-of-fit test.
type Fit struct {
	Stat     float64
	DoF      int
	Critical float64
	Alpha    float64
}

// OK reports whether the null hypothesis (the dice are fair) is kept.
func (f Fit) OK() bool {
	return f.Stat < f.Critical
}

func (f Fit) String() string {
	verdict := "fair"
	if !f.OK() {
		verdict = "biased"
	}
	return fmt.Sprintf("chi2=%.3f dof=%d critical(%.3g)=%.3f: %s",
		f.Stat, f.DoF, f.Alpha, f.Critical, verdict)
}

// GoodnessOfFit runs Pearson's chi-squared test at significance alpha.
func (h *Histogram) GoodnessOfFit(alpha float64) Fit {
	stat, dof := h.ChiSquared()
	critical := 0.0
	if dof > 0 {
		critical = distuv.ChiSquared{K: float64(dof)}.Quantile(1 - alpha)
	}
	return Fit{Stat: stat, DoF: dof, Critical: critical, Alpha: alpha}
}

// Render writes one row of # per sum, the way the classic 3d6 demo prints it.
func (h *Histogram) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Distribution of %dd%d rolls:\n", h.Spec.Count, h.Spec.Sides); err != nil {
		return err
	}
	for i, c := range h.Counts {
		if _, err := fmt.Fprintf(w, "%-2d : %s\n", h.Min+i, strings.Repeat("#", c)); err != nil {
			return err
		}
	}
	return nil
}
