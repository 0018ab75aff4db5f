package projection

import (
	"fmt"
	"math"
)

// Domain is a closed interval of data values. The zero value is the
// interval [0, 0]; use Empty for "no data seen yet".
type Domain struct {
	Min, Max float64
}

// Empty returns the domain that contains nothing. Updating it with a value
// yields the degenerate domain [v, v].
func Empty() Domain { return Domain{Min: math.NaN(), Max: math.NaN()} }

// NewDomain returns [min, max], swapping the bounds if needed.
func NewDomain(min, max float64) Domain {
	if min > max {
		min, max = max, min
	}
	return Domain{Min: min, Max: max}
}

// IsEmpty reports whether no value has been recorded.
func (d Domain) IsEmpty() bool { return math.IsNaN(d.Min) || math.IsNaN(d.Max) }

// Update returns the domain extended to include v. NaN and infinite values
// are ignored.
func (d Domain) Update(v float64) Domain {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return d
	}
	if d.IsEmpty() {
		return Domain{Min: v, Max: v}
	}
	return Domain{Min: math.Min(d.Min, v), Max: math.Max(d.Max, v)}
}

// Union returns the smallest domain containing both.
func (d Domain) Union(o Domain) Domain {
	if o.IsEmpty() {
		return d
	}
	return d.Update(o.Min).Update(o.Max)
}

// Span returns Max - Min, or 0 for an empty domain.
func (d Domain) Span() float64 {
	if d.IsEmpty() {
		return 0
	}
	return d.Max - d.Min
}

// Contains reports whether v lies within the domain, bounds included.
func (d Domain) Contains(v float64) bool {
	return !d.IsEmpty() && d.Min <= v && v <= d.Max
}

// Equal compares domains, treating two empty domains as equal.
func (d Domain) Equal(o Domain) bool {
	if d.IsEmpty() || o.IsEmpty() {
		return d.IsEmpty() == o.IsEmpty()
	}
	return d == o
}

// OrZero returns [0, 0] for an empty domain and d otherwise.
func (d Domain) OrZero() Domain {
	if d.IsEmpty() {
		return Domain{}
	}
	return d
}

func (d Domain) String() string {
	if d.IsEmpty() {
		return "[]"
	}
	return fmt.Sprintf("[%g, %g]", d.Min, d.Max)
}

// DomainOf returns the domain covering every non-NaN value.
func DomainOf(values ...float64) Domain {
	d := Empty()
	for _, v := range values {
		d = d.Update(v)
	}
	return d
}
