package calculator

import (
	"fmt"
	"strings"
)

// 偏导数的计算方式
type Derivative int

const (
	// DerivativeAnalytic samples the closed-form partial derivatives.
	DerivativeAnalytic Derivative = iota
	// DerivativeCentral differentiates the sampled mesh, one-sided on the grid border.
	DerivativeCentral
)

func (d Derivative) String() string {
	switch d {
	case DerivativeAnalytic:
		return "analytic"
	case DerivativeCentral:
		return "central"
	default:
		return fmt.Sprintf("Derivative(%d)", int(d))
	}
}

func ParseDerivative(s string) (Derivative, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "analytic":
		return DerivativeAnalytic, nil
	case "central":
		return DerivativeCentral, nil
	}
	return 0, fmt.Errorf("unknown derivative %q (want analytic or central)", s)
}

// 数值积分方式
type Rule int

const (
	// RuleTrapezoid weights the border rows and columns of the grid by one half.
	RuleTrapezoid Rule = iota
	// RuleRiemann sums every grid point with full weight.
	RuleRiemann
)

func (r Rule) String() string {
	switch r {
	case RuleTrapezoid:
		return "trapezoid"
	case RuleRiemann:
		return "riemann"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "trapezoid":
		return RuleTrapezoid, nil
	case "riemann":
		return RuleRiemann, nil
	}
	return 0, fmt.Errorf("unknown rule %q (want trapezoid or riemann)", s)
}

type Option func(*options)

type options struct {
	workers    int
	derivative Derivative
	rule       Rule
}

func defaultOptions() options {
	return options{
		workers:    1,
		derivative: DerivativeAnalytic,
		rule:       RuleTrapezoid,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers sets how many goroutines evaluate grid rows; values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

func WithDerivative(d Derivative) Option {
	return func(o *options) { o.derivative = d }
}

func WithRule(r Rule) Option {
	return func(o *options) { o.rule = r }
}
