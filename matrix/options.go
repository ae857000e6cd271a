// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction-time policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Policy travels with the Matrix: results of Add/Sub/Mul/Scale inherit
//     the options of their left matrix operand.
package matrix

import "fmt"

// ProductRule selects the shape contract of Matrix×Matrix multiplication.
type ProductRule int

const (
	// ProductLegacy requires a.Rows == b.Cols and produces an n×n result,
	// n = min(a.Rows, b.Cols), summing over k < min(a.Cols, b.Rows).
	ProductLegacy ProductRule = iota
	// ProductStandard requires a.Cols == b.Rows and produces a.Rows × b.Cols.
	ProductStandard
)

// String returns "legacy" or "standard".
func (p ProductRule) String() string {
	switch p {
	case ProductLegacy:
		return "legacy"
	case ProductStandard:
		return "standard"
	default:
		return fmt.Sprintf("ProductRule(%d)", int(p))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	// Off by default: any float64, NaN and ±Inf included, is a valid element.
	DefaultValidateNaNInf = false

	// DefaultProductRule is the multiplication contract used when none is given.
	DefaultProductRule = ProductLegacy
)

const panicProductRuleInvalid = "matrix: WithProductRule: unknown product rule"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool        // DefaultValidateNaNInf
	productRule    ProductRule // DefaultProductRule
}

// ValidateNaNInf reports whether NaN/±Inf elements are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ProductRule reports the configured multiplication contract.
func (o Options) ProductRule() ProductRule { return o.productRule }

// WithValidateNaNInf rejects NaN and ±Inf elements with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts every float64 value.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithProductRule sets the multiplication contract.
// Panics on a value other than ProductLegacy or ProductStandard.
func WithProductRule(rule ProductRule) Option {
	if rule != ProductLegacy && rule != ProductStandard {
		panic(panicProductRuleInvalid)
	}

	return func(o *Options) { o.productRule = rule }
}

// WithStandardProduct selects the conventional a.Cols == b.Rows contract.
func WithStandardProduct() Option { return WithProductRule(ProductStandard) }

// WithLegacyProduct selects the a.Rows == b.Cols contract with a square result.
func WithLegacyProduct() Option { return WithProductRule(ProductLegacy) }

// NewOptions resolves opts over the defaults. Exposed for callers that want to
// inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		productRule:    DefaultProductRule,
	}
}

// gatherOptions applies user options in order; nil entries are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
