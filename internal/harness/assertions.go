package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/roach88/basket/internal/ir"
)

// ratioTolerance bounds the difference accepted between an expected and an
// actual support or confidence.
const ratioTolerance = 1e-9

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions evaluates all assertions against a mining result.
// Returns one message per failed assertion, in assertion order.
func EvaluateAssertions(mining *ir.Result, assertions []Assertion) []string {
	var failures []string

	for i, assertion := range assertions {
		if err := evaluate(mining, assertion); err != nil {
			failures = append(failures, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}

	return failures
}

func evaluate(mining *ir.Result, a Assertion) error {
	switch a.Type {
	case AssertLevelCount:
		return assertLevelCount(mining, a)
	case AssertRuleCount:
		return assertRuleCount(mining, a)
	case AssertItemsetFrequent:
		return assertItemsetFrequent(mining, a)
	case AssertItemsetAbsent:
		return assertItemsetAbsent(mining, a)
	case AssertRulePresent:
		return assertRulePresent(mining, a)
	case AssertRuleAbsent:
		return assertRuleAbsent(mining, a)
	default:
		return fmt.Errorf("unknown assertion type: %s", a.Type)
	}
}

func assertLevelCount(mining *ir.Result, a Assertion) error {
	if a.Count == nil {
		return fmt.Errorf("level_count: count is required")
	}
	if got := len(mining.Levels); got != *a.Count {
		return &AssertionError{
			Type:     AssertLevelCount,
			Expected: fmt.Sprintf("%d levels", *a.Count),
			Actual:   fmt.Sprintf("%d levels", got),
		}
	}
	return nil
}

func assertRuleCount(mining *ir.Result, a Assertion) error {
	if a.Count == nil {
		return fmt.Errorf("rule_count: count is required")
	}
	if got := len(mining.Rules); got != *a.Count {
		return &AssertionError{
			Type:     AssertRuleCount,
			Expected: fmt.Sprintf("%d rules", *a.Count),
			Actual:   fmt.Sprintf("%d rules", got),
		}
	}
	return nil
}

func assertItemsetFrequent(mining *ir.Result, a Assertion) error {
	set, err := ir.ParseItemset(a.Items...)
	if err != nil {
		return fmt.Errorf("itemset_frequent: %w", err)
	}

	fi, ok := mining.Find(set)
	if !ok {
		return &AssertionError{
			Type:     AssertItemsetFrequent,
			Expected: fmt.Sprintf("%s frequent", set),
			Actual:   "not found in any level",
		}
	}
	if a.Support != nil && !ratioEqual(*a.Support, fi.Support) {
		return &AssertionError{
			Type:     AssertItemsetFrequent,
			Expected: fmt.Sprintf("%s with support %g", set, *a.Support),
			Actual:   fmt.Sprintf("support %g", fi.Support),
		}
	}
	if a.Count != nil && *a.Count != fi.Count {
		return &AssertionError{
			Type:     AssertItemsetFrequent,
			Expected: fmt.Sprintf("%s with count %d", set, *a.Count),
			Actual:   fmt.Sprintf("count %d", fi.Count),
		}
	}
	return nil
}

func assertItemsetAbsent(mining *ir.Result, a Assertion) error {
	set, err := ir.ParseItemset(a.Items...)
	if err != nil {
		return fmt.Errorf("itemset_absent: %w", err)
	}

	if fi, ok := mining.Find(set); ok {
		return &AssertionError{
			Type:     AssertItemsetAbsent,
			Expected: fmt.Sprintf("%s not frequent", set),
			Actual:   fmt.Sprintf("frequent with support %g", fi.Support),
		}
	}
	return nil
}

func parseRule(a Assertion) (antecedent, consequent ir.Itemset, err error) {
	antecedent, err = ir.ParseItemset(a.Antecedent...)
	if err != nil {
		return ir.Itemset{}, ir.Itemset{}, fmt.Errorf("%s: antecedent: %w", a.Type, err)
	}
	consequent, err = ir.ParseItemset(a.Consequent...)
	if err != nil {
		return ir.Itemset{}, ir.Itemset{}, fmt.Errorf("%s: consequent: %w", a.Type, err)
	}
	return antecedent, consequent, nil
}

func assertRulePresent(mining *ir.Result, a Assertion) error {
	antecedent, consequent, err := parseRule(a)
	if err != nil {
		return err
	}
	name := antecedent.String() + " => " + consequent.String()

	rule, ok := mining.FindRule(antecedent, consequent)
	if !ok {
		return &AssertionError{
			Type:     AssertRulePresent,
			Expected: fmt.Sprintf("rule %s", name),
			Actual:   "not emitted",
		}
	}
	if a.Confidence != nil && !ratioEqual(*a.Confidence, rule.Confidence) {
		return &AssertionError{
			Type:     AssertRulePresent,
			Expected: fmt.Sprintf("rule %s with confidence %g", name, *a.Confidence),
			Actual:   fmt.Sprintf("confidence %g", rule.Confidence),
		}
	}
	if a.Support != nil && !ratioEqual(*a.Support, rule.Support) {
		return &AssertionError{
			Type:     AssertRulePresent,
			Expected: fmt.Sprintf("rule %s with support %g", name, *a.Support),
			Actual:   fmt.Sprintf("support %g", rule.Support),
		}
	}
	return nil
}

func assertRuleAbsent(mining *ir.Result, a Assertion) error {
	antecedent, consequent, err := parseRule(a)
	if err != nil {
		return err
	}

	if rule, ok := mining.FindRule(antecedent, consequent); ok {
		return &AssertionError{
			Type:     AssertRuleAbsent,
			Expected: fmt.Sprintf("rule %s not emitted", rule),
			Actual:   fmt.Sprintf("emitted with confidence %g", rule.Confidence),
		}
	}
	return nil
}

func ratioEqual(expected, actual float64) bool {
	return math.Abs(expected-actual) <= ratioTolerance
}
