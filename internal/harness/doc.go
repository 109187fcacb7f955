// Package harness runs mining scenarios described in YAML and checks the
// results against declared assertions.
//
// # Scenario Format
//
//	name: classic_market
//	description: "Five baskets, support and confidence at 0.6"
//	transactions:
//	  - [bread, milk]
//	  - [bread, diaper, beer, eggs]
//	min_support: 0.6
//	min_confidence: 0.6
//	assertions:
//	  - type: level_count
//	    count: 2
//	  - type: itemset_frequent
//	    items: [beer, diaper]
//	    support: 0.6
//	  - type: rule_present
//	    antecedent: [beer]
//	    consequent: [diaper]
//	    confidence: 1.0
//
// A scenario that expects mining to be rejected names the validation code
// instead of listing assertions:
//
//	expect_error: INVALID_THRESHOLD
//
// # Assertion Types
//
//   - level_count: number of recorded levels
//   - itemset_frequent: itemset is frequent, optionally with support or count
//   - itemset_absent: itemset is not frequent
//   - rule_present: rule was emitted, optionally with confidence or support
//   - rule_absent: rule was not emitted
//   - rule_count: number of emitted rules
//
// Ratios are compared with a tolerance of 1e-9.
//
// # Determinism
//
// Mining output is fully ordered, so the text report of a scenario can be
// compared byte for byte against a golden file with RunWithGolden.
package harness
