package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/basket/internal/engine"
)

// Scenario defines a mining scenario: a corpus, thresholds and the
// properties the result must have.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Transactions is the corpus, one token list per transaction.
	// Tokens are normalized exactly as file input is.
	Transactions [][]string `yaml:"transactions"`

	// MinSupport and MinConfidence are required; pointers distinguish an
	// explicit 0 from a missing key.
	MinSupport    *float64 `yaml:"min_support"`
	MinConfidence *float64 `yaml:"min_confidence"`

	// ExpectError is the validation code mining must fail with.
	// Mutually exclusive with Assertions.
	ExpectError string `yaml:"expect_error,omitempty"`

	// Assertions validate the mining result.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion validates one property of a mining result.
type Assertion struct {
	// Type selects the assertion; see the Assert* constants.
	Type string `yaml:"type"`

	// Items is the itemset (itemset_frequent, itemset_absent).
	Items []string `yaml:"items,omitempty"`

	// Antecedent and Consequent identify a rule (rule_present, rule_absent).
	Antecedent []string `yaml:"antecedent,omitempty"`
	Consequent []string `yaml:"consequent,omitempty"`

	// Support, Confidence and Count are optional exact expectations.
	// For level_count and rule_count, Count is required.
	Support    *float64 `yaml:"support,omitempty"`
	Confidence *float64 `yaml:"confidence,omitempty"`
	Count      *int     `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertLevelCount      = "level_count"
	AssertItemsetFrequent = "itemset_frequent"
	AssertItemsetAbsent   = "itemset_absent"
	AssertRulePresent     = "rule_present"
	AssertRuleAbsent      = "rule_absent"
	AssertRuleCount       = "rule_count"
)

var knownErrorCodes = map[string]bool{
	string(engine.ErrCodeInvalidThreshold):     true,
	string(engine.ErrCodeEmptyCorpus):          true,
	string(engine.ErrCodeMalformedTransaction): true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// FindScenarios returns the .yaml and .yml files under dir, sorted.
// A non-empty filter is a glob matched against the file name without
// extension.
func FindScenarios(dir, filter string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// validateScenario checks that required fields are present and valid.
// Threshold ranges are not checked here; an out-of-range threshold is a
// legitimate expect_error scenario.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.MinSupport == nil {
		return fmt.Errorf("min_support is required")
	}

	if s.MinConfidence == nil {
		return fmt.Errorf("min_confidence is required")
	}

	if s.ExpectError != "" {
		if !knownErrorCodes[s.ExpectError] {
			return fmt.Errorf("expect_error: unknown error code %q", s.ExpectError)
		}
		if len(s.Assertions) > 0 {
			return fmt.Errorf("assertions cannot be combined with expect_error")
		}
		return nil
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertLevelCount, AssertRuleCount:
		if a.Count == nil {
			return fmt.Errorf("assertions[%d]: count is required for %s", index, a.Type)
		}
		if *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertItemsetFrequent, AssertItemsetAbsent:
		if len(a.Items) == 0 {
			return fmt.Errorf("assertions[%d]: items is required for %s", index, a.Type)
		}
	case AssertRulePresent, AssertRuleAbsent:
		if len(a.Antecedent) == 0 {
			return fmt.Errorf("assertions[%d]: antecedent is required for %s", index, a.Type)
		}
		if len(a.Consequent) == 0 {
			return fmt.Errorf("assertions[%d]: consequent is required for %s", index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
