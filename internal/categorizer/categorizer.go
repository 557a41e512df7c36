// Package categorizer refines transaction categories using keyword rules
// loaded from a YAML file. By default no rules are loaded and the Category
// column keeps the channel value copied from the statement verbatim.
package categorizer

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fjacquet/pdf2firefly/internal/logging"
	"fjacquet/pdf2firefly/internal/models"
)

// CategoryRule maps a set of keywords to a category name.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Categorizer applies keyword rules to transactions. A Categorizer with no
// rules passes every transaction through unchanged.
type Categorizer struct {
	rules []CategoryRule
	log   logging.Logger
}

// NewCategorizer creates a Categorizer with the given rules.
func NewCategorizer(rules []CategoryRule, log logging.Logger) *Categorizer {
	if log == nil {
		log = logging.GetLogger()
	}
	return &Categorizer{rules: rules, log: log}
}

// LoadRules reads category rules from a YAML file.
func LoadRules(path string) ([]CategoryRule, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("error reading category rules: %w", err)
	}

	var rules []CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing category rules: %w", err)
	}
	return rules, nil
}

// Apply refines the Category of each transaction in place. A rule matches
// when any of its keywords appears, case-insensitively, in the transaction's
// description or current category. The first matching rule wins;
// transactions with no match keep their channel-derived category.
func (c *Categorizer) Apply(transactions []models.Transaction) {
	if len(c.rules) == 0 {
		return
	}

	for i := range transactions {
		description := strings.ToUpper(transactions[i].Description)
		category := strings.ToUpper(transactions[i].Category)

		for _, rule := range c.rules {
			if matched, keyword := matchRule(rule, description, category); matched {
				c.log.Debug("Category rule matched",
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: "category", Value: rule.Name})
				transactions[i].Category = rule.Name
				break
			}
		}
	}
}

func matchRule(rule CategoryRule, description, category string) (bool, string) {
	for _, keyword := range rule.Keywords {
		keywordUpper := strings.ToUpper(keyword)
		if keywordUpper == "" {
			continue
		}
		if strings.Contains(description, keywordUpper) || strings.Contains(category, keywordUpper) {
			return true, keyword
		}
	}
	return false, ""
}
