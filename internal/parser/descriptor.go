// Package parser converts the raw test descriptors handed over by the
// pipeline into priced test items.
package parser

import (
	"fmt"
	"strings"

	"costsplit/internal/cost"
	"costsplit/internal/domain"
)

// NoneDescriptor marks an intentionally empty test descriptor.
const NoneDescriptor = "none"

// SpecialSet holds the identifier prefixes of tests that may only run on
// an unrestricted OS.
type SpecialSet map[string]struct{}

// NewSpecialSet builds a SpecialSet from a list of prefixes.
func NewSpecialSet(prefixes []string) SpecialSet {
	set := SpecialSet{}
	for _, p := range prefixes {
		if p = strings.TrimSpace(p); p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the identifier's prefix before the first
// underscore is in the set.
func (s SpecialSet) Contains(name string) bool {
	prefix, _, _ := strings.Cut(name, "_")
	_, ok := s[prefix]
	return ok
}

// UnitTests parses a space-separated unit-test descriptor, pricing each
// identifier from the cost table and splitting special from normal tests.
func UnitTests(desc string, table *cost.Table, special SpecialSet) (specialItems, normal []domain.TestItem) {
	desc = strings.TrimSpace(desc)
	if desc == NoneDescriptor || desc == "" {
		return nil, nil
	}
	for _, name := range strings.Fields(desc) {
		item := domain.TestItem{
			Name:    name,
			Cost:    table.Lookup(name),
			Special: special.Contains(name),
		}
		if item.Special {
			specialItems = append(specialItems, item)
		} else {
			normal = append(normal, item)
		}
	}
	return specialItems, normal
}

// Integrations parses a semicolon-separated integration descriptor of
// "type: n1 n2 ..." clauses into one priced item per regress number. A
// clause without a colon is a configuration error, not a test to drop.
func Integrations(desc string, table *cost.RegressTable) ([]domain.TestItem, error) {
	desc = strings.TrimSpace(desc)
	if desc == NoneDescriptor || desc == "" {
		return nil, nil
	}
	var items []domain.TestItem
	for _, clause := range strings.Split(desc, ";") {
		if strings.TrimSpace(clause) == "" {
			continue
		}
		regressType, nums, ok := strings.Cut(clause, ":")
		if !ok {
			return nil, fmt.Errorf("integration clause %q: missing \":\" separator", strings.TrimSpace(clause))
		}
		regressType = strings.TrimSpace(regressType)
		for _, num := range strings.Fields(nums) {
			items = append(items, domain.TestItem{
				Name: regressType + " " + num,
				Cost: table.Lookup(regressType, cost.RegressName(regressType, num)),
			})
		}
	}
	return items, nil
}
