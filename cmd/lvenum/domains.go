// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcollect/enumerate"
	"github.com/katalvlaran/lvcollect/multimap"
)

// domainFile is the YAML description of a product:
//
//	considered: [n1, n2]
//	candidates:
//	  - object: n1
//	    values: ["a", "b"]
//	  - object: n1
//	    values: ["c"]
//	observed:
//	  n2: "x"
//	allow_empty: false
//
// Entries naming the same object are merged. Without considered, objects are
// taken in the order they first appear in candidates, then in observed. An
// explicit empty list means no slot, hence a single empty combination.
type domainFile struct {
	Considered []string          `yaml:"considered"`
	Candidates []candidateEntry  `yaml:"candidates"`
	Observed   map[string]string `yaml:"observed"`
	AllowEmpty bool              `yaml:"allow_empty"`
}

type candidateEntry struct {
	Object string   `yaml:"object"`
	Values []string `yaml:"values"`
}

func loadDomainFile(path string) (domainFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domainFile{}, fmt.Errorf("read domain file: %w", err)
	}
	var f domainFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domainFile{}, fmt.Errorf("parse domain file %s: %w", path, err)
	}
	for i, e := range f.Candidates {
		if e.Object == "" {
			return domainFile{}, fmt.Errorf("parse domain file %s: candidate entry %d has no object", path, i)
		}
	}
	return f, nil
}

// spec merges the candidate entries and resolves the considered objects.
func (f domainFile) spec() enumerate.DomainSpec[string, string] {
	merged := multimap.New[string, string]()
	for _, e := range f.Candidates {
		merged.AddAll(e.Object, e.Values...)
	}

	considered := f.Considered
	if considered == nil {
		considered = merged.Keys()
		var extra []string
		for obj := range f.Observed {
			if !merged.ContainsKey(obj) {
				extra = append(extra, obj)
			}
		}
		slices.Sort(extra)
		considered = append(considered, extra...)
	}

	return enumerate.DomainSpec[string, string]{
		Candidates: merged.Collections(),
		Observed:   f.Observed,
		Considered: considered,
	}
}

func (f domainFile) combinations(opts ...enumerate.Option) (*enumerate.Combinations[string], error) {
	if f.AllowEmpty {
		opts = append(opts, enumerate.WithAllowEmpty())
	}
	return enumerate.FromSpec(f.spec(), opts...)
}
