package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// maxLevenshteinDistance is the maximum edit distance for "did you mean?"
// suggestions when unknown config keys are detected.
const maxLevenshteinDistance = 3

// knownGlobalKeys are the valid top-level keys in the config file.
var knownGlobalKeys = map[string]bool{
	"domain": true, "on_failure": true, "persistent": true,
	"log_level": true, "log_format": true, "log_file": true,
	"mapping": true,
}

// knownMappingKeys are the valid keys inside a [[mapping]] block.
var knownMappingKeys = map[string]bool{
	"letter": true, "path": true, "label": true,
}

// Sorted slice forms for Levenshtein matching. Sorted for deterministic
// suggestions when two candidates have the same edit distance.
var (
	knownGlobalKeysList  = sortedKeys(knownGlobalKeys)
	knownMappingKeysList = sortedKeys(knownMappingKeys)
)

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// checkUnknownKeys inspects TOML metadata for undecoded keys and returns
// an error with "did you mean?" suggestions for each unknown key.
// Undecoded keys below "mapping" are fields of a [[mapping]] block and get
// suggestions from the mapping key set instead of the global one.
func checkUnknownKeys(md *toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}

	var errs []error

	for _, key := range undecoded {
		parts := strings.Split(key.String(), ".")

		if parts[0] == "mapping" && len(parts) > 1 {
			errs = append(errs, mappingKeyError(parts[len(parts)-1]))

			continue
		}

		errs = append(errs, globalKeyError(parts[0]))
	}

	return errors.Join(errs...)
}

func globalKeyError(name string) error {
	if s := closestMatch(name, knownGlobalKeysList); s != "" {
		return fmt.Errorf("unknown config key %q (did you mean %q?)", name, s)
	}

	return fmt.Errorf("unknown config key %q", name)
}

func mappingKeyError(name string) error {
	if s := closestMatch(name, knownMappingKeysList); s != "" {
		return fmt.Errorf("unknown key %q in [[mapping]] (did you mean %q?)", name, s)
	}

	return fmt.Errorf("unknown key %q in [[mapping]]", name)
}

// closestMatch finds the closest known key by Levenshtein distance.
// Returns empty string if no match is within maxLevenshteinDistance.
func closestMatch(unknown string, known []string) string {
	best := ""
	bestDist := maxLevenshteinDistance + 1

	for _, k := range known {
		d := levenshtein(unknown, k)
		if d < bestDist {
			bestDist = d
			best = k
		}
	}

	if bestDist <= maxLevenshteinDistance {
		return best
	}

	return ""
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	if a == "" {
		return len(b)
	}

	if b == "" {
		return len(a)
	}

	// Use single-row optimization to avoid allocating a full matrix.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := range len(a) {
		curr[0] = i + 1

		for j := range len(b) {
			cost := 1
			if a[i] == b[j] {
				cost = 0
			}

			curr[j+1] = minOf(curr[j]+1, prev[j+1]+1, prev[j]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// minOf returns the minimum of three integers.
func minOf(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}

	if c < m {
		m = c
	}

	return m
}
