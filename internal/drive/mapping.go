package drive

// Mapping is one desired drive binding: a letter that should point at a UNC
// target. Label is an optional human-readable tag from config, carried
// through to reports unchanged.
type Mapping struct {
	Letter Letter  `json:"letter"`
	Target UNCPath `json:"path"`
	Label  string  `json:"label,omitempty"`
}

// NewMapping validates raw letter and target input and returns the typed
// pair. It is the single entry point for turning untrusted input (CLI
// arguments, config entries) into a Mapping.
func NewMapping(letter, target string) (Mapping, error) {
	l, err := ParseLetter(letter)
	if err != nil {
		return Mapping{}, err
	}

	t, err := ParseUNC(target)
	if err != nil {
		return Mapping{}, err
	}

	return Mapping{Letter: l, Target: t}, nil
}

// Validate re-checks a Mapping assembled field by field rather than through
// NewMapping. Non-zero Letter and UNCPath values are already normalized by
// their parsers, so only absence needs checking.
func (m Mapping) Validate() error {
	if m.Letter.IsZero() {
		return invalidLetter("", "missing drive letter")
	}
	if m.Target.IsZero() {
		return invalidPath("", "missing target path")
	}

	return nil
}

// String renders the mapping as "H: -> \\server\share" for logs and error
// messages.
func (m Mapping) String() string {
	return m.Letter.WithColon() + " -> " + m.Target.String()
}
