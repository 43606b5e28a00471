package inputfilter

// InputSpec declares an Input. It is what form elements return from
// InputSpecification and what YAML form definitions decode into.
type InputSpec struct {
	Name           string          `yaml:"name,omitempty"`
	Required       bool            `yaml:"required,omitempty"`
	AllowEmpty     bool            `yaml:"allow_empty,omitempty"`
	BreakOnFailure bool            `yaml:"break_on_failure,omitempty"`
	ErrorMessage   string          `yaml:"error_message,omitempty"`
	Filters        []FilterSpec    `yaml:"filters,omitempty"`
	Validators     []ValidatorSpec `yaml:"validators,omitempty"`
}

// FilterSpec names a registered filter and its options.
type FilterSpec struct {
	Name    string  `yaml:"name"`
	Options Options `yaml:"options,omitempty"`
}

// ValidatorSpec names a registered validator, its options and message overrides.
type ValidatorSpec struct {
	Name                string            `yaml:"name"`
	Options             Options           `yaml:"options,omitempty"`
	Messages            map[string]string `yaml:"messages,omitempty"`
	BreakChainOnFailure bool              `yaml:"break_chain_on_failure,omitempty"`
}

// InputFilterSpec declares an InputFilter. Entries are created in sorted name
// order so the result does not depend on map iteration.
type InputFilterSpec struct {
	Inputs map[string]InputSpec       `yaml:"inputs,omitempty"`
	Nested map[string]InputFilterSpec `yaml:"nested,omitempty"`
}
