package domain

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// ReasoningMechanism describes how extended reasoning is requested from a model.
type ReasoningMechanism string

const (
	// ReasoningMechanism_None means the model has no switchable reasoning.
	ReasoningMechanism_None ReasoningMechanism = "none"
	// ReasoningMechanism_NativeFlag means a top-level request flag understood by the model.
	ReasoningMechanism_NativeFlag ReasoningMechanism = "native_flag"
	// ReasoningMechanism_TemplateArgument means the toggle is nested in the chat template kwargs.
	ReasoningMechanism_TemplateArgument ReasoningMechanism = "template_argument"
)

// Valid reports whether m is one of the known mechanisms.
func (m ReasoningMechanism) Valid() bool {
	switch m {
	case ReasoningMechanism_None, ReasoningMechanism_NativeFlag, ReasoningMechanism_TemplateArgument:
		return true
	}
	return false
}

// ModelVariant is one concrete model id and the mechanism used to request reasoning from it.
type ModelVariant struct {
	ID        string             `yaml:"id" json:"id"`
	Mechanism ReasoningMechanism `yaml:"mechanism" json:"mechanism"`
}

// ModelSeries groups the instruct and thinking variants of a model family.
type ModelSeries struct {
	Key               string        `yaml:"key" json:"key"`
	DisplayName       string        `yaml:"name" json:"name"`
	Provider          string        `yaml:"provider" json:"provider"`
	Instruct          ModelVariant  `yaml:"instruct" json:"instruct"`
	Thinking          *ModelVariant `yaml:"thinking,omitempty" json:"thinking,omitempty"`
	SwitchIsByModelID bool          `yaml:"switch_by_model_id" json:"switch_by_model_id"`
}

// Validate checks the variant id invariant of the series.
func (s ModelSeries) Validate() error {
	if s.Key == "" {
		return NewValidationErr("model series key cannot be empty")
	}
	if s.Instruct.ID == "" {
		return NewValidationErr(fmt.Sprintf("model series %s: instruct id cannot be empty", s.Key))
	}
	if !s.Instruct.Mechanism.Valid() {
		return NewValidationErr(fmt.Sprintf("model series %s: invalid mechanism %q", s.Key, s.Instruct.Mechanism))
	}
	if s.Thinking == nil {
		if s.SwitchIsByModelID {
			return NewValidationErr(fmt.Sprintf("model series %s: switch by model id requires a thinking variant", s.Key))
		}
		return nil
	}
	if !s.Thinking.Mechanism.Valid() {
		return NewValidationErr(fmt.Sprintf("model series %s: invalid mechanism %q", s.Key, s.Thinking.Mechanism))
	}
	if s.SwitchIsByModelID && s.Instruct.ID == s.Thinking.ID {
		return NewValidationErr(fmt.Sprintf("model series %s: variants must have different ids", s.Key))
	}
	if !s.SwitchIsByModelID && s.Instruct.ID != s.Thinking.ID {
		return NewValidationErr(fmt.Sprintf("model series %s: variants must share the same id", s.Key))
	}
	return nil
}

// DefaultModels holds the model id used per kind when a request names none.
type DefaultModels struct {
	Chat   string `yaml:"chat" json:"chat"`
	Vision string `yaml:"vision" json:"vision"`
	Image  string `yaml:"image" json:"image"`
}

// ModelCatalogue is the static table of known model families.
type ModelCatalogue struct {
	Defaults DefaultModels `yaml:"defaults" json:"defaults"`
	Series   []ModelSeries `yaml:"series" json:"series"`
}

//go:embed catalogue.yml
var catalogueYAML []byte

// LoadModelCatalogue parses and validates a catalogue document.
func LoadModelCatalogue(data []byte) (ModelCatalogue, error) {
	var c ModelCatalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return ModelCatalogue{}, fmt.Errorf("parse model catalogue: %w", err)
	}
	seen := make(map[string]struct{}, len(c.Series))
	for _, s := range c.Series {
		if err := s.Validate(); err != nil {
			return ModelCatalogue{}, err
		}
		if _, dup := seen[s.Key]; dup {
			return ModelCatalogue{}, NewValidationErr(fmt.Sprintf("duplicate model series key %s", s.Key))
		}
		seen[s.Key] = struct{}{}
	}
	return c, nil
}

// DefaultModelCatalogue returns the embedded catalogue. It panics if the
// embedded document is invalid, which is a build defect.
func DefaultModelCatalogue() ModelCatalogue {
	c, err := LoadModelCatalogue(catalogueYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve returns the mechanism by which reasoning is requested for modelID.
// A thinking variant takes precedence over an instruct variant sharing its id.
// Unknown ids resolve to ReasoningMechanism_None.
func (c ModelCatalogue) Resolve(modelID string) ReasoningMechanism {
	mechanism := ReasoningMechanism_None
	for _, s := range c.Series {
		if s.Thinking != nil && s.Thinking.ID == modelID {
			return s.Thinking.Mechanism
		}
		if s.Instruct.ID == modelID {
			mechanism = s.Instruct.Mechanism
		}
	}
	return mechanism
}

// FindSeries returns the series that owns modelID.
func (c ModelCatalogue) FindSeries(modelID string) (ModelSeries, bool) {
	for _, s := range c.Series {
		if s.Instruct.ID == modelID || (s.Thinking != nil && s.Thinking.ID == modelID) {
			return s, true
		}
	}
	return ModelSeries{}, false
}

// ReasoningEnabled applies the family switching rule: for switch-by-id
// families the chosen id decides, for switch-by-flag families and unknown
// ids the requested flag decides. Families without a thinking variant never reason.
func (c ModelCatalogue) ReasoningEnabled(modelID string, requested bool) bool {
	s, ok := c.FindSeries(modelID)
	if !ok {
		return requested
	}
	if s.Thinking == nil {
		return false
	}
	if s.SwitchIsByModelID {
		return modelID == s.Thinking.ID
	}
	return requested
}
