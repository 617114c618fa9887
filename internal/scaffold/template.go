// Package scaffold materializes the project trees offered by the init
// command and owns the generated manifest, env and ignore files.
package scaffold

import "fmt"

// ErrUnknownTemplate is returned when a template identifier is outside the
// supported set.
var ErrUnknownTemplate = fmt.Errorf("unknown template")

// Template identifies one of the two supported stacks. The set is closed;
// adding a stack means adding a case to every switch over this type.
type Template string

const (
	// TemplateHardhat pairs the Hardhat contract toolchain with a React
	// (Vite) frontend.
	TemplateHardhat Template = "hardhat"
	// TemplateFoundry pairs the Foundry contract toolchain with the same
	// React frontend.
	TemplateFoundry Template = "foundry"
)

// Templates lists the supported templates in prompt order.
var Templates = []Template{TemplateHardhat, TemplateFoundry}

// ParseTemplate resolves a user-supplied identifier to a Template.
func ParseTemplate(id string) (Template, error) {
	switch Template(id) {
	case TemplateHardhat:
		return TemplateHardhat, nil
	case TemplateFoundry:
		return TemplateFoundry, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownTemplate, id, TemplateHardhat, TemplateFoundry)
	}
}

func (t Template) String() string {
	return string(t)
}

// DisplayName returns the label shown in interactive prompts.
func (t Template) DisplayName() string {
	switch t {
	case TemplateHardhat:
		return "Hardhat + React (Vite)"
	case TemplateFoundry:
		return "Foundry + React (Vite)"
	default:
		return string(t)
	}
}
