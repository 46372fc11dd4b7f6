package catalog

import "fmt"

// ErrInvalidResource is returned when a resource registration carries a
// negative price or volume, an empty name, or a reserved name.
// Use errors.Is(err, ErrInvalidResource) to check for this error.
var ErrInvalidResource = &InvalidResourceError{}

// InvalidResourceError reports a rejected resource registration.
type InvalidResourceError struct {
	Name   string
	Reason string
}

func (e *InvalidResourceError) Error() string {
	if e.Name == "" && e.Reason == "" {
		return "invalid resource"
	}
	return fmt.Sprintf("invalid resource %q: %s", e.Name, e.Reason)
}

func (e *InvalidResourceError) Is(target error) bool {
	_, ok := target.(*InvalidResourceError)
	return ok
}

// ErrInvalidYield is returned when a yield coefficient is negative.
var ErrInvalidYield = &InvalidYieldError{}

// InvalidYieldError reports a rejected yield registration.
type InvalidYieldError struct {
	Resource string
	Output   string
	PerUnit  float64
}

func (e *InvalidYieldError) Error() string {
	if e.Resource == "" && e.Output == "" {
		return "invalid yield"
	}
	return fmt.Sprintf("invalid yield %v for %s -> %s: must be >= 0", e.PerUnit, e.Resource, e.Output)
}

func (e *InvalidYieldError) Is(target error) bool {
	_, ok := target.(*InvalidYieldError)
	return ok
}

// ErrInvalidRequirement is returned when a requirement quantity is negative
// or the output name is empty.
var ErrInvalidRequirement = &InvalidRequirementError{}

// InvalidRequirementError reports a rejected output requirement.
type InvalidRequirementError struct {
	Output   string
	Quantity float64
	Reason   string
}

func (e *InvalidRequirementError) Error() string {
	if e.Output == "" && e.Reason == "" {
		return "invalid requirement"
	}
	return fmt.Sprintf("invalid requirement for %q: %s", e.Output, e.Reason)
}

func (e *InvalidRequirementError) Is(target error) bool {
	_, ok := target.(*InvalidRequirementError)
	return ok
}

// ErrUnknownResource is returned when a yield references a resource that was
// never registered.
var ErrUnknownResource = &UnknownResourceError{}

// UnknownResourceError reports a referential-integrity violation.
type UnknownResourceError struct {
	Name string
}

func (e *UnknownResourceError) Error() string {
	if e.Name == "" {
		return "unknown resource"
	}
	return "unknown resource: " + e.Name
}

func (e *UnknownResourceError) Is(target error) bool {
	_, ok := target.(*UnknownResourceError)
	return ok
}
