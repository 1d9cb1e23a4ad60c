package compliance

import (
	"fmt"
	"strings"
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/domain/property"
)

// Outcome is the result of evaluating the full predicate battery. Every
// predicate runs regardless of earlier failures so Issues lists all
// violations, not just the first.
type Outcome struct {
	Passed    bool      `json:"passed"`
	Issues    []string  `json:"issues,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Result is one predicate's verdict.
type Result struct {
	Ok    bool
	Issue string
}

func Pass() Result {
	return Result{Ok: true}
}

func Fail(issue string) Result {
	return Result{Issue: issue}
}

// Predicate is one independent regulatory rule. Implementations must not
// depend on other predicates' outcomes. A non-nil error means the rule could
// not be evaluated (collaborator down), which is distinct from a regulatory
// failure reported through Result.
type Predicate interface {
	Name() string
	Evaluate(ctx.Ctx, *property.Property) (Result, error)
}

// Checker runs the ordered battery and aggregates issues. Evaluate returns
// an error only when a predicate could not run at all; regulatory failures
// land in Outcome.Issues.
type Checker interface {
	Evaluate(ctx.Ctx, *property.Property) (*Outcome, error)
}

// Rejected is returned when a start or transfer request fails one or more
// predicates. Never retried automatically; surfaced to the caller verbatim.
type Rejected struct {
	Issues []string
}

func (r *Rejected) Error() string {
	return fmt.Sprintf("compliance rejected: %s", strings.Join(r.Issues, "; "))
}
