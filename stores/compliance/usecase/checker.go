package usecase

import (
	"time"

	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/domain"
	"github.com/lelongx/goapi/domain/compliance"
	"github.com/lelongx/goapi/domain/property"
	"golang.org/x/xerrors"
)

type CheckerCfg struct {
	Predicates []compliance.Predicate
}

type impl struct {
	predicates []compliance.Predicate
}

func New(cfg *CheckerCfg) compliance.Checker {
	return &impl{predicates: cfg.Predicates}
}

// Evaluate runs every predicate regardless of earlier failures so the
// outcome reports all violations at once.
func (im *impl) Evaluate(c ctx.Ctx, prop *property.Property) (*compliance.Outcome, error) {
	outcome := &compliance.Outcome{CheckedAt: time.Now()}

	for _, p := range im.predicates {
		res, err := p.Evaluate(c, prop)
		if err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"predicate": p.Name(),
				"titleId":   prop.TitleId,
			}).Error("predicate evaluation failed")
			return nil, xerrors.Errorf("predicate %s: %w", p.Name(), domain.ErrCollaboratorDown)
		}
		if !res.Ok {
			outcome.Issues = append(outcome.Issues, res.Issue)
		}
	}

	outcome.Passed = len(outcome.Issues) == 0
	return outcome, nil
}
