package workspace

import (
	"context"

	"github.com/codice-tools/plastic-ctl/internal/logging"
	"github.com/codice-tools/plastic-ctl/internal/plastic"
)

// Classification is the outcome of asking the client to parse a selector.
type Classification int

const (
	// ClassUnknown means the client could not parse the selector or the
	// query itself failed. Treated like ClassFixed for update decisions.
	ClassUnknown Classification = iota

	// ClassFixed means the selector pins a fixed point (label, changeset).
	ClassFixed

	// ClassBranch means the selector tracks a moving branch tip.
	ClassBranch
)

func (c Classification) String() string {
	switch c {
	case ClassBranch:
		return "branch"
	case ClassFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// IsBranch reports whether the selector tracks a branch.
func (c Classification) IsBranch() bool {
	return c == ClassBranch
}

// ClassifySelector writes selector to a temp file and asks the client to
// parse it. Returns the classification and, for branch selectors, the
// branch name. Never fails: checkout must make progress even when
// classification is inconclusive, so every failure degrades to
// ClassUnknown and is logged here.
func (m *Manager) ClassifySelector(ctx context.Context, selector string) (Classification, string) {
	var spec *plastic.SelectorSpec

	err := m.withSelectorFile(selector, func(file string) error {
		output, err := m.tool.Run(ctx, "gss", "--file="+file)
		if err != nil {
			return err
		}
		spec = plastic.ParseSelectorSpec(output)
		return nil
	})
	if err != nil {
		logging.Error("unable to determine whether selector is a branch selector",
			"error", err, "selector", selector)
		return ClassUnknown, ""
	}

	if spec == nil {
		logging.Info("invalid selector", "selector", selector)
		return ClassUnknown, ""
	}

	if spec.Branch != "" {
		return ClassBranch, spec.Branch
	}
	return ClassFixed, ""
}
