package rules

// SuccessMessage is surfaced on a verdict when every enabled rule
// passes.
const SuccessMessage = "path is valid"

// Verdict aggregates the outcome of a full validation run.
type Verdict struct {
	Passed bool `json:"passed"`
	// Message is the first failing rule's message, or SuccessMessage.
	Message string `json:"message"`
	// RuleResults holds one entry per enabled rule, in engine order,
	// regardless of earlier failures.
	RuleResults []Result `json:"rule_results"`
}

type entry struct {
	rule    Rule
	enabled bool
}

// Engine evaluates an ordered collection of rules over a validation
// context. Operations addressing an unknown rule name are no-ops.
type Engine struct {
	entries []entry
}

// NewEngine builds an engine preloaded with the four built-in rules,
// all enabled, in their canonical order.
func NewEngine(opts Options) *Engine {
	e := &Engine{}
	e.Add(StartEndRule{})
	e.Add(ContinuityRule{Opts: opts})
	e.Add(WallCollisionRule{})
	e.Add(RequiredPointsRule{})
	return e
}

// Add appends a rule, enabled. A rule with a duplicate name replaces
// the existing one in place.
func (e *Engine) Add(r Rule) {
	for i := range e.entries {
		if e.entries[i].rule.Name() == r.Name() {
			e.entries[i] = entry{rule: r, enabled: true}
			return
		}
	}
	e.entries = append(e.entries, entry{rule: r, enabled: true})
}

// Remove drops the named rule from the engine.
func (e *Engine) Remove(name string) {
	for i := range e.entries {
		if e.entries[i].rule.Name() == name {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return
		}
	}
}

// Enable turns the named rule back on.
func (e *Engine) Enable(name string) {
	e.setEnabled(name, true)
}

// Disable turns the named rule off without removing it.
func (e *Engine) Disable(name string) {
	e.setEnabled(name, false)
}

func (e *Engine) setEnabled(name string, enabled bool) {
	for i := range e.entries {
		if e.entries[i].rule.Name() == name {
			e.entries[i].enabled = enabled
			return
		}
	}
}

// Rules returns the names of the configured rules in engine order, so
// callers can detect misspelled names themselves.
func (e *Engine) Rules() []string {
	names := make([]string, 0, len(e.entries))
	for _, en := range e.entries {
		names = append(names, en.rule.Name())
	}
	return names
}

// Validate evaluates every enabled rule, even after one fails, and
// aggregates the results. The overall verdict passes only when all
// enabled rules pass.
func (e *Engine) Validate(ctx *Context) Verdict {
	verdict := Verdict{Passed: true, Message: SuccessMessage}

	for _, en := range e.entries {
		if !en.enabled {
			continue
		}
		result := en.rule.Evaluate(ctx)
		verdict.RuleResults = append(verdict.RuleResults, result)
		if !result.Passed {
			if verdict.Passed {
				verdict.Message = result.Message
			}
			verdict.Passed = false
		}
	}
	return verdict
}
