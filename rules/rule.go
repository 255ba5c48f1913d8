package rules

import (
	"github.com/expr-lang/expr/vm"
)

// ActionFunc carries out a rule once its condition holds. It returns true
// when the tick's command is complete and no further rules should run.
type ActionFunc func(env TickEnv) bool

// Rule is one step of the decision cascade: a condition → action pair.
// The engine evaluates rules by priority and uses Category + Exclusive
// to keep two rules from fighting over the same part of the command.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Category     string      // grouping for exclusive semantics
	Exclusive    bool        // if true, blocks lower-priority rules in same category
	ConditionSrc string      // expr source (preserved for logging)
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
