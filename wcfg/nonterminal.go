package wcfg

// NT is a grammar nonterminal, identified by name. Two NTs are equal iff
// their names match; being a plain comparable string, an NT doubles as
// its own automatonstate.State.ID when UnaryFSA builds the derived FSA.
type NT string

// S is the conventional distinguished start nonterminal, used by the
// worked examples and by callers that do not need a custom start symbol.
const S NT = "S"

func (n NT) String() string { return string(n) }
