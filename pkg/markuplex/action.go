package markuplex

// Action is the classification of a single input byte.
type Action uint8

const (
	ActionLt Action = iota
	ActionGt
	ActionSpace
	ActionEqual
	ActionSingleQuote
	ActionDoubleQuote
	ActionSlash
	ActionChar
	// ActionError is a fallback slot consulted before ActionChar when a state
	// has no handler for the classified action. No default transition uses it.
	ActionError

	actionCount = int(ActionError) + 1
)

var actionNames = [actionCount]string{
	ActionLt:          "Lt",
	ActionGt:          "Gt",
	ActionSpace:       "Space",
	ActionEqual:       "Equal",
	ActionSingleQuote: "SingleQuote",
	ActionDoubleQuote: "DoubleQuote",
	ActionSlash:       "Slash",
	ActionChar:        "Char",
	ActionError:       "Error",
}

// String returns a stable name for the action, suitable for debugging.
func (a Action) String() string {
	if int(a) < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// Classify maps a byte to its action. The mapping never depends on lexer state.
func Classify(c byte) Action {
	switch c {
	case ' ', '\t', '\r', '\n':
		return ActionSpace
	case '<':
		return ActionLt
	case '>':
		return ActionGt
	case '"':
		return ActionDoubleQuote
	case '\'':
		return ActionSingleQuote
	case '=':
		return ActionEqual
	case '/':
		return ActionSlash
	default:
		return ActionChar
	}
}
