package markuplex

// State identifies where the lexer currently is.
type State uint8

const (
	// StateData is outside any tag.
	StateData State = iota
	// StateCData is inside a CDATA section; input is raw text until "]]>".
	StateCData
	StateTagBegin
	StateTagName
	// StateTagEnd waits for the '>' of a close tag or self-closing tag.
	StateTagEnd
	StateAttributeNameStart
	StateAttributeName
	// StateAttributeNameEnd follows whitespace after an attribute name.
	StateAttributeNameEnd
	StateAttributeValueBegin
	StateAttributeValue

	stateCount = int(StateAttributeValue) + 1
)

var stateNames = [stateCount]string{
	StateData:                "Data",
	StateCData:               "CData",
	StateTagBegin:            "TagBegin",
	StateTagName:             "TagName",
	StateTagEnd:              "TagEnd",
	StateAttributeNameStart:  "AttributeNameStart",
	StateAttributeName:       "AttributeName",
	StateAttributeNameEnd:    "AttributeNameEnd",
	StateAttributeValueBegin: "AttributeValueBegin",
	StateAttributeValue:      "AttributeValue",
}

// String returns a stable name for the state, suitable for debugging.
func (s State) String() string {
	if int(s) < stateCount {
		return stateNames[s]
	}
	return "Unknown"
}
