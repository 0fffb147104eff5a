package markuplex

import "fmt"

// Kind identifies the lexical kind of an event.
type Kind uint8

const (
	KindText Kind = iota
	KindOpenTag
	KindCloseTag
	KindAttributeName
	KindAttributeValue
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindOpenTag:
		return "open-tag"
	case KindCloseTag:
		return "close-tag"
	case KindAttributeName:
		return "attribute-name"
	case KindAttributeValue:
		return "attribute-value"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by its wire name.
func (k Kind) MarshalText() ([]byte, error) {
	if k > KindAttributeValue {
		return nil, fmt.Errorf("marshal event kind %d: %w", k, errUnknownKind)
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a wire name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "text":
		*k = KindText
	case "open-tag":
		*k = KindOpenTag
	case "close-tag":
		*k = KindCloseTag
	case "attribute-name":
		*k = KindAttributeName
	case "attribute-value":
		*k = KindAttributeValue
	default:
		return fmt.Errorf("unmarshal event kind %q: %w", text, errUnknownKind)
	}
	return nil
}

// Event is a single lexical unit published to subscribers.
type Event struct {
	Kind  Kind   `json:"type"`
	Value string `json:"value"`
}

// String formats the event as kind(value).
func (e Event) String() string {
	return fmt.Sprintf("%s(%q)", e.Kind, e.Value)
}
