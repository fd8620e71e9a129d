package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedType is returned by PayloadAs when an event is not of the requested type
var ErrUnexpectedType = errors.New("unexpected event type")

// DecodePayload converts an event payload into T. Events on the in-process
// bus already carry the struct; payloads read back from Kafka or the
// dead-letter file arrive as raw JSON or generic maps.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("nil %T payload", v)
		}
		return *v, nil
	case json.RawMessage:
		return result, json.Unmarshal(v, &result)
	case []byte:
		return result, json.Unmarshal(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// PayloadAs decodes evt's payload after checking that evt is of type want
func PayloadAs[T any](evt Event, want Type) (T, error) {
	if evt.Type != want {
		var zero T
		return zero, fmt.Errorf("%w: got %s, want %s", ErrUnexpectedType, evt.Type, want)
	}
	return DecodePayload[T](evt.Payload)
}
