package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/myrjola/dharohar/internal/errors"
)

var ErrUnsupportedJSON = errors.NewSentinel("unsupported JSON value")

// Text is an optional free-form field.
//
// The data files are hand-written and not validated, so the same field may hold a string in one file and a list
// or a number in another. Text accepts a string, number, boolean, null, or an array of those, joining arrays
// with ", ".
type Text string

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Text) UnmarshalJSON(data []byte) error {
	items, err := decodeLoose(data)
	if err != nil {
		return err
	}
	*t = Text(strings.Join(items, ", "))
	return nil
}

// TextList is an optional list field that also accepts a single scalar.
type TextList []string

// UnmarshalJSON implements [json.Unmarshaler].
func (l *TextList) UnmarshalJSON(data []byte) error {
	items, err := decodeLoose(data)
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// String joins the list with ", ".
func (l TextList) String() string {
	return strings.Join(l, ", ")
}

// decodeLoose decodes a JSON scalar or an array of scalars into strings. Null and empty strings yield no items.
func decodeLoose(data []byte) ([]string, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "decode array")
		}
		items := make([]string, 0, len(raw))
		for _, r := range raw {
			item, err := decodeScalar(r)
			if err != nil {
				return nil, err
			}
			if item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	}

	item, err := decodeScalar(data)
	if err != nil {
		return nil, err
	}
	if item == "" {
		return nil, nil
	}
	return []string{item}, nil
}

func decodeScalar(data []byte) (string, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return "", errors.Wrap(err, "decode scalar")
	}
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case bool, float64:
		// Keep the literal so that numbers like 1.0e3 or 320 aren't reformatted.
		return string(bytes.TrimSpace(data)), nil
	default:
		return "", errors.Wrap(ErrUnsupportedJSON, "decode scalar")
	}
}
