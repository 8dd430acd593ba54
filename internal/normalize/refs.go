// Package normalize holds the shape conversions shared by every backend
// normalizer: relation unwrapping, repeater unwrapping and record checks.
package normalize

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TechRef is one element of a technology list in any backend shape:
//
//	"React"                                  plain name
//	{"name": "React"}                        populated relation (Payload)
//	{"technologies_id": {"name": "React"}}   junction row (Directus)
//	{"technologies_id": 7} or 7              unpopulated relation, no name
//
// Name is empty when the element carries no usable name.
type TechRef struct {
	Name string
}

func (t *TechRef) UnmarshalJSON(data []byte) error {
	*t = TechRef{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		return json.Unmarshal(data, &t.Name)
	case '{':
		var obj struct {
			Name     *string         `json:"name"`
			Junction json.RawMessage `json:"technologies_id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Name != nil {
			t.Name = *obj.Name
			return nil
		}
		if len(obj.Junction) > 0 && obj.Junction[0] == '{' {
			return t.UnmarshalJSON(obj.Junction)
		}
	}
	// numbers, null and bare ids: nothing to show
	return nil
}

// Tech extracts technology names, dropping empty ones.
func Tech(refs []TechRef) []string {
	if refs == nil {
		return nil
	}
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		if name := strings.TrimSpace(r.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Step is one process step stored either as a bare string or as a
// single-field repeater row {"step": "..."}.
type Step string

func (s *Step) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var row struct {
			Step string `json:"step"`
		}
		if err := json.Unmarshal(data, &row); err != nil {
			return err
		}
		*s = Step(row.Step)
		return nil
	}
	if string(data) == "null" {
		*s = ""
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Step(v)
	return nil
}

// Process unwraps steps in order, dropping empty ones. A nil input stays nil
// so an absent process is distinguishable from an empty one.
func Process(steps []Step) []string {
	if steps == nil {
		return nil
	}
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		if s != "" {
			out = append(out, string(s))
		}
	}
	return out
}

// ID is a record identifier that backends send as either a string or a
// number.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case string(data) == "null":
		*id = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*id = ID(n.String())
	}
	return nil
}
