package ir

import (
	"encoding/json"
	"strconv"
)

// RefIdx pairs a reference designator with its index into PcbData.Footprints.
type RefIdx struct {
	Ref string
	Idx int
}

func (r RefIdx) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{r.Ref, r.Idx})
}

func (r *RefIdx) UnmarshalJSON(data []byte) error {
	var v [2]interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	ref, _ := v[0].(string)
	idxF, _ := v[1].(float64)
	r.Ref, r.Idx = ref, int(idxF)
	return nil
}

// Group is one BOM group: every reference sharing the group_fields tuple.
type Group []RefIdx

// BOM is the grouped, deduplicated bill of materials (spec §3, §4.6).
// Fields is keyed by footprint index, stringified, matching JSON object
// key requirements.
type BOM struct {
	Both    []Group            `json:"both"`
	F       []Group            `json:"F"`
	B       []Group            `json:"B"`
	Skipped []int              `json:"skipped"`
	Fields  map[string][]string `json:"fields"`
}

// FieldsByIndex sets the show-field values for a footprint index.
func (b *BOM) FieldsByIndex(idx int, values []string) {
	if b.Fields == nil {
		b.Fields = make(map[string][]string)
	}
	b.Fields[strconv.Itoa(idx)] = values
}
