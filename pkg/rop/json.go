package rop

import json "github.com/goccy/go-json"

// settlement mirrors the record produced by Promise.allSettled.
type settlement struct {
	Status Status `json:"status"`
	Value  any    `json:"value,omitempty"`
	Reason error  `json:"reason,omitempty"`
}

// MarshalJSON encodes r as {"status","value"} when fulfilled, leaving value
// out when there is none, or as {"status","reason"} when rejected.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	s := settlement{Status: r.Status(), Reason: r.reason}
	if v, ok := r.value.Get(); ok && r.reason == nil {
		s.Value = v
	}
	return json.Marshal(s)
}
