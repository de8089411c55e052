// Package realtime distributes change notifications between service
// instances and connected board displays. Changes are published on a Redis
// channel and fanned out locally through a Hub; displays react by refetching
// the board, never by patching state from the event payload.
package realtime

import "encoding/json"

// Event kinds. The kind tells subscribers which part of the board changed;
// the payload carries identifiers only.
const (
	KindOrder     = "order"
	KindLine      = "line"
	KindSelection = "selection"
	KindSettings  = "settings"
	KindCustomer  = "customer"
	KindProduct   = "product"
)

// ChangeEvent describes one change to packing data.
type ChangeEvent struct {
	// Date is the delivery date the change applies to, empty for changes
	// affecting every date (settings, reference data).
	Date string `json:"date,omitempty"`
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
}

// Marshal encodes the event for the wire.
func (e ChangeEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// UnmarshalChangeEvent decodes an event from the wire.
func UnmarshalChangeEvent(data []byte) (ChangeEvent, error) {
	var e ChangeEvent
	err := json.Unmarshal(data, &e)
	return e, err
}
