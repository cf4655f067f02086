package models

import "encoding/json"

// Opener is a canned conversation starter with weighted follow-ups.
type Opener struct {
	ID              ID               `json:"id"`
	Text            string           `json:"text"`
	Context         string           `json:"context"`
	ContinueOptions []ContinueOption `json:"continue_options"`
}

// ContinueOption is owned by exactly one Opener. OpenerID mirrors the owner
// but the owner's ContinueOptions slice decides membership.
type ContinueOption struct {
	ID       ID      `json:"id"`
	Text     string  `json:"text"`
	Weight   float64 `json:"weight"`
	OpenerID ID      `json:"opener_id"`
}

// UnmarshalJSON also accepts the camel-cased "continueOptions" key.
func (o *Opener) UnmarshalJSON(b []byte) error {
	type alias Opener
	aux := struct {
		*alias
		Legacy []ContinueOption `json:"continueOptions"`
	}{alias: (*alias)(o)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if o.ContinueOptions == nil && aux.Legacy != nil {
		o.ContinueOptions = aux.Legacy
	}
	return nil
}

func (o Opener) EntityID() ID { return o.ID }

func (o Opener) Clone() Opener {
	o.ContinueOptions = cloneSlice(o.ContinueOptions)
	return o
}

// OptionIndex returns the position of the option with id, or -1.
func (o *Opener) OptionIndex(id ID) int {
	for i := range o.ContinueOptions {
		if o.ContinueOptions[i].ID == id {
			return i
		}
	}
	return -1
}

type CreateOpener struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

type UpdateOpener struct {
	ID      ID     `json:"id"`
	Text    string `json:"text"`
	Context string `json:"context"`
}

type OptionPayload struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}
