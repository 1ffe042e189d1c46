package models

// Exchange is one query and the bot's reply in a session transcript.
type Exchange struct {
	Query    string `json:"q"`
	Reply    string `json:"r"`
	Scheme   string `json:"s,omitempty"`
	ApplyURL string `json:"u,omitempty"`
}

// Found returns true if the reply carries an apply link.
func (e Exchange) Found() bool {
	return e.ApplyURL != ""
}
