package domain

// Action names a user triggered transaction
type Action string

const (
	ActionBuy         Action = "buy"
	ActionOffer       Action = "offer"
	ActionBid         Action = "bid"
	ActionAcceptOffer Action = "acceptOffer"
	ActionMint        Action = "mint"
	ActionList        Action = "list"
)

// RedirectHome is the feed route a successful transaction navigates to
const RedirectHome = "/"

// ActionOutcome is what the client does after a successful action
type ActionOutcome struct {
	Action     Action `json:"action"`
	TxHash     TxHash `json:"txHash,omitempty"`
	Redirect   string `json:"redirect"`
	ClearInput bool   `json:"clearInput"`
	Message    string `json:"message"`
}

// ActionError carries the message shown for a failed action. Err keeps the
// cause so errors.Is still matches domain sentinels.
type ActionError struct {
	Action  Action
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	return e.Message
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
