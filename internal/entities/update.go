package entities

// UpdateKind is the kind of an inbound gateway event.
type UpdateKind string

const (
	UpdateCommand UpdateKind = "command"
	UpdateChoice  UpdateKind = "choice"
	UpdateText    UpdateKind = "text"
)

// Update is one event delivered by the messaging gateway on behalf of a user.
type Update struct {
	UserID   int64
	Username string
	Kind     UpdateKind
	Value    string
}

type ReplyKind string

const (
	ReplyPrompt  ReplyKind = "prompt"
	ReplyMessage ReplyKind = "message"
	ReplyDirect  ReplyKind = "direct"
)

type Option struct {
	Label string
	Token string
}

// Reply is an instruction for the gateway. ReplacePrevious asks it to
// remove the prompt it rendered last for the recipient before showing this
// one; ignoring it is harmless.
type Reply struct {
	Kind            ReplyKind
	RecipientID     int64
	Text            string
	Options         []Option
	ReplacePrevious bool
}
