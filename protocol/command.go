package protocol

import "strconv"

// Verb is the first token of a command line.
type Verb string

const (
	USER              Verb = "USER"
	LISTSUBSCRIPTIONS Verb = "LISTSUBSCRIPTIONS"
	SUBSCRIBE         Verb = "SUBSCRIBE"
	UNSUBSCRIBE       Verb = "UNSUBSCRIBE"
	LISTUNREAD        Verb = "LISTUNREAD"
	MARKREAD          Verb = "MARKREAD"
)

// Command is a message sent from a client to a seymour server. The set of
// commands is closed, String renders the wire line without a terminator.
type Command interface {
	Verb() Verb
	String() string

	command()
}

// User selects the user for the rest of the session.
type User struct {
	Username string
}

// ListSubscriptions lists the current user's subscriptions.
//
// Requires a client to issue a User command prior.
type ListSubscriptions struct{}

// Subscribe subscribes the current user to a new feed.
//
// Requires a client to issue a User command prior.
type Subscribe struct {
	URL string
}

// Unsubscribe removes the current user's subscription to feed ID.
//
// Requires a client to issue a User command prior.
type Unsubscribe struct {
	ID int64
}

// ListUnread lists the current user's unread feed entries.
//
// Requires a client to issue a User command prior.
type ListUnread struct{}

// MarkRead marks feed entry ID as read by the current user.
//
// Requires a client to issue a User command prior.
type MarkRead struct {
	ID int64
}

func (User) Verb() Verb { return USER }
func (ListSubscriptions) Verb() Verb { return LISTSUBSCRIPTIONS }
func (Subscribe) Verb() Verb { return SUBSCRIBE }
func (Unsubscribe) Verb() Verb { return UNSUBSCRIBE }
func (ListUnread) Verb() Verb { return LISTUNREAD }
func (MarkRead) Verb() Verb { return MARKREAD }

func (c User) String() string { return string(USER) + " " + c.Username }
func (ListSubscriptions) String() string { return string(LISTSUBSCRIPTIONS) }
func (c Subscribe) String() string { return string(SUBSCRIBE) + " " + c.URL }
func (c Unsubscribe) String() string { return string(UNSUBSCRIBE) + " " + strconv.FormatInt(c.ID, 10) }
func (ListUnread) String() string { return string(LISTUNREAD) }
func (c MarkRead) String() string { return string(MARKREAD) + " " + strconv.FormatInt(c.ID, 10) }

func (User) command() {}
func (ListSubscriptions) command() {}
func (Subscribe) command() {}
func (Unsubscribe) command() {}
func (ListUnread) command() {}
func (MarkRead) command() {}

// ParseCommand parses a single line, without its terminator, as a client
// command.
//
// Every failure matches ErrMalformedMessage with errors.Is; use errors.As to
// get at the specific error type.
func ParseCommand(line string) (Command, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil, ErrEmptyMessage
	}

	switch Verb(tokens[0]) {
	case USER:
		if err := checkArgs(tokens, 1); err != nil {
			return nil, err
		}

		username, err := argString(tokens, "username", 1)
		if err != nil {
			return nil, err
		}

		return User{Username: username}, nil

	case LISTSUBSCRIPTIONS:
		if err := checkArgs(tokens, 0); err != nil {
			return nil, err
		}

		return ListSubscriptions{}, nil

	case SUBSCRIBE:
		if err := checkArgs(tokens, 1); err != nil {
			return nil, err
		}

		url, err := argString(tokens, "url", 1)
		if err != nil {
			return nil, err
		}

		return Subscribe{URL: url}, nil

	case UNSUBSCRIBE:
		if err := checkArgs(tokens, 1); err != nil {
			return nil, err
		}

		id, err := argInt(tokens, "id", 1)
		if err != nil {
			return nil, err
		}

		return Unsubscribe{ID: id}, nil

	case LISTUNREAD:
		if err := checkArgs(tokens, 0); err != nil {
			return nil, err
		}

		return ListUnread{}, nil

	case MARKREAD:
		if err := checkArgs(tokens, 1); err != nil {
			return nil, err
		}

		id, err := argInt(tokens, "id", 1)
		if err != nil {
			return nil, err
		}

		return MarkRead{ID: id}, nil

	default:
		return nil, &UnknownTypeError{Type: tokens[0]}
	}
}

var (
	_ Command = User{}
	_ Command = ListSubscriptions{}
	_ Command = Subscribe{}
	_ Command = Unsubscribe{}
	_ Command = ListUnread{}
	_ Command = MarkRead{}
)
