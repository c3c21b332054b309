package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is the first token of a response line. 2x codes are successful
// replies, 4x codes are client errors and 5x codes are server errors.
type Code string

const (
	CodeAckUser               Code = "20"
	CodeStartSubscriptionList Code = "21"
	CodeSubscription          Code = "22"
	CodeStartEntryList        Code = "23"
	CodeEntry                 Code = "24"
	CodeEndList               Code = "25"
	CodeAckSubscribe          Code = "26"
	CodeAckUnsubscribe        Code = "27"
	CodeAckMarkRead           Code = "28"

	CodeResourceNotFound Code = "40"
	CodeBadCommand       Code = "41"
	CodeNeedUser         Code = "42"

	CodeInternalError Code = "50"
)

// Response is a message sent from a seymour server to a client. The set of
// responses is closed, String renders the wire line without a terminator.
type Response interface {
	Code() Code
	String() string

	response()
}

// AckUser acknowledges a User command with the id of the selected user.
type AckUser struct {
	ID int64
}

// StartSubscriptionList begins a list of subscriptions.
//
// Must be followed by zero or more Subscription lines and one EndList.
type StartSubscriptionList struct{}

// Subscription is a single item of a subscription list.
type Subscription struct {
	ID  int64
	URL string
}

// StartEntryList begins a list of feed entries.
//
// Must be followed by zero or more Entry lines and one EndList.
type StartEntryList struct{}

// Entry is a single item of an entry list. Title is sent last, after a ':',
// and may contain spaces.
type Entry struct {
	ID      int64
	FeedID  int64
	FeedURL string
	Title   string
	URL     string
}

// EndList ends either kind of list. The line does not say which list it
// ends, the client has to remember which one it started.
type EndList struct{}

type AckSubscribe struct{}

type AckUnsubscribe struct{}

type AckMarkRead struct{}

// ResourceNotFound states that the requested feed or entry does not exist.
type ResourceNotFound struct {
	Message string
}

// BadCommand states that the command sent was not valid.
type BadCommand struct {
	Message string
}

// NeedUser states that the command requires a selected user, but no User
// command has been issued yet.
type NeedUser struct {
	Message string
}

// InternalError states that the server failed while serving the request.
type InternalError struct {
	Message string
}

func (AckUser) Code() Code { return CodeAckUser }
func (StartSubscriptionList) Code() Code { return CodeStartSubscriptionList }
func (Subscription) Code() Code { return CodeSubscription }
func (StartEntryList) Code() Code { return CodeStartEntryList }
func (Entry) Code() Code { return CodeEntry }
func (EndList) Code() Code { return CodeEndList }
func (AckSubscribe) Code() Code { return CodeAckSubscribe }
func (AckUnsubscribe) Code() Code { return CodeAckUnsubscribe }
func (AckMarkRead) Code() Code { return CodeAckMarkRead }
func (ResourceNotFound) Code() Code { return CodeResourceNotFound }
func (BadCommand) Code() Code { return CodeBadCommand }
func (NeedUser) Code() Code { return CodeNeedUser }
func (InternalError) Code() Code { return CodeInternalError }

func (r AckUser) String() string {
	return string(CodeAckUser) + " " + strconv.FormatInt(r.ID, 10)
}

func (StartSubscriptionList) String() string { return string(CodeStartSubscriptionList) }

func (r Subscription) String() string {
	return fmt.Sprintf("%s %d %s", CodeSubscription, r.ID, r.URL)
}

func (StartEntryList) String() string { return string(CodeStartEntryList) }

func (r Entry) String() string {
	return fmt.Sprintf("%s %d %d %s %s :%s", CodeEntry, r.ID, r.FeedID, r.FeedURL, r.URL, r.Title)
}

func (EndList) String() string { return string(CodeEndList) }
func (AckSubscribe) String() string { return string(CodeAckSubscribe) }
func (AckUnsubscribe) String() string { return string(CodeAckUnsubscribe) }
func (AckMarkRead) String() string { return string(CodeAckMarkRead) }

func (r ResourceNotFound) String() string { return string(CodeResourceNotFound) + " " + r.Message }
func (r BadCommand) String() string { return string(CodeBadCommand) + " " + r.Message }
func (r NeedUser) String() string { return string(CodeNeedUser) + " " + r.Message }
func (r InternalError) String() string { return string(CodeInternalError) + " " + r.Message }

func (AckUser) response() {}
func (StartSubscriptionList) response() {}
func (Subscription) response() {}
func (StartEntryList) response() {}
func (Entry) response() {}
func (EndList) response() {}
func (AckSubscribe) response() {}
func (AckUnsubscribe) response() {}
func (AckMarkRead) response() {}
func (ResourceNotFound) response() {}
func (BadCommand) response() {}
func (NeedUser) response() {}
func (InternalError) response() {}

// BadCommandFrom builds the reply a server sends when it can't parse a line
// from its client.
func BadCommandFrom(err error) BadCommand {
	return BadCommand{Message: err.Error()}
}

// ReplyError is an error response received from a server.
type ReplyError struct {
	Code    Code
	Message string
}

func (e *ReplyError) Error() string {
	return fmt.Sprintf("server replied %s: %s", e.Code, e.Message)
}

// ErrorOrNil returns a *ReplyError if the response is one of the error
// responses. Otherwise it returns nil.
func ErrorOrNil(resp Response) error {
	switch r := resp.(type) {
	case ResourceNotFound:
		return &ReplyError{Code: r.Code(), Message: r.Message}
	case BadCommand:
		return &ReplyError{Code: r.Code(), Message: r.Message}
	case NeedUser:
		return &ReplyError{Code: r.Code(), Message: r.Message}
	case InternalError:
		return &ReplyError{Code: r.Code(), Message: r.Message}
	default:
		return nil
	}
}

// ParseResponse parses a single line, without its terminator, as a server
// response.
//
// The message of an error response is the rest of the line after the code.
// An Entry's title starts at the first token beginning with ':' and runs to
// the end of the line.
func ParseResponse(line string) (Response, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil, ErrEmptyMessage
	}

	switch code := Code(tokens[0]); code {
	case CodeAckUser:
		if err := checkArgs(tokens, 1); err != nil {
			return nil, err
		}

		id, err := argInt(tokens, "id", 1)
		if err != nil {
			return nil, err
		}

		return AckUser{ID: id}, nil

	case CodeSubscription:
		if err := checkArgs(tokens, 2); err != nil {
			return nil, err
		}

		id, err := argInt(tokens, "id", 1)
		if err != nil {
			return nil, err
		}

		url, err := argString(tokens, "url", 2)
		if err != nil {
			return nil, err
		}

		return Subscription{ID: id, URL: url}, nil

	case CodeEntry:
		return parseEntry(line)

	case CodeStartSubscriptionList, CodeStartEntryList, CodeEndList,
		CodeAckSubscribe, CodeAckUnsubscribe, CodeAckMarkRead:
		if err := checkArgs(tokens, 0); err != nil {
			return nil, err
		}

		switch code {
		case CodeStartSubscriptionList:
			return StartSubscriptionList{}, nil
		case CodeStartEntryList:
			return StartEntryList{}, nil
		case CodeEndList:
			return EndList{}, nil
		case CodeAckSubscribe:
			return AckSubscribe{}, nil
		case CodeAckUnsubscribe:
			return AckUnsubscribe{}, nil
		default:
			return AckMarkRead{}, nil
		}

	case CodeResourceNotFound, CodeBadCommand, CodeNeedUser, CodeInternalError:
		msg, err := trailing(line, tokens, "message", 1)
		if err != nil {
			return nil, err
		}

		switch code {
		case CodeResourceNotFound:
			return ResourceNotFound{Message: msg}, nil
		case CodeBadCommand:
			return BadCommand{Message: msg}, nil
		case CodeNeedUser:
			return NeedUser{Message: msg}, nil
		default:
			return InternalError{Message: msg}, nil
		}

	default:
		return nil, &UnknownTypeError{Type: tokens[0]}
	}
}

// parseEntry parses
//
//	24 <id> <feed_id> <feed_url> <url> :<title>
//
// The fields before the title are tokenized together with the space that
// precedes the ':', so a line without a url yields an empty one.
func parseEntry(line string) (Response, error) {
	i := strings.Index(line, " :")
	if i < 0 {
		return nil, &MissingArgumentError{Name: "title"}
	}

	tokens := Tokenize(line[:i+1])

	id, err := argInt(tokens, "id", 1)
	if err != nil {
		return nil, err
	}

	feedID, err := argInt(tokens, "feed_id", 2)
	if err != nil {
		return nil, err
	}

	feedURL, err := argString(tokens, "feed_url", 3)
	if err != nil {
		return nil, err
	}

	url, err := argString(tokens, "url", 4)
	if err != nil {
		return nil, err
	}

	return Entry{
		ID:      id,
		FeedID:  feedID,
		FeedURL: feedURL,
		Title:   line[i+2:],
		URL:     url,
	}, nil
}

var (
	_ Response = AckUser{}
	_ Response = StartSubscriptionList{}
	_ Response = Subscription{}
	_ Response = StartEntryList{}
	_ Response = Entry{}
	_ Response = EndList{}
	_ Response = AckSubscribe{}
	_ Response = AckUnsubscribe{}
	_ Response = AckMarkRead{}
	_ Response = ResourceNotFound{}
	_ Response = BadCommand{}
	_ Response = NeedUser{}
	_ Response = InternalError{}
)
