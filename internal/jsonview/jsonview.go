// Package jsonview converts protocol messages to and from JSON documents for
// tooling. Documents look like
//
//	{"verb":"MARKREAD","id":42,"line":"MARKREAD 42"}
//	{"code":"22","id":3,"url":"http://example.com/feed","line":"22 3 http://example.com/feed"}
//
// "line" is informational and ignored when a document is read back.
package jsonview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/luma/seymour/protocol"
)

var (
	ErrInvalidDocument = errors.New("jsonview: invalid document")
)

type setter struct {
	doc []byte
	err error
}

func (s *setter) set(path string, value interface{}) {
	if s.err != nil {
		return
	}

	s.doc, s.err = sjson.SetBytes(s.doc, path, value)
}

// MarshalCommand renders cmd as a JSON document.
func MarshalCommand(cmd protocol.Command) ([]byte, error) {
	s := &setter{doc: []byte("{}")}
	s.set("verb", string(cmd.Verb()))

	switch c := cmd.(type) {
	case protocol.User:
		s.set("username", c.Username)
	case protocol.Subscribe:
		s.set("url", c.URL)
	case protocol.Unsubscribe:
		s.set("id", c.ID)
	case protocol.MarkRead:
		s.set("id", c.ID)
	case protocol.ListSubscriptions, protocol.ListUnread:
	default:
		return nil, fmt.Errorf("jsonview: unsupported command %T", cmd)
	}

	s.set("line", cmd.String())

	return s.doc, s.err
}

// MarshalResponse renders resp as a JSON document.
func MarshalResponse(resp protocol.Response) ([]byte, error) {
	s := &setter{doc: []byte("{}")}
	s.set("code", string(resp.Code()))

	switch r := resp.(type) {
	case protocol.AckUser:
		s.set("id", r.ID)
	case protocol.Subscription:
		s.set("id", r.ID)
		s.set("url", r.URL)
	case protocol.Entry:
		s.set("id", r.ID)
		s.set("feed_id", r.FeedID)
		s.set("feed_url", r.FeedURL)
		s.set("url", r.URL)
		s.set("title", r.Title)
	case protocol.ResourceNotFound:
		s.set("message", r.Message)
	case protocol.BadCommand:
		s.set("message", r.Message)
	case protocol.NeedUser:
		s.set("message", r.Message)
	case protocol.InternalError:
		s.set("message", r.Message)
	case protocol.StartSubscriptionList, protocol.StartEntryList, protocol.EndList,
		protocol.AckSubscribe, protocol.AckUnsubscribe, protocol.AckMarkRead:
	default:
		return nil, fmt.Errorf("jsonview: unsupported response %T", resp)
	}

	s.set("line", resp.String())

	return s.doc, s.err
}

// UnmarshalCommand reads a command from a JSON document. Missing fields and
// malformed integers are reported with the protocol error types.
func UnmarshalCommand(data []byte) (protocol.Command, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}

	doc := gjson.ParseBytes(data)

	verb, err := getString(doc, "verb", false)
	if err != nil {
		return nil, err
	}

	switch protocol.Verb(verb) {
	case protocol.USER:
		username, err := getString(doc, "username", false)
		if err != nil {
			return nil, err
		}

		return protocol.User{Username: username}, nil

	case protocol.LISTSUBSCRIPTIONS:
		return protocol.ListSubscriptions{}, nil

	case protocol.SUBSCRIBE:
		url, err := getString(doc, "url", false)
		if err != nil {
			return nil, err
		}

		return protocol.Subscribe{URL: url}, nil

	case protocol.UNSUBSCRIBE:
		id, err := getInt(doc, "id")
		if err != nil {
			return nil, err
		}

		return protocol.Unsubscribe{ID: id}, nil

	case protocol.LISTUNREAD:
		return protocol.ListUnread{}, nil

	case protocol.MARKREAD:
		id, err := getInt(doc, "id")
		if err != nil {
			return nil, err
		}

		return protocol.MarkRead{ID: id}, nil

	default:
		return nil, &protocol.UnknownTypeError{Type: verb}
	}
}

// UnmarshalResponse reads a response from a JSON document.
func UnmarshalResponse(data []byte) (protocol.Response, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}

	doc := gjson.ParseBytes(data)

	code, err := getString(doc, "code", false)
	if err != nil {
		return nil, err
	}

	switch protocol.Code(code) {
	case protocol.CodeAckUser:
		id, err := getInt(doc, "id")
		if err != nil {
			return nil, err
		}

		return protocol.AckUser{ID: id}, nil

	case protocol.CodeStartSubscriptionList:
		return protocol.StartSubscriptionList{}, nil

	case protocol.CodeSubscription:
		id, err := getInt(doc, "id")
		if err != nil {
			return nil, err
		}

		url, err := getString(doc, "url", false)
		if err != nil {
			return nil, err
		}

		return protocol.Subscription{ID: id, URL: url}, nil

	case protocol.CodeStartEntryList:
		return protocol.StartEntryList{}, nil

	case protocol.CodeEntry:
		return unmarshalEntry(doc)

	case protocol.CodeEndList:
		return protocol.EndList{}, nil

	case protocol.CodeAckSubscribe:
		return protocol.AckSubscribe{}, nil

	case protocol.CodeAckUnsubscribe:
		return protocol.AckUnsubscribe{}, nil

	case protocol.CodeAckMarkRead:
		return protocol.AckMarkRead{}, nil

	case protocol.CodeResourceNotFound, protocol.CodeBadCommand,
		protocol.CodeNeedUser, protocol.CodeInternalError:
		msg, err := getString(doc, "message", true)
		if err != nil {
			return nil, err
		}

		switch protocol.Code(code) {
		case protocol.CodeResourceNotFound:
			return protocol.ResourceNotFound{Message: msg}, nil
		case protocol.CodeBadCommand:
			return protocol.BadCommand{Message: msg}, nil
		case protocol.CodeNeedUser:
			return protocol.NeedUser{Message: msg}, nil
		default:
			return protocol.InternalError{Message: msg}, nil
		}

	default:
		return nil, &protocol.UnknownTypeError{Type: code}
	}
}

func unmarshalEntry(doc gjson.Result) (protocol.Response, error) {
	id, err := getInt(doc, "id")
	if err != nil {
		return nil, err
	}

	feedID, err := getInt(doc, "feed_id")
	if err != nil {
		return nil, err
	}

	feedURL, err := getString(doc, "feed_url", false)
	if err != nil {
		return nil, err
	}

	url, err := getString(doc, "url", false)
	if err != nil {
		return nil, err
	}

	title, err := getString(doc, "title", true)
	if err != nil {
		return nil, err
	}

	return protocol.Entry{
		ID:      id,
		FeedID:  feedID,
		FeedURL: feedURL,
		Title:   title,
		URL:     url,
	}, nil
}

// getString reads a string field. Fields that end up between spaces on the
// wire must not contain a space or begin with ':'. No field may contain a
// line break.
func getString(doc gjson.Result, name string, freeText bool) (string, error) {
	r := doc.Get(name)
	if !r.Exists() {
		return "", &protocol.MissingArgumentError{Name: name}
	}

	if r.Type != gjson.String {
		return "", fmt.Errorf("%w: %q must be a string", ErrInvalidDocument, name)
	}

	s := r.String()

	if strings.ContainsAny(s, "\r\n") {
		return "", fmt.Errorf("%w: %q must not contain line breaks", ErrInvalidDocument, name)
	}

	if !freeText && (strings.Contains(s, " ") || strings.HasPrefix(s, ":")) {
		return "", fmt.Errorf("%w: %q must be a single field", ErrInvalidDocument, name)
	}

	return s, nil
}

func getInt(doc gjson.Result, name string) (int64, error) {
	r := doc.Get(name)
	if !r.Exists() {
		return 0, &protocol.MissingArgumentError{Name: name}
	}

	raw := r.Raw
	if r.Type == gjson.String {
		raw = r.String()
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &protocol.InvalidIntegerArgumentError{Argument: name, Value: raw}
	}

	return n, nil
}
