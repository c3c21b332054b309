package protocol_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/luma/seymour/protocol"
)

var _ = Describe("Commands", func() {
	Describe("ParseCommand()", func() {
		It("returns an error for an empty line", func() {
			_, err := protocol.ParseCommand("")
			Expect(err).To(MatchError(protocol.ErrEmptyMessage))
		})

		It("returns an error if the verb is unknown", func() {
			_, err := protocol.ParseCommand("FOO")
			Expect(err).To(Equal(&protocol.UnknownTypeError{Type: "FOO"}))
		})

		It("is case sensitive", func() {
			_, err := protocol.ParseCommand("user bob")
			Expect(err).To(Equal(&protocol.UnknownTypeError{Type: "user"}))
		})

		It("treats a leading space as an empty verb", func() {
			_, err := protocol.ParseCommand(" USER bob")
			Expect(err).To(Equal(&protocol.UnknownTypeError{Type: ""}))
		})

		DescribeTable("valid commands",
			func(line string, expected protocol.Command) {
				cmd, err := protocol.ParseCommand(line)
				Expect(err).To(Succeed())
				Expect(cmd).To(Equal(expected))
			},
			Entry("USER", "USER bob", protocol.User{Username: "bob"}),
			Entry("LISTSUBSCRIPTIONS", "LISTSUBSCRIPTIONS", protocol.ListSubscriptions{}),
			Entry("SUBSCRIBE", "SUBSCRIBE http://example.com/feed", protocol.Subscribe{URL: "http://example.com/feed"}),
			Entry("UNSUBSCRIBE", "UNSUBSCRIBE 3", protocol.Unsubscribe{ID: 3}),
			Entry("LISTUNREAD", "LISTUNREAD", protocol.ListUnread{}),
			Entry("MARKREAD", "MARKREAD 42", protocol.MarkRead{ID: 42}),
			Entry("negative ids", "MARKREAD -7", protocol.MarkRead{ID: -7}),
			Entry("an empty argument", "USER ", protocol.User{Username: ""}),
		)

		DescribeTable("missing arguments",
			func(line, name string) {
				_, err := protocol.ParseCommand(line)
				Expect(err).To(Equal(&protocol.MissingArgumentError{Name: name}))
			},
			Entry("USER", "USER", "username"),
			Entry("SUBSCRIBE", "SUBSCRIBE", "url"),
			Entry("UNSUBSCRIBE", "UNSUBSCRIBE", "id"),
			Entry("MARKREAD", "MARKREAD", "id"),
		)

		DescribeTable("too many arguments",
			func(line string, expected, actual int) {
				_, err := protocol.ParseCommand(line)
				Expect(err).To(Equal(&protocol.TooManyArgumentsError{Expected: expected, Actual: actual}))
			},
			Entry("USER", "USER a b", 1, 2),
			Entry("LISTSUBSCRIPTIONS", "LISTSUBSCRIPTIONS x", 0, 1),
			Entry("LISTUNREAD with a trailing space", "LISTUNREAD ", 0, 1),
			Entry("SUBSCRIBE", "SUBSCRIBE a b c", 1, 3),
			Entry("MARKREAD with a double space", "MARKREAD  42", 1, 2),
		)

		DescribeTable("invalid integers",
			func(line, value string) {
				_, err := protocol.ParseCommand(line)
				Expect(err).To(Equal(&protocol.InvalidIntegerArgumentError{Argument: "id", Value: value}))
			},
			Entry("letters", "MARKREAD abc", "abc"),
			Entry("decimals", "UNSUBSCRIBE 1.5", "1.5"),
			Entry("hex", "MARKREAD 0x10", "0x10"),
			Entry("empty", "MARKREAD ", ""),
			Entry("overflow", "MARKREAD 9223372036854775808", "9223372036854775808"),
		)

		It("checks the argument count before the argument type", func() {
			_, err := protocol.ParseCommand("MARKREAD abc def")

			var tooMany *protocol.TooManyArgumentsError
			Expect(errors.As(err, &tooMany)).To(BeTrue())
		})
	})

	Describe("String()", func() {
		DescribeTable("renders the wire line",
			func(cmd protocol.Command, expected string) {
				Expect(cmd.String()).To(Equal(expected))
			},
			Entry("USER", protocol.User{Username: "bob"}, "USER bob"),
			Entry("LISTSUBSCRIPTIONS", protocol.ListSubscriptions{}, "LISTSUBSCRIPTIONS"),
			Entry("SUBSCRIBE", protocol.Subscribe{URL: "http://example.com/feed"}, "SUBSCRIBE http://example.com/feed"),
			Entry("UNSUBSCRIBE", protocol.Unsubscribe{ID: 3}, "UNSUBSCRIBE 3"),
			Entry("LISTUNREAD", protocol.ListUnread{}, "LISTUNREAD"),
			Entry("MARKREAD", protocol.MarkRead{ID: 42}, "MARKREAD 42"),
		)

		It("matches the verb", func() {
			cmd := protocol.MarkRead{ID: 1}
			Expect(cmd.String()).To(HavePrefix(string(cmd.Verb())))
		})

		It("does not append a line terminator", func() {
			Expect(protocol.ListUnread{}.String()).NotTo(HaveSuffix("\n"))
		})
	})
})
