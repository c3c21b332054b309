package protocol_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/luma/seymour/protocol"
)

var _ = Describe("Parsing primitives", func() {
	Describe("Tokenize()", func() {
		It("returns no tokens for an empty line", func() {
			Expect(protocol.Tokenize("")).To(BeEmpty())
		})

		It("splits on single spaces", func() {
			Expect(protocol.Tokenize("MARKREAD 42")).To(Equal([]string{"MARKREAD", "42"}))
		})

		It("does not collapse repeated spaces", func() {
			Expect(protocol.Tokenize("A  B")).To(Equal([]string{"A", "", "B"}))
		})

		It("does not trim", func() {
			Expect(protocol.Tokenize(" A ")).To(Equal([]string{"", "A", ""}))
		})
	})

	Describe("errors", func() {
		It("all match ErrMalformedMessage", func() {
			errs := []error{
				protocol.ErrEmptyMessage,
				&protocol.UnknownTypeError{Type: "FOO"},
				&protocol.MissingArgumentError{Name: "id"},
				&protocol.TooManyArgumentsError{Expected: 1, Actual: 2},
				&protocol.InvalidIntegerArgumentError{Argument: "id", Value: "x"},
			}

			for _, err := range errs {
				Expect(errors.Is(err, protocol.ErrMalformedMessage)).To(BeTrue(), err.Error())
			}
		})

		It("have human readable messages", func() {
			Expect(protocol.ErrEmptyMessage.Error()).To(Equal("empty message"))
			Expect((&protocol.UnknownTypeError{Type: "FOO"}).Error()).
				To(Equal(`unknown message type "FOO"`))
			Expect((&protocol.MissingArgumentError{Name: "username"}).Error()).
				To(Equal(`missing argument "username"`))
			Expect((&protocol.TooManyArgumentsError{Expected: 1, Actual: 2}).Error()).
				To(Equal("too many arguments (expected 1, got 2)"))
			Expect((&protocol.InvalidIntegerArgumentError{Argument: "id", Value: "abc"}).Error()).
				To(Equal(`invalid integer value "abc" for argument "id"`))
		})
	})
})
