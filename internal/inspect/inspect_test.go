package inspect_test

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/luma/seymour/internal/inspect"
	"github.com/luma/seymour/protocol"
)

var _ = Describe("inspect", func() {
	var (
		out  *bytes.Buffer
		opts inspect.Options
	)

	BeforeEach(func() {
		out = bytes.NewBuffer([]byte{})
		opts = inspect.Options{Kind: inspect.Commands, Log: zap.NewNop()}
	})

	lines := func() []string {
		return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	}

	Describe("Decode()", func() {
		It("writes one document per command", func() {
			in := strings.NewReader("USER bob\r\nLISTUNREAD\nMARKREAD 42\n")

			Expect(inspect.Decode(in, out, opts)).To(Succeed())
			Expect(lines()).To(HaveLen(3))
			Expect(lines()[0]).To(MatchJSON(`{"verb":"USER","username":"bob","line":"USER bob"}`))
			Expect(lines()[2]).To(MatchJSON(`{"verb":"MARKREAD","id":42,"line":"MARKREAD 42"}`))
		})

		It("decodes responses", func() {
			opts.Kind = inspect.Responses
			in := strings.NewReader("23\n24 1 2 http://f.example http://f.example/1 :My Title\n25\n")

			Expect(inspect.Decode(in, out, opts)).To(Succeed())
			Expect(lines()).To(HaveLen(3))
			Expect(lines()[1]).To(ContainSubstring(`"title":"My Title"`))
		})

		It("keeps going after a bad line and reports every failure", func() {
			in := strings.NewReader("FOO\nUSER bob\nMARKREAD abc\n")

			err := inspect.Decode(in, out, opts)
			Expect(err).To(HaveOccurred())
			Expect(multierr.Errors(err)).To(HaveLen(2))
			Expect(errors.Is(err, protocol.ErrMalformedMessage)).To(BeTrue())

			var unknown *protocol.UnknownTypeError
			Expect(errors.As(err, &unknown)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("line 3"))

			Expect(lines()).To(HaveLen(3))
			Expect(lines()[0]).To(MatchJSON(`{
				"line": "FOO",
				"error": "unknown message type \"FOO\"",
				"reply": "41 unknown message type \"FOO\""
			}`))
		})

		It("does not suggest a reply for bad responses", func() {
			opts.Kind = inspect.Responses
			err := inspect.Decode(strings.NewReader("24 1 2 nope\n"), out, opts)
			Expect(err).To(HaveOccurred())
			Expect(lines()[0]).To(MatchJSON(`{"line":"24 1 2 nope","error":"missing argument \"title\""}`))
		})
	})

	Describe("Render()", func() {
		It("writes the wire line for each document", func() {
			in := strings.NewReader(`{"verb":"USER","username":"bob"}` + "\n\n" + `{"verb":"MARKREAD","id":42}` + "\n")

			Expect(inspect.Render(in, out, opts)).To(Succeed())
			Expect(out.String()).To(Equal("USER bob\nMARKREAD 42\n"))
		})

		It("renders responses", func() {
			opts.Kind = inspect.Responses
			in := strings.NewReader(`{"code":"20","id":7}` + "\n")

			Expect(inspect.Render(in, out, opts)).To(Succeed())
			Expect(out.String()).To(Equal("20 7\n"))
		})

		It("skips documents it can't render", func() {
			in := strings.NewReader(`{"verb":"NOPE"}` + "\n" + `{"verb":"LISTUNREAD"}` + "\n")

			err := inspect.Render(in, out, opts)
			Expect(multierr.Errors(err)).To(HaveLen(1))
			Expect(out.String()).To(Equal("LISTUNREAD\n"))
		})
	})

	Describe("RemoveTrailingCR()", func() {
		It("does nothing if the line does not end in CR", func() {
			Expect(inspect.RemoveTrailingCR("MARKREAD 1")).To(Equal("MARKREAD 1"))
		})

		It("removes the trailing CR", func() {
			Expect(inspect.RemoveTrailingCR("MARKREAD 1\r")).To(Equal("MARKREAD 1"))
		})
	})
})
