package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/mgnsk/revolver"
	"github.com/mgnsk/revolver/internal/shell"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var _ = Describe("parsing commands", func() {
	When("the line is blank or a comment", func() {
		Specify("it parses to the zero command", func() {
			for _, line := range []string{"", "   ", "# insert a"} {
				cmd, err := shell.Parse(line)
				Expect(err).To(BeNil())
				Expect(cmd.IsZero()).To(BeTrue())
			}
		})
	})

	When("the command is known", func() {
		Specify("op is lowercased and args are split", func() {
			cmd, err := shell.Parse("  INSERT a  b c ")
			Expect(err).To(BeNil())
			Expect(cmd.Op).To(Equal(shell.OpInsert))
			Expect(cmd.Args).To(Equal([]string{"a", "b", "c"}))
			Expect(cmd.String()).To(Equal("insert a b c"))
		})
	})

	DescribeTable(
		"invalid lines",
		func(line string, expected error) {
			_, err := shell.Parse(line)
			Expect(errors.Is(err, expected)).To(BeTrue())
		},
		Entry("unknown op", "spin", shell.ErrUnknownCommand),
		Entry("insert without values", "insert", shell.ErrArgs),
		Entry("set without value", "set", shell.ErrArgs),
		Entry("set with two values", "set a b", shell.ErrArgs),
		Entry("remove with value", "remove a", shell.ErrArgs),
		Entry("next with two counts", "next 1 2", shell.ErrArgs),
	)
})

var _ = Describe("executing commands", func() {
	var s *shell.Session

	BeforeEach(func() {
		s = shell.NewSession(io.Discard, discard, "a", "b", "c")
	})

	AfterEach(func() {
		expectConsistent(s.Revolver())
	})

	DescribeTable(
		"command results",
		func(lines []string, expected string) {
			var result string
			for _, line := range lines {
				var err error
				result, err = s.ExecLine(line)
				Expect(err).To(BeNil())
			}
			Expect(result).To(Equal(expected))
		},
		Entry("show", []string{"show"}, "(a, b, c)"),
		Entry("current", []string{"current"}, "c"),
		Entry("next wraps", []string{"next"}, "a"),
		Entry("prev", []string{"prev"}, "b"),
		Entry("next with count", []string{"first", "next 4"}, "b"),
		Entry("prev with count", []string{"first", "prev 2"}, "b"),
		Entry("first", []string{"first"}, "a"),
		Entry("last", []string{"first", "last"}, "c"),
		Entry("isfirst", []string{"first", "isfirst"}, "true"),
		Entry("islast", []string{"islast"}, "true"),
		Entry("insert after current", []string{"first", "insert x y"}, "(a, x, y, b, c)"),
		Entry("remove returns the value", []string{"first", "next", "remove"}, "b"),
		Entry("remove moves to successor", []string{"first", "next", "remove", "current"}, "c"),
		Entry("set", []string{"first", "set z"}, "(z, b, c)"),
		Entry("len", []string{"len"}, "3"),
		Entry("empty", []string{"empty"}, "false"),
		Entry("clear", []string{"clear"}, "()"),
		Entry("cleared is empty", []string{"clear", "empty"}, "true"),
		Entry("upper", []string{"upper"}, "(A, B, C)"),
		Entry("lower", []string{"upper", "lower"}, "(a, b, c)"),
		Entry("reverse", []string{"insert héllo", "reverse"}, "(a, b, c, olléh)"),
	)

	When("the revolver is empty", func() {
		BeforeEach(func() {
			s = shell.NewSession(io.Discard, discard)
		})

		Specify("set fails", func() {
			_, err := s.ExecLine("set a")
			Expect(errors.Is(err, revolver.ErrEmpty)).To(BeTrue())
		})

		Specify("queries report no value", func() {
			for _, line := range []string{"current", "remove", "next", "prev", "first", "last"} {
				result, err := s.ExecLine(line)
				Expect(err).To(BeNil())
				Expect(result).To(BeEmpty())
			}

			Expect(s.ExecLine("isfirst")).To(Equal("false"))
			Expect(s.ExecLine("islast")).To(Equal("false"))
			Expect(s.ExecLine("len")).To(Equal("0"))
		})
	})

	Specify("a non-numeric count fails", func() {
		_, err := s.ExecLine("next x")
		Expect(errors.Is(err, shell.ErrArgs)).To(BeTrue())
	})
})

var _ = Describe("running a session", func() {
	var (
		out *bytes.Buffer
		s   *shell.Session
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		s = shell.NewSession(out, discard)
	})

	AfterEach(func() {
		expectConsistent(s.Revolver())
	})

	Specify("results are written line by line", func() {
		in := strings.NewReader("insert a b c\n# comment\n\nfirst\nnext\nremove\nshow\n")

		Expect(s.Run(context.Background(), in)).To(Succeed())
		Expect(out.String()).To(Equal("(a, b, c)\na\nb\nb\n(a, c)\n"))
	})

	When("a command fails", func() {
		var in string

		BeforeEach(func() {
			in = "set a\nspin\ninsert a\n"
		})

		Specify("it is skipped", func() {
			Expect(s.Run(context.Background(), strings.NewReader(in))).To(Succeed())
			Expect(out.String()).To(Equal("(a)\n"))
		})

		Specify("a strict session stops", func() {
			s.Strict = true

			err := s.Run(context.Background(), strings.NewReader(in))
			Expect(errors.Is(err, revolver.ErrEmpty)).To(BeTrue())
			Expect(err.Error()).To(HavePrefix("line 1: "))
			Expect(out.String()).To(BeEmpty())
		})
	})

	When("the context is canceled", func() {
		Specify("it stops", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := s.Run(ctx, strings.NewReader("insert a\n"))
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(s.Revolver().IsEmpty()).To(BeTrue())
		})
	})
})

var _ = Describe("running a script", func() {
	var (
		out *bytes.Buffer
		s   *shell.Session
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		s = shell.NewSession(out, discard)
	})

	Specify("values seed the revolver", func() {
		script, err := shell.LoadScript(strings.NewReader(`
values: [one, two, three]
commands:
  - first
  - remove
  - upper
`))
		Expect(err).To(BeNil())
		Expect(script.Values).To(Equal([]string{"one", "two", "three"}))

		Expect(s.RunScript(context.Background(), script)).To(Succeed())
		Expect(out.String()).To(Equal("one\none\n(TWO, THREE)\n"))
		Expect(s.Revolver().String()).To(Equal("(TWO, THREE)"))
		expectConsistent(s.Revolver())
	})

	Specify("a strict script stops at the first failure", func() {
		script, err := shell.LoadScript(strings.NewReader(`
strict: true
commands:
  - insert a
  - bogus
  - insert b
`))
		Expect(err).To(BeNil())

		err = s.RunScript(context.Background(), script)
		Expect(errors.Is(err, shell.ErrUnknownCommand)).To(BeTrue())
		Expect(s.Revolver().String()).To(Equal("(a)"))
	})

	Specify("an empty script is valid", func() {
		script, err := shell.LoadScript(strings.NewReader(""))
		Expect(err).To(BeNil())
		Expect(s.RunScript(context.Background(), script)).To(Succeed())
		Expect(out.String()).To(BeEmpty())
	})

	Specify("unknown fields are rejected", func() {
		_, err := shell.LoadScript(strings.NewReader("valuez: [a]\n"))
		Expect(err).NotTo(BeNil())
	})
})

// expectConsistent checks the revolver through its public API.
func expectConsistent(r *revolver.Revolver[string]) {
	values := r.Values()
	Expect(values).To(HaveLen(r.Len()))
	Expect(r.IsEmpty()).To(Equal(r.Len() == 0))

	var backward []string
	for v := range r.Backward() {
		backward = append([]string{v}, backward...)
	}
	if len(values) == 0 {
		Expect(backward).To(BeEmpty())
	} else {
		Expect(backward).To(Equal(values))
	}

	_, ok := r.Current()
	Expect(ok).To(Equal(r.Len() > 0))
}
