package text

import (
	"testing"

	gc "gopkg.in/check.v1"
)

func Test(t *testing.T) { gc.TestingT(t) }

type NormalizeSuite struct{}

var _ = gc.Suite(&NormalizeSuite{})

func (s *NormalizeSuite) TestLowercasesAndStems(c *gc.C) {
	got := New().Tokens("Hello HELLO world.")
	c.Assert(got, gc.DeepEquals, []string{"hello", "hello", "world"})
}

func (s *NormalizeSuite) TestEmptyInputYieldsNoTokens(c *gc.C) {
	c.Assert(New().Tokens(""), gc.HasLen, 0)
	c.Assert(New().Tokens("   \t\n  "), gc.HasLen, 0)
}

func (s *NormalizeSuite) TestStripsNonLetters(c *gc.C) {
	got := New().Tokens("run running, running! 123 runner")
	c.Assert(got, gc.DeepEquals, []string{"run", "run", "run", "runner"})
}

func (s *NormalizeSuite) TestDeterministic(c *gc.C) {
	input := "The Quick Brown Fox Jumps Over the Lazy Dog."
	c.Assert(New().Tokens(input), gc.DeepEquals, New().Tokens(input))
}
