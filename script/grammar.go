package script

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a sequence of commands.
type Script struct {
	Commands []*Command `parser:"( @@ ';'? )*"`
}

// Command is either a repeat block or a single scanner operation.
type Command struct {
	Pos lexer.Position

	Repeat *Script `parser:"  'repeat' '{' @@ '}'"`
	Op     string  `parser:"| @Ident"`
	Arg    *Arg    `parser:"  @@?"`
}

// Arg is the argument of a scanner operation.
type Arg struct {
	Pattern *string `parser:"  ( @String | @RawString )"`
	Count   *int    `parser:"| @Int"`
}

func (a *Arg) String() string {
	switch {
	case a == nil:
		return ""
	case a.Pattern != nil:
		return "`" + *a.Pattern + "`"
	case a.Count != nil:
		return strconv.Itoa(*a.Count)
	}
	return ""
}

func (c *Command) String() string {
	if c.Repeat != nil {
		return fmt.Sprintf("repeat{%d}", len(c.Repeat.Commands))
	}
	if c.Arg == nil {
		return c.Op
	}
	return c.Op + " " + c.Arg.String()
}

var parser = participle.MustBuild[Script](
	participle.Unquote("String"),
	participle.Map(stripBackticks, "RawString"),
)

// stripBackticks unquotes raw strings. Backslashes stay as they are, so
// patterns like `\w+` need no escaping.
func stripBackticks(t lexer.Token) (lexer.Token, error) {
	if len(t.Value) >= 2 {
		t.Value = t.Value[1 : len(t.Value)-1]
	}
	return t, nil
}

// Parse parses the source of a script. name is used in error messages.
func Parse(name, src string) (*Script, error) {
	script, err := parser.ParseString(name, src)
	if err != nil {
		tracer().Errorf("script: %v", err)
		return nil, err
	}
	return script, nil
}
