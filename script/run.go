package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/strscan"
)

// ErrUnknownCommand is flagged for operations the interpreter does not know.
const ErrUnknownCommand = strscan.ScanError("unknown command")

// ErrArgument is flagged for missing or superfluous command arguments.
const ErrArgument = strscan.ScanError("illegal command argument")

// ErrRunaway is flagged if a repeat block exceeds the iteration limit.
const ErrRunaway = strscan.ScanError("too many iterations")

// DefaultMaxIterations is the iteration limit for repeat blocks if none is
// configured.
const DefaultMaxIterations = 100000

// Result is the outcome of a single command.
type Result struct {
	At      lexer.Position // position of the command in the script
	Command string         // command, including its argument
	Ok      bool           // false for failed matches and missing match data
	Value   string         // printable result value
	Pos     int            // scan position after the command
}

func (r Result) String() string {
	v := "nil"
	if r.Ok {
		v = r.Value
	}
	return fmt.Sprintf("%s = %s @%d", r.Command, v, r.Pos)
}

// Config holds configuration parameters for running scripts.
type Config struct {
	MaxIterations int       // iteration limit for a single repeat block
	Output        io.Writer // if non-nil, every result is printed on a line of its own
}

// Run executes script against s. It stops at the first error, returning the
// results so far.
//
// Failed matches are results, not errors. Errors are invalid patterns, unknown
// commands, illegal arguments, undoing past the initial state of s, runaway
// repeat blocks and cancellation of ctx.
func Run(ctx context.Context, script *Script, s *strscan.Scanner, config *Config) ([]Result, error) {
	if script == nil || s == nil {
		return nil, strscan.ErrIllegalArguments
	}
	r := &runner{ctx: ctx, s: s, maxIter: DefaultMaxIterations}
	if config != nil {
		r.out = config.Output
		if config.MaxIterations > 0 {
			r.maxIter = config.MaxIterations
		}
	}
	err := r.block(script)
	return r.results, err
}

type runner struct {
	ctx     context.Context
	s       *strscan.Scanner
	out     io.Writer
	maxIter int
	results []Result
}

func (r *runner) block(script *Script) error {
	for _, cmd := range script.Commands {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		if cmd.Repeat != nil {
			if err := r.repeat(cmd); err != nil {
				return err
			}
			continue
		}
		if err := r.exec(cmd); err != nil {
			return fmt.Errorf("%s: %s: %w", cmd.Pos, cmd, err)
		}
	}
	return nil
}

func (r *runner) repeat(cmd *Command) error {
	for i := 0; !r.s.AtEnd(); i++ {
		if i >= r.maxIter {
			return fmt.Errorf("%s: %w: %d", cmd.Pos, ErrRunaway, i)
		}
		before := r.s.Pos()
		if err := r.block(cmd.Repeat); err != nil {
			return err
		}
		if r.s.Pos() == before {
			tracer().Debugf("script: repeat at %s stops after %d iterations", cmd.Pos, i+1)
			break
		}
	}
	return nil
}

// exec runs a single scanner operation.
func (r *runner) exec(cmd *Command) error {
	s := r.s
	res := Result{At: cmd.Pos, Command: cmd.String()}
	var err error
	switch cmd.Op {
	case "scan", "check", "scan_until", "check_until", "scan_upto":
		var p strscan.Pattern
		if p, err = pattern(cmd); err != nil {
			return err
		}
		var ops = map[string]func(strscan.Pattern) (string, bool, error){
			"scan":        s.Scan,
			"check":       s.Check,
			"scan_until":  s.ScanUntil,
			"check_until": s.CheckUntil,
			"scan_upto":   s.ScanUpto,
		}
		var text string
		text, res.Ok, err = ops[cmd.Op](p)
		res.Value = strconv.Quote(text)
	case "skip", "skip_until", "exists":
		var p strscan.Pattern
		if p, err = pattern(cmd); err != nil {
			return err
		}
		var ops = map[string]func(strscan.Pattern) (int, bool, error){
			"skip":       s.Skip,
			"skip_until": s.SkipUntil,
			"exists":     s.Exists,
		}
		var n int
		n, res.Ok, err = ops[cmd.Op](p)
		res.Value = strconv.Itoa(n)
	case "getch", "read_one":
		if err = noArg(cmd); err == nil {
			atEnd := s.AtEnd()
			res.Value, res.Ok = strconv.Quote(s.ReadOne()), !atEnd
		}
	case "read_rune":
		if err = noArg(cmd); err == nil {
			ch, _, rerr := s.ReadRune()
			res.Value, res.Ok = strconv.QuoteRune(ch), rerr == nil
		}
	case "peek":
		var n int
		if n, err = count(cmd); err == nil {
			res.Value, res.Ok = strconv.Quote(s.Peek(n)), true
		}
	case "rest":
		if err = noArg(cmd); err == nil {
			res.Value, res.Ok = strconv.Quote(s.Rest()), true
		}
	case "undo", "unscan":
		if err = noArg(cmd); err == nil {
			err = s.Undo()
			res.Ok = err == nil
		}
	case "terminate":
		if err = noArg(cmd); err == nil {
			s.Terminate()
			res.Ok = true
		}
	case "pos":
		if cmd.Arg == nil {
			res.Value, res.Ok = strconv.Itoa(s.Pos()), true
			break
		}
		var n int
		if n, err = count(cmd); err == nil {
			err = s.SetPos(n)
			res.Value, res.Ok = strconv.Itoa(s.Pos()), err == nil
		}
	case "prev":
		if err = noArg(cmd); err == nil {
			res.Value, res.Ok = strconv.Itoa(s.Prev()), true
		}
	case "eos", "at_end":
		if err = noArg(cmd); err == nil {
			res.Value, res.Ok = strconv.FormatBool(s.AtEnd()), true
		}
	case "bol", "beginning_of_line":
		if err = noArg(cmd); err == nil {
			var bol bool
			bol, res.Ok = s.AtLineStart()
			res.Value = strconv.FormatBool(bol)
		}
	case "coords":
		if err = noArg(cmd); err == nil {
			c := s.Coords()
			res.Value, res.Ok = fmt.Sprintf("%s %q", c, c.LineText), true
		}
	case "matched", "pre_match", "post_match":
		if err = noArg(cmd); err == nil {
			var ops = map[string]func() (string, error){
				"matched":    s.Matched,
				"pre_match":  s.PreMatch,
				"post_match": s.PostMatch,
			}
			res.Value, res.Ok, err = matchData(ops[cmd.Op]())
		}
	case "group":
		var n int
		if n, err = count(cmd); err == nil {
			res.Value, res.Ok, err = matchData(s.Group(n))
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Op)
	}
	if err != nil {
		return err
	}
	res.Pos = s.Pos()
	r.emit(res)
	return nil
}

func (r *runner) emit(res Result) {
	tracer().Debugf("script: %s", res)
	r.results = append(r.results, res)
	if r.out != nil {
		fmt.Fprintln(r.out, res)
	}
}

// matchData turns missing match data into a failed result.
func matchData(text string, err error) (string, bool, error) {
	if errors.Is(err, strscan.ErrNoActiveMatch) || errors.Is(err, strscan.ErrNoSuchGroup) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return strconv.Quote(text), true, nil
}

func pattern(cmd *Command) (strscan.Pattern, error) {
	if cmd.Arg == nil || cmd.Arg.Pattern == nil {
		return strscan.Pattern{}, fmt.Errorf("%w: %s expects a pattern", ErrArgument, cmd.Op)
	}
	return strscan.Expr(*cmd.Arg.Pattern), nil
}

func count(cmd *Command) (int, error) {
	if cmd.Arg == nil || cmd.Arg.Count == nil {
		return 0, fmt.Errorf("%w: %s expects a number", ErrArgument, cmd.Op)
	}
	return *cmd.Arg.Count, nil
}

func noArg(cmd *Command) error {
	if cmd.Arg != nil {
		return fmt.Errorf("%w: %s takes no argument", ErrArgument, cmd.Op)
	}
	return nil
}
