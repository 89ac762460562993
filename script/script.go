// Package script reads Logo-style turtle scripts and applies them to a
// turtle. A script is a flat sequence of commands with numeric arguments,
// separated by whitespace or commas:
//
//	color 255 0 0
//	startfill
//	forward 100 right 90
//	forward 100 right 90
//	forward 100 right 90
//	forward 100
//	endfill
package script

import (
	"fmt"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"

	"github.com/kimim/turtle"
)

// Run lexes src and applies each command to t in order. name is used in
// error messages. Execution stops at the first unknown command or missing
// argument; commands already executed stay applied.
func Run(name, src string, t *turtle.Turtle) error {
	l, _ := gl.Lex(name, src)

	p := &parser{name: name, lex: *l, t: t}
	return p.run()
}

type parser struct {
	name string
	lex  gl.Lexer
	t    *turtle.Turtle
}

func (p *parser) run() error {
	for {
		i := p.lex.NextItem()
		switch {
		case i.Type == gl.ItemError:
			return fmt.Errorf("script %s: lex error: %s", p.name, i.Value)
		case i.Type == gl.ItemEOS:
			return nil
		case i.Type == gl.ItemWord || i.Type == gl.ItemLetter:
			if err := p.command(i); err != nil {
				return err
			}
		default:
		}
	}
}

// command dispatches one keyword. Multi-letter words arrive as a single
// ItemWord; a lone letter arrives as ItemLetter.
func (p *parser) command(i gl.Item) error {
	word := i.Value

	switch strings.ToLower(word) {
	case "forward", "fd":
		n, err := p.number(word)
		if err != nil {
			return err
		}
		p.t.Forward(n)
	case "back", "bk":
		n, err := p.number(word)
		if err != nil {
			return err
		}
		p.t.Back(n)
	case "right", "rt":
		n, err := p.number(word)
		if err != nil {
			return err
		}
		p.t.Right(n)
	case "left", "lt":
		n, err := p.number(word)
		if err != nil {
			return err
		}
		p.t.Left(n)
	case "setxy":
		x, err := p.number(word)
		if err != nil {
			return err
		}
		y, err := p.number(word)
		if err != nil {
			return err
		}
		p.t.SetXY(x, y)
	case "setheading", "seth":
		n, err := p.number(word)
		if err != nil {
			return err
		}
		p.t.SetHeading(n)
	case "penup", "pu":
		p.t.PenUp()
	case "pendown", "pd":
		p.t.PenDown()
	case "home":
		p.t.Home()
	case "clean":
		p.t.Clean()
	case "startfill":
		p.t.StartFill()
	case "endfill":
		p.t.EndFill()
	case "color":
		c := make([]int, 3)
		for j := range c {
			n, err := p.number(word)
			if err != nil {
				return err
			}
			c[j] = int(n)
		}
		if _, err := p.t.Color(c); err != nil {
			return fmt.Errorf("script %s: %s: %v", p.name, word, err)
		}
	default:
		return fmt.Errorf("script %s: unknown command %q", p.name, word)
	}

	return nil
}

// number consumes the next numeric argument for cmd.
func (p *parser) number(cmd string) (float64, error) {
	p.lex.ConsumeWhiteSpace()
	p.lex.ConsumeComma()
	p.lex.ConsumeWhiteSpace()

	i := p.lex.NextItem()
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("script %s: %s: expected number, got %q", p.name, cmd, i.Value)
	}

	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("script %s: %s: %v", p.name, cmd, err)
	}
	return n, nil
}
