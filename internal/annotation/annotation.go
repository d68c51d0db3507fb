// Package annotation parses typed: directives, the inline comment
// convention that attaches a numeric type contract to a loosely typed
// function without altering its runtime signature.
package annotation

import (
	"fmt"
	"go/ast"
	"regexp"
	"slices"
	"strings"

	"github.com/mkch/iter2"
)

// https://tip.golang.org/doc/comment#syntax (directive form: no space after //)
var reDirective = regexp.MustCompile(`^//typed:([a-z]+)(?:[ \t]+(.*))?$`)

// Param is one annotated parameter.
type Param struct {
	Name    string
	Type    string
	Default string // empty if the parameter is required
}

// Signature is the type contract declared by the typed: directives of a
// single function.
type Signature struct {
	Params      []Param
	Result      string
	Replacement string // statically typed replacement, as path.Name
}

// Parse returns the signature declared by typed: directives in doc.
// The result is (nil, nil) if doc contains no directives.
func Parse(doc *ast.CommentGroup) (*Signature, error) {
	if doc == nil {
		return nil, nil
	}
	var sig *Signature
	for _, comment := range doc.List {
		m := reDirective.FindStringSubmatch(comment.Text)
		if m == nil {
			continue
		}
		if sig == nil {
			sig = new(Signature)
		}
		verb, arg := m[1], strings.TrimSpace(m[2])
		switch verb {
		case "param":
			p, err := parseParam(arg)
			if err != nil {
				return nil, err
			}
			sig.Params = append(sig.Params, p)
		case "returns":
			if len(strings.Fields(arg)) != 1 {
				return nil, fmt.Errorf("invalid directive %q", comment.Text)
			}
			sig.Result = arg
		case "use":
			if len(strings.Fields(arg)) != 1 {
				return nil, fmt.Errorf("invalid directive %q", comment.Text)
			}
			sig.Replacement = arg
		default:
			return nil, fmt.Errorf("unknown directive typed:%v", verb)
		}
	}
	return sig, nil
}

// name type [= default]
func parseParam(arg string) (Param, error) {
	decl, def, hasDefault := strings.Cut(arg, "=")
	fields := strings.Fields(decl)
	if len(fields) != 2 {
		return Param{}, fmt.Errorf("invalid typed:param %q", arg)
	}
	p := Param{Name: fields[0], Type: fields[1]}
	if hasDefault {
		p.Default = strings.TrimSpace(def)
		if p.Default == "" {
			return Param{}, fmt.Errorf("invalid typed:param %q", arg)
		}
	}
	return p, nil
}

// Format renders the declared signature of the function with the given name,
// e.g. "Square(value number, offset number = 0) number".
func (sig *Signature) Format(name string) string {
	params := slices.Collect(iter2.Map(
		slices.Values(sig.Params),
		func(p Param) string {
			if p.Default != "" {
				return p.Name + " " + p.Type + " = " + p.Default
			}
			return p.Name + " " + p.Type
		}))
	s := name + "(" + strings.Join(params, ", ") + ")"
	if sig.Result != "" {
		s += " " + sig.Result
	}
	return s
}
