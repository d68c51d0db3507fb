// Package check finds call sites of loosely typed functions that carry
// typed: annotations. It never judges types itself: type errors come from
// the checker that loaded the packages.
package check

import (
	"fmt"
	"go/ast"
	"go/token"
	"path"
	"slices"
	"strings"

	"github.com/typenotes/typegate/internal/annotation"
	"golang.org/x/tools/go/packages"
)

// Func is a loosely typed function carrying typed: annotations.
type Func struct {
	Pkg  string // import path of the declaring package
	Name string
	Sig  *annotation.Signature
}

// String returns the package-qualified name of f.
func (f Func) String() string {
	return path.Base(f.Pkg) + "." + f.Name
}

// Funcs maps the definition position of an annotated function to it.
type Funcs map[token.Pos]Func

// Collect adds every annotated function declared in pkg to funcs.
func Collect(pkg *packages.Package, funcs Funcs) error {
	for _, f := range pkg.Syntax {
		for _, decl := range f.Decls {
			decl, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			sig, err := annotation.Parse(decl.Doc)
			if err != nil {
				return fmt.Errorf("%v: %w", pkg.Fset.Position(decl.Pos()), err)
			}
			if sig == nil {
				continue
			}
			obj := pkg.TypesInfo.Defs[decl.Name]
			if obj == nil {
				continue
			}
			funcs[obj.Pos()] = Func{Pkg: pkg.PkgPath, Name: decl.Name.Name, Sig: sig}
		}
	}
	return nil
}

// Report is one call of an annotated function.
type Report struct {
	Pos  token.Position
	Func Func
}

func (r Report) String() string {
	s := fmt.Sprintf("%v: loosely typed call to %v; declared %v",
		r.Pos, r.Func, r.Func.Sig.Format(r.Func.Name))
	if repl := r.Func.Sig.Replacement; repl != "" {
		s += "; use " + repl + " instead"
	}
	return s
}

// Calls returns position-sorted reports of references in pkg to functions
// in funcs. References to functions for which ignore returns true are
// skipped; a nil ignore skips nothing.
func Calls(pkg *packages.Package, funcs Funcs, ignore func(pkg, name string) bool) []Report {
	var reports []Report
	for id, obj := range pkg.TypesInfo.Uses {
		if obj == nil {
			continue
		}
		f, ok := funcs[obj.Pos()]
		if !ok {
			continue
		}
		if ignore != nil && ignore(f.Pkg, f.Name) {
			continue
		}
		reports = append(reports, Report{pkg.Fset.Position(id.Pos()), f})
	}
	slices.SortFunc(reports, func(a, b Report) int {
		if c := strings.Compare(a.Pos.Filename, b.Pos.Filename); c != 0 {
			return c
		}
		return a.Pos.Offset - b.Pos.Offset
	})
	return reports
}
