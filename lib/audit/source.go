package audit

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// classFuncs are the calls whose string literal arguments become class
// tokens: the class composer and the Classes methods.
var classFuncs = map[string]bool{
	"BuildClass": true,
	"If":         true,
	"NewClasses": true,
	"Add":        true,
	"AddIf":      true,
}

// Literal is one class token written as a string literal in Go source.
type Literal struct {
	Token string
	Pos   token.Position
}

// SourceTokens scans the Go packages matched by patterns for class tokens
// passed as literals to BuildClass, If, NewClasses, Add and AddIf.
// Patterns are directories, or a directory followed by "/..." for the
// whole tree below it. Test files are skipped.
func SourceTokens(patterns ...string) ([]Literal, error) {
	dirs, err := findPackages(patterns)
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	var out []Literal
	for _, dir := range dirs {
		lits, err := scanPackage(fset, dir)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", dir, err)
		}
		out = append(out, lits...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pos.Filename != out[j].Pos.Filename {
			return out[i].Pos.Filename < out[j].Pos.Filename
		}
		return out[i].Pos.Offset < out[j].Pos.Offset
	})
	return out, nil
}

// findPackages resolves package patterns to directories holding Go files.
func findPackages(patterns []string) ([]string, error) {
	var dirs []string
	for _, pattern := range patterns {
		if !strings.HasSuffix(pattern, "/...") {
			dirs = append(dirs, pattern)
			continue
		}
		root := strings.TrimSuffix(pattern, "/...")
		if root == "" {
			root = "."
		}
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			// Hidden directories, vendor, testdata and _-prefixed trees are
			// ignored by the go tool too.
			base := d.Name()
			if path != root && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") || base == "vendor" || base == "testdata") {
				return filepath.SkipDir
			}
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil
			}
			for _, e := range entries {
				if isSource(e.Name()) && !e.IsDir() {
					dirs = append(dirs, path)
					break
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return dirs, nil
}

func isSource(name string) bool {
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}

func scanPackage(fset *token.FileSet, dir string) ([]Literal, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []Literal
	for _, e := range entries {
		if e.IsDir() || !isSource(e.Name()) {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, e.Name()), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		out = append(out, classLiterals(fset, file)...)
	}
	return out, nil
}

// classLiterals walks file for calls to the class functions.
func classLiterals(fset *token.FileSet, file *ast.File) []Literal {
	var out []Literal
	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || !classFuncs[callName(call.Fun)] {
			return true
		}
		for _, arg := range call.Args {
			lit, ok := arg.(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				continue
			}
			s, err := strconv.Unquote(lit.Value)
			if err != nil {
				continue
			}
			for _, tok := range strings.Fields(s) {
				// Prefixes like "is-" are completed at runtime.
				if strings.HasSuffix(tok, "-") {
					continue
				}
				out = append(out, Literal{Token: tok, Pos: fset.Position(lit.Pos())})
			}
		}
		return true
	})
	return out
}

func callName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return callName(f.X)
	}
	return ""
}
