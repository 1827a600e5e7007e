// The genarity command generates the per-arity declarations of the
// tuple, asyncfn and staticfn packages. Each package kind has a single
// template which is instantiated once for every arity from zero up
// to the maximum, so all arities share identical semantics.
//
// Usage:
//
//	genarity -kind asyncfn [-max 12] [-o asyncfn_gen.go]
package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/rogpeppe/asyncfn/internal/arity"
)

var (
	kindFlag = flag.String("kind", "", "kind of code to generate (tuple, asyncfn or staticfn)")
	maxFlag  = flag.Int("max", arity.Max, "maximum number of function parameters")
	outFlag  = flag.String("o", "", "output file (default standard output)")
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("").
		Funcs(template.FuncMap{
			"join": strings.Join,
		}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("genarity: ")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: genarity -kind tuple|asyncfn|staticfn [-max n] [-o file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 || *kindFlag == "" {
		flag.Usage()
		os.Exit(2)
	}
	src, err := generate(*kindFlag, *maxFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *outFlag == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := os.WriteFile(*outFlag, src, 0o666); err != nil {
		log.Fatal(err)
	}
}

type templateParams struct {
	Kind    string
	Arities []arity.Arity
}

// generate returns the formatted source for the given kind
// covering every arity from 0 to max.
func generate(kind string, max int) ([]byte, error) {
	t := templates.Lookup(kind + ".tmpl")
	if t == nil {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	as, err := arity.Range(max)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, templateParams{
		Kind:    kind,
		Arities: as,
	}); err != nil {
		return nil, fmt.Errorf("cannot execute %s template: %w", kind, err)
	}
	src, err := imports.Process(kind+"_gen.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot format generated %s code: %w\n%s", kind, err, buf.Bytes())
	}
	return src, nil
}
