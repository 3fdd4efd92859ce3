// Command genmetric writes the constructors, accessors and arithmetic methods
// of the metric quantities in package measurement.
//
// Every metric quantity gets one constructor and one Total accessor per SI
// prefix. All of them go through NewT and T.In, so the prefix arithmetic
// lives in one place.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

type quantity struct {
	Type     string // Go type name, such as "Length"
	Recv     string // receiver name
	Noun     string // lower case noun with article, such as "a length"
	UnitVar  string // variable holding the canonical Unit
	BaseUnit string // plural base unit name, such as "Metres"
}

var quantities = []quantity{
	{"Length", "l", "a length", "metresUnit", "Metres"},
	{"Mass", "m", "a mass", "gramsUnit", "Grams"},
	{"Duration", "d", "a duration", "secondsUnit", "Seconds"},
	{"Force", "f", "a force", "newtonsUnit", "Newtons"},
	{"Energy", "e", "an energy", "joulesUnit", "Joules"},
	{"Current", "i", "a current", "amperesUnit", "Amperes"},
	{"Voltage", "v", "a voltage", "voltsUnit", "Volts"},
	{"Resistance", "r", "a resistance", "ohmsUnit", "Ohms"},
}

// prefixes are the names of the Prefix constants, largest first.
var prefixes = []string{
	"Yotta", "Zetta", "Exa", "Peta", "Tera", "Giga", "Mega", "Kilo", "Hecto", "Deca",
	"Deci", "Centi", "Milli", "Micro", "Nano", "Pico", "Femto", "Atto", "Zepto", "Yocto",
}

var funcs = template.FuncMap{
	"lower": strings.ToLower,
	"unit": func(prefix, base string) string {
		return prefix + strings.ToLower(base)
	},
}

var tmpl = template.Must(template.New("metric").Funcs(funcs).Parse(`// Code generated by genmetric; DO NOT EDIT.

package measurement
{{range $q := .Quantities}}
// New{{.Type}} returns {{.Noun}} of v {{lower .BaseUnit}} scaled by prefix p.
func New{{.Type}}(v Scalar, p Prefix) {{.Type}} {
	return {{.Type}}{p.Scale(v)}
}

// In returns {{.Recv}} in {{lower .BaseUnit}} scaled by prefix p.
func ({{.Recv}} {{.Type}}) In(p Prefix) Scalar {
	return p.Unscale({{.Recv}}.value)
}

// PreferredPrefix returns the prefix closest in magnitude to {{.Recv}}.
func ({{.Recv}} {{.Type}}) PreferredPrefix() Prefix {
	return PreferredPrefix({{.Recv}}.value)
}

func ({{.Recv}} {{.Type}}) base() Scalar { return {{.Recv}}.value }

func ({{.Type}}) with(v Scalar) {{.Type}} { return {{.Type}}{v} }

// Unit returns the unit {{.Recv}} is stored in.
func ({{.Type}}) Unit() Unit { return {{.UnitVar}} }

// String returns {{.Recv}} in {{lower .BaseUnit}} followed by the unit symbol.
func ({{.Recv}} {{.Type}}) String() string { return format({{.Recv}}) }

// Equal returns true if x is a {{.Type}} equal to {{.Recv}}.
func ({{.Recv}} {{.Type}}) Equal(x Measure) bool { return equal({{.Recv}}, x) }

// Hash returns a hash of {{.Recv}}. Equal values have equal hashes.
func ({{.Recv}} {{.Type}}) Hash() uint64 { return {{.Recv}}.value.Hash() }

// Add returns {{.Recv}} + x.
func ({{.Recv}} {{.Type}}) Add(x {{.Type}}) {{.Type}} { return add({{.Recv}}, x) }

// Sub returns {{.Recv}} - x.
func ({{.Recv}} {{.Type}}) Sub(x {{.Type}}) {{.Type}} { return sub({{.Recv}}, x) }

// Mul returns {{.Recv}} * x.
func ({{.Recv}} {{.Type}}) Mul(x {{.Type}}) {{.Type}} { return mul({{.Recv}}, x) }

// Quo returns {{.Recv}} / x.
func ({{.Recv}} {{.Type}}) Quo(x {{.Type}}) ({{.Type}}, error) { return quo({{.Recv}}, x) }

// Neg returns -{{.Recv}}.
func ({{.Recv}} {{.Type}}) Neg() {{.Type}} { return neg({{.Recv}}) }

// Sqrt returns the square root of {{.Recv}}.
func ({{.Recv}} {{.Type}}) Sqrt() ({{.Type}}, error) { return sqrt({{.Recv}}) }

// Scale returns {{.Recv}} * k.
func ({{.Recv}} {{.Type}}) Scale(k Scalar) {{.Type}} { return scale({{.Recv}}, k) }

// {{.BaseUnit}} returns {{.Noun}} of v {{lower .BaseUnit}}.
func {{.BaseUnit}}(v Scalar) {{.Type}} { return New{{.Type}}(v, None) }

// Total{{.BaseUnit}} returns {{.Recv}} in {{lower .BaseUnit}}.
func ({{.Recv}} {{.Type}}) Total{{.BaseUnit}}() Scalar { return {{.Recv}}.In(None) }
{{range $p := $.Prefixes}}{{$u := unit $p $q.BaseUnit}}
// {{$u}} returns {{$q.Noun}} of v {{lower $u}}.
func {{$u}}(v Scalar) {{$q.Type}} { return New{{$q.Type}}(v, {{$p}}) }

// Total{{$u}} returns {{$q.Recv}} in {{lower $u}}.
func ({{$q.Recv}} {{$q.Type}}) Total{{$u}}() Scalar { return {{$q.Recv}}.In({{$p}}) }
{{end}}{{end}}`))

func main() {
	out := flag.String("o", "metric_gen.go", "output file")
	flag.Parse()

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Quantities []quantity
		Prefixes   []string
	}{quantities, prefixes})
	if err != nil {
		log.Fatalf("executing template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("formatting output: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("writing %v: %v", *out, err)
	}
	fmt.Fprintf(os.Stderr, "genmetric: wrote %v\n", *out)
}
