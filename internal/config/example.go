package config

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/mrclmr/lfdmusic/internal/report"
)

//go:embed example.yaml.tmpl
var exampleYamlTmpl string

type exampleValues struct {
	Default *Config
	Formats []report.Format
}

func Example() (string, error) {
	parse, err := template.New("").
		Delims("[[", "]]").
		Parse(exampleYamlTmpl)
	if err != nil {
		return "", err
	}

	buf := &bytes.Buffer{}
	err = parse.Execute(buf, exampleValues{
		Default: Default(),
		Formats: []report.Format{report.Text, report.Table, report.Yaml},
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
