package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2/ast"
	"gopkg.in/yaml.v3"

	"github.com/gburgyan/go-quickdirective"
)

// config is read from DIRECTIVELINT_* environment variables; flags override it.
type config struct {
	MaxDepth int    `envconfig:"MAX_DEPTH" default:"0"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warning"`
	Format   string `envconfig:"FORMAT" default:"text"`
}

type options struct {
	schemaFiles []string
	queryFiles  []string
	format      string
	maxDepth    int
	logLevel    string
}

func main() {
	code, err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "directivelint:", err)
	}
	os.Exit(code)
}

// run returns 0 when no diagnostics were found, 1 when some were, and 2 on
// usage or input errors.
func run(args []string, stdout, stderr io.Writer) (int, error) {
	var cfg config
	if err := envconfig.Process("directivelint", &cfg); err != nil {
		return 2, err
	}

	opts, err := parseFlags(args, cfg)
	if err != nil {
		return 2, err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return 2, err
	}
	log.SetLevel(level)

	sources := make([]*ast.Source, 0, len(opts.schemaFiles))
	for _, filename := range opts.schemaFiles {
		b, err := os.ReadFile(filename)
		if err != nil {
			return 2, fmt.Errorf("failed to load schema %q: %w", filename, err)
		}
		sources = append(sources, &ast.Source{Name: filename, Input: string(b)})
	}
	schema, err := quickdirective.LoadSchema(sources...)
	if err != nil {
		return 2, err
	}

	v := quickdirective.Validator{
		Limits: quickdirective.ValidationLimits{MaxRecursionDepth: opts.maxDepth},
		Logger: log.WithField("prefix", "directivelint"),
	}
	diags := &quickdirective.DiagnosticList{}
	v.ValidateSchema(diags, schema)

	for _, filename := range opts.queryFiles {
		b, err := os.ReadFile(filename)
		if err != nil {
			return 2, fmt.Errorf("failed to load query %q: %w", filename, err)
		}
		doc, err := quickdirective.LoadQuery(&ast.Source{Name: filename, Input: string(b)})
		if err != nil {
			return 2, err
		}
		v.ValidateExecutableDocument(diags, quickdirective.WithSchema(schema), doc)
	}
	diags.Sort()

	log.WithField("diagnostics", diags.Len()).Info("validation finished")

	if err := writeReport(stdout, opts.format, diags); err != nil {
		return 2, err
	}
	if diags.IsEmpty() {
		return 0, nil
	}
	return 1, nil
}

func parseFlags(args []string, cfg config) (options, error) {
	var opts options
	app := kingpin.New("directivelint", "Validate GraphQL directive definitions and the directives applied in schemas and queries.")
	app.Flag("schema", "GraphQL schema file; may be repeated.").Short('s').Required().ExistingFilesVar(&opts.schemaFiles)
	app.Flag("query", "GraphQL query document; may be repeated.").Short('q').ExistingFilesVar(&opts.queryFiles)
	app.Flag("format", "Output format.").Default(cfg.Format).EnumVar(&opts.format, "text", "json", "yaml")
	app.Flag("max-depth", "Recursion limit for directive definition checks (0 = default).").Default(strconv.Itoa(cfg.MaxDepth)).IntVar(&opts.maxDepth)
	app.Flag("log-level", "Log level.").Default(cfg.LogLevel).StringVar(&opts.logLevel)
	_, err := app.Parse(args)
	return opts, err
}

type reportLocation struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

type reportEntry struct {
	Code     string          `json:"code" yaml:"code"`
	Message  string          `json:"message" yaml:"message"`
	Location *reportLocation `json:"location,omitempty" yaml:"location,omitempty"`
}

type report struct {
	Diagnostics []reportEntry `json:"diagnostics" yaml:"diagnostics"`
}

func newReport(diags *quickdirective.DiagnosticList) report {
	r := report{Diagnostics: []reportEntry{}}
	for _, d := range diags.All() {
		entry := reportEntry{Code: d.Data.Code(), Message: d.Data.Message()}
		if !d.Span.IsZero() {
			entry.Location = &reportLocation{
				File:   d.Span.Start.Filename,
				Line:   d.Span.Start.Line,
				Column: d.Span.Start.Column,
			}
		}
		r.Diagnostics = append(r.Diagnostics, entry)
	}
	return r
}

func writeReport(w io.Writer, format string, diags *quickdirective.DiagnosticList) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(diags))
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(newReport(diags))
	default:
		for _, d := range diags.All() {
			if _, err := fmt.Fprintln(w, d.String()); err != nil {
				return err
			}
		}
		return nil
	}
}
