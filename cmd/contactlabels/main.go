package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/spachava753/contactlabels/android/contacts"
	"github.com/spachava753/contactlabels/internal/config"
	"github.com/spachava753/contactlabels/internal/zlog"
)

var (
	version = "dev"
	commit  = "unknown"
)

// CLI is the top-level command structure for contactlabels.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Config  string           `help:"Path to a YAML config file." type:"path" default:"contactlabels.yaml"`
	Format  string           `help:"Output format (text, json, yaml); overrides config." short:"f"`

	Decode DecodeCmd `cmd:"" help:"Decode a type code and label into a canonical tag."`
	Encode EncodeCmd `cmd:"" help:"Encode a canonical tag into a platform type code."`
	Kinds  KindsCmd  `cmd:"" help:"List supported kinds and their type tables."`
	Scan   ScanCmd   `cmd:"" help:"Decode phone, email and postal rows from a contacts2.db snapshot."`
}

// app carries shared dependencies bound into every command's Run.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	out    io.Writer
	format string
}

// DecodeCmd decodes one row.
type DecodeCmd struct {
	Kind  string `help:"Data kind (phone, email, postal)." default:"phone"`
	Type  string `help:"Platform type code; omit for an absent column."`
	Label string `help:"Free-text label column; omit for an absent column."`
}

// Run executes the decode command.
func (c *DecodeCmd) Run(a *app) error {
	k, err := lookupKind(c.Kind)
	if err != nil {
		return err
	}
	row := contacts.Values{}
	if c.Type != "" {
		row[k.TypeColumn()] = c.Type
	}
	if c.Label != "" {
		row[k.LabelColumn()] = c.Label
	}
	tag := k.Decode(row)
	a.log.Debug("decoded", zap.String("kind", k.Name()), zap.String("type", c.Type), zap.String("tag", tag))
	return a.render(tagView{Kind: k.Name(), Tag: tag}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, tag)
		return err
	})
}

// EncodeCmd encodes one tag.
type EncodeCmd struct {
	Kind string `help:"Data kind (phone, email, postal)." default:"phone"`
	Tag  string `arg:"" optional:"" help:"Canonical tag, case-insensitive."`
}

// Run executes the encode command.
func (c *EncodeCmd) Run(a *app) error {
	k, err := lookupKind(c.Kind)
	if err != nil {
		return err
	}
	code := k.Encode(c.Tag)
	a.log.Debug("encoded", zap.String("kind", k.Name()), zap.String("tag", c.Tag), zap.Int("code", code))
	return a.render(codeView{Kind: k.Name(), Tag: c.Tag, Code: code, Custom: code == k.CustomType()}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, code)
		return err
	})
}

// KindsCmd lists the type tables.
type KindsCmd struct{}

// Run executes the kinds command.
func (c *KindsCmd) Run(a *app) error {
	all := contacts.Kinds()
	views := make([]kindView, 0, len(all))
	for _, k := range all {
		view := kindView{Name: k.Name(), MimeType: k.MimeType(), CustomType: k.CustomType()}
		for _, tag := range k.Tags() {
			view.Types = append(view.Types, typeView{Tag: tag, Code: k.Encode(tag)})
		}
		views = append(views, view)
	}
	return a.render(views, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, view := range views {
			fmt.Fprintf(tw, "%s\t%d\t(custom)\n", view.Name, view.CustomType)
			for _, typ := range view.Types {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", view.Name, typ.Code, typ.Tag)
			}
		}
		return tw.Flush()
	})
}

// ScanCmd decodes a contacts2.db snapshot.
type ScanCmd struct {
	DB    string   `help:"Path to contacts2.db; defaults to scan.db_path." type:"path"`
	Kind  []string `help:"Kinds to include; defaults to scan.kinds or all."`
	Limit int      `help:"Maximum rows; 0 means no limit, -1 uses scan.limit." default:"-1"`
}

// Run executes the scan command.
func (c *ScanCmd) Run(a *app) error {
	dbPath := c.DB
	if dbPath == "" {
		dbPath = a.cfg.Scan.DBPath
	}
	if dbPath == "" {
		return fmt.Errorf("scan: no database path (use --db or %s)", config.EnvDBPath)
	}

	kinds, err := a.cfg.ScanKinds()
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	if len(c.Kind) > 0 {
		kinds = kinds[:0]
		for _, name := range c.Kind {
			k, err := lookupKind(name)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			kinds = append(kinds, k)
		}
	}

	limit := c.Limit
	if limit < 0 {
		limit = a.cfg.Scan.Limit
	}

	out, err := contacts.Scan(contacts.ScanInput{Path: dbPath, Kinds: kinds, Limit: limit})
	if err != nil {
		a.log.Error("scan failed", zap.String("db", dbPath), zap.Error(err))
		return err
	}
	a.log.Info("scan finished", zap.String("db", dbPath), zap.Int("entries", len(out.Entries)))

	views := make([]entryView, 0, len(out.Entries))
	for _, entry := range out.Entries {
		views = append(views, entryView{
			RawContactID: entry.RawContactID,
			DataID:       entry.DataID,
			Kind:         entry.Kind,
			Label:        entry.Label,
			Value:        entry.Value,
		})
	}
	return a.render(views, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, view := range views {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", view.RawContactID, view.Kind, view.Label, view.Value)
		}
		return tw.Flush()
	})
}

type tagView struct {
	Kind string `json:"kind" yaml:"kind"`
	Tag  string `json:"tag" yaml:"tag"`
}

type codeView struct {
	Kind   string `json:"kind" yaml:"kind"`
	Tag    string `json:"tag" yaml:"tag"`
	Code   int    `json:"code" yaml:"code"`
	Custom bool   `json:"custom" yaml:"custom"`
}

type typeView struct {
	Tag  string `json:"tag" yaml:"tag"`
	Code int    `json:"code" yaml:"code"`
}

type kindView struct {
	Name       string     `json:"name" yaml:"name"`
	MimeType   string     `json:"mimetype" yaml:"mimetype"`
	CustomType int        `json:"custom_type" yaml:"custom_type"`
	Types      []typeView `json:"types" yaml:"types"`
}

type entryView struct {
	RawContactID int64  `json:"raw_contact_id" yaml:"raw_contact_id"`
	DataID       int64  `json:"data_id" yaml:"data_id"`
	Kind         string `json:"kind" yaml:"kind"`
	Label        string `json:"label" yaml:"label"`
	Value        string `json:"value" yaml:"value"`
}

func (a *app) render(v any, text func(io.Writer) error) error {
	switch a.format {
	case config.FormatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(a.out)
	}
}

func lookupKind(name string) (*contacts.Kind, error) {
	k, ok := contacts.KindByName(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		all := contacts.Kinds()
		names := make([]string, 0, len(all))
		for _, known := range all {
			names = append(names, known.Name())
		}
		return nil, fmt.Errorf("unknown kind %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return k, nil
}

// run loads config, builds the logger, and executes the selected command.
func run(kctx *kong.Context, cli *CLI, stdout io.Writer, stderr io.Writer) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.Format != "" {
		cfg.Output.Format = cli.Format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := zlog.New(zlog.Options{Level: cfg.Log.Level, Path: cfg.Log.Path, Writer: stderr})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return kctx.Run(&app{cfg: cfg, log: logger, out: stdout, format: cfg.Output.Format})
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("contactlabels"),
		kong.Description("Translate Android contacts-provider type codes to canonical labels."),
		kong.UsageOnError(),
		kong.Vars{"version": version + " (" + commit + ")"},
	)
	kctx.FatalIfErrorf(run(kctx, &cli, os.Stdout, os.Stderr))
}
