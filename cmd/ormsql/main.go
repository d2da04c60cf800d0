// Command ormsql renders the CRUD statements of the entities described in a
// YAML configuration file.
//
//	ormsql render --config entities.yaml
//	ormsql render --config entities.yaml --dialect mysql --format yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/nikola-chen/ormsql/config"
	"github.com/nikola-chen/ormsql/dialect"
	"github.com/nikola-chen/ormsql/repository"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "ormsql",
		Usage: "render parameterized CRUD statements for entity shapes",
		Commands: []*cli.Command{
			{
				Name:  "render",
				Usage: "print the statement set of every configured entity",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "path to the YAML configuration",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "dialect",
						Usage: "override the configured dialect",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: text or yaml",
						Value: "text",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "log every rendered statement to stderr",
					},
				},
				Action: render,
			},
			{
				Name:  "dialects",
				Usage: "list registered dialect names",
				Action: func(_ context.Context, cmd *cli.Command) error {
					names := dialect.Names()
					slices.Sort(names)
					for _, n := range names {
						fmt.Fprintln(cmd.Root().Writer, n)
					}
					return nil
				},
			},
		},
	}
}

func render(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if name := cmd.String("dialect"); name != "" {
		cfg.Dialect = name
	}
	d, err := cfg.ResolveDialect()
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if cmd.Bool("verbose") {
		opts = append(opts, repository.WithLogger(repository.StdLogger(cmd.Root().ErrWriter)))
	}
	all, err := repository.GenerateAll(ctx, cfg.Shapes(), d, opts...)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	switch format := cmd.String("format"); format {
	case "text":
		return writeText(w, all)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(all); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("ormsql: unknown format %q", format)
	}
}

func writeText(w io.Writer, all []*repository.Statements) error {
	for i, st := range all {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "-- %s (%s)\n", st.Entity, st.Table); err != nil {
			return err
		}
		for _, op := range st.Ops() {
			if _, err := fmt.Fprintf(w, "-- %s\n%s;\n", op.Name, op.SQL); err != nil {
				return err
			}
		}
	}
	return nil
}
