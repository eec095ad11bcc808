package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"autoproj/internal/markdown"
	"autoproj/internal/project"
	"autoproj/internal/rules"
	"autoproj/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:      "autoproj",
		Usage:     "Turn a Markdown post into a buildable CMake project",
		ArgsUsage: "<document.md>",
		Description: "Extracts indented and fenced code blocks from a Markdown document into\n" +
			"{project}/src, infers build dependencies from #include directives, and\n" +
			"writes top-level and src-level CMakeLists.txt files around the result.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: ".", Usage: "Output root directory"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"f"}, Usage: "Replace an existing project tree"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Assume yes at prompts"},
		},
		Action: extractAction,
		Commands: []*cli.Command{
			rulesCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func extractAction(ctx context.Context, cmd *cli.Command) error {
	doc := cmd.Args().First()
	if doc == "" {
		return fmt.Errorf("document argument is required")
	}
	if filepath.Ext(doc) != markdown.Extension {
		return fmt.Errorf("%s: %w", doc, markdown.ErrNotMarkdown)
	}

	in, err := os.Open(doc)
	if err != nil {
		return fmt.Errorf("opening document: %w", err)
	}
	defer in.Close()

	mat := &project.Materializer{
		OutDir:    cmd.String("out"),
		Name:      strings.TrimSuffix(filepath.Base(doc), markdown.Extension),
		Overwrite: cmd.Bool("overwrite") || cmd.Bool("yes"),
	}
	if err := mat.Check(); err != nil {
		if !errors.Is(err, project.ErrExists) {
			return err
		}
		if !ux.Confirm(os.Stdin, mat.Dir()+" already exists. overwrite?") {
			return err
		}
		mat.Overwrite = true
	}

	table, err := rules.Default()
	if err != nil {
		return err
	}
	res, err := markdown.NewScanner(table).Scan(in)
	if err != nil {
		return err
	}
	// The document handle is done before any output is written.
	in.Close()

	if len(res.Files) == 0 {
		ux.NoFiles(doc)
		return nil
	}
	if err := mat.Create(res, doc); err != nil {
		return err
	}
	ux.Report(mat.Dir(), res.Names())
	return nil
}

func rulesCmd() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List the include-directive dependency rules",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			table, err := rules.Default()
			if err != nil {
				return err
			}
			fmt.Printf("\n%sInclude rules:%s\n\n", ux.Bold, ux.Reset)
			for _, r := range table {
				fmt.Printf("  %-16s %s%s%s → %s\n", r.Name, ux.Dim, r.Pattern, ux.Reset, r.Libraries)
			}
			fmt.Println()
			return nil
		},
	}
}
