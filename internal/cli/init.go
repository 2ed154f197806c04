package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizgen/internal/config"
)

// defaultTitle is offered by the init prompts.
const defaultTitle = "Samfunnskunnskap"

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: .quizgen/config.yml in the working directory)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		in := initInput
		if in == nil {
			in = os.Stdin
		}
		reader := bufio.NewReader(in)

		var targetSpecPath string
		specPathValue := strings.TrimSpace(*specPath)
		if specPathValue == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			targetSpecPath = config.ConfigPath(wd)
		} else {
			absSpec, err := filepath.Abs(specPathValue)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			targetSpecPath = absSpec
		}
		configDir := filepath.Dir(targetSpecPath)

		if info, err := os.Stat(configDir); err == nil && !info.IsDir() {
			fmt.Fprintf(stderr, "Init failed: config directory %q is not a directory\n", configDir)
			return ExitError
		}
		if info, err := os.Stat(targetSpecPath); err == nil {
			if info.IsDir() {
				fmt.Fprintf(stderr, "Init failed: spec path %q is a directory\n", targetSpecPath)
				return ExitError
			}
			fmt.Fprintf(stderr, "Init failed: spec file already exists at %q\n", targetSpecPath)
			return ExitError
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Init failed: stat spec file: %v\n", err)
			return ExitError
		}

		confirm, err := promptYesNo(reader, stdout, fmt.Sprintf("Initialize quizgen config in %s?", configDir), true)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if !confirm {
			fmt.Fprintln(stderr, "Init cancelled.")
			return ExitError
		}

		opts, err := promptScaffold(reader, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if err := config.Scaffold(targetSpecPath, opts); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %s\n", targetSpecPath)
		return ExitOK
	}
}

// promptScaffold collects the title, source documents and page name.
func promptScaffold(reader *bufio.Reader, out io.Writer) (config.ScaffoldOptions, error) {
	title, err := promptString(reader, out, "Quiz title", defaultTitle, nil)
	if err != nil {
		return config.ScaffoldOptions{}, err
	}
	paths := make([]string, 0, len(config.DefaultSourcePaths))
	for i, fallback := range config.DefaultSourcePaths {
		path, err := promptString(reader, out, fmt.Sprintf("Source f%d document", i+1), fallback, checkSourcePath)
		if err != nil {
			return config.ScaffoldOptions{}, err
		}
		paths = append(paths, path)
	}
	html, err := promptString(reader, out, "HTML output", config.DefaultHTMLOutput, checkHTMLPath)
	if err != nil {
		return config.ScaffoldOptions{}, err
	}
	return config.ScaffoldOptions{Title: title, SourcePaths: paths, HTMLOutput: html}, nil
}

func checkSourcePath(path string) error {
	if config.FormatForPath(path) == "" {
		return fmt.Errorf("unsupported document type %q; use .docx, .pdf, .txt, .json, .yaml or .db", filepath.Ext(path))
	}
	return nil
}

func checkHTMLPath(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return nil
	default:
		return fmt.Errorf("page name must end in .html")
	}
}

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin
