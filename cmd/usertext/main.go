//
// Usertext Markup Renderer
// Available at http://github.com/threadview/usertext
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Command-line front-end.
//

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/threadview/usertext"
)

type options struct {
	output string
	page   bool
	title  string
	css    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

// newRootCmd constructs the root cobra command. Errors surface through
// RunE and are printed once in main.
func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "usertext [file]",
		Short: "Render user-submitted text as safe display markup",
		Long: `usertext reads text in the user-content markdown subset (bold, italic,
strikethrough, superscript, links, lists, quotes, indented code blocks)
from a file or standard input and writes safe HTML to standard output.

Hostile input comes out inert: everything is escaped before formatting
and link targets must be absolute http(s) URLs.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write markup to `file` instead of stdout")
	cmd.Flags().BoolVar(&opts.page, "page", false, "wrap the markup in a standalone HTML page")
	cmd.Flags().StringVar(&opts.title, "title", "", "page title (implies --page)")
	cmd.Flags().StringVar(&opts.css, "css", "", "link a stylesheet `url` (implies --page)")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	markup := string(usertext.Render(input))
	if opts.page || opts.title != "" || opts.css != "" {
		markup = wrapPage(markup, opts.title, opts.css)
	}

	if opts.output != "" {
		return writeFile(opts.output, markup)
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), markup); err != nil {
		return fmt.Errorf("write markup: %w", err)
	}
	return nil
}

// writeFile writes markup to path. The close error is checked, so a
// write the filesystem rejects only at flush time still fails the run.
func writeFile(path, markup string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if _, err := io.WriteString(f, markup); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// readInput pulls the whole text to render, from the named file when
// given and standard input otherwise.
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
