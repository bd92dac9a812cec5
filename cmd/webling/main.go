// This CLI utility renders a document and writes the painted frame to a
// PNG file.
//
// Usage:
//
//	webling [-u URL | -d] [-o output.png] [flags]
//
// Flags:
//
//	-d, --default           render the built-in default document
//	    --dump              print the DOM, render tree and display list
//	    --engine string     script engine: builtin, goja or none
//	-H, --height int        viewport height in pixels
//	-h, --help              help for webling
//	    --lenient           ignore unknown CSS properties
//	-o, --output string     name of the output PNG file
//	-t, --timeout duration  timeout for fetching the document
//	-u, --url string        URL or file to fetch
//	-W, --width int         viewport width in pixels
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"webling/pkg/html"
	"webling/pkg/js"
	"webling/pkg/render"
	"webling/pkg/resource"

	"github.com/spf13/cobra"
)

type options struct {
	url        string
	useDefault bool
	output     string
	width      int
	height     int
	engine     string
	dump       bool
	lenient    bool
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "webling [-u URL | -d] [-o output.png]",
		Short: "render a document to a PNG file",
		Long: `This CLI utility fetches a document, builds its DOM, applies the
stylesheet of its first <style> element, runs its first <script>
element and paints one rectangle per <div> into a PNG file.

Documents are fetched with a single datagram exchange for http URLs,
or read from the file system for paths.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(context.Background(), opts, cmd.OutOrStdout(), cmd.OutOrStderr())
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.url, "url", "u", "http://127.0.0.1:8888/index.html", "``URL or file to fetch")
	flags.BoolVarP(&opts.useDefault, "default", "d", false, "render the built-in default document")
	flags.StringVarP(&opts.output, "output", "o", "webling.png", "``name of the output PNG file")
	flags.IntVarP(&opts.width, "width", "W", 600, "``viewport width in pixels")
	flags.IntVarP(&opts.height, "height", "H", 400, "``viewport height in pixels")
	flags.StringVar(&opts.engine, "engine", "builtin", "``script engine: builtin, goja or none")
	flags.BoolVar(&opts.dump, "dump", false, "print the DOM, render tree and display list")
	flags.BoolVar(&opts.lenient, "lenient", false, "ignore unknown CSS properties")
	flags.DurationVarP(&opts.timeout, "timeout", "t", 5*time.Second, "``timeout for fetching the document")
	return cmd
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", opts.width, opts.height)
	}
	content := resource.DefaultDocument
	source := "default document"
	if !opts.useDefault {
		var err error
		if content, err = resource.NewFetcher(opts.timeout).Fetch(ctx, opts.url); err != nil {
			return err
		}
		source = opts.url
	}

	renderer := resource.NewRenderer()
	switch opts.engine {
	case "builtin":
	case "goja":
		renderer.SetScriptEngine(js.NewGojaEngine())
	case "none":
		renderer.SetScriptEngine(nil)
	default:
		return fmt.Errorf("unknown script engine %q", opts.engine)
	}
	renderer.SetConsole(&js.Console{Out: stdout, Err: stderr})
	renderer.SetStrictProperties(!opts.lenient)

	canvas := render.NewCanvas(opts.width, opts.height)
	res, err := renderer.Render(content, canvas)
	if err != nil {
		return err
	}
	if opts.dump {
		fmt.Fprintln(stdout, html.Dump(res.Document))
		fmt.Fprintln(stdout, render.Dump(res.RenderTree))
		list, _ := render.DisplayList(res.RenderTree)
		for _, r := range list {
			fmt.Fprintln(stdout, r)
		}
	}
	if err := canvas.SavePNG(opts.output); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	fmt.Fprintf(stderr, "Rendered %s to %s\n", source, opts.output)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
