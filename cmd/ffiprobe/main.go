package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/shixiongfei/luaffi"
	"github.com/shixiongfei/luaffi/ctype"
	"github.com/shixiongfei/luaffi/marshal"
	"github.com/shixiongfei/luaffi/native"
)

func main() {
	var (
		tagName     = flag.String("tag", "s64", "Native type to marshal into (u8..s64, f32, f64, f80, pointer)")
		literal     = flag.String("value", "", "Value literal (nil, true, 42, 3.5, \"text\", 0xADDR)")
		intBits     = flag.Int("int-bits", 0, "Runtime integer width: 32 or 64 (default from environment)")
		floatFormat = flag.String("float-format", "", "Runtime float format: double or extended (default from environment)")
		truncate    = flag.Bool("truncate", false, "Truncate non-integral floats stored into integer types")
		list        = flag.Bool("list", false, "List enabled types and exit")
		schema      = flag.Bool("schema", false, "Print the capability JSON schema and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		marshal.SetLogger(logger.Named("marshal"))
		native.SetLogger(logger.Named("native"))
	}

	if *schema {
		data, err := ctype.CapabilitiesSchema()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	m, err := newMarshaller(*intBits, *floatFormat, *truncate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		printTags(m.Registry())
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(m); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *literal == "" {
		fmt.Fprintln(os.Stderr, "Usage: ffiprobe -tag <type> -value <literal>")
		fmt.Fprintln(os.Stderr, "       ffiprobe -list")
		fmt.Fprintln(os.Stderr, "       ffiprobe -schema")
		fmt.Fprintln(os.Stderr, "       ffiprobe -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(m, *tagName, *literal); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newMarshaller(intBits int, floatFormat string, truncate bool) (*marshal.Marshaller, error) {
	caps, err := ctype.CapabilitiesFromEnv(ctype.DefaultCapabilities())
	if err != nil {
		return nil, fmt.Errorf("capabilities: %w", err)
	}
	if intBits != 0 {
		caps.IntegerBits = intBits
	}
	if floatFormat != "" {
		caps.FloatFormat = ctype.FloatFormat(strings.ToLower(floatFormat))
	}

	var opts []marshal.Option
	if truncate {
		opts = append(opts, marshal.WithFloatTruncation())
	}
	return luaffi.NewMarshaller(caps, opts...)
}

func run(m *marshal.Marshaller, tagName, literal string) error {
	tag, ok := ctype.ParseTag(tagName)
	if !ok {
		return fmt.Errorf("unknown type %q", tagName)
	}
	if !m.Registry().Enabled(tag) {
		return fmt.Errorf("type %s is not enabled for these capabilities", tag)
	}

	v, err := parseLiteral(literal)
	if err != nil {
		return err
	}

	arena := native.NewArena(0)
	defer arena.Close()

	res, err := probe(m, arena, tag, v)
	if err != nil {
		return err
	}
	fmt.Print(res)
	return nil
}

func printTags(reg *ctype.Registry) {
	caps := reg.Capabilities()
	fmt.Printf("Capabilities: %d-bit integers, %s floats\n\n", caps.IntegerBits, caps.FloatFormat)
	for _, t := range reg.Tags() {
		fmt.Printf("  %-8s %2d bytes  %s\n", t, t.Width(), t.Class())
	}
}
