package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ericlagergren/b64/base64"
)

type cli struct {
	Decode        bool   `short:"d" help:"Decode data."`
	IgnoreGarbage bool   `short:"i" help:"When decoding, ignore non-alphabet characters."`
	Wrap          string `short:"w" placeholder:"COLS" default:"76" help:"Wrap encoded lines after COLS characters (0 to disable wrapping)."`
	Version       bool   `short:"V" help:"Output version information and exit."`

	File string `arg:"" optional:"" default:"-" help:"The file to read, or - for standard input."`
}

// run reads the whole input, encodes or decodes it, and writes the
// result to stdout.
func (cmd *cli) run(stdin io.Reader, stdout io.Writer) error {
	if cmd.Version {
		_, err := fmt.Fprintf(stdout, "b64 %s\n", version)
		return err
	}

	// Validate the wrap width before touching the input.
	cfg, err := base64.ParseLineLength(cmd.Wrap)
	if err != nil {
		return err
	}

	src, err := openInput(cmd.File, stdin)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	in, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	var out []byte
	if cmd.Decode {
		out, err = base64.Decode(in, base64.DecodeConfig{IgnoreGarbage: cmd.IgnoreGarbage})
		if err != nil {
			return err
		}
	} else {
		out = base64.Encode(in, cfg)
	}

	_, err = stdout.Write(out)

	return err
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open path %q: %w", path, err)
	}

	return f, nil
}
