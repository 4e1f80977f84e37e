package main

import (
	"os"

	"github.com/alecthomas/kong"
)

const version = "1.0.0"

const description = `Base64 encode or decode FILE, or standard input, to standard output.

With no FILE, or when FILE is -, read standard input.

The data are encoded as described for the base64 alphabet in RFC 3548.
When decoding, the input may contain newlines in addition to the bytes of
the formal base64 alphabet. Use --ignore-garbage to attempt to recover from
any other non-alphabet bytes in the encoded stream.`

func main() {
	var cli cli

	ctx := kong.Parse(&cli,
		kong.Name("b64"),
		kong.Description(description),
	)
	err := cli.run(os.Stdin, os.Stdout)
	ctx.FatalIfErrorf(err)
}
