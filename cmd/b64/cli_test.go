package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/codahale/gubbins/assert"
	"github.com/ericlagergren/b64/base64"
)

func parse(t *testing.T, args ...string) *cli {
	t.Helper()

	var c cli

	parser, err := kong.New(&c, kong.Name("b64"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse(args); err != nil {
		t.Fatal(err)
	}

	return &c
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	c := parse(t)

	assert.Equal(t, "decode", false, c.Decode)
	assert.Equal(t, "ignore garbage", false, c.IgnoreGarbage)
	assert.Equal(t, "wrap", "76", c.Wrap)
	assert.Equal(t, "file", "-", c.File)
}

func TestFlags(t *testing.T) {
	t.Parallel()

	c := parse(t, "-d", "-i", "-w", "10", "input.txt")

	assert.Equal(t, "decode", true, c.Decode)
	assert.Equal(t, "ignore garbage", true, c.IgnoreGarbage)
	assert.Equal(t, "wrap", "10", c.Wrap)
	assert.Equal(t, "file", "input.txt", c.File)
}

func TestEncodeStdin(t *testing.T) {
	t.Parallel()

	c := parse(t, "--wrap=4")
	out := bytes.NewBuffer(nil)

	if err := c.run(strings.NewReader("ABCDE"), out); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "encoded output", "QUJD\nREU=\n", out.String())
}

func TestEncodeNoWrap(t *testing.T) {
	t.Parallel()

	c := parse(t, "-w", "0")
	out := bytes.NewBuffer(nil)

	if err := c.run(bytes.NewReader(make([]byte, 100)), out); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "line count", 1, strings.Count(out.String(), "\n"))
}

func TestDecodeStdin(t *testing.T) {
	t.Parallel()

	c := parse(t, "-d")
	out := bytes.NewBuffer(nil)

	if err := c.run(strings.NewReader("aGVsbG8g\nd29ybGQ=\n"), out); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "decoded output", "hello world", out.String())
}

func TestDecodeGarbage(t *testing.T) {
	t.Parallel()

	out := bytes.NewBuffer(nil)

	err := parse(t, "-d").run(strings.NewReader("QQ!="), out)
	if !errors.Is(err, base64.ErrInvalidSymbol) {
		t.Fatalf("expected ErrInvalidSymbol, got %v", err)
	}

	assert.Equal(t, "partial output", "", out.String())

	if err := parse(t, "-d", "-i").run(strings.NewReader("QQ!="), out); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "decoded output", "A", out.String())
}

func TestNegativeWrap(t *testing.T) {
	t.Parallel()

	c := parse(t, "--wrap=-1")

	err := c.run(strings.NewReader("ABC"), bytes.NewBuffer(nil))
	if !errors.Is(err, base64.ErrLineLength) {
		t.Fatalf("expected ErrLineLength, got %v", err)
	}
}

func TestMalformedWrap(t *testing.T) {
	t.Parallel()

	for _, wrap := range []string{"--wrap=abc", "--wrap=4x"} {
		err := parse(t, wrap).run(strings.NewReader("ABC"), bytes.NewBuffer(nil))
		if !errors.Is(err, base64.ErrLineLength) {
			t.Fatalf("%s: expected ErrLineLength, got %v", wrap, err)
		}
	}
}

func TestEmptyWrapUsesDefault(t *testing.T) {
	t.Parallel()

	out := bytes.NewBuffer(nil)

	if err := parse(t, "--wrap=").run(bytes.NewReader(make([]byte, 60)), out); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(t, "first line", base64.DefaultLineLength, len(lines[0]))
}

func TestFileInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte("Man"), 0o600); err != nil {
		t.Fatal(err)
	}

	out := bytes.NewBuffer(nil)

	if err := parse(t, path).run(strings.NewReader("ignored"), out); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "encoded output", "TWFu\n", out.String())
}

func TestMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing")

	err := parse(t, path).run(strings.NewReader(""), bytes.NewBuffer(nil))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out := bytes.NewBuffer(nil)

	if err := parse(t, "-V").run(strings.NewReader(""), out); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "version", "b64 1.0.0\n", out.String())
}
