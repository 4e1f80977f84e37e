// Package base64 implements the standard Base64 encoding of RFC
// 4648 (the RFC 3548 alphabet) for fully buffered input.
//
// Encoding always pads and optionally wraps its output into lines
// of a fixed width, terminating the final line with '\n'.
//
// Decoding accepts its own output: newlines ('\n' and '\r') may
// appear anywhere, and '=' may appear only as the trailing padding
// of the final group. With DecodeConfig.IgnoreGarbage every byte
// outside the alphabet is discarded before decoding, which also
// discards padding. For example:
//
//    Decode([]byte("QQ!="), DecodeConfig{})                    // ErrInvalidSymbol
//    Decode([]byte("QQ!="), DecodeConfig{IgnoreGarbage: true}) // "A", nil
//
// Unlike encoding/base64, Decode never returns partial output.
// Every error it returns is a *DecodeError.
//
// All functions are safe for concurrent use. The package has no
// mutable state.
package base64
