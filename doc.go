// Package b64 contains the byte classification primitives shared
// by the Base64 codec in package base64.
//
// Every function in this package runs in constant time with
// respect to its arguments.
package b64
