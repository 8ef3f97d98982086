// Package b64 codifica texto UTF-8 en base64 estándar y lo decodifica.
// Se usa para no exponer datos sensibles (direcciones) en texto plano al frontend.
package b64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrNotUTF8 indica que el contenido decodificado no es texto UTF-8 válido.
var ErrNotUTF8 = errors.New("b64: el contenido no es UTF-8 válido")

// Encode codifica los bytes UTF-8 de s en base64 estándar (con padding).
func Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Decode revierte Encode.
func Decode(s string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("b64: decodificar: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", ErrNotUTF8
	}
	return string(raw), nil
}
