// Package jsonreport builds the JSON payloads behind `basic tokens --json`
// and a trace report behind `basic run --trace-json`, using the teacher
// pack's tidwall/gjson and tidwall/sjson for assembly and querying rather
// than encoding/json struct tags, so a caller can pull an arbitrary path
// (e.g. "lines.0.tokens.#.kind") back out without a matching Go type.
package jsonreport

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/macosten/swiftbasic-core/internal/diag"
	"github.com/macosten/swiftbasic-core/internal/token"
)

// Tokens renders a lexed program as a JSON report: {"lines":[{"tokens":[{"kind":...,"text":...}]}]}.
func Tokens(lines [][]token.Token) (string, error) {
	out := "{}"
	var err error
	for li, line := range lines {
		for ti, tok := range line {
			base := sjsonPath(li, ti)
			if out, err = sjson.Set(out, base+".kind", tok.Kind.String()); err != nil {
				return "", err
			}
			if out, err = sjson.Set(out, base+".text", tok.Text); err != nil {
				return "", err
			}
			if out, err = sjson.Set(out, base+".line", tok.Pos.Line); err != nil {
				return "", err
			}
			if out, err = sjson.Set(out, base+".column", tok.Pos.Column); err != nil {
				return "", err
			}
			if tok.IsLabel {
				if out, err = sjson.Set(out, base+".isLabel", true); err != nil {
					return "", err
				}
			}
		}
	}
	return out, nil
}

func sjsonPath(line, tok int) string {
	return "lines." + strconv.Itoa(line) + ".tokens." + strconv.Itoa(tok)
}

// Trace renders a slice of diag.TraceEvent as a JSON array, for
// `basic run --trace-json`.
func Trace(events []diag.TraceEvent) (string, error) {
	out := "[]"
	var err error
	for i, ev := range events {
		base := strconv.Itoa(i)
		if out, err = sjson.Set(out, base+".line", ev.Line); err != nil {
			return "", err
		}
		if out, err = sjson.Set(out, base+".pc", ev.PC); err != nil {
			return "", err
		}
		if out, err = sjson.Set(out, base+".kind", ev.Kind); err != nil {
			return "", err
		}
		if out, err = sjson.Set(out, base+".detail", ev.Detail); err != nil {
			return "", err
		}
	}
	return out, nil
}

// Filter applies a gjson path query to a previously built report and
// returns the matched raw JSON text, backing `tokens --json --filter`.
func Filter(report, path string) string {
	return gjson.Get(report, path).Raw
}
