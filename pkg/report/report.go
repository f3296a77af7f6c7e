// Package report renders line results as JSON lines, one object per input
// line, in input order.
package report

import (
	"cmsscan/pkg/domain"
	"cmsscan/pkg/serrors"
	"io"
	"sort"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Writer encodes line results to an underlying writer.
type Writer struct {
	w   io.Writer
	enc jx.Encoder
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes res as a single JSON line.
func (rw *Writer) Write(res domain.LineResult) error {
	rw.enc.Reset()
	Encode(&rw.enc, res)
	rw.enc.RawStr("\n")

	if _, err := rw.w.Write(rw.enc.Bytes()); err != nil {
		return errors.Wrap(err, "write result")
	}

	return nil
}

// WriteAll writes every result in order.
func (rw *Writer) WriteAll(results []domain.LineResult) error {
	for i, res := range results {
		if err := rw.Write(res); err != nil {
			return errors.Wrapf(err, "line %d", i+1)
		}
	}

	return nil
}

// Encode writes res as a JSON object to e:
//
//	{"line":"...","url":"...","status":"DONE","baseUrl":"...","matches":{"drupal":["misc/drupal.js"]},...}
//
// Probe-level detail is summarised as counts and matched paths; failed lines
// carry "error" and "errorKind" instead.
func Encode(e *jx.Encoder, res domain.LineResult) {
	e.ObjStart()

	e.FieldStart("line")
	e.Str(res.Line)
	if res.Target.TargetURL != "" {
		e.FieldStart("url")
		e.Str(res.Target.TargetURL)
	}
	if res.Target.HostOverride != "" {
		e.FieldStart("host")
		e.Str(res.Target.HostOverride)
	}
	e.FieldStart("status")
	e.Str(string(res.Status))

	if res.BaseURL != "" {
		e.FieldStart("baseUrl")
		e.Str(res.BaseURL)
		e.FieldStart("redirected")
		e.Bool(res.Redirected)
	}
	if res.Generator != "" {
		e.FieldStart("generator")
		e.Str(res.Generator)
	}

	if t := res.Tally; t != nil {
		e.FieldStart("requested")
		e.Int(t.Requested)
		e.FieldStart("succeeded")
		e.Int(t.Succeeded)
		e.FieldStart("failed")
		e.Int(t.Failed)

		matches := map[string][]string{}
		for _, p := range t.Probes {
			if p.Match == domain.Match {
				matches[p.Plugin] = append(matches[p.Plugin], p.Path)
			}
		}
		e.FieldStart("matches")
		encodeStringsMap(e, matches)
	}

	if len(res.Versions) > 0 {
		e.FieldStart("versions")
		encodeStringsMap(e, res.Versions)
	}

	if res.Err != nil {
		e.FieldStart("error")
		e.Str(res.Err.Error())
		e.FieldStart("errorKind")
		e.Str(serrors.KindOf(res.Err).Error())
	}

	e.ObjEnd()
}

// encodeStringsMap writes m with sorted keys so output is stable.
func encodeStringsMap(e *jx.Encoder, m map[string][]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e.ObjStart()
	for _, k := range keys {
		e.FieldStart(k)
		e.ArrStart()
		for _, v := range m[k] {
			e.Str(v)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}
