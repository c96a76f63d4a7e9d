// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrPartialDecode is matched by a [PartialError], which is returned
// when decoding a record list stops early at a malformed record.
// It is distinct from [ErrParse]: the records before the malformed one
// are still returned.
var ErrPartialDecode = errors.New("partial decode")

// PartialError is returned by [DecodeRecords] along with the records
// that were decoded before the first malformed record.
type PartialError struct {

	// Parsed is the number of records decoded successfully.
	Parsed int

	// Err is the reason decoding stopped.
	Err error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("partial decode: stopped after %d records: %v", e.Parsed, e.Err)
}

// Is makes [errors.Is] match [ErrPartialDecode].
func (e *PartialError) Is(target error) bool {
	return target == ErrPartialDecode
}

// EncodeRecord returns the record text for the given struct value:
// {field0,field1,...} with each field encoded according to its shape
// and then escaped.
func EncodeRecord(rec reflect.Value, l *Layout) string {
	var sb strings.Builder
	encodeRecord(&sb, rec, l)
	return sb.String()
}

func encodeRecord(sb *strings.Builder, rec reflect.Value, l *Layout) {
	sb.WriteByte(RecordStart)
	for i := range l.Fields {
		f := &l.Fields[i]
		if i > 0 {
			sb.WriteByte(FieldSeparator)
		}
		sb.WriteString(Escape(f.strategy.Encode(f.Value(rec))))
	}
	sb.WriteByte(RecordEnd)
}

// EncodeRecords returns the text for a list (slice or array) of records,
// joined by commas with no enclosing brackets: {..},{..},{..}
func EncodeRecords(list reflect.Value, l *Layout) string {
	var sb strings.Builder
	for i := range list.Len() {
		if i > 0 {
			sb.WriteByte(FieldSeparator)
		}
		encodeRecord(&sb, list.Index(i), l)
	}
	return sb.String()
}

// DecodeRecord decodes record text into the given settable struct value.
// Starting after the first '{', each field in layout order takes the text
// up to the next unescaped ',' or '}', which is unescaped and decoded
// according to the field shape. It fails unless the last delimiter
// consumed is '}'. Text after that is ignored. rec is not modified
// if an error is returned.
func DecodeRecord(s string, rec reflect.Value, l *Layout) error {
	start := strings.IndexByte(s, RecordStart)
	if start < 0 {
		return fmt.Errorf("%w: record %q has no %q", ErrParse, s, RecordStart)
	}
	pos := start + 1
	if len(l.Fields) == 0 {
		if IndexUnescaped(s, pos, string(RecordEnd)) < 0 {
			return fmt.Errorf("%w: record %q has no %q", ErrParse, s, RecordEnd)
		}
		return nil
	}
	tmp := reflect.New(l.Type).Elem()
	var last byte
	for i := range l.Fields {
		f := &l.Fields[i]
		end := IndexUnescaped(s, pos, ",}")
		if end < 0 {
			return fmt.Errorf("%w: record %q ends before field %s", ErrParse, s, f.Name)
		}
		if err := f.strategy.Decode(Unescape(s[pos:end]), f.Value(tmp)); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		last = s[end]
		pos = end + 1
	}
	if last != RecordEnd {
		return fmt.Errorf("%w: record %q does not end after field %s", ErrParse, s, l.Fields[len(l.Fields)-1].Name)
	}
	for i := range l.Fields {
		f := &l.Fields[i]
		f.Value(rec).Set(f.Value(tmp))
	}
	return nil
}

// DecodeRecords decodes record list text into a new slice of the layout
// record type. Each record is taken up to the next unescaped '}'. Decoding
// stops at the first record that fails, in which case the records decoded
// before it are returned along with a [*PartialError]. Empty or
// whitespace-only text decodes to an empty slice.
func DecodeRecords(s string, l *Layout) (reflect.Value, error) {
	list := reflect.MakeSlice(reflect.SliceOf(l.Type), 0, 0)
	pos := 0
	for strings.TrimSpace(s[pos:]) != "" {
		end := IndexUnescaped(s, pos, string(RecordEnd))
		if end < 0 {
			err := fmt.Errorf("%w: unterminated record %q", ErrParse, s[pos:])
			return list, &PartialError{Parsed: list.Len(), Err: err}
		}
		rec := reflect.New(l.Type).Elem()
		if err := DecodeRecord(s[pos:end+1], rec, l); err != nil {
			return list, &PartialError{Parsed: list.Len(), Err: err}
		}
		list = reflect.Append(list, rec)
		pos = end + 1
	}
	return list, nil
}
