// Package segment implements the batch-segmentation codec. A raw input
// that parses as a non-empty JSON array of objects with a string "text"
// field enters batch mode; anything else is a single plain segment.
// Batch texts are joined with a fixed delimiter for providers without
// native multi-part support and split back after translation.
package segment

import (
	"encoding/json"
	"strings"
)

// Delimiter joins segment texts into one payload. It is chosen to be
// distinguishable from ordinary prose and markdown rules.
const Delimiter = "\n\n---\n\n"

// Segment is one translatable unit of a batch. Fields carries every
// non-"text" property of the original element, preserved untouched
// through translation.
type Segment struct {
	Text   string
	Fields map[string]json.RawMessage
}

// Batch is the discriminated result of decoding raw input: either a
// recognized segment array or a single plain-text segment.
type Batch struct {
	Segments []Segment
	IsBatch  bool
}

// Result is the output of Reconstruct. On a count mismatch Text holds
// the unparsed translated string and Mismatch is set; reconstruction
// never fails.
type Result struct {
	Text     string
	Segments []Segment
	Mismatch bool
}

// Encode decodes raw input into a Batch. Any parse failure or shape
// mismatch (empty array, non-object element, missing or non-string
// "text") yields a single plain segment equal to the raw input.
func Encode(raw string) Batch {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil || len(items) == 0 {
		return plain(raw)
	}

	segments := make([]Segment, 0, len(items))
	for _, item := range items {
		if item == nil {
			return plain(raw)
		}
		rawText, ok := item["text"]
		if !ok {
			return plain(raw)
		}
		var text string
		if err := json.Unmarshal(rawText, &text); err != nil {
			return plain(raw)
		}

		fields := make(map[string]json.RawMessage, len(item)-1)
		for k, v := range item {
			if k != "text" {
				fields[k] = v
			}
		}
		segments = append(segments, Segment{Text: text, Fields: fields})
	}

	return Batch{Segments: segments, IsBatch: true}
}

// Join concatenates segment texts with the fixed delimiter.
func Join(segments []Segment) string {
	texts := make([]string, len(segments))
	for i, s := range segments {
		texts[i] = s.Text
	}
	return strings.Join(texts, Delimiter)
}

// Payload returns the provider-facing text for a batch: the joined
// segment texts in batch mode, or the single segment's text otherwise.
func (b Batch) Payload() string {
	if b.IsBatch {
		return Join(b.Segments)
	}
	if len(b.Segments) == 1 {
		return b.Segments[0].Text
	}
	return ""
}

// Reconstruct splits the translated payload back into the original
// batch shape. When the part count matches the segment count, each
// segment's text is replaced with the trimmed part and the passthrough
// fields are copied; Text then carries the re-marshaled JSON array. On
// a count mismatch the raw translated string is returned with the
// Mismatch flag set. Plain (non-batch) input passes through trimmed.
func Reconstruct(translatedRaw string, original Batch) Result {
	if !original.IsBatch {
		return Result{Text: strings.TrimSpace(translatedRaw)}
	}

	parts := strings.Split(translatedRaw, Delimiter)
	if len(parts) != len(original.Segments) {
		return Result{Text: translatedRaw, Mismatch: true}
	}

	segments := make([]Segment, len(parts))
	elements := make([]map[string]json.RawMessage, len(parts))
	for i, part := range parts {
		text := strings.TrimSpace(part)
		segments[i] = Segment{Text: text, Fields: original.Segments[i].Fields}

		elem := make(map[string]json.RawMessage, len(original.Segments[i].Fields)+1)
		for k, v := range original.Segments[i].Fields {
			elem[k] = v
		}
		encoded, err := json.Marshal(text)
		if err != nil {
			return Result{Text: translatedRaw, Mismatch: true}
		}
		elem["text"] = encoded
		elements[i] = elem
	}

	out, err := json.Marshal(elements)
	if err != nil {
		return Result{Text: translatedRaw, Mismatch: true}
	}
	return Result{Text: string(out), Segments: segments}
}

func plain(raw string) Batch {
	return Batch{Segments: []Segment{{Text: raw}}, IsBatch: false}
}
