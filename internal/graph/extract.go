package graph

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract isolates the graph payload from raw model output and decodes it.
//
// The output may be clean JSON, fenced in markdown, or surrounded by prose.
// Fence markers sit outside any {...} block, so the scan skips them. Every
// balanced block is considered in order; the first one that is valid JSON,
// carries a "nodes" array (directly, or under "graph" as in
// {"text": ..., "graph": {...}}) and decodes is returned. Anything else,
// including truncated JSON, is a *ParseError.
func Extract(raw string) (*Document, error) {
	if strings.Trim(raw, " \t\r\n`") == "" {
		return nil, &ParseError{Msg: "empty response"}
	}

	sawJSON := false
	var decodeErr error
	for start := strings.IndexByte(raw, '{'); start != -1; {
		block := balancedBlock(raw, start)
		if block != "" && gjson.Valid(block) {
			sawJSON = true
			if payload, summary, ok := graphPayload(block); ok {
				doc, err := decode(payload, summary)
				if err == nil {
					return doc, nil
				}
				decodeErr = err
			}
		}
		next := strings.IndexByte(raw[start+1:], '{')
		if next == -1 {
			break
		}
		start += next + 1
	}

	if decodeErr != nil {
		return nil, decodeErr
	}
	if sawJSON {
		return nil, &ParseError{Msg: "no JSON object with a \"nodes\" array found in response"}
	}
	return nil, &ParseError{Msg: "no JSON object found in response"}
}

// Parse extracts, normalizes and validates a document in one step.
func Parse(raw string, vocab Vocabulary) (*Document, error) {
	doc, err := Extract(raw)
	if err != nil {
		return nil, err
	}
	doc.Normalize()
	if err := ValidateWith(doc, vocab); err != nil {
		return nil, err
	}
	return doc, nil
}

// graphPayload returns the JSON holding nodes/edges and an optional summary.
func graphPayload(block string) (payload, summary string, ok bool) {
	root := gjson.Parse(block)
	if !root.IsObject() {
		return "", "", false
	}
	if root.Get("nodes").IsArray() {
		return block, "", true
	}
	g := root.Get("graph")
	if g.IsObject() && g.Get("nodes").IsArray() {
		summary = root.Get("text").String()
		if summary == "" {
			summary = root.Get("summary").String()
		}
		return g.Raw, summary, true
	}
	return "", "", false
}

func decode(payload, summary string) (*Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, &ParseError{Msg: "failed to decode graph payload", Err: err}
	}
	if doc.Summary == "" {
		doc.Summary = summary
	}
	return &doc, nil
}

// balancedBlock returns the balanced { ... } block starting at s[start], or ""
// if the text ends before the block closes.
func balancedBlock(s string, start int) string {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
