package embedding

import "strings"

// Instruction templates. These are the retrieval-style wrappers the Qwen3
// embedding family was trained with; other instruction-aware families
// tolerate them as generic task descriptions.
const (
	queryTemplate    = "Instruct: Given a query, retrieve relevant passages that answer the query\nQuery: "
	documentTemplate = "Instruct: Embed this document for retrieval\nDocument: "
)

// prepareText derives the text actually sent to the backend from the raw
// input. Steps, in order:
//
//  1. reject empty or whitespace-only input
//  2. strip ASCII control characters (0x00-0x1F and 0x7F) that would
//     produce malformed payloads
//  3. prepend the prefix, separated by a single space
//  4. wrap with the instruction template, if an instruction is set
//
// The result is deterministic: identical inputs always produce identical
// derived text. position is recorded on validation errors (-1 for single
// operations).
func prepareText(raw, prefix string, instruction Instruction, position int) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", &ValidationError{Position: position, Reason: "text is empty or whitespace-only"}
	}

	text := stripControlChars(raw)

	if prefix != "" {
		text = prefix + " " + text
	}

	switch instruction {
	case InstructionQuery:
		text = queryTemplate + text
	case InstructionDocument:
		text = documentTemplate + text
	}

	return text, nil
}

// stripControlChars removes ASCII control characters from s.
// Multi-byte runes are never control characters and pass through untouched.
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, s)
}
