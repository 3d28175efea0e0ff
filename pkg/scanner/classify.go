package scanner

import "strings"

// Context classifies a byte offset within a source line.
type Context int

const (
	ContextCode Context = iota
	ContextString
	ContextComment
	ContextDocBlock
)

func (c Context) String() string {
	switch c {
	case ContextCode:
		return "code"
	case ContextString:
		return "string"
	case ContextComment:
		return "comment"
	case ContextDocBlock:
		return "doc_block"
	}
	return "unknown"
}

// LineState is the classifier state carried from one line to the next.
// It is created clean at the start of a file and threaded through the
// scan as a value, line N's classification depends on every prior line.
type LineState struct {
	InDocBlock bool
	// Delimiter is the triple-quote style that opened the block,
	// `"""` or `'''`. Empty when InDocBlock is false.
	Delimiter string
}

const (
	docBlockDouble = `"""`
	docBlockSingle = "'''"
)

// Classify determines the lexical context of every byte offset on a
// line, given the state left by the previous line, and returns the
// state for the next line. An empty line passes state through unchanged.
func Classify(line string, state LineState) ([]Context, LineState) {
	contexts := make([]Context, len(line))
	i := 0
	if state.InDocBlock {
		end := strings.Index(line, state.Delimiter)
		if end == -1 {
			fill(contexts, 0, len(line), ContextDocBlock)
			return contexts, state
		}
		// The closing delimiter itself still belongs to the block.
		fill(contexts, 0, end+len(state.Delimiter), ContextDocBlock)
		i = end + len(state.Delimiter)
		state = LineState{}
	}

	var quote byte // the quote that opened the current string literal, 0 outside
	for ; i < len(line); i++ {
		ch := line[i]
		if quote != 0 {
			contexts[i] = ContextString
			switch ch {
			case '\\':
				// An escaped character never closes the literal.
				if i+1 < len(line) {
					i++
					contexts[i] = ContextString
				}
			case quote:
				quote = 0
			}
			continue
		}
		switch ch {
		case '#':
			fill(contexts, i, len(line), ContextComment)
			return contexts, state
		case '"', '\'':
			delim := docBlockDouble
			if ch == '\'' {
				delim = docBlockSingle
			}
			if strings.HasPrefix(line[i:], delim) {
				end := strings.Index(line[i+len(delim):], delim)
				if end == -1 {
					fill(contexts, i, len(line), ContextDocBlock)
					return contexts, LineState{InDocBlock: true, Delimiter: delim}
				}
				closing := i + len(delim) + end + len(delim)
				fill(contexts, i, closing, ContextDocBlock)
				i = closing - 1
				continue
			}
			quote = ch
			contexts[i] = ContextString
		default:
			contexts[i] = ContextCode
		}
	}
	// An unterminated single-line string runs to end of line and isn't
	// carried over. Only doc blocks cross lines.
	return contexts, state
}

func fill(contexts []Context, start, end int, c Context) {
	for i := start; i < end; i++ {
		contexts[i] = c
	}
}
