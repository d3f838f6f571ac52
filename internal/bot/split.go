package bot

import (
	"strings"
	"unicode/utf8"
)

// Telegram caps messages at 4096 characters; stay under it.
const maxMessageLength = 4000

// splitMessage splits long text into parts of at most maxLength runes,
// preferring paragraph boundaries, then line boundaries, then hard cuts.
func splitMessage(text string, maxLength int) []string {
	if utf8.RuneCountInString(text) <= maxLength {
		return []string{text}
	}

	var parts []string
	var current string

	flush := func(next string) {
		if current != "" {
			parts = append(parts, current)
		}
		current = next
	}

	for _, paragraph := range strings.Split(text, "\n\n") {
		if utf8.RuneCountInString(paragraph) <= maxLength {
			switch {
			case utf8.RuneCountInString(current+"\n\n"+paragraph) > maxLength:
				flush(paragraph)
			case current == "":
				current = paragraph
			default:
				current += "\n\n" + paragraph
			}
			continue
		}

		for _, line := range strings.Split(paragraph, "\n") {
			if utf8.RuneCountInString(line) > maxLength {
				for _, chunk := range hardChunks(line, maxLength) {
					if utf8.RuneCountInString(current+chunk) > maxLength {
						flush(chunk)
					} else {
						current += chunk
					}
				}
				continue
			}

			switch {
			case utf8.RuneCountInString(current+"\n"+line) > maxLength:
				flush(line)
			case current == "":
				current = line
			default:
				current += "\n" + line
			}
		}
	}

	if current != "" {
		parts = append(parts, current)
	}
	return parts
}

func hardChunks(line string, maxLength int) []string {
	runes := []rune(line)
	var chunks []string
	for start := 0; start < len(runes); start += maxLength {
		end := start + maxLength
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
