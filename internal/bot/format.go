package bot

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ashatilov/camdict/internal/dictionary"
)

// formatEntry renders a dictionary entry as a Telegram Markdown message.
func formatEntry(entry dictionary.Entry) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📚 *%s*\n\n", capitalize(entry.Word)))

	if len(entry.POS) > 0 {
		sb.WriteString(fmt.Sprintf("🔤 *Часть речи:* %s\n\n", strings.Join(entry.POS, ", ")))
	}

	if len(entry.Pronunciations) > 0 {
		sb.WriteString("*Произношение:*\n")
		seen := map[string]struct{}{}
		for _, pron := range entry.Pronunciations {
			key := pron.Lang + "-" + pron.Pron
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			sb.WriteString(fmt.Sprintf("%s: %s\n", langLabel(pron.Lang), pron.Pron))
		}
		sb.WriteString("\n")
	}

	if len(entry.Definitions) == 0 {
		sb.WriteString("Определения не найдены.\n")
		return sb.String()
	}

	sb.WriteString("*Определения:*\n")
	for i, def := range entry.Definitions {
		pos := ""
		if def.POS != "" {
			pos = fmt.Sprintf(" (%s)", def.POS)
		}
		sb.WriteString(fmt.Sprintf("%d.%s %s\n", i+1, pos, def.Text))

		if def.Translation != "" {
			sb.WriteString(fmt.Sprintf("   _Перевод:_ %s\n", def.Translation))
		}

		if len(def.Examples) > 0 {
			sb.WriteString("   _Примеры:_\n")
			examples := def.Examples
			if len(examples) > 3 {
				examples = examples[:3]
			}
			for _, example := range examples {
				sb.WriteString(fmt.Sprintf("   • %s\n", example.Text))
				if example.Translation != "" {
					sb.WriteString(fmt.Sprintf("     %s\n", example.Translation))
				}
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

func langLabel(lang string) string {
	switch lang {
	case "uk":
		return "🇬🇧 UK"
	case "us":
		return "🇺🇸 US"
	default:
		return strings.ToUpper(lang)
	}
}
