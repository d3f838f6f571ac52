package dictionary

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// parsePage extracts a dictionary entry from a dictionary.cambridge.org
// page. A page without a headword yields an Entry with an empty Word,
// which is how spelling suggestion pages look.
func parsePage(baseURL string, body []byte) (Entry, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return Entry{}, fmt.Errorf("parse HTML: %w", err)
	}

	entry := Entry{
		POS:            []string{},
		Verbs:          []VerbForm{},
		Pronunciations: []Pronunciation{},
		Definitions:    []Definition{},
	}
	entry.Word = classText(doc, "hw", "dhw")
	if entry.Word == "" {
		return entry, nil
	}

	var entryNodes []*html.Node
	collectByClass(doc, &entryNodes, "entry-body__el")
	if len(entryNodes) == 0 {
		entryNodes = append(entryNodes, doc)
	}

	seenPOS := make(map[string]bool)
	for _, entryNode := range entryNodes {
		pos := classText(entryNode, "pos", "dpos")
		if pos != "" && !seenPOS[pos] {
			seenPOS[pos] = true
			entry.POS = append(entry.POS, pos)
		}

		extractVerbForms(entryNode, &entry.Verbs)
		extractPronunciations(entryNode, pos, baseURL, &entry.Pronunciations)
		extractDefinitions(entryNode, pos, &entry.Definitions)
	}

	return entry, nil
}

// extractVerbForms reads irregular inflections like "past tense went".
func extractVerbForms(n *html.Node, forms *[]VerbForm) {
	var groups []*html.Node
	collectByClass(n, &groups, "inf-group")
	for _, group := range groups {
		form := VerbForm{
			ID:   len(*forms),
			Type: classText(group, "lab"),
			Text: classText(group, "inf"),
		}
		if form.Text == "" {
			continue
		}
		*forms = append(*forms, form)
	}
}

func extractPronunciations(n *html.Node, pos, baseURL string, pronunciations *[]Pronunciation) {
	var blocks []*html.Node
	collectByClass(n, &blocks, "dpron-i")
	for _, block := range blocks {
		pronunciation := Pronunciation{
			POS:  pos,
			Lang: strings.ToLower(classText(block, "region", "dreg")),
			URL:  resolveMediaURL(baseURL, findAudioSource(block)),
			Pron: classText(block, "pron", "dpron"),
		}
		if pronunciation.Lang == "" && pronunciation.Pron == "" && pronunciation.URL == "" {
			continue
		}
		*pronunciations = append(*pronunciations, pronunciation)
	}
}

func extractDefinitions(n *html.Node, pos string, definitions *[]Definition) {
	var blocks []*html.Node
	collectByClass(n, &blocks, "def-block", "ddef_block")
	for _, block := range blocks {
		definition := Definition{
			ID:          len(*definitions),
			POS:         pos,
			Source:      extractSource(block),
			Text:        classText(block, "def", "ddef_d"),
			Translation: classText(block, "trans", "dtrans"),
			Examples:    []Example{},
		}
		if definition.Text == "" {
			continue
		}

		var exampleNodes []*html.Node
		collectByClass(block, &exampleNodes, "examp", "dexamp")
		for _, exampleNode := range exampleNodes {
			example := Example{
				ID:          len(definition.Examples),
				Text:        classText(exampleNode, "eg", "deg"),
				Translation: classText(exampleNode, "trans", "dtrans"),
			}
			if example.Text == "" {
				continue
			}
			definition.Examples = append(definition.Examples, example)
		}

		*definitions = append(*definitions, definition)
	}
}

// extractSource walks up to the enclosing dictionary section and returns
// its data-id, like "cald4" or "cbed".
func extractSource(n *html.Node) string {
	for p := n.Parent; p != nil; p = p.Parent {
		if hasClass(p, "dictionary") {
			if id := getAttr(p, "data-id"); id != "" {
				return id
			}
		}
	}
	return ""
}

func findAudioSource(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "source" && getAttr(n, "type") == "audio/mpeg" {
		return getAttr(n, "src")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if src := findAudioSource(c); src != "" {
			return src
		}
	}
	return ""
}

func resolveMediaURL(baseURL, src string) string {
	if src == "" {
		return ""
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	return strings.TrimSuffix(baseURL, "/") + src
}

// findByClass returns the first node carrying all the given classes.
func findByClass(n *html.Node, classes ...string) *html.Node {
	if hasClass(n, classes...) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, classes...); found != nil {
			return found
		}
	}
	return nil
}

// collectByClass gathers all nodes carrying the given classes without
// descending into matches.
func collectByClass(n *html.Node, nodes *[]*html.Node, classes ...string) {
	if hasClass(n, classes...) {
		*nodes = append(*nodes, n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectByClass(c, nodes, classes...)
	}
}

func classText(n *html.Node, classes ...string) string {
	found := findByClass(n, classes...)
	if found == nil {
		return ""
	}
	return cleanText(getTextContent(found))
}

func hasClass(n *html.Node, classes ...string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	attr := getAttr(n, "class")
	if attr == "" {
		return false
	}
	have := make(map[string]bool)
	for _, class := range strings.Fields(attr) {
		have[class] = true
	}
	for _, class := range classes {
		if !have[class] {
			return false
		}
	}
	return true
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func getTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var result strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		result.WriteString(getTextContent(c))
	}
	return result.String()
}

func cleanText(s string) string {
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
