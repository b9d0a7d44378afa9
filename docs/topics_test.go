package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopicsAreValidMarkdown parses every topic and checks it opens
// with a level-1 heading.
func TestTopicsAreValidMarkdown(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	topics = append(topics, "readme")

	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q): %v", topic, err)
		}

		source := []byte(content)
		doc := goldmark.DefaultParser().Parse(text.NewReader(source))
		first := doc.FirstChild()
		if first == nil {
			t.Errorf("topic %q: empty document", topic)
			continue
		}
		h, ok := first.(*ast.Heading)
		if !ok || h.Level != 1 {
			t.Errorf("topic %q: does not start with a level-1 heading", topic)
		}
	}
}

// TestReadmeListsAllTopics keeps the index in sync with the topics.
func TestReadmeListsAllTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme): %v", err)
	}
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	for _, topic := range topics {
		if !strings.Contains(readme, "`"+topic+"`") {
			t.Errorf("readme does not mention topic %q", topic)
		}
	}
}

func TestUnknownTopic(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Fatal("expected an error for an unknown topic")
	}
}
