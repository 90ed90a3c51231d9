package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/net/html"
)

// wordsPerMinute is the reading speed used for the derived read time.
const wordsPerMinute = 200

// Blog represents a blog post document.
// Collection: blogs
//
// ReadTime and the formatted date are derived on read, never stored.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Slug      string             `bson:"slug" json:"slug"`
	Summary   string             `bson:"summary" json:"summary"`
	Content   string             `bson:"content" json:"content"`
	Tags      []string           `bson:"tags" json:"tags"`
	Thumbnail string             `bson:"thumbnail" json:"thumbnail"`
	Author    string             `bson:"author" json:"author"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// ReadTime returns the estimated reading time ("N min read") derived from
// the word count of the post content. Posts without content have no read
// time and return false.
func (b Blog) ReadTime() (string, bool) {
	words := countWords(b.Content)
	if words == 0 {
		return "", false
	}
	minutes := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	return fmt.Sprintf("%d min read", minutes), true
}

// FormattedDate renders CreatedAt like "Jan 2, 2006".
func (b Blog) FormattedDate() string {
	return b.CreatedAt.Format("Jan 2, 2006")
}

// countWords counts whitespace-separated words in the text of a rich-HTML
// string. Markup tags do not count as words. Input that fails to parse as
// HTML is counted as plain text.
func countWords(content string) int {
	if strings.TrimSpace(content) == "" {
		return 0
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return len(strings.Fields(content))
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return len(strings.Fields(sb.String()))
}
