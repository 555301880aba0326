package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Find returns the first element with the given tag and id, or nil when no
// such element exists. The live tree is searched first; on a miss, every
// comment node is re-parsed in document order and the first fragment that
// contains a match wins. Absence is a normal outcome, never an error.
func Find(doc *goquery.Document, tag, id string) *goquery.Selection {
	return FindIn(doc.Selection, tag, id)
}

// FindIn is Find scoped to a subtree, used when an element is known to nest
// inside an already-located container.
func FindIn(root *goquery.Selection, tag, id string) *goquery.Selection {
	if sel := firstMatch(root, tag, id); sel != nil {
		return sel
	}

	for _, text := range commentTexts(root) {
		if sel := searchFragment(text, tag, id); sel != nil {
			return sel
		}
	}

	return nil
}

// searchFragment parses text as an independent markup fragment and returns
// the first tag+id match inside it, or nil. A fragment that fails to parse
// is treated as containing no match.
func searchFragment(text, tag, id string) *goquery.Selection {
	frag, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil
	}
	return firstMatch(frag.Selection, tag, id)
}

func firstMatch(root *goquery.Selection, tag, id string) *goquery.Selection {
	sel := root.Find(fmt.Sprintf("%s#%s", tag, id))
	if sel.Length() == 0 {
		return nil
	}
	return sel.First()
}

// commentTexts collects the text of every comment node in document order
func commentTexts(sel *goquery.Selection) []string {
	var texts []string
	for _, root := range sel.Nodes {
		var walk func(n *html.Node)
		walk = func(n *html.Node) {
			if n.Type == html.CommentNode {
				texts = append(texts, n.Data)
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(root)
	}
	return texts
}
