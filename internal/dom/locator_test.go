package dom

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const sampleTable = `<table id="line_score"><tbody><tr><th>AAA</th><td>105</td></tr><tr><th>BBB</th><td>110</td></tr></tbody></table>`

func parseDoc(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parsing markup: %v", err)
	}
	return doc
}

func TestFind_LiveTree(t *testing.T) {
	doc := parseDoc(t, "<html><body>"+sampleTable+"</body></html>")

	sel := Find(doc, "table", "line_score")
	if sel == nil {
		t.Fatal("expected to find table in live tree, got nil")
	}
	if got, _ := sel.Attr("id"); got != "line_score" {
		t.Errorf("expected id 'line_score', got %q", got)
	}
}

// A table present only inside a comment node must be structurally equal to
// the same table placed directly in the tree.
func TestFind_CommentTransparency(t *testing.T) {
	live := parseDoc(t, "<html><body>"+sampleTable+"</body></html>")
	commented := parseDoc(t, "<html><body><div><!--"+sampleTable+"--></div></body></html>")

	liveSel := Find(live, "table", "line_score")
	commentSel := Find(commented, "table", "line_score")

	if liveSel == nil || commentSel == nil {
		t.Fatalf("expected both lookups to succeed, got live=%v comment=%v", liveSel, commentSel)
	}

	liveHTML, err := goquery.OuterHtml(liveSel)
	if err != nil {
		t.Fatalf("rendering live table: %v", err)
	}
	commentHTML, err := goquery.OuterHtml(commentSel)
	if err != nil {
		t.Fatalf("rendering comment table: %v", err)
	}

	if liveHTML != commentHTML {
		t.Errorf("comment table differs from live table:\nlive:    %s\ncomment: %s", liveHTML, commentHTML)
	}
}

func TestFind_LiveTreeWinsOverComment(t *testing.T) {
	markup := `<html><body>` +
		`<!--<table id="pbp"><tbody><tr><td>commented</td></tr></tbody></table>-->` +
		`<table id="pbp"><tbody><tr><td>live</td></tr></tbody></table>` +
		`</body></html>`
	doc := parseDoc(t, markup)

	sel := Find(doc, "table", "pbp")
	if sel == nil {
		t.Fatal("expected to find table, got nil")
	}
	if got := strings.TrimSpace(sel.Text()); got != "live" {
		t.Errorf("expected live tree to win, got %q", got)
	}
}

func TestFind_FirstCommentWins(t *testing.T) {
	markup := `<html><body>` +
		`<!--<table id="pbp"><tbody><tr><td>first</td></tr></tbody></table>-->` +
		`<!--<table id="pbp"><tbody><tr><td>second</td></tr></tbody></table>-->` +
		`</body></html>`
	doc := parseDoc(t, markup)

	sel := Find(doc, "table", "pbp")
	if sel == nil {
		t.Fatal("expected to find table, got nil")
	}
	if got := strings.TrimSpace(sel.Text()); got != "first" {
		t.Errorf("expected first comment to win, got %q", got)
	}
}

func TestFind_NotFound(t *testing.T) {
	doc := parseDoc(t, "<html><body><p>nothing here</p></body></html>")

	if sel := Find(doc, "table", "line_score"); sel != nil {
		t.Errorf("expected nil for absent element, got %v", sel)
	}
}

func TestFind_TagMustMatch(t *testing.T) {
	doc := parseDoc(t, `<html><body><div id="line_score"></div></body></html>`)

	if sel := Find(doc, "table", "line_score"); sel != nil {
		t.Error("expected nil when id matches but tag does not")
	}
}

func TestFind_GarbageCommentSkipped(t *testing.T) {
	markup := `<html><body>` +
		`<!-- <<<not markup>>> -->` +
		`<!--<table id="pbp"><tbody><tr><td>ok</td></tr></tbody></table>-->` +
		`</body></html>`
	doc := parseDoc(t, markup)

	sel := Find(doc, "table", "pbp")
	if sel == nil {
		t.Fatal("expected garbage comment to be skipped, got nil")
	}
	if got := strings.TrimSpace(sel.Text()); got != "ok" {
		t.Errorf("expected table from second comment, got %q", got)
	}
}

func TestFindIn_ScopedToSubtree(t *testing.T) {
	markup := `<html><body>` +
		`<div id="one"><!--<table id="box"><tbody><tr><td>inside</td></tr></tbody></table>--></div>` +
		`<div id="two"></div>` +
		`</body></html>`
	doc := parseDoc(t, markup)

	one := Find(doc, "div", "one")
	if one == nil {
		t.Fatal("expected to find container one")
	}
	if sel := FindIn(one, "table", "box"); sel == nil {
		t.Error("expected to find commented table inside container one")
	}

	two := Find(doc, "div", "two")
	if two == nil {
		t.Fatal("expected to find container two")
	}
	if sel := FindIn(two, "table", "box"); sel != nil {
		t.Error("expected no table inside container two")
	}
}

func TestSearchFragment(t *testing.T) {
	if sel := searchFragment(sampleTable, "table", "line_score"); sel == nil {
		t.Error("expected fragment search to find the table")
	}
	if sel := searchFragment(sampleTable, "table", "other"); sel != nil {
		t.Error("expected fragment search to miss a different id")
	}
	if sel := searchFragment("plain text, no markup", "table", "line_score"); sel != nil {
		t.Error("expected fragment without the element to yield nil")
	}
}
