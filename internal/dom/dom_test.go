package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html><html><head><title>t</title></head><body>
<div class="container"><div class="show-alert"></div>
<form id="f"><input type="text" id="title" value="old"/><input id="isbn"/></form>
<table><tbody id="list"><tr class="row first"><td>a</td></tr><tr class="row"><td>b</td></tr></tbody></table>
</div></body></html>`

func mustParse(t *testing.T) *Document {
	t.Helper()
	d, err := ParseString(page)
	require.NoError(t, err)
	return d
}

func TestDocument_ByID(t *testing.T) {
	d := mustParse(t)

	n := d.ByID("list")
	require.NotNil(t, n)
	assert.Equal(t, "tbody", n.Data)
	assert.Nil(t, d.ByID("missing"))
}

func TestDocument_ByClass(t *testing.T) {
	d := mustParse(t)

	rows := d.ByClass("row")
	require.Len(t, rows, 2)
	assert.Equal(t, "a", Text(rows[0]))
	assert.Equal(t, "b", Text(rows[1]))
	assert.Len(t, d.ByClass("first"), 1)
	assert.Empty(t, d.ByClass("ro"))
}

func TestDocument_Values(t *testing.T) {
	d := mustParse(t)

	assert.Equal(t, "old", d.Value("title"))
	assert.Equal(t, "", d.Value("isbn"))
	assert.Equal(t, "", d.Value("missing"))

	assert.True(t, d.SetValue("isbn", "123"))
	assert.Equal(t, "123", d.Value("isbn"))
	assert.True(t, d.SetValue("title", ""))
	assert.Equal(t, "", d.Value("title"))
	assert.False(t, d.SetValue("missing", "x"))
}

func TestElementManipulation(t *testing.T) {
	d := mustParse(t)
	list := d.ByID("list")

	tr := CreateElement("tr", A("id", "r3"), A("class", "row"))
	td := CreateElement("td")
	SetText(td, "<c>")
	AppendChild(tr, td)
	AppendChild(list, tr)

	assert.Len(t, Children(list), 3)
	assert.Same(t, tr, d.ByID("r3"))

	out, err := RenderNode(tr)
	require.NoError(t, err)
	assert.Equal(t, `<tr id="r3" class="row"><td>&lt;c&gt;</td></tr>`, out)

	Remove(tr)
	assert.Len(t, Children(list), 2)
	assert.Nil(t, d.ByID("r3"))
	Remove(tr)

	ClearChildren(list)
	assert.Empty(t, Children(list))
	assert.Empty(t, d.ByClass("row"))
}

func TestSetAttr(t *testing.T) {
	n := CreateElement("div", A("class", "alert"))

	SetAttr(n, "class", "alert alert-danger")
	SetAttr(n, "role", "alert")

	v, ok := Attr(n, "class")
	assert.True(t, ok)
	assert.Equal(t, "alert alert-danger", v)
	assert.True(t, HasClass(n, "alert-danger"))
	assert.Len(t, n.Attr, 2)
}

func TestDocument_Render(t *testing.T) {
	d := mustParse(t)
	d.SetValue("isbn", "978")

	var sb strings.Builder
	require.NoError(t, d.Render(&sb))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<input id="isbn" value="978"/>`)
	assert.Contains(t, out, `<tbody id="list">`)
}
