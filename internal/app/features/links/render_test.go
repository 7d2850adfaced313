package links

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/dalemusser/codetrack/internal/app/resources"
	"github.com/dalemusser/codetrack/internal/app/system/viewdata"
)

func TestLinksList_UnsafeURLNotRendered(t *testing.T) {
	tmpl := template.Must(template.ParseFS(resources.LayoutFS, "templates/*.gohtml"))
	tmpl = template.Must(tmpl.ParseFS(FS, "templates/*.gohtml"))

	data := listData{
		BaseVM: viewdata.BaseVM{SiteName: viewdata.SiteName},
		Links: []linkRow{
			{ID: "1", Name: "evil", URL: "javascript:alert(1)"},
			{ID: "2", Name: "plain", URL: "www.example.com"},
		},
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "links_list", data); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "javascript:") {
		t.Error("javascript: URL reached the page")
	}
	if !strings.Contains(out, `href="www.example.com"`) {
		t.Error("plain stored URL should render as given")
	}
}
