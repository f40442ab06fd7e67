package transport

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"condoYaAdmin/internal/modules/console/domain"
	"condoYaAdmin/internal/shared/normalization"
	"condoYaAdmin/web"
)

var pageNames = []string{"login", "dashboard", "list", "form", "confirm_delete", "report"}

var templateFuncs = template.FuncMap{
	"cell":      renderCell,
	"checked":   normalization.AsBool,
	"pageSeq":   pageSeq,
	"nextOrder": nextOrder,
}

// Renderer implements echo.Renderer over the embedded templates. Each page is
// parsed together with the shared layout once at startup.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		parsed, err := template.New("layout.html").
			Funcs(templateFuncs).
			ParseFS(web.Templates, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = parsed
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}
	return page.ExecuteTemplate(w, "layout.html", data)
}

// renderCell turns a loosely typed cell value into display text. Long values
// (base64 images mostly) are elided instead of flooding the table.
func renderCell(value any) string {
	var text string
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		text = typed
	case bool:
		if typed {
			return "yes"
		}
		return "no"
	default:
		text = normalization.AsString(normalization.AsFloat64(value))
	}
	if runes := []rune(text); len(runes) > 60 {
		return string(runes[:57]) + "..."
	}
	return text
}

func pageSeq(pages int) []int {
	seq := make([]int, pages)
	for i := range seq {
		seq[i] = i + 1
	}
	return seq
}

// nextOrder yields the order parameter a column-header link should carry:
// clicking the current sort column flips the direction.
func nextOrder(query domain.PagedQuery, column string) string {
	if strings.EqualFold(query.SortBy, column) && query.SortOrder == "ASC" {
		return "desc"
	}
	return "asc"
}
