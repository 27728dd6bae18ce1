package letterdoc

import (
	"embed"
	"html/template"
	"io"
	"strings"
)

var (
	//go:embed templates/letter.html
	letterTemplates embed.FS

	letterTemplate = template.Must(template.New("letter.html").
			Funcs(template.FuncMap{"imgsrc": imgSrc}).
			ParseFS(letterTemplates, "templates/letter.html"))
)

// imgsrc meloloskan sumber gambar yang kita percayai, termasuk data URI
// yang oleh html/template akan disanitasi menjadi #ZgotmplZ. Skema lain
// dikosongkan.
func imgSrc(src string) template.URL {
	switch {
	case strings.HasPrefix(src, "data:image/"),
		strings.HasPrefix(src, "http://"),
		strings.HasPrefix(src, "https://"):
		return template.URL(src)
	}
	return ""
}

// WriteHTML menulis Document sebagai halaman preview. Strukturnya
// mengikuti template PDF seksi per seksi sehingga preview dan hasil
// unduhan terlihat sama.
func WriteHTML(doc *Document, w io.Writer) error {
	return letterTemplate.Execute(w, doc)
}
