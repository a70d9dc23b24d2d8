package filler

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"regexp"

	"github.com/ukaji3/docbatch-go/pkg/docbatch/models"
)

// ErrNotDocx indicates a template without a word/document.xml part.
var ErrNotDocx = errors.New("not a docx package")

const documentPart = "word/document.xml"

var (
	// contentPartPattern matches the WordprocessingML parts that carry text.
	contentPartPattern = regexp.MustCompile(`^word/(document|header\d*|footer\d*|footnotes|endnotes)\.xml$`)
	// textPattern matches a <w:t> element; <w:tab/> and <w:tbl> do not match.
	textPattern = regexp.MustCompile(`(<w:t(?:\s[^>]*)?>)([^<]*)(</w:t>)`)
	// placeholderPattern matches {{ Name }} slots.
	placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)
)

// Document fills .docx templates.
type Document struct {
	Date string
}

// Fill renders the document placeholders of o into the template and saves it.
func (d Document) Fill(templatePath string, o models.Order, outputPath string) error {
	data, err := RenderDocx(templatePath, DocumentFields(o, d.Date))
	if err != nil {
		return newFillError(o, templatePath, "fill", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return newFillError(o, templatePath, "save", err)
	}
	return nil
}

// RenderDocx returns the template package with every {{ Name }} slot replaced.
// Names missing from fields render empty.
func RenderDocx(templatePath string, fields map[string]string) ([]byte, error) {
	r, err := zip.OpenReader(templatePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if !hasPart(&r.Reader, documentPart) {
		return nil, fmt.Errorf("%w: %s", ErrNotDocx, templatePath)
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, f := range r.File {
		if !contentPartPattern.MatchString(f.Name) {
			if err := w.Copy(f); err != nil {
				return nil, err
			}
			continue
		}

		data, err := readZipEntry(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		fw, err := w.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: f.Modified,
		})
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write(renderPart(data, fields)); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// textSegment is the decoded text of one <w:t> element.
type textSegment struct {
	loc      []int
	start    int
	size     int // decoded length before replacement
	text     string
	modified bool
}

// renderPart replaces placeholders in a WordprocessingML part.
// Word may split one placeholder over several runs, so the text of all <w:t>
// elements is matched as one string and the replacement is written back into
// the runs the placeholder touched: the first keeps the value, the others lose
// the consumed characters.
func renderPart(data []byte, fields map[string]string) []byte {
	locs := textPattern.FindAllSubmatchIndex(data, -1)
	if len(locs) == 0 {
		return data
	}

	segments := make([]textSegment, len(locs))
	var combined bytes.Buffer
	for i, loc := range locs {
		text := html.UnescapeString(string(data[loc[4]:loc[5]]))
		segments[i] = textSegment{loc: loc, start: combined.Len(), size: len(text), text: text}
		combined.WriteString(text)
	}

	matches := placeholderPattern.FindAllStringSubmatchIndex(combined.String(), -1)
	if len(matches) == 0 {
		return data
	}

	// Walk backwards so earlier offsets inside a segment stay valid.
	for m := len(matches) - 1; m >= 0; m-- {
		match := matches[m]
		name := combined.String()[match[2]:match[3]]
		value := fields[name]

		first := segmentAt(segments, match[0])
		last := segmentAt(segments, match[1]-1)
		if first < 0 || last < 0 {
			continue
		}

		if first == last {
			s := &segments[first]
			s.text = s.text[:match[0]-s.start] + value + s.text[match[1]-s.start:]
			s.modified = true
			continue
		}

		head := &segments[first]
		head.text = head.text[:match[0]-head.start] + value
		head.modified = true
		for k := first + 1; k < last; k++ {
			segments[k].text = ""
			segments[k].modified = true
		}
		tail := &segments[last]
		tail.text = tail.text[match[1]-tail.start:]
		tail.modified = true
	}

	var out bytes.Buffer
	prev := 0
	for _, s := range segments {
		out.Write(data[prev:s.loc[0]])
		if !s.modified {
			out.Write(data[s.loc[0]:s.loc[1]])
		} else {
			out.Write(preserveSpace(data[s.loc[2]:s.loc[3]]))
			xml.EscapeText(&out, []byte(s.text))
			out.Write(data[s.loc[6]:s.loc[7]])
		}
		prev = s.loc[1]
	}
	out.Write(data[prev:])

	return out.Bytes()
}

// segmentAt returns the index of the segment holding combined offset pos.
func segmentAt(segments []textSegment, pos int) int {
	for i, s := range segments {
		if pos >= s.start && pos < s.start+s.size {
			return i
		}
	}
	return -1
}

// preserveSpace adds xml:space="preserve" to a <w:t> start tag.
func preserveSpace(open []byte) []byte {
	if bytes.Contains(open, []byte("xml:space=")) {
		return open
	}
	tag := make([]byte, 0, len(open)+21)
	tag = append(tag, `<w:t xml:space="preserve"`...)
	return append(tag, open[len("<w:t"):]...)
}

func hasPart(r *zip.Reader, name string) bool {
	for _, f := range r.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
