package export

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/yunpil/youtube/internal/models"
)

const (
	fontName  = "Malgun Gothic"
	fontSize  = 12
	textColor = "000000"
	noteColor = "555555"
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+[\.\)]\s+(.+)$`)
	reQuote    = regexp.MustCompile(`^>\s?(.*)$`)
	reItalic   = regexp.MustCompile(`^_(.+)_$`)
	reScene    = regexp.MustCompile(`^\[.+\]$`)
)

// WriteDocx renders res into a Word document at path.
func WriteDocx(res *models.GenerationResult, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	for _, line := range strings.Split(Markdown(res), "\n") {
		addLine(doc, strings.TrimSpace(line))
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// DocxBytes renders res and returns the file contents. godocx only writes
// to paths, so the document goes through a temp file.
func DocxBytes(res *models.GenerationResult) ([]byte, error) {
	f, err := os.CreateTemp("", "viralcopy-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := WriteDocx(res, path); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// paragraphs is the part of the godocx document addLine writes to.
type paragraphs interface {
	AddParagraph(text string) *docx.Paragraph
}

func addLine(doc paragraphs, line string) {
	if line == "" || line == "---" {
		return
	}

	if m := reHeading.FindStringSubmatch(line); m != nil {
		styled(doc.AddParagraph(""), m[2], headingSize(len(m[1])), textColor, true)
		return
	}
	if m := reItalic.FindStringSubmatch(line); m != nil {
		styled(doc.AddParagraph(""), m[1], fontSize-2, noteColor, false)
		return
	}
	if m := reQuote.FindStringSubmatch(line); m != nil {
		styled(doc.AddParagraph(""), m[1], fontSize, noteColor, false)
		return
	}
	if reScene.MatchString(line) {
		styled(doc.AddParagraph(""), line, fontSize, noteColor, true)
		return
	}
	if m := reBullet.FindStringSubmatch(line); m != nil {
		rich(doc.AddParagraph(""), "• "+m[1])
		return
	}
	if reNumbered.MatchString(line) {
		rich(doc.AddParagraph(""), line)
		return
	}
	rich(doc.AddParagraph(""), line)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 18
	case 2:
		return 15
	case 3:
		return 13
	default:
		return fontSize
	}
}

func styled(p *docx.Paragraph, text string, size uint64, color string, bold bool) {
	run := p.AddText(stripInline(text)).Font(fontName).Size(size).Color(color)
	if bold {
		run.Bold(true)
	}
}

// rich splits text on **bold** spans and emits one run per span.
func rich(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	bolds := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(stripInline(part)).Font(fontName).Size(fontSize).Color(textColor)
		}
		if i < len(bolds) {
			p.AddText(stripInline(bolds[i][1])).Font(fontName).Size(fontSize).Color(textColor).Bold(true)
		}
	}
}

func stripInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
