package reader

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/joshuagerstein/PAcourt-document-parser/font"
)

// expectedCreator is the reporting engine the layout heuristics are
// tuned for. Documents from any other producer may still extract, but
// the segment reconstruction rules carry no guarantees for them.
const expectedCreator = "Crystal Reports"

// Document is an open PDF being read by the pipeline.
type Document struct {
	ctx      *model.Context
	closer   io.Closer
	logger   *slog.Logger
	warnings []string
}

// Open opens the PDF at path. The returned Document holds the file open
// until Close. A nil logger means slog.Default.
func Open(path string, logger *slog.Logger) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	doc, err := New(f, logger)
	if err != nil {
		f.Close()
		return nil, err
	}
	doc.closer = f
	return doc, nil
}

// New reads a PDF from rs. The caller keeps ownership of rs.
func New(rs io.ReadSeeker, logger *slog.Logger) (*Document, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, err := api.ReadValidateAndOptimize(rs, model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("reading pdf: %w", err)
	}
	doc := &Document{ctx: ctx, logger: logger}
	doc.checkCreator()
	return doc, nil
}

// Close releases the underlying file, if this Document owns one.
func (d *Document) Close() error {
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}

// PageCount reports the number of pages in the document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// PageContent returns the decoded content stream for the given page.
// Pages are numbered from 1.
func (d *Document) PageContent(pageNr int) ([]byte, error) {
	r, err := pdfcpu.ExtractPageContent(d.ctx, pageNr)
	if err != nil {
		return nil, fmt.Errorf("page %d content: %w", pageNr, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("page %d content: %w", pageNr, err)
	}
	return data, nil
}

// PageFonts builds the font capabilities declared by the given page's
// resources, keyed by resource name. A font whose ToUnicode map is
// missing or unreadable is still returned, with a warning; glyph runs
// shown in it will decode to replacement characters downstream.
func (d *Document) PageFonts(pageNr int) (map[string]*font.Font, error) {
	_, _, inhAttrs, err := d.ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, fmt.Errorf("page %d dict: %w", pageNr, err)
	}
	fonts := map[string]*font.Font{}
	if inhAttrs == nil || inhAttrs.Resources == nil {
		return fonts, nil
	}
	fontsObj, found := inhAttrs.Resources.Find("Font")
	if !found {
		return fonts, nil
	}
	fontDicts, err := d.ctx.DereferenceDict(fontsObj)
	if err != nil {
		return nil, fmt.Errorf("page %d font resources: %w", pageNr, err)
	}
	for name, ref := range fontDicts {
		fd, err := d.ctx.DereferenceDict(ref)
		if err != nil {
			return nil, fmt.Errorf("page %d font %s: %w", pageNr, name, err)
		}
		fonts[name] = d.buildFont(name, fd)
	}
	return fonts, nil
}

// buildFont assembles a font capability from a PDF font dictionary.
func (d *Document) buildFont(resource string, fd types.Dict) *font.Font {
	f := font.New(resource, d.nameEntry(fd, "BaseFont"))

	mapping := d.toUnicodeMapping(resource, fd)
	for code, text := range mapping {
		f.SetText(code, text)
	}

	firstChar := 0
	if obj, found := fd.Find("FirstChar"); found {
		if resolved, err := d.ctx.Dereference(obj); err == nil {
			if i, ok := resolved.(types.Integer); ok {
				firstChar = i.Value()
			}
		}
	}
	if obj, found := fd.Find("Widths"); found {
		widths, err := d.ctx.DereferenceArray(obj)
		if err != nil {
			d.warnf("font %s: unreadable widths array: %v", resource, err)
			return f
		}
		for i, w := range widths {
			code := firstChar + i
			if code > 0xFF {
				break
			}
			switch v := w.(type) {
			case types.Integer:
				f.SetWidth(byte(code), float64(v.Value()))
			case types.Float:
				f.SetWidth(byte(code), v.Value())
			}
		}
	}
	return f
}

// toUnicodeMapping decodes a font's ToUnicode character map, if any.
func (d *Document) toUnicodeMapping(resource string, fd types.Dict) map[byte]string {
	obj, found := fd.Find("ToUnicode")
	if !found {
		d.warnf("font %s has no character map; its text will not decode", resource)
		return nil
	}
	sd, valid, err := d.ctx.DereferenceStreamDict(obj)
	if err != nil || !valid || sd == nil {
		d.warnf("font %s: unreadable character map stream: %v", resource, err)
		return nil
	}
	if err := sd.Decode(); err != nil {
		d.warnf("font %s: decoding character map stream: %v", resource, err)
		return nil
	}
	mapping, err := font.ParseToUnicode(sd.Content)
	if err != nil {
		d.warnf("font %s: parsing character map: %v", resource, err)
		return nil
	}
	return mapping
}

// checkCreator warns when the document does not come from the reporting
// engine whose output the pipeline understands.
func (d *Document) checkCreator() {
	creator := d.creator()
	if !strings.Contains(creator, expectedCreator) {
		d.warnf("document creator %q is not %s; layout heuristics may not apply",
			creator, expectedCreator)
	}
}

// creator returns the Creator entry of the document info dictionary.
func (d *Document) creator() string {
	if d.ctx.Info == nil {
		return ""
	}
	info, err := d.ctx.DereferenceDict(*d.ctx.Info)
	if err != nil {
		return ""
	}
	obj, found := info.Find("Creator")
	if !found {
		return ""
	}
	resolved, err := d.ctx.Dereference(obj)
	if err != nil {
		return ""
	}
	switch s := resolved.(type) {
	case types.StringLiteral:
		if v, err := types.StringLiteralToString(s); err == nil {
			return v
		}
	case types.HexLiteral:
		if v, err := types.HexLiteralToString(s); err == nil {
			return v
		}
	}
	return ""
}

// nameEntry resolves a dictionary entry to a PDF name's value.
func (d *Document) nameEntry(dict types.Dict, key string) string {
	obj, found := dict.Find(key)
	if !found {
		return ""
	}
	resolved, err := d.ctx.Dereference(obj)
	if err != nil {
		return ""
	}
	if n, ok := resolved.(types.Name); ok {
		return n.Value()
	}
	return ""
}

// Warnings returns the non-fatal diagnostics recorded while reading.
func (d *Document) Warnings() []string {
	return d.warnings
}

func (d *Document) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	d.warnings = append(d.warnings, msg)
	d.logger.Warn(msg)
}
