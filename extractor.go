package pacourt

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joshuagerstein/PAcourt-document-parser/contentstream"
	"github.com/joshuagerstein/PAcourt-document-parser/docket"
	"github.com/joshuagerstein/PAcourt-document-parser/extract"
	"github.com/joshuagerstein/PAcourt-document-parser/reader"
)

// Extractor provides a fluent interface for running the document
// pipeline. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	doc      *reader.Document

	// Lifecycle
	ownsReader bool // true if we opened the document and should close it
	docOpened  bool // true if the document has been opened

	// Configuration
	options ExtractOptions

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:   e.filename,
		doc:        e.doc,
		ownsReader: e.ownsReader,
		docOpened:  e.docOpened,
		options:    e.options.clone(),
		warnings:   append([]Warning(nil), e.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Tolerances overrides the segment state machine's spacing thresholds.
// The defaults are tuned to the known report generator; override them
// only for documents from a variant layout.
func (e *Extractor) Tolerances(tol extract.Tolerances) *Extractor {
	ne := e.clone()
	ne.options.tolerances = tol
	return ne
}

// WithLogger directs the pipeline's diagnostics to the given logger
// instead of slog.Default.
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	ne := e.clone()
	ne.options.logger = logger
	return ne
}

// WithOptions replaces the Extractor's configuration wholesale, e.g.
// with options loaded from a file via LoadOptions.
func (e *Extractor) WithOptions(opts ExtractOptions) *Extractor {
	ne := e.clone()
	ne.options = opts.clone()
	return ne
}

// ============================================================================
// Lifecycle
// ============================================================================

// ensureDocument opens the document if not already open.
func (e *Extractor) ensureDocument() error {
	if e.docOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	doc, err := reader.Open(e.filename, e.options.logger)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.doc = doc
	e.ownsReader = true
	e.docOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.doc != nil {
		err := e.doc.Close()
		e.doc = nil
		e.ownsReader = false
		return err
	}
	return nil
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Text runs the extraction half of the pipeline and returns the
// document's serialized text: one line per segment, each carrying its
// position and font class annotation. This is the parser's input format
// and doubles as a debugging artifact.
func (e *Extractor) Text() (string, []Warning, error) {
	defer e.Close()
	text, err := e.serialize()
	return text, e.warnings, err
}

// Type classifies the document as a docket or a court summary.
func (e *Extractor) Type() (docket.DocumentType, []Warning, error) {
	defer e.Close()
	text, err := e.serialize()
	if err != nil {
		return 0, e.warnings, err
	}
	docType, err := docket.DetectType(text)
	return docType, e.warnings, err
}

// Record runs the whole pipeline and returns the document's structured
// record, along with any warnings raised on the way. Warnings indicate
// non-fatal issues; a non-nil error means no record could be produced.
func (e *Extractor) Record() (docket.Record, []Warning, error) {
	defer e.Close()
	text, err := e.serialize()
	if err != nil {
		return nil, e.warnings, err
	}
	record, err := docket.ParseText(text)
	if err != nil {
		return nil, e.warnings, fmt.Errorf("parsing document: %w", err)
	}
	return record, e.warnings, nil
}

// serialize extracts every page in order and concatenates the rendered
// segments. Page-break filtering happens later, on the concatenation,
// because pagination patterns span page boundaries.
func (e *Extractor) serialize() (string, error) {
	if err := e.ensureDocument(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= e.doc.PageCount(); pageNr++ {
		fonts, err := e.doc.PageFonts(pageNr)
		if err != nil {
			return "", err
		}
		// The serialization format depends on its sentinel characters
		// never appearing as document text. A font that can produce one
		// makes the output unparseable, so it is a fatal error.
		for _, f := range fonts {
			if err := f.CheckReserved(extract.Reserved()); err != nil {
				return "", fmt.Errorf("page %d: %w", pageNr, err)
			}
		}

		content, err := e.doc.PageContent(pageNr)
		if err != nil {
			return "", err
		}

		interp := extract.NewInterpreter(fonts, e.options.tolerances, e.options.logger)
		walker := contentstream.NewWalker()
		if err := walker.WalkBytes(content, interp.Visit); err != nil {
			return "", fmt.Errorf("page %d: %w", pageNr, err)
		}
		sb.WriteString(extract.Render(interp.Segments()))

		for _, msg := range interp.Warnings() {
			e.warn("extract", pageNr, msg)
		}
	}

	for _, msg := range e.doc.Warnings() {
		e.warn("read", 0, msg)
	}
	return sb.String(), nil
}

func (e *Extractor) warn(stage string, page int, msg string) {
	e.warnings = append(e.warnings, Warning{Stage: stage, Page: page, Message: msg})
}
