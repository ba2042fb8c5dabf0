package mindguard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text  string // The sentence's text, without surrounding whitespace.
	Start int    // Start position in original text
	End   int    // End position in original text
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// A DocOpt represents a setting that changes the document creation process.
//
// For example, it might disable sentence segmentation:
//
//	doc, err := mindguard.NewDocument("...", mindguard.WithSegmentation(false))
type DocOpt func(opts *DocOpts)

// DocOpts controls the Document creation process:
type DocOpts struct {
	Segment bool            // If true, split the text into sentences
	Context context.Context // Context for cancellation
}

// WithSegmentation can enable (the default) or disable sentence segmentation.
func WithSegmentation(include bool) DocOpt {
	return func(opts *DocOpts) {
		opts.Segment = include
	}
}

// WithContext sets the context for document processing
func WithContext(ctx context.Context) DocOpt {
	return func(opts *DocOpts) {
		opts.Context = ctx
	}
}

// A Document represents a body of text to classify, possibly several
// sentences long.
type Document struct {
	Text string

	sentences []Sentence
}

// Sentences returns `doc`'s sentences. Without segmentation the whole text
// is a single sentence.
func (doc *Document) Sentences() []Sentence {
	return doc.sentences
}

// NewDocument creates a Document according to the user-specified options.
func NewDocument(text string, opts ...DocOpt) (*Document, error) {
	base := DocOpts{Segment: true, Context: context.Background()}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	select {
	case <-base.Context.Done():
		return nil, base.Context.Err()
	default:
	}

	doc := &Document{Text: text}
	if !base.Segment {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			doc.sentences = []Sentence{{Text: trimmed, Start: 0, End: len(text)}}
		}
		return doc, nil
	}

	sents, err := Segment(text)
	if err != nil {
		return nil, err
	}
	doc.sentences = sents
	return doc, nil
}

var (
	segmenterOnce sync.Once
	segment       func(string) []Sentence
	segmenterErr  error
)

// Segment splits text into sentences with the Punkt English model. Blank
// sentences are dropped.
func Segment(text string) ([]Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	segmenterOnce.Do(func() {
		tokenizer, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			segmenterErr = err
			return
		}
		segment = func(text string) []Sentence {
			var out []Sentence
			for _, s := range tokenizer.Tokenize(text) {
				trimmed := strings.TrimSpace(s.Text)
				if trimmed == "" {
					continue
				}
				out = append(out, Sentence{Text: trimmed, Start: s.Start, End: s.End})
			}
			return out
		}
	})
	if segmenterErr != nil {
		return nil, fmt.Errorf("load sentence tokenizer: %w", segmenterErr)
	}
	return segment(text), nil
}
