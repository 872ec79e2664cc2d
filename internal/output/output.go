package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v2"

	"github.com/Azure/paslex/lexer"
)

// Writer buffers tokens and renders them once committed.
// Operations are thread safe.
type Writer interface {
	Write(tokens ...lexer.Token) error
	Commit() error
}

// Document is the structured (json/yaml) representation of a token stream.
type Document struct {
	Source string   `json:"source" yaml:"source"`
	Tokens []Record `json:"tokens" yaml:"tokens"`
}

// Record is the encoded form of one token in a Document.
type Record struct {
	Type     string `json:"type" yaml:"type"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
	Position int    `json:"position" yaml:"position"`
	Text     string `json:"text" yaml:"text"`
}

type encodeFunc func(w io.Writer, doc *Document) error

type writer struct {
	w         io.Writer
	encode    encodeFunc
	source    string
	tokens    []lexer.Token
	m         sync.Mutex
	committed bool
}

// NewWriter returns a writer for the given format ("text", "json", or "yaml").
// source is only used to label the output.
func NewWriter(format, source string, w io.Writer) (Writer, error) {
	var enc encodeFunc
	switch format {
	case "text":
		enc = encodeText
	case "json":
		enc = encodeJSON
	case "yaml":
		enc = encodeYAML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &writer{w: w, encode: enc, source: source, tokens: []lexer.Token{}}, nil
}

func (r *writer) Write(tokens ...lexer.Token) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.committed {
		return ErrWriterIsCommitted
	}
	r.tokens = append(r.tokens, tokens...)
	return nil
}

func (r *writer) Commit() error {
	r.m.Lock()
	defer r.m.Unlock()

	doc := &Document{Source: r.source, Tokens: make([]Record, len(r.tokens))}
	for i, tok := range r.tokens {
		doc.Tokens[i] = Record{
			Type:     tok.Type.String(),
			Line:     tok.Line,
			Column:   tok.Column,
			Position: tok.Position,
			Text:     tok.Text,
		}
	}

	if err := r.encode(r.w, doc); err != nil {
		return errors.Join(ErrNonWriteableOutputs, err)
	}
	r.committed = true
	return nil
}

func encodeText(w io.Writer, doc *Document) error {
	for _, rec := range doc.Tokens {
		_, err := fmt.Fprintf(w, "%d:%d\t%10s: %q\n", rec.Line, rec.Column, rec.Type, rec.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeJSON(w io.Writer, doc *Document) error {
	return json.NewEncoder(w).Encode(doc)
}

func encodeYAML(w io.Writer, doc *Document) error {
	buf, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
