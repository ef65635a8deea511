package domain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	m "github.com/mouse-blink/tracecov/internal/model"
)

const (
	fieldSeparator = ";"
	listSeparator  = ","

	recordFields = 7
	// Global records may leave out the trailing path field, which they ignore anyway.
	globalRecordMinFields = 6
)

// Names of the record fields, in order.
const (
	fieldFunction    = "functionName"
	fieldFile        = "fileName"
	fieldScope       = "scope"
	fieldExecuted    = "executedLines"
	fieldNotExecuted = "notExecutedLines"
	fieldMaybe       = "maybeExecutedLines"
	fieldPath        = "pathLines"
)

// Parser turns report text into an AnalysisResult. Parsing is all-or-nothing:
// the first bad record aborts it and no partial result is returned.
type Parser interface {
	Parse(text string) (*m.AnalysisResult, error)
	ParseReader(r io.Reader) (*m.AnalysisResult, error)
}

type reportParser struct {
	logger zerolog.Logger
}

// NewParser creates a Parser logging to logger. Pass zerolog.Nop() to discard logs.
func NewParser(logger zerolog.Logger) Parser {
	return &reportParser{logger: logger}
}

// record is one validated report line.
type record struct {
	function    string
	file        string
	scope       m.Scope
	executed    []int
	notExecuted []int
	maybe       []int
	path        []int
}

type lineList struct {
	name string
	dst  *[]int
}

// parseState is scoped to a single Parse call.
type parseState struct {
	root  *m.TraceRoot
	files []*m.FileEntity
	index map[string]*m.FileEntity
}

func (p *reportParser) Parse(text string) (*m.AnalysisResult, error) {
	return p.ParseReader(strings.NewReader(text))
}

func (p *reportParser) ParseReader(r io.Reader) (*m.AnalysisResult, error) {
	state := &parseState{
		root:  m.NewTraceRoot(),
		index: make(map[string]*m.FileEntity),
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	lineNo := 0

	for scanner.Scan() {
		lineNo++

		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		rec, err := parseRecord(lineNo, raw)
		if err != nil {
			p.logger.Debug().Int("line", lineNo).Err(err).Msg("rejecting report")
			return nil, err
		}

		if err := p.apply(state, lineNo, raw, rec); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	p.logger.Debug().
		Int("records", lineNo).
		Int("frames", len(state.root.Frames())).
		Int("files", len(state.files)).
		Msg("report parsed")

	return m.NewAnalysisResult(state.root, state.files), nil
}

func parseRecord(lineNo int, raw string) (record, error) {
	fields := strings.Split(raw, fieldSeparator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if len(fields) < globalRecordMinFields || len(fields) > recordFields {
		return record{}, &ParseError{
			Line:   lineNo,
			Record: raw,
			Reason: fmt.Sprintf("expected %d fields, got %d", recordFields, len(fields)),
			Err:    ErrMalformedRecord,
		}
	}

	rec := record{
		function: fields[0],
		file:     fields[1],
		scope:    m.Scope(fields[2]),
	}

	if rec.function == "" {
		return record{}, &ParseError{Line: lineNo, Record: raw, Field: fieldFunction, Reason: "empty function name", Err: ErrMalformedRecord}
	}

	switch rec.scope {
	case m.ScopeLocal:
		if len(fields) != recordFields {
			return record{}, &ParseError{
				Line:   lineNo,
				Record: raw,
				Reason: fmt.Sprintf("expected %d fields for a local record, got %d", recordFields, len(fields)),
				Err:    ErrMalformedRecord,
			}
		}
	case m.ScopeGlobal:
	default:
		return record{}, &ParseError{
			Line:   lineNo,
			Record: raw,
			Field:  fieldScope,
			Reason: fmt.Sprintf("scope %q is not %q or %q", fields[2], m.ScopeLocal, m.ScopeGlobal),
			Err:    ErrUnknownScope,
		}
	}

	// The path field is validated for every record; global records drop its lines later.
	lists := []lineList{
		{fieldExecuted, &rec.executed},
		{fieldNotExecuted, &rec.notExecuted},
		{fieldMaybe, &rec.maybe},
	}
	if len(fields) == recordFields {
		lists = append(lists, lineList{fieldPath, &rec.path})
	}

	for i, list := range lists {
		lines, err := parseLineList(fields[3+i])
		if err != nil {
			return record{}, &ParseError{Line: lineNo, Record: raw, Field: list.name, Reason: err.Error(), Err: ErrInvalidNumber}
		}

		*list.dst = lines
	}

	return rec, nil
}

// parseLineList converts a comma separated list of non-negative integers.
// Whether a number is a usable line is decided when it enters the model.
func parseLineList(field string) ([]int, error) {
	if field == "" {
		return nil, nil
	}

	tokens := strings.Split(field, listSeparator)
	lines := make([]int, 0, len(tokens))

	for _, token := range tokens {
		token = strings.TrimSpace(token)

		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", token)
		}

		if n < 0 {
			return nil, fmt.Errorf("negative line number %d", n)
		}

		lines = append(lines, n)
	}

	return lines, nil
}

func (p *reportParser) apply(state *parseState, lineNo int, raw string, rec record) error {
	switch rec.scope {
	case m.ScopeLocal:
		return p.applyLocal(state, lineNo, raw, rec)
	default:
		return applyGlobal(state, lineNo, raw, rec)
	}
}

func (p *reportParser) applyLocal(state *parseState, lineNo int, raw string, rec record) error {
	frame := m.NewFrameEntity(rec.function, rec.file)

	for _, line := range rec.path {
		step, err := m.NewStepEntity(line)
		if err != nil {
			return &ParseError{Line: lineNo, Record: raw, Field: fieldPath, Reason: err.Error(), Err: err}
		}

		if err := frame.Attach(step); err != nil {
			return p.modelError(lineNo, err)
		}
	}

	if err := state.root.Attach(frame); err != nil {
		return p.modelError(lineNo, err)
	}

	return populate(frame, lineNo, raw, rec)
}

func applyGlobal(state *parseState, lineNo int, raw string, rec record) error {
	file, ok := state.index[rec.file]
	if !ok {
		file = m.NewFileEntity(rec.file)
		state.index[rec.file] = file
		state.files = append(state.files, file)
	}

	return populate(file, lineNo, raw, rec)
}

func populate(entity m.CoverageEntity, lineNo int, raw string, rec record) error {
	sets := []struct {
		name  string
		lines []int
		add   func(int) error
	}{
		{fieldExecuted, rec.executed, entity.AddExecuted},
		{fieldNotExecuted, rec.notExecuted, entity.AddNotExecuted},
		{fieldMaybe, rec.maybe, entity.AddMaybe},
	}

	for _, set := range sets {
		for _, line := range set.lines {
			if err := set.add(line); err != nil {
				return &ParseError{Line: lineNo, Record: raw, Field: set.name, Reason: err.Error(), Err: err}
			}
		}
	}

	return nil
}

// modelError reports a broken ownership invariant. Every node is freshly built
// during the parse, so reaching this is a defect rather than bad input.
func (p *reportParser) modelError(lineNo int, err error) error {
	if errors.Is(err, m.ErrAlreadyAttached) {
		p.logger.Error().Int("line", lineNo).Err(err).Msg("trace tree invariant violated")
	}

	return fmt.Errorf("report line %d: internal model error: %w", lineNo, err)
}
