package domain

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tracecov/internal/model"
)

func newTestParser() Parser {
	return NewParser(zerolog.Nop())
}

func stepLines(frame *m.FrameEntity) []int {
	lines := make([]int, 0, len(frame.Steps()))
	for _, s := range frame.Steps() {
		lines = append(lines, s.Line())
	}

	return lines
}

func TestParser_Parse_LocalAndGlobal(t *testing.T) {
	result, err := newTestParser().Parse("f1;a.c;local;1,2;3;;1,2,3\nf2;b.c;global;10;11,12;\n")
	require.NoError(t, err)

	frames := result.Root().Frames()
	require.Len(t, frames, 1)

	f1 := frames[0]
	assert.Equal(t, "f1", f1.FunctionName())
	assert.Equal(t, "a.c", f1.File())
	assert.Equal(t, []int{1, 2, 3}, stepLines(f1))
	assert.Equal(t, []int{1, 2}, f1.Executed().Lines())
	assert.Equal(t, []int{3}, f1.NotExecuted().Lines())
	assert.Empty(t, f1.Maybe().Lines())
	assert.Same(t, result.Root(), f1.Root())

	files := result.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "b.c", files[0].File())
	assert.Equal(t, []int{10}, files[0].Executed().Lines())
	assert.Equal(t, []int{11, 12}, files[0].NotExecuted().Lines())
	assert.Empty(t, files[0].Maybe().Lines())
}

func TestParser_Parse_FramesKeepReportOrder(t *testing.T) {
	report := "" +
		"inner;x.c;local;;;;5,4\n" +
		"\n" +
		"   \n" +
		"middle;y.c;local;;;;\n" +
		"outer;x.c;local;;;;9\n"

	result, err := newTestParser().Parse(report)
	require.NoError(t, err)

	var names []string
	for _, f := range result.Root().Frames() {
		names = append(names, f.FunctionName())
	}

	assert.Equal(t, []string{"inner", "middle", "outer"}, names)
	assert.Equal(t, []int{5, 4}, stepLines(result.Root().Frames()[0]))
	assert.Empty(t, result.Root().Frames()[1].Steps())
	assert.Empty(t, result.Files())
}

func TestParser_Parse_PathAllowsRepeatedLines(t *testing.T) {
	result, err := newTestParser().Parse("loop;l.c;local;3,4;;;4,3,4,3\n")
	require.NoError(t, err)

	assert.Equal(t, []int{4, 3, 4, 3}, stepLines(result.Root().Frames()[0]))
}

func TestParser_Parse_GlobalRecordsMerge(t *testing.T) {
	report := "" +
		"f;c.c;global;1,2;5;7;99\n" +
		"g;d.c;global;1;;;\n" +
		"h;c.c;global;2,3;5,6;;\n"

	result, err := newTestParser().Parse(report)
	require.NoError(t, err)

	files := result.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "c.c", files[0].File())
	assert.Equal(t, "d.c", files[1].File())

	c, ok := result.File("c.c")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, c.Executed().Lines())
	assert.Equal(t, []int{5, 6}, c.NotExecuted().Lines())
	assert.Equal(t, []int{7}, c.Maybe().Lines())
	assert.Empty(t, result.Root().Frames())
}

func TestParser_Parse_TrimsFieldsAndCRLF(t *testing.T) {
	result, err := newTestParser().Parse("  f ; a.c ; local ; 1 , 2 ; ; ; 2 \r\n")
	require.NoError(t, err)

	frame := result.Root().Frames()[0]
	assert.Equal(t, "f", frame.FunctionName())
	assert.Equal(t, "a.c", frame.File())
	assert.Equal(t, []int{1, 2}, frame.Executed().Lines())
	assert.Equal(t, []int{2}, stepLines(frame))
}

func TestParser_Parse_Empty(t *testing.T) {
	result, err := newTestParser().Parse("\n\n")
	require.NoError(t, err)
	assert.Empty(t, result.Root().Frames())
	assert.Empty(t, result.Files())
}

func TestParser_Parse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		report  string
		wantErr error
		line    int
		field   string
	}{
		{"six fields local", "f;a.c;local;1;2;3\n", ErrMalformedRecord, 1, ""},
		{"eight fields", "f;a.c;local;1;2;3;4;5\n", ErrMalformedRecord, 1, ""},
		{"eight fields global", "f;a.c;global;1;2;3;4;5\n", ErrMalformedRecord, 1, ""},
		{"too few fields", "f;a.c;global\n", ErrMalformedRecord, 1, ""},
		{"empty function", ";a.c;local;1;;;1\n", ErrMalformedRecord, 1, fieldFunction},
		{"wrong case scope", "f;a.c;Local;1;;;1\n", ErrUnknownScope, 1, fieldScope},
		{"unknown scope", "f;a.c;module;1;;;1\n", ErrUnknownScope, 1, fieldScope},
		{"not an integer", "f;a.c;local;1,abc;;;1\n", ErrInvalidNumber, 1, fieldExecuted},
		{"empty token", "f;a.c;global;;1,,2;;\n", ErrInvalidNumber, 1, fieldNotExecuted},
		{"negative number", "f;a.c;global;;;-4;\n", ErrInvalidNumber, 1, fieldMaybe},
		{"bad path", "f;a.c;local;;;;x\n", ErrInvalidNumber, 1, fieldPath},
		{"bad global path", "f;a.c;global;;;;abc\n", ErrInvalidNumber, 1, fieldPath},
		{"negative global path", "f;a.c;global;1;;;-3\n", ErrInvalidNumber, 1, fieldPath},
		{"zero coverage line", "f;a.c;global;0;;;\n", m.ErrInvalidLine, 1, fieldExecuted},
		{"zero path line", "f;a.c;local;;;;3,0\n", m.ErrInvalidLine, 1, fieldPath},
		{"error on later line", "f;a.c;local;1;;;1\n\ng;b.c;nope;;;;\n", ErrUnknownScope, 3, fieldScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestParser().Parse(tt.report)
			require.Error(t, err)
			require.Nil(t, result)
			require.ErrorIs(t, err, tt.wantErr)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.field, pe.Field)
			assert.NotEmpty(t, pe.Record)
			assert.Contains(t, err.Error(), pe.Record)
		})
	}
}
