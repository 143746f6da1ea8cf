package gen

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/seqgen/pkg/seqgen"
)

const template = "typedef double Example;\nExample ExSeq_Get(ExSeq s, int32_t i);\n" + seqgen.Sentinel + "\n"

func TestRun_StdinToStdout(t *testing.T) {
	var out bytes.Buffer
	opts := &Options{
		Mode:   "c",
		Stdin:  strings.NewReader(template),
		Stdout: &out,
	}

	require.NoError(t, Run(opts))
	assert.Contains(t, out.String(), "#define GENERATE_SEQ_BODY(type, seqType) \\\n")
	assert.Contains(t, out.String(), "    type seqType##_Get(seqType s, int32_t i);\n")
}

func TestRun_InvalidMode(t *testing.T) {
	var out bytes.Buffer
	opts := &Options{
		Mode:   "x",
		Stdin:  strings.NewReader(template),
		Stdout: &out,
	}

	err := Run(opts)
	var usageErr *seqgen.UsageError
	require.True(t, errors.As(err, &usageErr))
	assert.Empty(t, out.String())
}

func TestRun_MissingSentinel(t *testing.T) {
	var out bytes.Buffer
	opts := &Options{
		Mode:   "h",
		Stdin:  strings.NewReader("int x;\n"),
		Stdout: &out,
	}

	err := Run(opts)
	var malformed *seqgen.TemplateMalformedError
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, err.Error(), "<stdin>: ")
	assert.Contains(t, err.Error(), "--lenient")
	assert.Empty(t, out.String())

	opts.Stdin = strings.NewReader("int x;\n")
	opts.Lenient = true
	require.NoError(t, Run(opts))
	assert.True(t, strings.HasSuffix(out.String(), seqgen.HeaderGuardClose+"\n"))
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "seq_base.h")
	out := filepath.Join(dir, "src", "base_seq.h")
	require.NoError(t, os.WriteFile(in, []byte(template), 0644))

	require.NoError(t, Run(&Options{Mode: "h", In: in, Out: out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), template))
	assert.Contains(t, string(data), "#define GENERATE_SEQ_HEADER(type, seqType) \\\n")

	// The template is left untouched
	src, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, template, string(src))
}

func TestRun_RejectsSamePath(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "seq_base.h")
	require.NoError(t, os.WriteFile(in, []byte(template), 0644))

	err := Run(&Options{Mode: "h", In: in, Out: filepath.Join(dir, ".", "seq_base.h")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would be overwritten")

	data, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, template, string(data))
}

func TestRun_RejectsLinkedSameFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "seq_base.h")
	link := filepath.Join(dir, "link.h")
	require.NoError(t, os.WriteFile(in, []byte(template), 0644))
	require.NoError(t, os.Symlink(in, link))

	err := Run(&Options{Mode: "h", In: in, Out: link})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would be overwritten")
}

func TestRun_MissingInputFile(t *testing.T) {
	err := Run(&Options{Mode: "c", In: filepath.Join(t.TempDir(), "missing.c")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read template")
}

func TestRun_MissingSentinelNamesFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "seq_base.c")
	require.NoError(t, os.WriteFile(in, []byte("ExSeq ExSeq_Empty() {\n}\n"), 0644))

	err := Run(&Options{Mode: "c", In: in, Out: filepath.Join(dir, "out.c")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), in+": template malformed")
	assert.Contains(t, err.Error(), "pass --lenient")

	_, statErr := os.Stat(filepath.Join(dir, "out.c"))
	assert.True(t, os.IsNotExist(statErr))
}
