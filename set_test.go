package templater_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/templater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const setYAML = `
short: "%(id)"
long: "[%(id)] %(title) 100%%"
`

func TestLoadSet(t *testing.T) {
	t.Parallel()
	set, err := templater.LoadSet(strings.NewReader(setYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"long", "short"}, set.Names())

	long, err := set.Lookup("long")
	require.NoError(t, err)
	out, err := lineRegistry().RenderTemplate(book{ID: 4, Title: "Emma"}, long)
	require.NoError(t, err)
	assert.Equal(t, "[4] Emma 100%", out)
}

func TestLoadSetEmpty(t *testing.T) {
	t.Parallel()
	set, err := templater.LoadSet(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, set.Names())
}

func TestLoadSetParseError(t *testing.T) {
	t.Parallel()
	_, err := templater.LoadSet(strings.NewReader(`bad: "%(id"`))
	require.ErrorIs(t, err, templater.ErrUnexpectedEnd)
	var endErr *templater.UnexpectedEndError
	require.ErrorAs(t, err, &endErr)
	assert.Equal(t, "%(id", endErr.Template)

	_, err = templater.LoadSet(strings.NewReader(`bad: "%x"`))
	require.ErrorIs(t, err, templater.ErrUnexpectedCharacter)
}

func TestLoadSetNonScalar(t *testing.T) {
	t.Parallel()
	_, err := templater.LoadSet(strings.NewReader("bad: [a, b]\n"))
	assert.ErrorContains(t, err, "template must be a string")
}

func TestLoadSetInvalidYAML(t *testing.T) {
	t.Parallel()
	_, err := templater.LoadSet(strings.NewReader("a: b: c"))
	assert.Error(t, err)
}

func TestSetLookupUnknown(t *testing.T) {
	t.Parallel()
	set := templater.Set{"a": templater.MustParse("%(a)")}
	_, err := set.Lookup("b")
	require.ErrorIs(t, err, templater.ErrUnknownTemplate)
	assert.Equal(t, `unknown template: "b"`, err.Error())
}

func TestWriteSetRoundTrip(t *testing.T) {
	t.Parallel()
	set := templater.Set{
		"short": templater.MustParse("%(id)"),
		"long":  templater.MustParse("[%(id)] %(所有作者) 50%%"),
		"plain": templater.MustParse("no placeholders"),
		"mark":  templater.MustParse("50%\u0301"),
		"mixed": templater.MustParse("a%\u0301 %%%(x)"),
	}
	var buf bytes.Buffer
	require.NoError(t, templater.WriteSet(&buf, set))

	again, err := templater.LoadSet(&buf)
	require.NoError(t, err)
	assert.Equal(t, set, again)
}
