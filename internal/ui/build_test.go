package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNested(t *testing.T) {
	n, err := Build([]any{"div", map[string]string{"id": "x"},
		[]any{"span", map[string]string{}, "hi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "div", n.Tag)
	assert.Equal(t, "x", n.ID())
	require.Len(t, n.Children, 1)

	span := n.Children[0]
	assert.Equal(t, "span", span.Tag)
	assert.Equal(t, "hi", span.TextContent())
}

func TestBuildListEquivalentToBuild(t *testing.T) {
	attrs := map[string]string{"class": "row"}
	flat, err := BuildList("div", attrs, "a", "b")
	require.NoError(t, err)
	nested, err := Build([]any{"div", attrs, "a", "b"})
	require.NoError(t, err)

	assert.Equal(t, nested.Tag, flat.Tag)
	assert.Equal(t, nested.Attrs, flat.Attrs)
	assert.Equal(t, nested.TextContent(), flat.TextContent())
	assert.Len(t, flat.Children, 2)
}

func TestBuildAttributesOptional(t *testing.T) {
	n, err := Build([]any{"p", "text only"})
	require.NoError(t, err)
	assert.Nil(t, n.Attrs)
	assert.Equal(t, "text only", n.TextContent())
}

func TestBuildLeafText(t *testing.T) {
	n, err := Build("hello")
	require.NoError(t, err)
	assert.Equal(t, TextTag, n.Tag)
	assert.Equal(t, "hello", n.TextContent())
	assert.Empty(t, n.Children)
}

func TestBuildErrors(t *testing.T) {
	_, err := Build([]any{})
	assert.Error(t, err)

	_, err = Build([]any{42})
	assert.Error(t, err)

	_, err = Build(3.14)
	assert.Error(t, err)

	// A bad child fails the whole build.
	_, err = Build([]any{"div", []any{}})
	assert.Error(t, err)
}

func TestBuildIsPure(t *testing.T) {
	spec := []any{"div", map[string]string{"id": "x"}, "one"}
	a, err := Build(spec)
	require.NoError(t, err)
	b, err := Build(spec)
	require.NoError(t, err)

	a.Append(&Node{Tag: TextTag, Text: "two"})
	assert.Len(t, b.Children, 1, "second build must be independent of the first")
}

func TestFindAndRemoveAll(t *testing.T) {
	root, err := BuildList("div", map[string]string{"id": "root"},
		[]any{"label", map[string]string{},
			[]any{"input", map[string]string{"id": "toggleCube7"}},
			"Cube",
		},
	)
	require.NoError(t, err)

	input := root.Find("toggleCube7")
	require.NotNil(t, input)
	assert.Equal(t, "input", input.Tag)
	assert.Nil(t, root.Find("missing"))

	root.RemoveAll()
	assert.Empty(t, root.Children)
	assert.Nil(t, root.Find("toggleCube7"))
}
