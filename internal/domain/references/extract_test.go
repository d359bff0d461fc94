package references

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pubID = "pub-1"

func TestExtractPlainTextParagraph(t *testing.T) {
	refs := Extract(pubID, "<p>Reyna, V.F. and Brainerd, C.J., 1995. Fuzzy-trace theory: An interim synthesis.</p>")

	require.Len(t, refs, 1)
	assert.Equal(t, TypeText, refs[0].Type)
	assert.Nil(t, refs[0].Location)
	assert.Equal(t, pubID, refs[0].PublicationID)
	assert.NotEmpty(t, refs[0].ID)
}

func TestExtractURLParagraph(t *testing.T) {
	refs := Extract(pubID, "<p>Reyna, V.F. A scientific theory of gist. https://www.testrefurl1234.com</p>")

	require.Len(t, refs, 1)
	assert.Equal(t, TypeURL, refs[0].Type)
	require.NotNil(t, refs[0].Location)
	assert.Equal(t, "https://www.testrefurl1234.com", *refs[0].Location)
}

func TestExtractDOIParagraph(t *testing.T) {
	refs := Extract(pubID, "<p>Broniatowski, D. and Reyna, V.F. https://doi.org/10.1037/dec0000142</p>")

	require.Len(t, refs, 1)
	assert.Equal(t, TypeDOI, refs[0].Type)
	require.NotNil(t, refs[0].Location)
	assert.Equal(t, "https://doi.org/10.1037/dec0000142", *refs[0].Location)
}

func TestExtractLastURLWins(t *testing.T) {
	refs := Extract(pubID, "<p>See http://first.example.com and also http://second.example.com</p>")

	require.Len(t, refs, 1)
	assert.Equal(t, TypeURL, refs[0].Type)
	require.NotNil(t, refs[0].Location)
	assert.Equal(t, "http://second.example.com", *refs[0].Location)
}

func TestExtractDOIPreferredOverLaterURL(t *testing.T) {
	refs := Extract(pubID, "<p>Preprint at https://doi.org/10.1101/2020.01.01 mirrored at https://mirror.example.com/paper</p>")

	require.Len(t, refs, 1)
	assert.Equal(t, TypeDOI, refs[0].Type)
	require.NotNil(t, refs[0].Location)
	assert.Equal(t, "https://doi.org/10.1101/2020.01.01", *refs[0].Location)
}

func TestExtractSkipsEmptyParagraphs(t *testing.T) {
	refs := Extract(pubID, "<p>  </p><p></p><p>A real reference.</p>")

	require.Len(t, refs, 1)
	assert.Equal(t, TypeText, refs[0].Type)
}

func TestExtractMultipleParagraphs(t *testing.T) {
	content := "<p>Plain citation with no link.</p>" +
		"<p>Online source at https://www.testrefurl1234.com</p>" +
		"<p>Archived record https://doi.org/10.5555/12345678</p>"

	refs := Extract(pubID, content)

	require.Len(t, refs, 3)
	assert.Equal(t, TypeText, refs[0].Type)
	assert.Equal(t, TypeURL, refs[1].Type)
	assert.Equal(t, TypeDOI, refs[2].Type)
}

func TestExtractNoParagraphs(t *testing.T) {
	assert.Nil(t, Extract(pubID, "just some text without markup"))
	assert.Nil(t, Extract(pubID, ""))
}

func TestExtractKeepsParagraphMarkupInText(t *testing.T) {
	refs := Extract(pubID, "<p>Styled <strong>reference</strong> text.</p>")

	require.Len(t, refs, 1)
	assert.Equal(t, "<p>Styled <strong>reference</strong> text.</p>", refs[0].Text)
}
