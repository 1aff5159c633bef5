package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_Plain(t *testing.T) {
	text, err := ExtractText("resume.txt", []byte("Python and Docker"))
	require.NoError(t, err)
	assert.Equal(t, "Python and Docker", text)
}

func TestExtractText_HTML(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style></head>
		<body><h1>Jane Doe</h1><p>Kubernetes and Terraform</p>
		<script>console.log("noise")</script></body></html>`

	text, err := ExtractText("resume.html", []byte(html))
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Kubernetes and Terraform")
	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "color: red")
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	text, err := ExtractText("RESUME.TXT", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	for _, filename := range []string{"resume.png", "resume", "archive.zip"} {
		_, err := ExtractText(filename, []byte("data"))
		require.Error(t, err, filename)

		var unsupportedErr *UnsupportedTypeError
		assert.ErrorAs(t, err, &unsupportedErr, filename)
	}
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("not a pdf"))
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "resume.pdf", parseErr.Filename)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("not a docx"))
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
