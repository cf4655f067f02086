package netx

import (
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_Encode(t *testing.T) {
	var f Form
	f.Field("language", "en").Field("format", "audio").File("audio_file", "intro.mp3", []byte("ID3"))

	body, contentType, err := f.Encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(body, params["boundary"])
	form, err := r.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	assert.Equal(t, []string{"en"}, form.Value["language"])
	assert.Equal(t, []string{"audio"}, form.Value["format"])

	require.Len(t, form.File["audio_file"], 1)
	fh := form.File["audio_file"][0]
	assert.Equal(t, "intro.mp3", fh.Filename)

	file, err := fh.Open()
	require.NoError(t, err)
	defer file.Close()
	data, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3"), data)
}

func TestForm_EmptyEncodesValidBody(t *testing.T) {
	var f Form
	body, contentType, err := f.Encode()
	require.NoError(t, err)
	assert.Contains(t, contentType, "boundary=")
	assert.NotZero(t, body.Len())
}
