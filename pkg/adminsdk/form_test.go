package adminsdk

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormEncode(t *testing.T) {
	t.Parallel()

	form := NewForm().
		Set("name", "Rooftop Lounge").
		Set("city", "Melbourne").
		AddFile("image", "venue.png", strings.NewReader("png-bytes"))

	body, contentType, err := form.encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(body, params["boundary"])

	fields := map[string]string{}
	var fileName, fileContent string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		data, err := io.ReadAll(part)
		require.NoError(t, err)

		if part.FileName() != "" {
			fileName = part.FileName()
			fileContent = string(data)
			continue
		}
		fields[part.FormName()] = string(data)
	}

	require.Equal(t, map[string]string{
		"name": "Rooftop Lounge",
		"city": "Melbourne",
	}, fields)
	require.Equal(t, "venue.png", fileName)
	require.Equal(t, "png-bytes", fileContent)
}
