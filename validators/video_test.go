package validators_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"cliptrace/match-api/validators"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mp4Bytes = append([]byte{
	0x00, 0x00, 0x00, 0x1c, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm',
	0x00, 0x00, 0x02, 0x00, 'i', 's', 'o', 'm', 'i', 's', 'o', '2', 'm', 'p', '4', '1',
}, bytes.Repeat([]byte{0}, 64)...)

func fileHeader(t *testing.T, name, contentType string, payload []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="video"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["video"][0]
}

func setDefaults() {
	viper.Set("upload.max_size", int64(100<<20))
	viper.Set("upload.allowed_types", []string{"video/mp4", "video/mov", "video/avi", "video/quicktime"})
}

func TestVideoValidatorAcceptsRealVideo(t *testing.T) {
	setDefaults()

	code, f, err := validators.VideoValidator(fileHeader(t, "clip.mp4", "video/mp4", mp4Bytes))
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()
	assert.Zero(t, code)

	// File must come back rewound
	buf := make([]byte, 4)
	_, err = f.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x1c}, buf)
}

func TestVideoValidatorNilHeader(t *testing.T) {
	setDefaults()

	code, _, err := validators.VideoValidator(nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.ErrorIs(t, err, validators.ErrNoFile)
}

func TestVideoValidatorRejectsDisallowedType(t *testing.T) {
	setDefaults()

	code, _, err := validators.VideoValidator(fileHeader(t, "clip.mkv", "video/x-matroska", mp4Bytes))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.ErrorIs(t, err, validators.ErrFileTypeUnsupported)
}

func TestVideoValidatorRejectsSpoofedContent(t *testing.T) {
	setDefaults()

	code, _, err := validators.VideoValidator(fileHeader(t, "clip.mp4", "video/mp4", []byte("just some text pretending")))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.ErrorIs(t, err, validators.ErrFileTypeUnsupported)
}

func TestVideoValidatorRejectsOversizedFile(t *testing.T) {
	setDefaults()
	viper.Set("upload.max_size", int64(8))

	code, _, err := validators.VideoValidator(fileHeader(t, "clip.mp4", "video/mp4", mp4Bytes))
	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
	assert.ErrorIs(t, err, validators.ErrFileTooLarge)
}
