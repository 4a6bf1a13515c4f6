package handlers

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"photo-portfolio/internal/models"
	"photo-portfolio/internal/storage"
	"photo-portfolio/internal/testutil"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type formField struct {
	name  string
	value string
}

type formFile struct {
	field    string
	filename string
	data     []byte
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newUploadContext(t *testing.T, fields []formField, files []formFile) *testutil.TestContext {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range fields {
		require.NoError(t, writer.WriteField(f.name, f.value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	tc := testutil.NewTestContext(t, http.MethodPost, "/api/admin/photos", &body)
	tc.Request.Header.Set("Content-Type", writer.FormDataContentType())
	return tc
}

func uploadFields() []formField {
	return []formField{
		{name: "title", value: "Sunset over the Bay"},
		{name: "date", value: "2024-06-01"},
		{name: "camera", value: "Z6 II"},
		{name: "lens", value: " NIKKOR Z 24-70mm f/4 S "},
		{name: "aperture", value: "f/5.6"},
		{name: "exposure", value: "1/500"},
		{name: "focalLength", value: "35mm"},
		{name: "iso", value: "100"},
		{name: "make", value: "NIKON"},
		{name: "tags", value: "sea, sunset,,"},
	}
}

func TestUploadHandler_Success(t *testing.T) {
	original := encodePNG(t, 1600, 900)
	tc := newUploadContext(t, uploadFields(), []formFile{{field: "file", filename: "DSC_0042.PNG", data: original}})
	defer tc.Finish()

	tc.MockStorage.EXPECT().SlugExists(gomock.Any(), "sunset-over-the-bay").Return(false, nil)
	tc.MockBlob.EXPECT().
		Put(gomock.Any(), "sunset-over-the-bay.png", gomock.Any(), int64(len(original)), "image/png").
		DoAndReturn(func(_ context.Context, _ string, body io.Reader, _ int64, _ string) error {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, original, data)
			return nil
		})
	tc.MockBlob.EXPECT().
		Put(gomock.Any(), "sunset-over-the-bay-thumb.jpg", gomock.Any(), gomock.Any(), "image/jpeg").
		DoAndReturn(func(_ context.Context, _ string, body io.Reader, _ int64, _ string) error {
			thumb, _, err := image.Decode(body)
			require.NoError(t, err)
			assert.Equal(t, 800, thumb.Bounds().Dx())
			assert.Equal(t, 450, thumb.Bounds().Dy())
			return nil
		})
	tc.MockStorage.EXPECT().
		CreatePhoto(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Photo) (*models.Photo, error) {
			assert.Equal(t, "sunset-over-the-bay", p.Slug)
			assert.Equal(t, "Sunset over the Bay", p.Title)
			assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), p.Date)
			assert.Equal(t, "NIKKOR Z 24-70mm f/4 S", p.Lens)
			assert.Equal(t, []string{"sea", "sunset"}, p.Tags)
			assert.Equal(t, models.PhotoTypeDefault, p.Type)
			created := *p
			created.ID = 1
			return &created, nil
		})

	tc.MockBlob.EXPECT().URL(gomock.Any()).Return("https://media.example.com/object").AnyTimes()

	tc.CallHandler(POSTPhotoUploadHandler)

	tc.AssertStatus(t, http.StatusCreated)
	var response PhotoResponse
	tc.DecodeJSONResponse(t, &response)
	assert.Equal(t, "sunset-over-the-bay", response.Photo.Slug)
	assert.Equal(t, "https://media.example.com/sunset-over-the-bay.png", response.Photo.Image)
	assert.Equal(t, "https://media.example.com/sunset-over-the-bay-thumb.jpg", response.Photo.Thumb)
	assert.Equal(t, "2024-06-01T00:00:00Z", response.Photo.Date)
	tc.AssertLogContains(t, slog.LevelInfo, "photo uploaded")
}

func TestUploadHandler_UsesUploadedThumbnail(t *testing.T) {
	thumb := []byte("client generated thumbnail")
	tc := newUploadContext(t, uploadFields(), []formFile{
		{field: "file", filename: "bay", data: encodePNG(t, 20, 10)},
		{field: "thumbnail", filename: "thumb.jpg", data: thumb},
	})
	defer tc.Finish()

	tc.MockStorage.EXPECT().SlugExists(gomock.Any(), "sunset-over-the-bay").Return(false, nil)
	tc.MockBlob.EXPECT().Put(gomock.Any(), "sunset-over-the-bay.jpg", gomock.Any(), gomock.Any(), "image/png").Return(nil)
	tc.MockBlob.EXPECT().
		Put(gomock.Any(), "sunset-over-the-bay-thumb.jpg", gomock.Any(), int64(len(thumb)), "image/jpeg").
		Return(nil)
	tc.MockStorage.EXPECT().CreatePhoto(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Photo) (*models.Photo, error) { return p, nil })

	tc.MockBlob.EXPECT().URL(gomock.Any()).Return("https://media.example.com/object").AnyTimes()

	tc.CallHandler(POSTPhotoUploadHandler)

	tc.AssertStatus(t, http.StatusCreated)
}

func TestUploadHandler_UndecodableImageFallsBackToOriginal(t *testing.T) {
	original := []byte("\x00\x01\x02 raw sensor dump")
	tc := newUploadContext(t, uploadFields(), []formFile{{field: "file", filename: "bay.raw", data: original}})
	defer tc.Finish()

	var storedType string
	tc.MockStorage.EXPECT().SlugExists(gomock.Any(), "sunset-over-the-bay").Return(false, nil)
	tc.MockBlob.EXPECT().Put(gomock.Any(), "sunset-over-the-bay.raw", gomock.Any(), int64(len(original)), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ io.Reader, _ int64, contentType string) error {
			storedType = contentType
			return nil
		})
	tc.MockBlob.EXPECT().Put(gomock.Any(), "sunset-over-the-bay-thumb.jpg", gomock.Any(), int64(len(original)), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body io.Reader, _ int64, contentType string) error {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, original, data)
			assert.Equal(t, storedType, contentType)
			return nil
		})
	tc.MockStorage.EXPECT().CreatePhoto(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Photo) (*models.Photo, error) { return p, nil })

	tc.MockBlob.EXPECT().URL(gomock.Any()).Return("https://media.example.com/object").AnyTimes()

	tc.CallHandler(POSTPhotoUploadHandler)

	tc.AssertStatus(t, http.StatusCreated)
	tc.AssertLogContains(t, slog.LevelWarn, "could not generate thumbnail, using original image")
}

func TestUploadHandler_MissingFields(t *testing.T) {
	img := encodePNG(t, 4, 4)

	tests := []struct {
		name   string
		fields []formField
		files  []formFile
	}{
		{
			name:   "missing file",
			fields: []formField{{name: "title", value: "A"}, {name: "date", value: "2024-01-01"}},
		},
		{
			name:   "empty file",
			fields: []formField{{name: "title", value: "A"}, {name: "date", value: "2024-01-01"}},
			files:  []formFile{{field: "file", filename: "a.jpg", data: []byte{}}},
		},
		{
			name:   "missing title",
			fields: []formField{{name: "date", value: "2024-01-01"}},
			files:  []formFile{{field: "file", filename: "a.png", data: img}},
		},
		{
			name:   "blank title",
			fields: []formField{{name: "title", value: "   "}, {name: "date", value: "2024-01-01"}},
			files:  []formFile{{field: "file", filename: "a.png", data: img}},
		},
		{
			name:   "missing date",
			fields: []formField{{name: "title", value: "A"}},
			files:  []formFile{{field: "file", filename: "a.png", data: img}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newUploadContext(t, tt.fields, tt.files)
			defer tc.Finish()

			tc.CallHandler(POSTPhotoUploadHandler)

			tc.AssertStatus(t, http.StatusBadRequest)
			tc.AssertJSONField(t, "error", ErrMsgUploadFieldsMissing)
		})
	}
}

func TestUploadHandler_NotMultipart(t *testing.T) {
	tc := testutil.NewTestContext(t, http.MethodPost, "/api/admin/photos", strings.NewReader(`{"title":"A"}`))
	defer tc.Finish()
	tc.Request.Header.Set("Content-Type", "application/json")

	tc.CallHandler(POSTPhotoUploadHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", ErrMsgUploadFieldsMissing)
}

func TestUploadHandler_InvalidInput(t *testing.T) {
	img := encodePNG(t, 4, 4)

	tests := []struct {
		name     string
		title    string
		date     string
		expected string
	}{
		{name: "unparseable date", title: "Harbour", date: "last tuesday", expected: ErrMsgInvalidDate},
		{name: "title without letters or digits", title: "!!! ???", date: "2024-01-01", expected: ErrMsgInvalidTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newUploadContext(t,
				[]formField{{name: "title", value: tt.title}, {name: "date", value: tt.date}},
				[]formFile{{field: "file", filename: "a.png", data: img}})
			defer tc.Finish()

			tc.CallHandler(POSTPhotoUploadHandler)

			tc.AssertStatus(t, http.StatusBadRequest)
			tc.AssertJSONField(t, "error", tt.expected)
		})
	}
}

func TestUploadHandler_DuplicateTitle(t *testing.T) {
	tc := newUploadContext(t, uploadFields(), []formFile{{field: "file", filename: "a.png", data: encodePNG(t, 4, 4)}})
	defer tc.Finish()

	tc.MockStorage.EXPECT().SlugExists(gomock.Any(), "sunset-over-the-bay").Return(true, nil)

	tc.CallHandler(POSTPhotoUploadHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", ErrMsgDuplicateTitle)
}

func TestUploadHandler_InsertFailureRemovesObjects(t *testing.T) {
	tests := []struct {
		name           string
		insertErr      error
		expectedStatus int
		expectedError  string
	}{
		{name: "slug race", insertErr: storage.ErrSlugExists, expectedStatus: http.StatusBadRequest, expectedError: ErrMsgDuplicateTitle},
		{name: "database error", insertErr: errors.New("disk full"), expectedStatus: http.StatusInternalServerError, expectedError: ErrMsgUploadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newUploadContext(t, uploadFields(), []formFile{{field: "file", filename: "a.png", data: encodePNG(t, 4, 4)}})
			defer tc.Finish()

			tc.MockStorage.EXPECT().SlugExists(gomock.Any(), "sunset-over-the-bay").Return(false, nil)
			tc.MockBlob.EXPECT().Put(gomock.Any(), "sunset-over-the-bay.png", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			tc.MockBlob.EXPECT().Put(gomock.Any(), "sunset-over-the-bay-thumb.jpg", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			tc.MockStorage.EXPECT().CreatePhoto(gomock.Any(), gomock.Any()).Return(nil, tt.insertErr)
			tc.MockBlob.EXPECT().Delete(gomock.Any(), "sunset-over-the-bay.png").Return(nil)
			tc.MockBlob.EXPECT().Delete(gomock.Any(), "sunset-over-the-bay-thumb.jpg").Return(nil)

			tc.CallHandler(POSTPhotoUploadHandler)

			tc.AssertStatus(t, tt.expectedStatus)
			tc.AssertJSONField(t, "error", tt.expectedError)
		})
	}
}

func TestUploadHandler_ThumbnailStoreFailureRemovesOriginal(t *testing.T) {
	tc := newUploadContext(t, uploadFields(), []formFile{{field: "file", filename: "a.png", data: encodePNG(t, 4, 4)}})
	defer tc.Finish()

	tc.MockStorage.EXPECT().SlugExists(gomock.Any(), "sunset-over-the-bay").Return(false, nil)
	tc.MockBlob.EXPECT().Put(gomock.Any(), "sunset-over-the-bay.png", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	tc.MockBlob.EXPECT().Put(gomock.Any(), "sunset-over-the-bay-thumb.jpg", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("bucket unavailable"))
	tc.MockBlob.EXPECT().Delete(gomock.Any(), "sunset-over-the-bay.png").Return(nil)

	tc.CallHandler(POSTPhotoUploadHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONField(t, "error", ErrMsgUploadFailed)
	tc.AssertLogContains(t, slog.LevelError, "failed to store thumbnail")
}

func TestUploadHandler_TooLarge(t *testing.T) {
	tc := newUploadContext(t, uploadFields(), []formFile{{field: "file", filename: "a.png", data: encodePNG(t, 64, 64)}})
	defer tc.Finish()
	tc.AppContext.Config.Server.MaxUploadBytes = 16

	tc.CallHandler(POSTPhotoUploadHandler)

	tc.AssertStatus(t, http.StatusRequestEntityTooLarge)
	tc.AssertJSONField(t, "error", ErrMsgUploadTooLarge)
}

func TestUploadHandler_NoObjectStore(t *testing.T) {
	tc := newUploadContext(t, uploadFields(), []formFile{{field: "file", filename: "a.png", data: encodePNG(t, 4, 4)}})
	defer tc.Finish()
	tc.AppContext.Blob = nil

	tc.CallHandler(POSTPhotoUploadHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONField(t, "error", ErrMsgServerConfiguration)
}

func newUpdateContext(t *testing.T, slug, body string) *testutil.TestContext {
	t.Helper()
	tc := testutil.NewTestContext(t, http.MethodPut, "/api/admin/photos/"+slug, strings.NewReader(body))
	tc.Request.Header.Set("Content-Type", "application/json")
	tc.SetURLParam("slug", slug)
	return tc
}

func TestUpdateHandler_Success(t *testing.T) {
	tc := newUpdateContext(t, "fog-on-the-ridge", `{"title":" Fog, Again ","date":"2024-04-01T10:00:00Z","lens":"","tags":["mist"]}`)
	defer tc.Finish()

	tc.MockStorage.EXPECT().
		UpdatePhoto(gomock.Any(), "fog-on-the-ridge", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update models.PhotoUpdate) (*models.Photo, error) {
			require.NotNil(t, update.Title)
			assert.Equal(t, "Fog, Again", *update.Title)
			require.NotNil(t, update.Date)
			assert.Equal(t, time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC), *update.Date)
			require.NotNil(t, update.Lens)
			assert.Empty(t, *update.Lens)
			assert.Nil(t, update.Camera)
			assert.Equal(t, []string{"mist"}, update.Tags)

			photo := samplePhoto()
			update.Apply(photo)
			return photo, nil
		})

	tc.CallHandler(PUTPhotoHandler)

	tc.AssertStatus(t, http.StatusOK)
	var response PhotoResponse
	tc.DecodeJSONResponse(t, &response)
	assert.Equal(t, "fog-on-the-ridge", response.Photo.Slug)
	assert.Equal(t, "Fog, Again", response.Photo.Title)
	assert.Equal(t, "X-T5", response.Photo.Camera)
	assert.Empty(t, response.Photo.Lens)
}

func TestUpdateHandler_BlankTypeResetsToDefault(t *testing.T) {
	tc := newUpdateContext(t, "fog-on-the-ridge", `{"type":"  "}`)
	defer tc.Finish()

	tc.MockStorage.EXPECT().
		UpdatePhoto(gomock.Any(), "fog-on-the-ridge", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update models.PhotoUpdate) (*models.Photo, error) {
			require.NotNil(t, update.Type)
			assert.Equal(t, models.PhotoTypeDefault, *update.Type)
			return samplePhoto(), nil
		})

	tc.CallHandler(PUTPhotoHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestUpdateHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "malformed json", body: `{"title":`, expected: ErrMsgInvalidRequest},
		{name: "unknown field", body: `{"slug":"renamed"}`, expected: ErrMsgInvalidRequest},
		{name: "blank title", body: `{"title":"  "}`, expected: ErrMsgInvalidTitle},
		{name: "bad date", body: `{"date":"someday"}`, expected: ErrMsgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newUpdateContext(t, "fog-on-the-ridge", tt.body)
			defer tc.Finish()

			tc.CallHandler(PUTPhotoHandler)

			tc.AssertStatus(t, http.StatusBadRequest)
			tc.AssertJSONField(t, "error", tt.expected)
		})
	}
}

func TestUpdateHandler_NotFound(t *testing.T) {
	tc := newUpdateContext(t, "missing", `{"camera":"X100V"}`)
	defer tc.Finish()

	tc.MockStorage.EXPECT().UpdatePhoto(gomock.Any(), "missing", gomock.Any()).Return(nil, storage.ErrPhotoNotFound)

	tc.CallHandler(PUTPhotoHandler)

	tc.AssertStatus(t, http.StatusNotFound)
	tc.AssertJSONField(t, "error", ErrMsgPhotoNotFound)
}

func TestDeleteHandler(t *testing.T) {
	t.Run("removes record then objects", func(t *testing.T) {
		tc := testutil.NewTestContext(t, http.MethodDelete, "/api/admin/photos/fog-on-the-ridge", nil)
		defer tc.Finish()
		tc.SetURLParam("slug", "fog-on-the-ridge")

		gomock.InOrder(
			tc.MockStorage.EXPECT().DeletePhoto(gomock.Any(), "fog-on-the-ridge").Return(samplePhoto(), nil),
			tc.MockBlob.EXPECT().Delete(gomock.Any(), "fog-on-the-ridge.jpg").Return(nil),
			tc.MockBlob.EXPECT().Delete(gomock.Any(), "fog-on-the-ridge-thumb.jpg").Return(nil),
		)

		tc.CallHandler(DELETEPhotoHandler)

		tc.AssertStatus(t, http.StatusOK)
		tc.AssertJSONField(t, "status", "OK")
	})

	t.Run("object removal failures are logged", func(t *testing.T) {
		tc := testutil.NewTestContext(t, http.MethodDelete, "/api/admin/photos/fog-on-the-ridge", nil)
		defer tc.Finish()
		tc.SetURLParam("slug", "fog-on-the-ridge")

		tc.MockStorage.EXPECT().DeletePhoto(gomock.Any(), "fog-on-the-ridge").Return(samplePhoto(), nil)
		tc.MockBlob.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("access denied")).Times(2)

		tc.CallHandler(DELETEPhotoHandler)

		tc.AssertStatus(t, http.StatusOK)
		tc.AssertLogCount(t, slog.LevelError, 2)
	})

	t.Run("not found", func(t *testing.T) {
		tc := testutil.NewTestContext(t, http.MethodDelete, "/api/admin/photos/missing", nil)
		defer tc.Finish()
		tc.SetURLParam("slug", "missing")

		tc.MockStorage.EXPECT().DeletePhoto(gomock.Any(), "missing").Return(nil, storage.ErrPhotoNotFound)

		tc.CallHandler(DELETEPhotoHandler)

		tc.AssertStatus(t, http.StatusNotFound)
		tc.AssertJSONField(t, "error", ErrMsgPhotoNotFound)
	})
}
