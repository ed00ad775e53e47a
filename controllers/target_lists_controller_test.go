package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-tracker/models"
)

func multipartUpload(t *testing.T, router http.Handler, label, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("label", label))
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/target-lists/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadTargetListRoundTrip(t *testing.T) {
	router, db, store := newTestRouter(t)

	rec := multipartUpload(t, router, "Q3 HCP List", "hcp.csv", "npi_id\n123")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/target-lists", rec.Header().Get("Location"))

	var tl models.TargetList
	require.NoError(t, db.First(&tl).Error)
	assert.Equal(t, "Q3 HCP List", tl.Label)
	assert.Equal(t, "hcp.csv", tl.OriginalFilename)
	assert.Equal(t, []byte("npi_id\n123"), store.objects[tl.S3Key])

	rec = get(t, router, "/target-lists/1/download")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), tl.S3Key)
}

func TestUploadTargetListWithoutFile(t *testing.T) {
	router, _, _ := newTestRouter(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("label", "No file"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/target-lists/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadTargetListMissing(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := get(t, router, "/target-lists/99/download")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
