// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestWithGZipRequest(t *testing.T) {
	tests := []struct {
		name            string
		contentEncoding string
		body            []byte
		wantStatus      int
		wantBody        string
	}{
		{
			name:            "gzip body is decompressed",
			contentEncoding: "gzip",
			body:            gzipBytes(t, `{"title":"mail"}`),
			wantStatus:      http.StatusOK,
			wantBody:        `{"title":"mail"}`,
		},
		{
			name:       "plain body passes through",
			body:       []byte(`{"title":"mail"}`),
			wantStatus: http.StatusOK,
			wantBody:   `{"title":"mail"}`,
		},
		{
			name:            "corrupt gzip is rejected",
			contentEncoding: "gzip",
			body:            []byte("not gzip"),
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody, gotEncoding string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				raw, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				gotBody = string(raw)
				gotEncoding = r.Header.Get("Content-Encoding")
			})

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.body))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rec := httptest.NewRecorder()

			withGZipRequest(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, gotBody)
				assert.Empty(t, gotEncoding)
			}
		})
	}
}

func TestRouter_CompressesResponses(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/credentials/", nil)
	req.Header.Set("Authorization", bearer(t, 1))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
}
