// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "created with body",
			method: http.MethodPost,
			target: "/api/credentials/",
			status: http.StatusCreated,
			body:   `{"id":"x"}`,
			wantContains: []string{
				`"method":"POST"`, `"uri":"/api/credentials/"`, `"status":201`, `"size":10`,
			},
		},
		{
			name:         "no content",
			method:       http.MethodDelete,
			target:       "/api/cards/abc",
			status:       http.StatusNoContent,
			wantContains: []string{`"status":204`, `"size":0`},
		},
		{
			name:         "implicit ok",
			method:       http.MethodGet,
			target:       "/api/cards/?x=1",
			body:         "[]",
			wantContains: []string{`"status":200`, `"uri":"/api/cards/?x=1"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(`{"password":"hunter2"}`))
			req = req.WithContext(l.WithContext(req.Context()))

			newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, out, want)
			}
			assert.Contains(t, out, `"duration":`)
			assert.NotContains(t, out, "hunter2")
		})
	}
}
