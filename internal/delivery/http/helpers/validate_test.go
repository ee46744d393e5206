package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title    string   `json:"title" validate:"required,max=5"`
	Kind     string   `json:"kind" validate:"omitempty,oneof=A B"`
	MaxUser  int      `json:"max_user" validate:"gte=0"`
	MusicIDs []string `json:"music_ids" validate:"dive,uuid"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOK      bool
		wantMessage string
	}{
		{name: "valid", body: `{"title":"abc","kind":"A","music_ids":["6ba7b810-9dad-11d1-80b4-00c04fd430c8"]}`, wantOK: true},
		{name: "malformed json", body: `{"title":`, wantMessage: "invalid request body"},
		{name: "unknown field", body: `{"title":"abc","extra":1}`, wantMessage: "unknown field"},
		{name: "required", body: `{}`, wantMessage: "title is required"},
		{name: "max", body: `{"title":"abcdef"}`, wantMessage: "title must be at most 5"},
		{name: "oneof", body: `{"title":"a","kind":"C"}`, wantMessage: "kind must be one of [A B]"},
		{name: "min number", body: `{"title":"a","max_user":-1}`, wantMessage: "max_user must be at least 0"},
		{name: "dive", body: `{"title":"a","music_ids":["nope"]}`, wantMessage: "music_ids[0] is invalid (uuid)"},
		{name: "joins messages", body: `{"kind":"C"}`, wantMessage: "title is required; kind must be one of [A B]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest sampleRequest

			ok := DecodeAndValidate(rr, req, &dest)

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "abc", dest.Title)
				return
			}
			require.Equal(t, http.StatusBadRequest, rr.Code)
			var body APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			require.NotNil(t, body.Error)
			assert.Equal(t, ErrCodeBadRequest, body.Error.Code)
			assert.Contains(t, body.Error.Message, tt.wantMessage)
		})
	}
}

type trimmedRequest struct {
	Code string `json:"code" validate:"required,max=3"`
}

func (r *trimmedRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
}

func TestDecodeAndValidate_NormalizesBeforeValidating(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantOK bool
		want   string
	}{
		{name: "padding removed", body: `{"code":"  kr  "}`, wantOK: true, want: "KR"},
		{name: "blank becomes missing", body: `{"code":"   "}`},
		{name: "still too long", body: `{"code":" abcd "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest trimmedRequest

			ok := DecodeAndValidate(rr, req, &dest)

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, dest.Code)
			} else {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
			}
		})
	}
}
