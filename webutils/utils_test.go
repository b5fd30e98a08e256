package webutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.Errorf("mesh not loaded"))

	if w.Code != 500 {
		t.Errorf("status=%v; expected 500", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type=%q; expected application/json", ct)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "mesh not loaded" {
		t.Errorf("error=%q", body.Error)
	}
}

func TestWriteJson(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJson(w, map[string]int{"triangles": 1})

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type=%q; expected application/json", ct)
	}
	if got := w.Body.String(); got != `{"triangles":1}` {
		t.Errorf("body=%q", got)
	}
}
