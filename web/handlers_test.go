package web

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tom-delalande/opengl-go/obj"
)

const triangleObj = `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`

func serveTestMesh(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	mesh, err := obj.LoadFromReader(strings.NewReader(triangleObj))
	if err != nil {
		t.Fatal(err)
	}
	serverMesh = mesh

	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func TestHandlerAjaxMeshSummary(t *testing.T) {
	w := serveTestMesh(t, "/json/mesh/summary")
	if w.Code != 200 {
		t.Fatalf("status=%v; expected 200", w.Code)
	}

	var summary meshSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatal(err)
	}
	if summary.Vertices != 3 || summary.Triangles != 1 {
		t.Errorf("summary=%+v; expected 3 vertices, 1 triangle", summary)
	}
}

func TestHandlerAjaxMesh(t *testing.T) {
	w := serveTestMesh(t, "/json/mesh")
	if w.Code != 200 {
		t.Fatalf("status=%v; expected 200", w.Code)
	}

	var mesh obj.Mesh
	if err := json.Unmarshal(w.Body.Bytes(), &mesh); err != nil {
		t.Fatal(err)
	}
	if len(mesh.Positions) != 3 || len(mesh.Indices) != 3 {
		t.Errorf("mesh=%+v; expected expanded triangle", mesh)
	}
}

func TestHandlerDumpMeshGLB(t *testing.T) {
	w := serveTestMesh(t, "/dump/mesh.glb")
	if w.Code != 200 {
		t.Fatalf("status=%v; expected 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/octet-stream" {
		t.Errorf("content-type=%q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "glTF") {
		t.Error("response is not a binary gltf document")
	}
}
