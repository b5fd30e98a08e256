package web

import (
	"bytes"
	"net/http"

	"github.com/tom-delalande/opengl-go/export"
	"github.com/tom-delalande/opengl-go/webutils"
)

type meshSummary struct {
	Vertices  int `json:"vertices"`
	Triangles int `json:"triangles"`
}

func HandlerAjaxMesh(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, serverMesh)
}

func HandlerAjaxMeshSummary(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, &meshSummary{
		Vertices:  len(serverMesh.Positions),
		Triangles: len(serverMesh.Indices) / 3,
	})
}

func HandlerDumpMeshGLB(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.GLTF(&buf, "mesh", serverMesh); err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteFile(w, &buf, "mesh.glb")
}
