package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/tom-delalande/opengl-go/obj"
)

var serverMesh *obj.Mesh

// StartServer serves the loaded mesh over http until the process exits.
// The mesh is read-only, so handlers share it freely.
func StartServer(addr string, m *obj.Mesh) error {
	serverMesh = m

	r := NewRouter()

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}

func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/json/mesh", HandlerAjaxMesh)
	r.HandleFunc("/json/mesh/summary", HandlerAjaxMeshSummary)
	r.HandleFunc("/dump/mesh.glb", HandlerDumpMeshGLB)
	return r
}
