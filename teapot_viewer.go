package main

import (
	"flag"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/tom-delalande/opengl-go/config"
	"github.com/tom-delalande/opengl-go/export"
	"github.com/tom-delalande/opengl-go/obj"
	"github.com/tom-delalande/opengl-go/render"
	"github.com/tom-delalande/opengl-go/web"
)

func main() {
	var objPath, gltfPath, serveAddr, configPath string
	var dump bool
	flag.StringVar(&objPath, "obj", "./teapot-3.obj", "Path to obj mesh file")
	flag.StringVar(&gltfPath, "gltf", "", "Export mesh to binary gltf file instead of opening window")
	flag.StringVar(&serveAddr, "serve", "", "Serve mesh over http instead of opening window, e.g. :8000")
	flag.StringVar(&configPath, "config", "", "Path to yaml viewer settings override")
	flag.BoolVar(&dump, "dump", false, "Print the parsed mesh before rendering")
	flag.Parse()

	if configPath != "" {
		if err := config.LoadViewer(configPath); err != nil {
			log.Fatal(err)
		}
	}

	mesh, err := obj.Load(objPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[obj] Loaded %q: %v triangles", objPath, len(mesh.Indices)/3)

	if dump {
		spew.Dump(mesh)
	}

	switch {
	case gltfPath != "":
		f, err := os.Create(gltfPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := export.GLTF(f, "teapot", mesh); err != nil {
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("[gltf] Exported mesh to %q", gltfPath)
	case serveAddr != "":
		if err := web.StartServer(serveAddr, mesh); err != nil {
			log.Fatal(err)
		}
	default:
		if err := render.ShowWindow(mesh); err != nil {
			log.Fatal(err)
		}
	}
}
