package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/tom-delalande/opengl-go/export"
	"github.com/tom-delalande/opengl-go/obj"
)

const triangleObj = `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`

func TestGLTFRoundTrip(t *testing.T) {
	mesh, err := obj.LoadFromReader(strings.NewReader(triangleObj))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := export.GLTF(&buf, "teapot", mesh); err != nil {
		t.Fatal(err)
	}

	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(buf.Bytes())).Decode(doc); err != nil {
		t.Fatal(err)
	}

	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("expected 1 mesh with 1 primitive, got %+v", doc.Meshes)
	}
	primitive := doc.Meshes[0].Primitives[0]

	position, ok := primitive.Attributes["POSITION"]
	if !ok {
		t.Fatal("no POSITION attribute")
	}
	if count := int(doc.Accessors[position].Count); count != len(mesh.Positions) {
		t.Errorf("position accessor count=%v; expected %v", count, len(mesh.Positions))
	}

	normal, ok := primitive.Attributes["NORMAL"]
	if !ok {
		t.Fatal("no NORMAL attribute")
	}
	if count := int(doc.Accessors[normal].Count); count != len(mesh.Normals) {
		t.Errorf("normal accessor count=%v; expected %v", count, len(mesh.Normals))
	}

	if primitive.Indices == nil {
		t.Fatal("no index accessor")
	}
	if count := int(doc.Accessors[*primitive.Indices].Count); count != len(mesh.Indices) {
		t.Errorf("index accessor count=%v; expected %v", count, len(mesh.Indices))
	}
}
