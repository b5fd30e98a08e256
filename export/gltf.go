package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/tom-delalande/opengl-go/obj"
)

// GLTF writes the mesh as a binary gltf (glb) document with position,
// normal and index accessors.
func GLTF(w io.Writer, name string, m *obj.Mesh) error {
	doc := gltf.NewDocument()

	positionAccessor := modeler.WritePosition(doc, m.Positions)
	normalsAccessor := modeler.WriteNormal(doc, m.Normals)
	indicesAccessor := modeler.WriteIndices(doc, m.Indices)

	attributes := make(map[string]uint32)
	attributes["POSITION"] = positionAccessor
	attributes["NORMAL"] = normalsAccessor

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(indicesAccessor),
			Attributes: attributes,
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return errors.Wrapf(encoder.Encode(doc), "Failed to encode gltf %q", name)
}
