package render

import (
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/tom-delalande/opengl-go/obj"
)

// MeshBuffers owns the GPU side of a loaded mesh: one VAO over two vertex
// buffers (positions, normals) and a triangle-list index buffer.
type MeshBuffers struct {
	glVAO          uint32
	glPositionsVBO uint32
	glNormalsVBO   uint32
	glEBO          uint32

	indexesCount int32
}

// UploadMesh copies the mesh arrays into static GL buffers. An OpenGL
// context has to be current.
func UploadMesh(tp *TeapotProgram, m *obj.Mesh) *MeshBuffers {
	b := &MeshBuffers{indexesCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &b.glVAO)
	gl.BindVertexArray(b.glVAO)

	gl.GenBuffers(1, &b.glPositionsVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.glPositionsVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*3*4, gl.Ptr(m.Positions), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(uint32(tp.APosition), 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(uint32(tp.APosition))

	gl.GenBuffers(1, &b.glNormalsVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.glNormalsVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Normals)*3*4, gl.Ptr(m.Normals), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(uint32(tp.ANormal), 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(uint32(tp.ANormal))

	gl.GenBuffers(1, &b.glEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.glEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(m.Indices), gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	runtime.KeepAlive(m)

	return b
}

func (b *MeshBuffers) Draw() {
	gl.BindVertexArray(b.glVAO)
	gl.DrawElements(gl.TRIANGLES, b.indexesCount, gl.UNSIGNED_INT, unsafe.Pointer(nil))
	gl.BindVertexArray(0)
}

func (b *MeshBuffers) Delete() {
	gl.DeleteBuffers(1, &b.glPositionsVBO)
	gl.DeleteBuffers(1, &b.glNormalsVBO)
	gl.DeleteBuffers(1, &b.glEBO)
	gl.DeleteVertexArrays(1, &b.glVAO)
}
