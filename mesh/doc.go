// Package mesh decodes vertex data out of interleaved little-endian byte
// buffers and raycasts the resulting triangle meshes.
//
// Element and vector reads address the buffer at byteOffset + index*stride;
// vector components are packed at the element size within each entry. The
// stride is taken as given, so overlapping or padded layouts decode exactly
// as described by the caller.
package mesh
