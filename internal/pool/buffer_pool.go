package pool

import (
	"bytes"
	"sync"
)

// maxPooledBufferSize caps the capacity of buffers kept by the pool, so one
// oversized job doesn't pin its memory for the life of the process.
const maxPooledBufferSize = 64 * 1024

var bufferPool = sync.Pool{New: func() any { return &bytes.Buffer{} }}

// GetBuffer returns an empty buffer from the pool.
//
// Return back the buffer to the pool with PutBuffer.
func GetBuffer() *bytes.Buffer {
	buf, _ := bufferPool.Get().(*bytes.Buffer)
	if buf == nil {
		return &bytes.Buffer{}
	}
	buf.Reset()

	return buf
}

// PutBuffer returns buf to the pool.
//
// buf cannot be accessed after returning to the pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBufferSize {
		return
	}
	bufferPool.Put(buf)
}
