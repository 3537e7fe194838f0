package record

import (
	"compress/zlib"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

/*
frames are grouped into chunks of a fixed number of frames, each written as a
zlib compressed gob of float32 bodies. velocities are left out: a chunk is
for drawing, the sqlite sink keeps the full state.
*/

// ChunkIndex maps frame -> body id -> body.
type ChunkIndex map[uint32]map[uint32]ChunkBody

// ChunkBody is the reduced per-body state stored in a chunk.
type ChunkBody struct {
	X, Y         float32
	Mass, Radius float32
}

// ChunkSink buffers frames and dumps every full chunk to
// dir/<last frame>.chunk.
type ChunkSink struct {
	dir        string
	chunkSize  int
	level      int
	buffer     ChunkIndex
	last       int
	chunkCount int
}

// NewChunkSink creates dir if needed. level is a zlib compression level.
func NewChunkSink(dir string, framesPerChunk, level int) (*ChunkSink, error) {
	if framesPerChunk <= 0 {
		return nil, fmt.Errorf("frames per chunk must be positive, got %d", framesPerChunk)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ChunkSink{
		dir:       dir,
		chunkSize: framesPerChunk,
		level:     level,
		buffer:    make(ChunkIndex, framesPerChunk),
	}, nil
}

func (s *ChunkSink) WriteFrame(f *Frame) error {
	frameData := make(map[uint32]ChunkBody, len(f.Bodies))
	for id, b := range f.Bodies {
		frameData[uint32(id)] = ChunkBody{
			X:      float32(b.Pos[0]),
			Y:      float32(b.Pos[1]),
			Mass:   float32(b.Mass),
			Radius: float32(b.Radius),
		}
	}
	s.buffer[uint32(f.Index)] = frameData
	s.last = f.Index

	if len(s.buffer) < s.chunkSize {
		return nil
	}
	return s.dump()
}

func (s *ChunkSink) dump() error {
	dump := s.buffer
	s.buffer = make(ChunkIndex, s.chunkSize)

	file, err := os.Create(filepath.Join(s.dir, fmt.Sprintf("%010d.chunk", s.last)))
	if err != nil {
		return err
	}
	defer file.Close()

	zw, err := zlib.NewWriterLevel(file, s.level)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(zw).Encode(dump); err != nil {
		zw.Close()
		return fmt.Errorf("encode chunk: %w", err)
	}
	if err := zw.Close(); err != nil {
		return err
	}
	s.chunkCount++
	return file.Close()
}

// Close writes the last, partial chunk.
func (s *ChunkSink) Close() error {
	if len(s.buffer) == 0 {
		return nil
	}
	return s.dump()
}

// Chunks returns the number of chunk files written so far.
func (s *ChunkSink) Chunks() int { return s.chunkCount }

// ReadChunk decodes a chunk file.
func ReadChunk(path string) (ChunkIndex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	zr, err := zlib.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("chunk %s: %w", path, err)
	}
	defer zr.Close()

	var idx ChunkIndex
	if err := gob.NewDecoder(zr).Decode(&idx); err != nil {
		return nil, fmt.Errorf("decode chunk %s: %w", path, err)
	}
	return idx, nil
}
