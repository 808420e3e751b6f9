// Package assets handles game asset loading and caching.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path"

	"go.uber.org/zap"

	"github.com/Faultbox/skydrop/internal/engine/lighting"
	"github.com/Faultbox/skydrop/internal/engine/model"
	"github.com/Faultbox/skydrop/internal/engine/texture"
	"github.com/Faultbox/skydrop/internal/logger"
)

//go:embed shaders/*.vert shaders/*.frag
var builtinShaders embed.FS

// Shaders returns the GLSL sources compiled into the binary. Names match
// lighting.Sources.
func Shaders() fs.FS {
	sub, err := fs.Sub(builtinShaders, "shaders")
	if err != nil {
		panic(err)
	}
	return sub
}

// ErrNotFound is returned when no source holds the requested file.
var ErrNotFound = errors.New("asset not found")

type source struct {
	name string
	fsys fs.FS
}

// Manager resolves asset paths against a stack of filesystems. All loading
// happens during startup on the main thread, so it is not safe for
// concurrent use.
type Manager struct {
	sources []source
	cache   *Cache
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddFS adds a filesystem to the manager.
// Sources are searched in reverse order (last added = highest priority).
func (m *Manager) AddFS(name string, fsys fs.FS) {
	m.sources = append(m.sources, source{name: name, fsys: fsys})
	logger.Debug("asset source added", zap.String("source", name))
}

// AddDir adds a directory on disk as a source.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("opening asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("opening asset dir %s: not a directory", dir)
	}
	m.AddFS(dir, os.DirFS(dir))
	return nil
}

// Load loads a file from the sources. Paths use forward slashes.
func (m *Manager) Load(name string) ([]byte, error) {
	name = path.Clean(name)

	// Check cache first
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	// Search sources in reverse order
	for i := len(m.sources) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.sources[i].fsys, name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s from %s: %w", name, m.sources[i].name, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// ShaderSources loads both stages of a pipeline. Errors name the stage and file.
func (m *Manager) ShaderSources(src lighting.Sources) (vertex, fragment string, err error) {
	v, err := m.Load(src.Vertex)
	if err != nil {
		return "", "", fmt.Errorf("vertex shader %s: %w", src.Vertex, err)
	}
	f, err := m.Load(src.Fragment)
	if err != nil {
		return "", "", fmt.Errorf("fragment shader %s: %w", src.Fragment, err)
	}
	return string(v), string(f), nil
}

// LoadMesh returns a builtin primitive or parses an OBJ file.
func (m *Manager) LoadMesh(name string) (*model.Mesh, error) {
	if model.IsBuiltin(name) {
		return model.Builtin(name)
	}
	data, err := m.Load(name)
	if err != nil {
		return nil, fmt.Errorf("loading mesh: %w", err)
	}
	mesh, err := model.ParseOBJ(name, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing mesh: %w", err)
	}
	size := mesh.Bounds.Size()
	logger.Debug("mesh loaded",
		zap.String("mesh", name),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.Triangles()),
		zap.Float32s("size", size[:]))
	return mesh, nil
}

// LoadTexture decodes an image file. An empty name yields the 1x1 white
// fallback.
func (m *Manager) LoadTexture(name string) (*image.RGBA, error) {
	if name == "" {
		return texture.White(), nil
	}
	data, err := m.Load(name)
	if err != nil {
		return nil, fmt.Errorf("loading texture: %w", err)
	}
	img, err := texture.Decode(name, data)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Close drops all sources and cached data.
func (m *Manager) Close() {
	hits, misses := m.cache.Stats()
	logger.Debug("asset cache released", zap.Int("hits", hits), zap.Int("misses", misses))

	m.sources = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets. Like Manager it is
// not safe for concurrent use.
type Cache struct {
	data map[string][]byte

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}
