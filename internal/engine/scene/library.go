package scene

import (
	"fmt"
	"image"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/skydrop/internal/engine/model"
	"github.com/Faultbox/skydrop/internal/logger"
)

// Loader supplies CPU-side mesh and texture data.
type Loader interface {
	LoadMesh(name string) (*model.Mesh, error)
	LoadTexture(name string) (*image.RGBA, error)
}

// Source names the mesh and texture of one object. An empty texture means
// the white fallback.
type Source struct {
	Mesh    string
	Texture string
}

// Library holds the uploaded models, created once at startup.
type Library struct {
	models map[string]*Model
}

// LoadLibrary loads and uploads every object. On failure the models uploaded
// so far are released.
func LoadLibrary(loader Loader, objects map[string]Source) (*Library, error) {
	lib := &Library{models: make(map[string]*Model, len(objects))}

	names := make([]string, 0, len(objects))
	for name := range objects {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		src := objects[name]
		m, err := load(loader, name, src)
		if err != nil {
			lib.Release()
			return nil, fmt.Errorf("object %s: %w", name, err)
		}
		lib.models[name] = m
		logger.Info("model loaded",
			zap.String("object", name),
			zap.String("mesh", src.Mesh),
			zap.String("texture", src.Texture))
	}
	return lib, nil
}

func load(loader Loader, name string, src Source) (*Model, error) {
	mesh, err := loader.LoadMesh(src.Mesh)
	if err != nil {
		return nil, err
	}
	img, err := loader.LoadTexture(src.Texture)
	if err != nil {
		return nil, err
	}
	m, err := Upload(mesh, img)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", src.Mesh, err)
	}
	m.Name = name
	return m, nil
}

// Get returns the model for an object name, or nil.
func (l *Library) Get(name string) *Model {
	return l.models[name]
}

// Release deletes every model.
func (l *Library) Release() {
	for name, m := range l.models {
		m.Release()
		delete(l.models, name)
	}
}
