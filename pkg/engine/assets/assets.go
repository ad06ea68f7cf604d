// Package assets hands out opaque handles for textures, meshes, animations
// and models. Decoding the underlying formats belongs to the renderer; this
// package only resolves files and tracks who shares each handle.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // texture headers
	_ "image/png"  // texture headers
	"io/fs"
	"path"
	"strings"
)

// TextureHandle refers to a loaded texture
type TextureHandle int

// MeshHandle refers to a loaded mesh
type MeshHandle int

// AnimationHandle refers to a loaded animation clip
type AnimationHandle int

// ModelHandle refers to a model built from meshes and textures
type ModelHandle int

// NoModel is the zero handle; entities without a model use it
const NoModel ModelHandle = 0

// AnimationSettings controls playback of a clip
type AnimationSettings struct {
	Looping bool
}

// Refs counts the entities displaying a model
type Refs interface {
	RetainModel(h ModelHandle)
	ReleaseModel(h ModelHandle) int
}

// Loader is the asset collaborator consumed by world setup
type Loader interface {
	LoadTexture(path string) (TextureHandle, error)
	LoadMesh(path string, scale float64) (MeshHandle, error)
	LoadSkinnedMesh(path string, nodes []string) ([]MeshHandle, error)
	LoadAnimation(path string, mesh MeshHandle, settings AnimationSettings, clip string) (AnimationHandle, error)
	CreateModel(meshes []MeshHandle, textures []TextureHandle) (ModelHandle, error)
	Refs
}

// Texture describes a loaded texture
type Texture struct {
	Path   string
	Width  int
	Height int
}

// Mesh describes a loaded mesh
type Mesh struct {
	Path  string
	Scale float64
	Node  string // skinned meshes only
}

// Animation describes a loaded clip bound to a mesh
type Animation struct {
	Path     string
	Mesh     MeshHandle
	Clip     string
	Settings AnimationSettings
}

// Model is a set of meshes paired with textures
type Model struct {
	Meshes   []MeshHandle
	Textures []TextureHandle
}

// FileLoader resolves assets from a file system and records them in a Catalog.
// Loading the same path twice returns the same handle with one more reference.
type FileLoader struct {
	fsys    fs.FS
	catalog *Catalog
}

// NewFileLoader creates a loader reading from fsys
func NewFileLoader(fsys fs.FS) *FileLoader {
	return &FileLoader{
		fsys:    fsys,
		catalog: NewCatalog(),
	}
}

// Catalog returns the catalog of everything loaded so far
func (l *FileLoader) Catalog() *Catalog {
	return l.catalog
}

// LoadTexture checks that path holds a decodable image and returns its handle
func (l *FileLoader) LoadTexture(p string) (TextureHandle, error) {
	p = cleanPath(p)
	if h, ok := l.catalog.textureByPath[p]; ok {
		l.catalog.retain(int(h))
		return h, nil
	}

	f, err := l.fsys.Open(p)
	if err != nil {
		return 0, fmt.Errorf("open texture %s: %w", p, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, fmt.Errorf("decode texture %s: %w", p, err)
	}

	h := TextureHandle(l.catalog.next())
	l.catalog.textures[h] = Texture{Path: p, Width: cfg.Width, Height: cfg.Height}
	l.catalog.textureByPath[p] = h
	return h, nil
}

// LoadMesh checks that path exists and returns its handle
func (l *FileLoader) LoadMesh(p string, scale float64) (MeshHandle, error) {
	p = cleanPath(p)
	key := fmt.Sprintf("%s@%g", p, scale)
	if h, ok := l.catalog.meshByKey[key]; ok {
		l.catalog.retain(int(h))
		return h, nil
	}
	if err := l.exists(p); err != nil {
		return 0, fmt.Errorf("load mesh %s: %w", p, err)
	}
	h := MeshHandle(l.catalog.next())
	l.catalog.meshes[h] = Mesh{Path: p, Scale: scale}
	l.catalog.meshByKey[key] = h
	return h, nil
}

// LoadSkinnedMesh returns one mesh handle per requested node
func (l *FileLoader) LoadSkinnedMesh(p string, nodes []string) ([]MeshHandle, error) {
	p = cleanPath(p)
	if len(nodes) == 0 {
		return nil, fmt.Errorf("load skinned mesh %s: no nodes requested", p)
	}
	if err := l.exists(p); err != nil {
		return nil, fmt.Errorf("load skinned mesh %s: %w", p, err)
	}
	handles := make([]MeshHandle, 0, len(nodes))
	for _, node := range nodes {
		key := p + "#" + node
		if h, ok := l.catalog.meshByKey[key]; ok {
			l.catalog.retain(int(h))
			handles = append(handles, h)
			continue
		}
		h := MeshHandle(l.catalog.next())
		l.catalog.meshes[h] = Mesh{Path: p, Scale: 1, Node: node}
		l.catalog.meshByKey[key] = h
		handles = append(handles, h)
	}
	return handles, nil
}

// LoadAnimation binds a clip in path to a previously loaded mesh
func (l *FileLoader) LoadAnimation(p string, mesh MeshHandle, settings AnimationSettings, clip string) (AnimationHandle, error) {
	p = cleanPath(p)
	if _, ok := l.catalog.meshes[mesh]; !ok {
		return 0, fmt.Errorf("load animation %s: unknown mesh handle %d", p, mesh)
	}
	if clip == "" {
		return 0, fmt.Errorf("load animation %s: empty clip name", p)
	}
	if err := l.exists(p); err != nil {
		return 0, fmt.Errorf("load animation %s: %w", p, err)
	}
	h := AnimationHandle(l.catalog.next())
	l.catalog.animations[h] = Animation{Path: p, Mesh: mesh, Clip: clip, Settings: settings}
	return h, nil
}

// CreateModel groups meshes and textures. Every handle must already be loaded;
// the model holds a reference to each.
func (l *FileLoader) CreateModel(meshes []MeshHandle, textures []TextureHandle) (ModelHandle, error) {
	for _, m := range meshes {
		if _, ok := l.catalog.meshes[m]; !ok {
			return NoModel, fmt.Errorf("create model: unknown mesh handle %d", m)
		}
	}
	for _, t := range textures {
		if _, ok := l.catalog.textures[t]; !ok {
			return NoModel, fmt.Errorf("create model: unknown texture handle %d", t)
		}
	}
	for _, m := range meshes {
		l.catalog.retain(int(m))
	}
	for _, t := range textures {
		l.catalog.retain(int(t))
	}
	h := ModelHandle(l.catalog.next())
	l.catalog.models[h] = Model{
		Meshes:   append([]MeshHandle(nil), meshes...),
		Textures: append([]TextureHandle(nil), textures...),
	}
	return h, nil
}

// RetainModel records one more entity displaying h
func (l *FileLoader) RetainModel(h ModelHandle) {
	l.catalog.RetainModel(h)
}

// ReleaseModel drops an entity's reference to h and returns the references left
func (l *FileLoader) ReleaseModel(h ModelHandle) int {
	return l.catalog.ReleaseModel(h)
}

func (l *FileLoader) exists(p string) error {
	info, err := fs.Stat(l.fsys, p)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", p)
	}
	return nil
}

// cleanPath turns a map-relative path into an fs.FS path
func cleanPath(p string) string {
	return strings.TrimPrefix(path.Clean(strings.ReplaceAll(p, "\\", "/")), "/")
}
