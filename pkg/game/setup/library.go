package setup

import (
	"maps"
	"slices"

	"escaperoom/pkg/engine/assets"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/errors"
	"escaperoom/pkg/game/mapdata"
)

// library maps the names used in a map description to loaded handles
type library struct {
	textures   map[string]assets.TextureHandle
	meshes     map[string][]assets.MeshHandle
	animations map[string]assets.AnimationHandle
	durations  map[string]float64
	looping    map[string]bool
	models     map[string]assets.ModelHandle
}

// animation starts a fresh playback of the named clip; nil for no name
func (l *library) animation(name string) *entities.AnimationState {
	h, ok := l.animations[name]
	if !ok {
		return nil
	}
	return entities.NewAnimationState(h, l.durations[name], l.looping[name])
}

// loadLibrary loads textures, meshes, animations and then models, each in
// name order so handle numbering is stable between runs
func loadLibrary(spec mapdata.AssetSpec, loader assets.Loader) (*library, error) {
	lib := &library{
		textures:   make(map[string]assets.TextureHandle),
		meshes:     make(map[string][]assets.MeshHandle),
		animations: make(map[string]assets.AnimationHandle),
		durations:  make(map[string]float64),
		looping:    make(map[string]bool),
		models:     make(map[string]assets.ModelHandle),
	}

	for _, name := range slices.Sorted(maps.Keys(spec.Textures)) {
		path := spec.Textures[name]
		h, err := loader.LoadTexture(path)
		if err != nil {
			return nil, errors.AssetLoadFailure(path, err).WithMeta("texture", name)
		}
		lib.textures[name] = h
	}

	for _, name := range slices.Sorted(maps.Keys(spec.Meshes)) {
		m := spec.Meshes[name]
		if len(m.Nodes) > 0 {
			hs, err := loader.LoadSkinnedMesh(m.Path, m.Nodes)
			if err != nil {
				return nil, errors.AssetLoadFailure(m.Path, err).WithMeta("mesh", name)
			}
			lib.meshes[name] = hs
			continue
		}
		h, err := loader.LoadMesh(m.Path, scaleOr1(m.Scale))
		if err != nil {
			return nil, errors.AssetLoadFailure(m.Path, err).WithMeta("mesh", name)
		}
		lib.meshes[name] = []assets.MeshHandle{h}
	}

	for _, name := range slices.Sorted(maps.Keys(spec.Animations)) {
		a := spec.Animations[name]
		meshes := lib.meshes[a.Mesh]
		if len(meshes) == 0 {
			return nil, errors.AssetLoadFailure(a.Path, errors.LookupMiss("mesh", a.Mesh)).WithMeta("animation", name)
		}
		h, err := loader.LoadAnimation(a.Path, meshes[0], assets.AnimationSettings{Looping: a.Looping}, a.Clip)
		if err != nil {
			return nil, errors.AssetLoadFailure(a.Path, err).WithMeta("animation", name)
		}
		lib.animations[name] = h
		lib.durations[name] = scaleOr1(a.Duration)
		lib.looping[name] = a.Looping
	}

	for _, name := range slices.Sorted(maps.Keys(spec.Models)) {
		m := spec.Models[name]
		var meshes []assets.MeshHandle
		for _, mesh := range m.Meshes {
			meshes = append(meshes, lib.meshes[mesh]...)
		}
		var textures []assets.TextureHandle
		for _, tex := range m.Textures {
			textures = append(textures, lib.textures[tex])
		}
		h, err := loader.CreateModel(meshes, textures)
		if err != nil {
			return nil, errors.AssetLoadFailure("model "+name, err).WithMeta("model", name)
		}
		lib.models[name] = h
	}

	return lib, nil
}
