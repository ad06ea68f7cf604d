package assets

// Catalog records loaded assets and counts the references held on each.
// Handles of every kind come from one sequence, so a handle value is unique
// across textures, meshes, animations and models.
type Catalog struct {
	textures   map[TextureHandle]Texture
	meshes     map[MeshHandle]Mesh
	animations map[AnimationHandle]Animation
	models     map[ModelHandle]Model

	textureByPath map[string]TextureHandle
	meshByKey     map[string]MeshHandle

	refs   map[int]int
	nextID int
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		textures:      make(map[TextureHandle]Texture),
		meshes:        make(map[MeshHandle]Mesh),
		animations:    make(map[AnimationHandle]Animation),
		models:        make(map[ModelHandle]Model),
		textureByPath: make(map[string]TextureHandle),
		meshByKey:     make(map[string]MeshHandle),
		refs:          make(map[int]int),
	}
}

// next allocates a handle with one reference; 0 is never handed out
func (c *Catalog) next() int {
	c.nextID++
	c.refs[c.nextID] = 1
	return c.nextID
}

func (c *Catalog) retain(h int) {
	if _, ok := c.refs[h]; ok {
		c.refs[h]++
	}
}

// Texture returns the texture behind h
func (c *Catalog) Texture(h TextureHandle) (Texture, bool) {
	t, ok := c.textures[h]
	return t, ok
}

// Mesh returns the mesh behind h
func (c *Catalog) Mesh(h MeshHandle) (Mesh, bool) {
	m, ok := c.meshes[h]
	return m, ok
}

// Animation returns the animation behind h
func (c *Catalog) Animation(h AnimationHandle) (Animation, bool) {
	a, ok := c.animations[h]
	return a, ok
}

// Model returns the model behind h
func (c *Catalog) Model(h ModelHandle) (Model, bool) {
	m, ok := c.models[h]
	return m, ok
}

// RetainModel adds a reference to a model, e.g. when another entity starts
// displaying it
func (c *Catalog) RetainModel(h ModelHandle) {
	c.retain(int(h))
}

// ReleaseModel drops one reference to a model. When the last reference goes
// the model is forgotten and its meshes and textures are released too.
// Returns the references left on the model.
func (c *Catalog) ReleaseModel(h ModelHandle) int {
	left := c.release(int(h))
	if left > 0 {
		return left
	}
	m, ok := c.models[h]
	if !ok {
		return 0
	}
	delete(c.models, h)
	for _, mesh := range m.Meshes {
		if c.release(int(mesh)) == 0 {
			c.forgetMesh(mesh)
		}
	}
	for _, tex := range m.Textures {
		if c.release(int(tex)) == 0 {
			c.forgetTexture(tex)
		}
	}
	return 0
}

// Refs returns the number of references held on a handle value
func (c *Catalog) Refs(h int) int {
	return c.refs[h]
}

// Len returns the number of live assets of all kinds
func (c *Catalog) Len() int {
	return len(c.textures) + len(c.meshes) + len(c.animations) + len(c.models)
}

func (c *Catalog) release(h int) int {
	n, ok := c.refs[h]
	if !ok {
		return 0
	}
	n--
	if n <= 0 {
		delete(c.refs, h)
		return 0
	}
	c.refs[h] = n
	return n
}

func (c *Catalog) forgetMesh(h MeshHandle) {
	if _, ok := c.meshes[h]; !ok {
		return
	}
	delete(c.meshes, h)
	for key, v := range c.meshByKey {
		if v == h {
			delete(c.meshByKey, key)
		}
	}
}

func (c *Catalog) forgetTexture(h TextureHandle) {
	t, ok := c.textures[h]
	if !ok {
		return
	}
	delete(c.textures, h)
	delete(c.textureByPath, t.Path)
}
