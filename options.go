package fontseq

// Option configures a Builder during creation.
//
// Example:
//
//	b := fontseq.NewBuilder(packs,
//	    fontseq.WithOriginResolver(fontseq.Frame{Left: -8, Top: -13, Width: 176, Height: 166}),
//	    fontseq.WithRegistries(font.Registries(fonts)...),
//	)
type Option func(*options)

// DefaultGeneratedNamespace is the namespace generated textures are stored in.
const DefaultGeneratedNamespace = "generated"

// DefaultImageExtension is appended to texture keys that lack it.
const DefaultImageExtension = ".png"

// options holds optional configuration for Builder creation.
type options struct {
	origin      Origin
	resolver    OriginResolver
	source      ImageSource
	generatedNS string
	imageExt    string
	registries  []GlyphRegistry
	sourceCache int
}

// defaultOptions returns the default builder options.
func defaultOptions() options {
	return options{
		origin:      OriginTopLeft,
		resolver:    Frame{},
		source:      nil, // Will be a pack.Source over the builder's packs if nil
		generatedNS: DefaultGeneratedNamespace,
		imageExt:    DefaultImageExtension,
	}
}

// WithOrigin sets the initial origin anchor. The default is OriginTopLeft.
func WithOrigin(o Origin) Option {
	return func(opts *options) {
		opts.origin = o
	}
}

// WithOriginResolver sets how origin anchors map to pixel offsets.
// The default resolver is the zero Frame, which ignores the origin.
func WithOriginResolver(r OriginResolver) Option {
	return func(opts *options) {
		if r != nil {
			opts.resolver = r
		}
	}
}

// WithImageSource sets where source textures are loaded from.
// By default they are read from the builder's packs.
func WithImageSource(src ImageSource) Option {
	return func(opts *options) {
		opts.source = src
	}
}

// WithSourceCacheSize sets how many decoded textures the default image
// source keeps. It has no effect together with WithImageSource.
func WithSourceCacheSize(n int) Option {
	return func(opts *options) {
		opts.sourceCache = n
	}
}

// WithGeneratedNamespace sets the namespace of generated textures.
func WithGeneratedNamespace(ns string) Option {
	return func(opts *options) {
		if ns != "" {
			opts.generatedNS = ns
		}
	}
}

// WithImageExtension sets the extension every texture key must end with.
// Keys without it get it appended.
func WithImageExtension(ext string) Option {
	return func(opts *options) {
		if ext != "" {
			opts.imageExt = ext
		}
	}
}

// WithRegistries adds glyph registries, typically one font per output
// target. Every glyph appended to the builder is registered with all of them.
func WithRegistries(regs ...GlyphRegistry) Option {
	return func(opts *options) {
		opts.registries = append(opts.registries, regs...)
	}
}
