package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	parserName string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{parserName: defaultParserName}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// MeasurerOption configures a Measurer.
type MeasurerOption func(*measurerConfig)

type measurerConfig struct {
	families      map[string]Family
	defaultFamily string
	shaper        Shaper
	cacheLimit    int
}

// DefaultCacheLimit is the number of measurements a Measurer remembers.
const DefaultCacheLimit = 4096

func defaultMeasurerConfig() measurerConfig {
	return measurerConfig{
		families:   make(map[string]Family),
		cacheLimit: DefaultCacheLimit,
	}
}

// WithFamily registers fam under the typeface name. Lookups ignore case.
func WithFamily(name string, fam Family) MeasurerOption {
	return func(c *measurerConfig) {
		c.families[normalizeTypeface(name)] = fam
	}
}

// WithDefaultFamily names the family used when a font leaves the typeface
// empty or names an unknown one. The family must be registered with
// WithFamily or be one of the built-in Go families.
func WithDefaultFamily(name string) MeasurerOption {
	return func(c *measurerConfig) {
		c.defaultFamily = normalizeTypeface(name)
	}
}

// WithShaper sets the shaper used to compute advance widths.
// The default is a GoTextShaper.
func WithShaper(s Shaper) MeasurerOption {
	return func(c *measurerConfig) {
		c.shaper = s
	}
}

// WithCacheLimit sets the maximum number of cached measurements.
// A value of 0 disables the limit.
func WithCacheLimit(n int) MeasurerOption {
	return func(c *measurerConfig) {
		c.cacheLimit = max(n, 0)
	}
}
