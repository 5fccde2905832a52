package prompts

// Aesthetic is the visual direction for one theme
type Aesthetic struct {
	Style   string
	Palette string
	Mood    string
}

// Concept is the illustrated subject for one project
type Concept struct {
	Subject string
	Concept string
}

var aesthetics = map[string]Aesthetic{
	"aurora": {
		Style:   "cosmic northern lights rippling across a dark polar sky, soft volumetric glow",
		Palette: "deep navy, emerald green and violet light bands",
		Mood:    "serene, vast, quietly luminous",
	},
	"risograph": {
		Style:   "two-color risograph print with visible grain and slight misregistration",
		Palette: "fluorescent pink and medium blue on warm off-white paper",
		Mood:    "playful, tactile, zine-like",
	},
	"holographic": {
		Style:   "iridescent holographic foil with prismatic sheen and smooth chrome forms",
		Palette: "pearl white, lilac, aqua and silver gradients",
		Mood:    "futuristic, glossy, optimistic",
	},
	"topographic": {
		Style:   "topographic map illustration built from fine contour lines and elevation shading",
		Palette: "sage, burnt orange and forest green on pale parchment",
		Mood:    "exploratory, precise, outdoorsy",
	},
	"zen": {
		Style:   "minimal zen garden composition with raked sand patterns and a single stone",
		Palette: "warm sand, moss green and muted vermilion",
		Mood:    "calm, contemplative, spacious",
	},
	"brutalist": {
		Style:   "brutalist graphic poster with raw concrete textures and heavy grid blocks",
		Palette: "concrete grey, black and signal orange",
		Mood:    "bold, uncompromising, architectural",
	},
	"blueprint": {
		Style:   "technical blueprint drawing with white linework, dimension marks and annotations",
		Palette: "cyanotype blue with white and pale yellow lines",
		Mood:    "methodical, engineered, clear",
	},
	"vaporwave": {
		Style:   "vaporwave scene with a gradient sunset, wireframe grid sea and classical statues",
		Palette: "hot pink, cyan and deep purple",
		Mood:    "nostalgic, dreamy, surreal",
	},
	"letterpress": {
		Style:   "letterpress print with deep debossed impression and wood type ornaments",
		Palette: "oxblood red and teal ink on cream cotton paper",
		Mood:    "crafted, heritage, warm",
	},
	"terminal": {
		Style:   "retro CRT terminal rendering with scanlines, ASCII shading and phosphor bloom",
		Palette: "phosphor green and amber on black",
		Mood:    "hacker, nocturnal, focused",
	},
	"botanical": {
		Style:   "vintage botanical plate with pressed leaves, stippled engraving and field notes",
		Palette: "leaf green, ochre and faded ink on pale paper",
		Mood:    "naturalist, patient, curious",
	},
	"noir": {
		Style:   "film noir photograph with venetian-blind shadows and hard rim light",
		Palette: "high-contrast black and white with a single brass accent",
		Mood:    "mysterious, cinematic, late-night",
	},
	"bauhaus": {
		Style:   "Bauhaus composition of circles, squares and triangles on a strict grid",
		Palette: "primary red, blue and yellow on off-white",
		Mood:    "rational, rhythmic, modernist",
	},
	"glacier": {
		Style:   "frosted glass layers over compressed glacial ice with crisp refraction",
		Palette: "ice blue, white and cerulean",
		Mood:    "clean, cold, crystalline",
	},
}

var concepts = map[string]Concept{
	"watch-auth": {
		Subject: "luxury watch authentication",
		Concept: "a mechanical watch movement under a jeweler's loupe with scanning light tracing its bridges",
	},
	"freight-pulse": {
		Subject: "refrigerated freight telemetry",
		Concept: "a convoy of trucks on a night highway linked by pulsing data lines and temperature readouts",
	},
	"vineyard-atlas": {
		Subject: "precision vineyard mapping",
		Concept: "aerial rows of grapevines overlaid with a vigor heatmap and survey markers",
	},
	"signal-choir": {
		Subject: "distributed choir rehearsal",
		Concept: "singers in separate rooms connected by flowing sound waves that meet in a shared score",
	},
	"ledger-garden": {
		Subject: "savings goals as a growing garden",
		Concept: "coins sprouting into small plants in tidy garden beds, each labelled with a goal",
	},
	"museum-echo": {
		Subject: "audio museum guide",
		Concept: "a visitor with headphones before a ceramic vase while concentric sound rings radiate from the plinth",
	},
}

// Themes returns the theme slugs that have an aesthetic entry
func Themes() []string {
	return sortedKeys(aesthetics)
}

// Projects returns the project slugs that have a concept entry
func Projects() []string {
	return sortedKeys(concepts)
}
