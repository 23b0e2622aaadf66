package session

// adjectives and nouns back GenerateID. Both lists are fixed and bundled so
// that ID generation never touches the filesystem or the network.
var adjectives = []string{
	"able", "acid", "agile", "amber", "ancient", "ample", "arid", "austere",
	"avid", "bald", "bent", "bitter", "blunt", "bold", "brave", "brief",
	"brisk", "broad", "bronze", "calm", "chief", "civil", "clean", "clear",
	"coarse", "cool", "coral", "crisp", "dark", "deep", "dense", "dim",
	"dizzy", "dry", "dusty", "eager", "early", "east", "elder", "empty",
	"exact", "faint", "fair", "fast", "fine", "firm", "flat", "fleet",
	"fond", "fresh", "full", "giant", "glad", "gold", "grand", "grave",
	"great", "green", "grim", "gruff", "harsh", "hasty", "heavy", "high",
	"humble", "icy", "ideal", "jolly", "keen", "kind", "lame", "large",
	"late", "lean", "level", "light", "lithe", "lively", "loose", "loud",
	"lunar", "lush", "mellow", "merry", "meek", "mild", "mint", "modest",
	"moral", "muted", "naive", "neat", "nimble", "noble", "north", "numb",
	"odd", "olive", "opal", "open", "pale", "patient", "plain", "plucky",
	"polar", "polite", "prime", "proud", "pure", "quick", "quiet", "rapid",
	"rare", "rich", "rigid", "ripe", "rough", "round", "royal", "rural",
	"rustic", "sage", "salty", "sharp", "shiny", "short", "shy", "silent",
	"silky", "silver", "slack", "sleek", "slim", "slow", "small", "smart",
	"smooth", "soft", "solar", "solid", "sound", "south", "spare", "spry",
	"stark", "steady", "steep", "stern", "still", "stout", "stray", "strict",
	"strong", "subtle", "sunny", "swift", "tall", "tame", "tart", "terse",
	"thick", "thin", "tidy", "tight", "tiny", "tough", "true", "vague",
	"valid", "vast", "vivid", "warm", "wary", "weak", "west", "wide",
	"wild", "windy", "wise", "witty", "worn", "young", "zealous", "zesty",
}

var nouns = []string{
	"acorn", "alley", "anchor", "anvil", "arbor", "arrow", "atlas", "badge",
	"banyan", "basin", "beacon", "beech", "birch", "bison", "bluff", "boulder",
	"bramble", "bridge", "brook", "cactus", "canyon", "cedar", "chalk", "chisel",
	"cinder", "cliff", "clover", "comet", "compass", "coral", "cove", "crane",
	"crater", "creek", "crest", "cypress", "delta", "desert", "dune", "eagle",
	"ember", "estate", "falcon", "fathom", "fern", "fjord", "forge", "fossil",
	"foundry", "fox", "garnet", "glacier", "glen", "granite", "grove", "gulch",
	"gully", "harbor", "hazel", "heath", "hollow", "hornet", "island", "ivy",
	"juniper", "kestrel", "ladder", "lagoon", "lantern", "larch", "ledge", "linden",
	"loch", "lynx", "maple", "marsh", "meadow", "mesa", "mill", "moor",
	"moss", "needle", "oasis", "oak", "orchard", "osprey", "otter", "owl",
	"paddle", "palm", "pasture", "pebble", "pelican", "pier", "pine", "plateau",
	"pond", "poplar", "prairie", "quarry", "quartz", "rapids", "ravine", "reed",
	"reef", "ridge", "river", "sable", "saddle", "sage", "sapling", "savanna",
	"shale", "shoal", "shore", "silo", "slate", "sloop", "sparrow", "spire",
	"spruce", "steppe", "stork", "strait", "summit", "swamp", "sycamore", "talon",
	"thicket", "thistle", "timber", "tundra", "valley", "vault", "vine", "viper",
	"vista", "walnut", "warren", "wharf", "willow", "wolf", "woodland", "wren",
}
