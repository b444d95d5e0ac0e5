package catalog

import "github.com/dshills/Searchlight/core/text"

// PhotoSynonyms maps photo query words to related terms. Lookups are
// flat: synonyms of synonyms are not followed.
var PhotoSynonyms = text.Thesaurus{
	// Water and water bodies
	"water": {"water", "ocean", "sea", "lake", "river", "pond", "stream", "aquatic", "maritime", "coastal"},
	"ocean": {"ocean", "sea", "water", "waves", "beach", "coast", "marine", "oceanic", "surf"},
	"sea":   {"sea", "ocean", "water", "waves", "maritime", "marine", "seashore"},
	"lake":  {"lake", "pond", "water", "reservoir", "lagoon"},
	"river": {"river", "stream", "creek", "brook", "waterway", "water"},
	"beach": {"beach", "shore", "coast", "sand", "seaside", "shoreline", "seashore", "sandy beach"},
	"waves": {"waves", "surf", "tide", "swell", "breakers", "ocean", "sea"},

	// Sky and weather
	"sunset":  {"sunset", "dusk", "evening", "golden hour", "orange sky", "twilight", "sundown"},
	"sunrise": {"sunrise", "dawn", "morning", "golden hour", "daybreak", "first light"},
	"sky":     {"sky", "clouds", "heavens", "atmosphere", "air", "firmament"},
	"clouds":  {"clouds", "cloudy", "overcast", "sky", "cumulus", "storm clouds"},
	"night":   {"night", "nighttime", "dark", "evening", "nocturnal", "darkness", "after dark"},
	"day":     {"day", "daytime", "daylight", "bright", "sunny", "afternoon", "morning"},
	"sunny":   {"sunny", "bright", "sunshine", "sun", "clear", "sunlight"},
	"fog":     {"fog", "foggy", "mist", "misty", "haze", "hazy"},
	"rain":    {"rain", "rainy", "wet", "drizzle", "storm", "precipitation"},
	"snow":    {"snow", "snowy", "winter", "ice", "icy", "frost", "frozen"},

	// Landscapes and terrain
	"landscape": {"landscape", "scenery", "vista", "view", "panorama", "scene", "scenic"},
	"mountain":  {"mountain", "mountains", "peak", "summit", "hill", "alpine", "mountain range"},
	"hill":      {"hill", "hills", "hillside", "slope", "mountain", "rolling hills"},
	"forest":    {"forest", "woods", "trees", "woodland", "wooded", "nature", "timber"},
	"tree":      {"tree", "trees", "forest", "woods", "foliage", "branches"},
	"desert":    {"desert", "arid", "sand dunes", "barren", "dry"},
	"canyon":    {"canyon", "gorge", "ravine", "valley", "cliff"},
	"valley":    {"valley", "basin", "canyon", "gorge", "dale"},

	// Nature and plants
	"nature": {"nature", "natural", "outdoors", "wildlife", "wild", "environment"},
	"flower": {"flower", "flowers", "blossom", "bloom", "floral", "botanical"},
	"grass":  {"grass", "lawn", "meadow", "field", "green", "grassland"},
	"field":  {"field", "meadow", "prairie", "grassland", "farmland", "pasture"},

	// Architecture and built environment
	"building": {"building", "architecture", "structure", "construction", "edifice", "house"},
	"house":    {"house", "home", "building", "residence", "dwelling", "cabin", "cottage"},
	"city":     {"city", "urban", "downtown", "metropolitan", "cityscape", "town"},
	"urban":    {"urban", "city", "metropolitan", "downtown", "cityscape"},
	"street":   {"street", "road", "avenue", "alley", "path", "lane"},
	"bridge":   {"bridge", "overpass", "crossing", "span", "viaduct"},
	"tower":    {"tower", "spire", "monument", "structure", "tall building"},
	"church":   {"church", "cathedral", "chapel", "temple", "religious building"},

	// Watercraft and docks
	"boat":  {"boat", "ship", "vessel", "watercraft", "sailing", "yacht", "sailboat"},
	"ship":  {"ship", "boat", "vessel", "watercraft", "maritime"},
	"canoe": {"canoe", "kayak", "boat", "paddle", "watercraft"},
	"kayak": {"kayak", "canoe", "boat", "paddle", "watercraft"},
	"pier":  {"pier", "dock", "wharf", "jetty", "boardwalk", "marina"},
	"dock":  {"dock", "pier", "wharf", "marina", "harbor", "port"},

	// Animals and wildlife
	"bird":     {"bird", "birds", "seagull", "eagle", "hawk", "wildlife", "avian", "feather"},
	"seagull":  {"seagull", "bird", "gull", "seabird", "coastal bird"},
	"wildlife": {"wildlife", "animal", "animals", "creature", "fauna", "wild"},
	"animal":   {"animal", "animals", "wildlife", "creature", "fauna", "beast"},
	"dog":      {"dog", "canine", "puppy", "pet", "hound"},
	"fish":     {"fish", "fishing", "marine life", "seafood", "aquatic"},

	// People and activities
	"person":   {"person", "people", "human", "man", "woman", "figure", "portrait"},
	"people":   {"people", "person", "humans", "crowd", "group", "folk"},
	"crowd":    {"crowd", "people", "group", "gathering", "mass", "throng"},
	"portrait": {"portrait", "person", "people", "face", "headshot", "photograph"},
	"walking":  {"walking", "strolling", "hiking", "pedestrian", "moving"},
	"hiking":   {"hiking", "walking", "trekking", "trail", "outdoor"},
	"swimming": {"swimming", "swim", "water", "beach", "pool"},
	"surfing":  {"surfing", "surf", "waves", "ocean", "beach", "water sport"},

	// Vehicles
	"car":      {"car", "vehicle", "automobile", "auto", "motor vehicle"},
	"vehicle":  {"vehicle", "car", "automobile", "transportation", "transport"},
	"bike":     {"bike", "bicycle", "cycling", "two-wheeler"},
	"airplane": {"airplane", "plane", "aircraft", "jet", "aviation"},
	"drone":    {"drone", "aerial", "UAV", "quadcopter", "unmanned"},

	// Composition and perspective
	"aerial":   {"aerial", "drone", "overhead", "bird's eye view", "top-down", "from above"},
	"closeup":  {"closeup", "close-up", "macro", "detail", "zoom"},
	"panorama": {"panorama", "panoramic", "wide", "vista", "landscape", "view"},

	// Lighting and time
	"golden hour": {"golden hour", "sunset", "sunrise", "dusk", "dawn", "magic hour"},
	"blue hour":   {"blue hour", "twilight", "dusk", "dawn", "evening"},
	"dark":        {"dark", "darkness", "night", "shadow", "dim", "low light"},
	"bright":      {"bright", "light", "sunny", "illuminated", "brilliant"},
	"shadow":      {"shadow", "shadows", "shade", "silhouette", "dark"},

	// Colors
	"blue":   {"blue", "azure", "teal", "turquoise", "cyan", "navy"},
	"green":  {"green", "emerald", "lime", "forest green", "verdant"},
	"red":    {"red", "crimson", "scarlet", "ruby", "cherry"},
	"orange": {"orange", "amber", "tangerine", "golden", "rust"},
	"yellow": {"yellow", "gold", "golden", "amber", "sunshine"},
	"purple": {"purple", "violet", "lavender", "plum", "magenta"},
	"pink":   {"pink", "rose", "blush", "magenta", "fuchsia"},

	// Mood and atmosphere
	"peaceful":  {"peaceful", "calm", "serene", "tranquil", "quiet", "still"},
	"calm":      {"calm", "peaceful", "serene", "tranquil", "still", "relaxed"},
	"serene":    {"serene", "peaceful", "calm", "tranquil", "quiet"},
	"dramatic":  {"dramatic", "striking", "bold", "intense", "powerful", "moody"},
	"beautiful": {"beautiful", "scenic", "pretty", "gorgeous", "stunning", "lovely"},
	"colorful":  {"colorful", "vibrant", "bright", "vivid", "chromatic"},

	// Seasons
	"summer": {"summer", "summertime", "warm", "hot", "sunny"},
	"winter": {"winter", "cold", "snow", "ice", "frozen", "wintry"},
	"autumn": {"autumn", "fall", "autumn leaves", "fall colors", "foliage"},
	"fall":   {"fall", "autumn", "fall colors", "leaves", "foliage"},
	"spring": {"spring", "springtime", "blossom", "bloom", "flowers"},

	// Reflections and effects
	"reflection": {"reflection", "mirror", "reflected", "water reflection"},
	"silhouette": {"silhouette", "outline", "shadow", "backlit", "profile"},
}

// ProjectSynonyms maps software project query words to related terms.
var ProjectSynonyms = text.Thesaurus{
	// Frontend technologies
	"frontend": {"ui", "client", "client-side", "react", "vue", "angular", "interface", "web", "browser", "component"},
	"ui":       {"frontend", "interface", "user interface", "design", "component", "view"},
	"react":    {"frontend", "ui", "component", "jsx", "nextjs", "next.js"},
	"nextjs":   {"react", "frontend", "next.js", "server-side rendering", "ssr"},
	"vue":      {"frontend", "ui", "component", "vuejs"},
	"angular":  {"frontend", "ui", "component", "typescript"},

	// Backend technologies
	"backend":  {"server", "api", "database", "node", "python", "rest", "server-side", "backend"},
	"api":      {"backend", "rest", "endpoint", "server", "service", "http"},
	"rest":     {"api", "restful", "http", "endpoint", "web service"},
	"nodejs":   {"backend", "node.js", "javascript", "server", "express"},
	"python":   {"backend", "django", "flask", "fastapi", "server"},
	"database": {"backend", "sql", "nosql", "data", "storage", "db"},

	// Full stack
	"fullstack":  {"full-stack", "end-to-end", "complete", "frontend", "backend", "full stack"},
	"full-stack": {"fullstack", "end-to-end", "complete", "frontend", "backend"},

	// AI and machine learning
	"ai":               {"ml", "machine learning", "artificial intelligence", "neural", "gpt", "llm", "model", "deep learning"},
	"ml":               {"ai", "machine learning", "model", "training", "neural", "data science"},
	"machine learning": {"ai", "ml", "neural", "model", "training", "deep learning"},
	"gpt":              {"ai", "llm", "openai", "language model", "chatgpt"},
	"llm":              {"ai", "gpt", "language model", "openai", "transformer"},
	"neural":           {"ai", "ml", "neural network", "deep learning", "model"},

	// Mobile
	"mobile":  {"ios", "android", "app", "react native", "flutter", "mobile app"},
	"ios":     {"mobile", "iphone", "ipad", "swift", "apple"},
	"android": {"mobile", "kotlin", "java", "google"},

	// Databases
	"sql":        {"database", "postgresql", "mysql", "sqlite", "relational"},
	"nosql":      {"database", "mongodb", "firebase", "non-relational"},
	"postgresql": {"database", "sql", "postgres", "relational"},
	"mongodb":    {"database", "nosql", "mongo", "document"},
	"sqlite":     {"database", "sql", "embedded"},

	// DevOps and tools
	"docker":     {"devops", "container", "containerization", "deployment"},
	"aws":        {"cloud", "amazon", "devops", "deployment"},
	"cloud":      {"aws", "azure", "gcp", "devops", "deployment"},
	"deployment": {"devops", "cloud", "docker", "production"},

	// Real-time
	"realtime":  {"websocket", "real-time", "live", "socket", "instant"},
	"websocket": {"realtime", "socket.io", "live", "connection"},
	"chat":      {"messaging", "realtime", "communication", "conversation"},

	// Authentication
	"auth":           {"authentication", "authorization", "login", "security", "jwt"},
	"authentication": {"auth", "login", "security", "user", "session"},
	"jwt":            {"auth", "token", "authentication", "authorization"},

	// Search
	"search":   {"query", "find", "filter", "lookup", "semantic"},
	"semantic": {"ai", "search", "embedding", "meaning", "nlp"},

	// Visualization
	"visualization": {"chart", "graph", "dashboard", "d3", "data viz"},
	"dashboard":     {"visualization", "analytics", "metrics", "admin"},

	// General concepts
	"app":        {"application", "web app", "software", "program"},
	"web":        {"website", "frontend", "internet", "online"},
	"automation": {"script", "task", "workflow", "bot"},
}
