package emoji

// The base dataset. This is deliberately a curated subset rather than the
// full unicode emoji table: the picker is aimed at chat composing, where a
// few hundred well-keyworded entries cover nearly all use.

type baseCategory struct {
	id     string
	name   string
	emojis []Emoji
}

var baseCategories = []baseCategory{
	{
		id:   "smileys",
		name: "Smileys",
		emojis: []Emoji{
			{ID: "grinning", Name: "Grinning Face", Native: "😀", Keywords: []string{"smile", "happy", "joy"}},
			{ID: "smiley", Name: "Smiling Face with Open Mouth", Native: "😃", Keywords: []string{"smile", "happy"}},
			{ID: "grin", Name: "Grinning Face with Smiling Eyes", Native: "😁", Keywords: []string{"smile", "happy"}},
			{ID: "joy", Name: "Face with Tears of Joy", Native: "😂", Keywords: []string{"laugh", "lol", "funny"}},
			{ID: "rofl", Name: "Rolling on the Floor Laughing", Native: "🤣", Keywords: []string{"laugh", "lol", "funny"}},
			{ID: "sweat_smile", Name: "Smiling Face with Sweat", Native: "😅", Keywords: []string{"nervous", "relief"}},
			{ID: "wink", Name: "Winking Face", Native: "😉", Keywords: []string{"flirt", "playful"}},
			{ID: "blush", Name: "Smiling Face with Smiling Eyes", Native: "😊", Keywords: []string{"shy", "happy", "proud"}},
			{ID: "innocent", Name: "Smiling Face with Halo", Native: "😇", Keywords: []string{"angel", "halo"}},
			{ID: "heart_eyes", Name: "Smiling Face with Heart-Eyes", Native: "😍", Keywords: []string{"love", "crush"}},
			{ID: "star_struck", Name: "Star-Struck", Native: "🤩", Keywords: []string{"wow", "eyes", "stars"}},
			{ID: "kissing_heart", Name: "Face Blowing a Kiss", Native: "😘", Keywords: []string{"love", "kiss"}},
			{ID: "thinking", Name: "Thinking Face", Native: "🤔", Keywords: []string{"hmm", "consider", "ponder"}},
			{ID: "neutral_face", Name: "Neutral Face", Native: "😐", Keywords: []string{"meh", "blank"}},
			{ID: "roll_eyes", Name: "Face with Rolling Eyes", Native: "🙄", Keywords: []string{"eyeroll", "annoyed"}},
			{ID: "smirk", Name: "Smirking Face", Native: "😏", Keywords: []string{"smug", "sly"}},
			{ID: "relieved", Name: "Relieved Face", Native: "😌", Keywords: []string{"calm", "phew"}},
			{ID: "sleeping", Name: "Sleeping Face", Native: "😴", Keywords: []string{"tired", "zzz", "sleep"}},
			{ID: "cry", Name: "Crying Face", Native: "😢", Keywords: []string{"sad", "tear"}},
			{ID: "sob", Name: "Loudly Crying Face", Native: "😭", Keywords: []string{"sad", "bawling", "tears"}},
			{ID: "scream", Name: "Face Screaming in Fear", Native: "😱", Keywords: []string{"shocked", "horror", "munch"}},
			{ID: "angry", Name: "Angry Face", Native: "😠", Keywords: []string{"mad", "annoyed"}},
			{ID: "rage", Name: "Pouting Face", Native: "😡", Keywords: []string{"mad", "furious", "angry"}},
			{ID: "exploding_head", Name: "Exploding Head", Native: "🤯", Keywords: []string{"mind", "blown", "shocked"}},
			{ID: "sunglasses", Name: "Smiling Face with Sunglasses", Native: "😎", Keywords: []string{"cool", "shades"}},
			{ID: "nerd", Name: "Nerd Face", Native: "🤓", Keywords: []string{"geek", "glasses"}},
			{ID: "upside_down", Name: "Upside-Down Face", Native: "🙃", Keywords: []string{"silly", "sarcasm"}},
			{ID: "zipper_mouth", Name: "Zipper-Mouth Face", Native: "🤐", Keywords: []string{"secret", "sealed", "quiet"}},
			{ID: "melting", Name: "Melting Face", Native: "🫠", Keywords: []string{"embarrassed", "hot", "disappear"}},
			{ID: "saluting", Name: "Saluting Face", Native: "🫡", Keywords: []string{"salute", "respect", "o7"}},
		},
	},
	{
		id:   "gestures",
		name: "Gestures",
		emojis: []Emoji{
			{ID: "wave_hand", Name: "Waving Hand", Native: "👋", Keywords: []string{"hello", "goodbye", "hi"}},
			{ID: "thumbsup", Name: "Thumbs Up", Native: "👍", Keywords: []string{"+1", "approve", "yes", "like"}},
			{ID: "thumbsdown", Name: "Thumbs Down", Native: "👎", Keywords: []string{"-1", "disapprove", "no"}},
			{ID: "ok_hand", Name: "OK Hand", Native: "👌", Keywords: []string{"okay", "perfect"}},
			{ID: "clap", Name: "Clapping Hands", Native: "👏", Keywords: []string{"applause", "bravo", "congrats"}},
			{ID: "raised_hands", Name: "Raising Hands", Native: "🙌", Keywords: []string{"hooray", "celebrate", "praise"}},
			{ID: "pray", Name: "Folded Hands", Native: "🙏", Keywords: []string{"please", "thanks", "hope"}},
			{ID: "handshake", Name: "Handshake", Native: "🤝", Keywords: []string{"deal", "agreement"}},
			{ID: "crossed_fingers", Name: "Crossed Fingers", Native: "🤞", Keywords: []string{"luck", "hope"}},
			{ID: "muscle", Name: "Flexed Biceps", Native: "💪", Keywords: []string{"strong", "flex", "gym"}},
			{ID: "point_up", Name: "Index Pointing Up", Native: "☝️", Keywords: []string{"this", "attention"}},
			{ID: "point_right", Name: "Backhand Index Pointing Right", Native: "👉", Keywords: []string{"direction", "this"}},
			{ID: "victory", Name: "Victory Hand", Native: "✌️", Keywords: []string{"peace", "two"}},
			{ID: "shrug", Name: "Person Shrugging", Native: "🤷", Keywords: []string{"dunno", "whatever", "idk"}},
			{ID: "facepalm", Name: "Person Facepalming", Native: "🤦", Keywords: []string{"doh", "smh"}},
			{ID: "writing_hand", Name: "Writing Hand", Native: "✍️", Keywords: []string{"write", "note", "sign"}},
		},
	},
	{
		id:   "hearts",
		name: "Hearts",
		emojis: []Emoji{
			{ID: "heart", Name: "Red Heart", Native: "❤️", Keywords: []string{"love", "like"}},
			{ID: "orange_heart", Name: "Orange Heart", Native: "🧡", Keywords: []string{"love"}},
			{ID: "yellow_heart", Name: "Yellow Heart", Native: "💛", Keywords: []string{"love", "friendship"}},
			{ID: "green_heart", Name: "Green Heart", Native: "💚", Keywords: []string{"love", "nature"}},
			{ID: "blue_heart", Name: "Blue Heart", Native: "💙", Keywords: []string{"love", "trust"}},
			{ID: "purple_heart", Name: "Purple Heart", Native: "💜", Keywords: []string{"love"}},
			{ID: "black_heart", Name: "Black Heart", Native: "🖤", Keywords: []string{"dark", "love"}},
			{ID: "broken_heart", Name: "Broken Heart", Native: "💔", Keywords: []string{"sad", "breakup"}},
			{ID: "sparkling_heart", Name: "Sparkling Heart", Native: "💖", Keywords: []string{"love", "sparkle"}},
			{ID: "heartpulse", Name: "Growing Heart", Native: "💗", Keywords: []string{"love", "growing"}},
			{ID: "two_hearts", Name: "Two Hearts", Native: "💕", Keywords: []string{"love", "affection"}},
		},
	},
	{
		id:   "animals",
		name: "Animals & Nature",
		emojis: []Emoji{
			{ID: "dog", Name: "Dog Face", Native: "🐶", Keywords: []string{"puppy", "pet"}},
			{ID: "cat", Name: "Cat Face", Native: "🐱", Keywords: []string{"kitten", "pet"}},
			{ID: "mouse", Name: "Mouse Face", Native: "🐭", Keywords: []string{"rodent"}},
			{ID: "fox", Name: "Fox", Native: "🦊", Keywords: []string{"clever"}},
			{ID: "bear", Name: "Bear", Native: "🐻", Keywords: []string{"grizzly"}},
			{ID: "panda", Name: "Panda", Native: "🐼", Keywords: []string{"bamboo"}},
			{ID: "penguin", Name: "Penguin", Native: "🐧", Keywords: []string{"bird", "linux"}},
			{ID: "owl", Name: "Owl", Native: "🦉", Keywords: []string{"bird", "wise", "night"}},
			{ID: "butterfly", Name: "Butterfly", Native: "🦋", Keywords: []string{"insect", "pretty"}},
			{ID: "turtle", Name: "Turtle", Native: "🐢", Keywords: []string{"slow", "tortoise"}},
			{ID: "octopus", Name: "Octopus", Native: "🐙", Keywords: []string{"sea", "tentacles"}},
			{ID: "whale", Name: "Spouting Whale", Native: "🐳", Keywords: []string{"sea", "ocean"}},
			{ID: "seedling", Name: "Seedling", Native: "🌱", Keywords: []string{"plant", "grow", "new"}},
			{ID: "evergreen", Name: "Evergreen Tree", Native: "🌲", Keywords: []string{"tree", "forest"}},
			{ID: "sunflower", Name: "Sunflower", Native: "🌻", Keywords: []string{"flower", "yellow"}},
			{ID: "rose", Name: "Rose", Native: "🌹", Keywords: []string{"flower", "romance"}},
		},
	},
	{
		id:   "food",
		name: "Food & Drink",
		emojis: []Emoji{
			{ID: "apple", Name: "Red Apple", Native: "🍎", Keywords: []string{"fruit"}},
			{ID: "banana", Name: "Banana", Native: "🍌", Keywords: []string{"fruit"}},
			{ID: "lemon", Name: "Lemon", Native: "🍋", Keywords: []string{"fruit", "sour"}},
			{ID: "watermelon", Name: "Watermelon", Native: "🍉", Keywords: []string{"fruit", "summer"}},
			{ID: "avocado", Name: "Avocado", Native: "🥑", Keywords: []string{"fruit", "toast"}},
			{ID: "pizza", Name: "Pizza", Native: "🍕", Keywords: []string{"slice", "cheese"}},
			{ID: "hamburger", Name: "Hamburger", Native: "🍔", Keywords: []string{"burger", "fast food"}},
			{ID: "taco", Name: "Taco", Native: "🌮", Keywords: []string{"mexican"}},
			{ID: "sushi", Name: "Sushi", Native: "🍣", Keywords: []string{"japanese", "fish"}},
			{ID: "ramen", Name: "Steaming Bowl", Native: "🍜", Keywords: []string{"noodles", "soup"}},
			{ID: "cake", Name: "Shortcake", Native: "🍰", Keywords: []string{"dessert", "sweet"}},
			{ID: "birthday", Name: "Birthday Cake", Native: "🎂", Keywords: []string{"party", "celebration"}},
			{ID: "cookie", Name: "Cookie", Native: "🍪", Keywords: []string{"dessert", "sweet"}},
			{ID: "coffee", Name: "Hot Beverage", Native: "☕", Keywords: []string{"tea", "caffeine", "morning"}},
			{ID: "beer", Name: "Beer Mug", Native: "🍺", Keywords: []string{"drink", "pub"}},
			{ID: "clinking_glasses", Name: "Clinking Glasses", Native: "🥂", Keywords: []string{"cheers", "toast", "celebrate"}},
		},
	},
	{
		id:   "activities",
		name: "Activities",
		emojis: []Emoji{
			{ID: "soccer", Name: "Soccer Ball", Native: "⚽", Keywords: []string{"football", "sport"}},
			{ID: "basketball", Name: "Basketball", Native: "🏀", Keywords: []string{"sport", "hoop"}},
			{ID: "tennis", Name: "Tennis", Native: "🎾", Keywords: []string{"sport", "racket"}},
			{ID: "video_game", Name: "Video Game", Native: "🎮", Keywords: []string{"controller", "gaming", "play"}},
			{ID: "dart", Name: "Bullseye", Native: "🎯", Keywords: []string{"target", "goal", "aim"}},
			{ID: "guitar", Name: "Guitar", Native: "🎸", Keywords: []string{"music", "rock"}},
			{ID: "microphone", Name: "Microphone", Native: "🎤", Keywords: []string{"sing", "karaoke"}},
			{ID: "art", Name: "Artist Palette", Native: "🎨", Keywords: []string{"paint", "design", "creative"}},
			{ID: "tada", Name: "Party Popper", Native: "🎉", Keywords: []string{"party", "celebrate", "congrats"}},
			{ID: "confetti_ball", Name: "Confetti Ball", Native: "🎊", Keywords: []string{"party", "celebrate"}},
			{ID: "trophy", Name: "Trophy", Native: "🏆", Keywords: []string{"win", "award", "champion"}},
			{ID: "medal", Name: "Sports Medal", Native: "🏅", Keywords: []string{"win", "award"}},
		},
	},
	{
		id:   "travel",
		name: "Travel & Places",
		emojis: []Emoji{
			{ID: "rocket", Name: "Rocket", Native: "🚀", Keywords: []string{"launch", "ship", "space", "fast"}},
			{ID: "airplane", Name: "Airplane", Native: "✈️", Keywords: []string{"flight", "travel"}},
			{ID: "car", Name: "Automobile", Native: "🚗", Keywords: []string{"drive", "vehicle"}},
			{ID: "bike", Name: "Bicycle", Native: "🚲", Keywords: []string{"cycle", "ride"}},
			{ID: "train", Name: "High-Speed Train", Native: "🚄", Keywords: []string{"rail", "travel"}},
			{ID: "ship", Name: "Ship", Native: "🚢", Keywords: []string{"boat", "sea", "cruise"}},
			{ID: "house", Name: "House", Native: "🏠", Keywords: []string{"home", "building"}},
			{ID: "office", Name: "Office Building", Native: "🏢", Keywords: []string{"work", "building"}},
			{ID: "mountain", Name: "Snow-Capped Mountain", Native: "🏔️", Keywords: []string{"peak", "hike"}},
			{ID: "beach", Name: "Beach with Umbrella", Native: "🏖️", Keywords: []string{"vacation", "sand", "sea"}},
			{ID: "world_map", Name: "World Map", Native: "🗺️", Keywords: []string{"travel", "geography"}},
			{ID: "sunrise", Name: "Sunrise", Native: "🌅", Keywords: []string{"morning", "dawn"}},
		},
	},
	{
		id:   "objects",
		name: "Objects",
		emojis: []Emoji{
			{ID: "laptop", Name: "Laptop", Native: "💻", Keywords: []string{"computer", "work", "code"}},
			{ID: "keyboard", Name: "Keyboard", Native: "⌨️", Keywords: []string{"type", "computer"}},
			{ID: "phone", Name: "Mobile Phone", Native: "📱", Keywords: []string{"smartphone", "call"}},
			{ID: "bulb", Name: "Light Bulb", Native: "💡", Keywords: []string{"idea", "light"}},
			{ID: "wrench", Name: "Wrench", Native: "🔧", Keywords: []string{"tool", "fix"}},
			{ID: "hammer", Name: "Hammer", Native: "🔨", Keywords: []string{"tool", "build"}},
			{ID: "gear", Name: "Gear", Native: "⚙️", Keywords: []string{"settings", "cog"}},
			{ID: "lock", Name: "Locked", Native: "🔒", Keywords: []string{"secure", "private"}},
			{ID: "key", Name: "Key", Native: "🔑", Keywords: []string{"password", "unlock"}},
			{ID: "mag", Name: "Magnifying Glass", Native: "🔍", Keywords: []string{"search", "find", "zoom"}},
			{ID: "book", Name: "Open Book", Native: "📖", Keywords: []string{"read", "docs"}},
			{ID: "memo", Name: "Memo", Native: "📝", Keywords: []string{"note", "write", "todo"}},
			{ID: "calendar", Name: "Calendar", Native: "📅", Keywords: []string{"date", "schedule"}},
			{ID: "package", Name: "Package", Native: "📦", Keywords: []string{"box", "shipping", "release"}},
			{ID: "envelope", Name: "Envelope", Native: "✉️", Keywords: []string{"mail", "letter", "email"}},
			{ID: "hourglass", Name: "Hourglass Not Done", Native: "⏳", Keywords: []string{"time", "wait"}},
			{ID: "battery", Name: "Battery", Native: "🔋", Keywords: []string{"power", "charge"}},
			{ID: "bug", Name: "Bug", Native: "🐛", Keywords: []string{"insect", "error", "issue"}},
		},
	},
	{
		id:   "symbols",
		name: "Symbols",
		emojis: []Emoji{
			{ID: "fire", Name: "Fire", Native: "🔥", Keywords: []string{"hot", "lit", "flame"}},
			{ID: "sparkles", Name: "Sparkles", Native: "✨", Keywords: []string{"shiny", "magic", "new"}},
			{ID: "star", Name: "Star", Native: "⭐", Keywords: []string{"favorite", "rating"}},
			{ID: "zap", Name: "High Voltage", Native: "⚡", Keywords: []string{"lightning", "fast", "electric"}},
			{ID: "boom", Name: "Collision", Native: "💥", Keywords: []string{"explosion", "bang"}},
			{ID: "hundred", Name: "Hundred Points", Native: "💯", Keywords: []string{"100", "perfect", "score"}},
			{ID: "check", Name: "Check Mark Button", Native: "✅", Keywords: []string{"done", "yes", "approved"}},
			{ID: "x", Name: "Cross Mark", Native: "❌", Keywords: []string{"no", "wrong", "delete"}},
			{ID: "warning", Name: "Warning", Native: "⚠️", Keywords: []string{"caution", "alert"}},
			{ID: "question", Name: "Red Question Mark", Native: "❓", Keywords: []string{"ask", "confused"}},
			{ID: "exclamation", Name: "Red Exclamation Mark", Native: "❗", Keywords: []string{"important", "attention"}},
			{ID: "arrow_right", Name: "Right Arrow", Native: "➡️", Keywords: []string{"next", "forward"}},
			{ID: "recycle", Name: "Recycling Symbol", Native: "♻️", Keywords: []string{"green", "reuse"}},
			{ID: "infinity", Name: "Infinity", Native: "♾️", Keywords: []string{"forever", "endless"}},
			{ID: "eyes", Name: "Eyes", Native: "👀", Keywords: []string{"look", "watching", "see"}},
			{ID: "speech_balloon", Name: "Speech Balloon", Native: "💬", Keywords: []string{"chat", "message", "talk"}},
		},
	},
}

// Base builds a fresh copy of the base dataset. Callers may hand the result
// to the composer; the shared literals above are never mutated.
func Base() *Data {
	d := &Data{
		Categories: make([]Category, 0, len(baseCategories)),
		Emojis:     make(map[string]Emoji),
	}
	for _, bc := range baseCategories {
		cat := Category{ID: bc.id, Name: bc.name, EmojiIDs: make([]string, 0, len(bc.emojis))}
		for _, e := range bc.emojis {
			cat.EmojiIDs = append(cat.EmojiIDs, e.ID)
			d.Emojis[e.ID] = e
		}
		d.Categories = append(d.Categories, cat)
	}
	return d
}
