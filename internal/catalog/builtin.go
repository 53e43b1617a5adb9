package catalog

// Builtin returns the built-in card set: 11 categories of first-words
// flashcards for toddlers.
func Builtin() *Catalog {
	return New(builtinCategories, map[string][]Card{
		"alphabet":     alphabetCards,
		"numbers":      numberCards,
		"colors":       colorCards,
		"shapes":       shapeCards,
		"sizes":        sizeCards,
		"vegetables":   vegetableCards,
		"fruits":       fruitCards,
		"body":         bodyCards,
		"wild_animals": wildAnimalCards,
		"birds":        birdCards,
		"vehicles":     vehicleCards,
	})
}

var builtinCategories = []Category{
	{ID: "alphabet", Label: "Alphabet", Icon: "🔤"},
	{ID: "numbers", Label: "Numbers", Icon: "🔢"},
	{ID: "colors", Label: "Colors", Icon: "🎨"},
	{ID: "shapes", Label: "Shapes", Icon: "🟠"},
	{ID: "sizes", Label: "Sizes", Icon: "📏"},
	{ID: "vegetables", Label: "Vegetables", Icon: "🥕"},
	{ID: "fruits", Label: "Fruits", Icon: "🍓"},
	{ID: "body", Label: "Know Your Body", Icon: "🧍"},
	{ID: "wild_animals", Label: "Wild Animals", Icon: "🦁"},
	{ID: "birds", Label: "Birds", Icon: "🦜"},
	{ID: "vehicles", Label: "Vehicles", Icon: "🚗"},
}

var alphabetCards = []Card{
	{ID: "a", Value: "A", Title: "Apple", Subtitle: "A for Apple", Emoji: "🍎", AudioLabel: "A for Apple", Colors: [2]string{"#ffd9de", "#fff0e8"}},
	{ID: "b", Value: "B", Title: "Ball", Subtitle: "B for Ball", Emoji: "🏀", AudioLabel: "B for Ball", Colors: [2]string{"#a1c4fd", "#c2e9fb"}},
	{ID: "c", Value: "C", Title: "Cat", Subtitle: "C for Cat", Emoji: "🐱", AudioLabel: "C for Cat", Colors: [2]string{"#fbc2eb", "#a6c1ee"}},
	{ID: "d", Value: "D", Title: "Dog", Subtitle: "D for Dog", Emoji: "🐶", AudioLabel: "D for Dog", Colors: [2]string{"#fddb92", "#d1fdff"}},
	{ID: "e", Value: "E", Title: "Elephant", Subtitle: "E for Elephant", Emoji: "🐘", AudioLabel: "E for Elephant", Colors: [2]string{"#cfd9df", "#e2ebf0"}},
	{ID: "f", Value: "F", Title: "Fish", Subtitle: "F for Fish", Emoji: "🐟", AudioLabel: "F for Fish", Colors: [2]string{"#84fab0", "#8fd3f4"}},
	{ID: "g", Value: "G", Title: "Giraffe", Subtitle: "G for Giraffe", Emoji: "🦒", AudioLabel: "G for Giraffe", Colors: [2]string{"#fa709a", "#fee140"}},
	{ID: "h", Value: "H", Title: "House", Subtitle: "H for House", Emoji: "🏠", AudioLabel: "H for House", Colors: [2]string{"#30cfd0", "#330867"}},
	{ID: "i", Value: "I", Title: "Ice cream", Subtitle: "I for Ice cream", Emoji: "🍦", AudioLabel: "I for Ice cream", Colors: [2]string{"#ffecd2", "#fcb69f"}},
	{ID: "j", Value: "J", Title: "Juice", Subtitle: "J for Juice", Emoji: "🧃", AudioLabel: "J for Juice", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "k", Value: "K", Title: "Kite", Subtitle: "K for Kite", Emoji: "🪁", AudioLabel: "K for Kite", Colors: [2]string{"#a8edea", "#fed6e3"}},
	{ID: "l", Value: "L", Title: "Lion", Subtitle: "L for Lion", Emoji: "🦁", AudioLabel: "L for Lion", Colors: [2]string{"#fdfbfb", "#ebedee"}},
	{ID: "m", Value: "M", Title: "Moon", Subtitle: "M for Moon", Emoji: "🌙", AudioLabel: "M for Moon", Colors: [2]string{"#d4fc79", "#96e6a1"}},
	{ID: "n", Value: "N", Title: "Nest", Subtitle: "N for Nest", Emoji: "🪺", AudioLabel: "N for Nest", Colors: [2]string{"#e0c3fc", "#8ec5fc"}},
	{ID: "o", Value: "O", Title: "Orange", Subtitle: "O for Orange", Emoji: "🍊", AudioLabel: "O for Orange", Colors: [2]string{"#f093fb", "#f5576c"}},
	{ID: "p", Value: "P", Title: "Penguin", Subtitle: "P for Penguin", Emoji: "🐧", AudioLabel: "P for Penguin", Colors: [2]string{"#4facfe", "#00f2fe"}},
	{ID: "q", Value: "Q", Title: "Quilt", Subtitle: "Q for Quilt", Emoji: "🧵", AudioLabel: "Q for Quilt", Colors: [2]string{"#43e97b", "#38f9d7"}},
	{ID: "r", Value: "R", Title: "Rainbow", Subtitle: "R for Rainbow", Emoji: "🌈", AudioLabel: "R for Rainbow", Colors: [2]string{"#fa709a", "#fee140"}},
	{ID: "s", Value: "S", Title: "Sun", Subtitle: "S for Sun", Emoji: "☀️", AudioLabel: "S for Sun", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "t", Value: "T", Title: "Tiger", Subtitle: "T for Tiger", Emoji: "🐯", AudioLabel: "T for Tiger", Colors: [2]string{"#fbc2eb", "#a6c1ee"}},
	{ID: "u", Value: "U", Title: "Umbrella", Subtitle: "U for Umbrella", Emoji: "☂️", AudioLabel: "U for Umbrella", Colors: [2]string{"#89f7fe", "#66a6ff"}},
	{ID: "v", Value: "V", Title: "Violin", Subtitle: "V for Violin", Emoji: "🎻", AudioLabel: "V for Violin", Colors: [2]string{"#fdfcfb", "#e2d1c3"}},
	{ID: "w", Value: "W", Title: "Whale", Subtitle: "W for Whale", Emoji: "🐳", AudioLabel: "W for Whale", Colors: [2]string{"#a1c4fd", "#c2e9fb"}},
	{ID: "x", Value: "X", Title: "Xylophone", Subtitle: "X for Xylophone", Emoji: "🎶", AudioLabel: "X for Xylophone", Colors: [2]string{"#d299c2", "#fef9d7"}},
	{ID: "y", Value: "Y", Title: "Yoyo", Subtitle: "Y for Yoyo", Emoji: "🪀", AudioLabel: "Y for Yoyo", Colors: [2]string{"#fddb92", "#d1fdff"}},
	{ID: "z", Value: "Z", Title: "Zebra", Subtitle: "Z for Zebra", Emoji: "🦓", AudioLabel: "Z for Zebra", Colors: [2]string{"#84fab0", "#8fd3f4"}},
}

var numberCards = []Card{
	{ID: "1", Value: "1", Title: "One", Subtitle: "1 is One", Emoji: "🐻", AudioLabel: "One", Colors: [2]string{"#fddb92", "#d1fdff"}},
	{ID: "2", Value: "2", Title: "Two", Subtitle: "2 is Two", Emoji: "🦆🦆", AudioLabel: "Two", Colors: [2]string{"#a1c4fd", "#c2e9fb"}},
	{ID: "3", Value: "3", Title: "Three", Subtitle: "3 is Three", Emoji: "🚗🚗🚗", AudioLabel: "Three", Colors: [2]string{"#fbc2eb", "#a6c1ee"}},
	{ID: "4", Value: "4", Title: "Four", Subtitle: "4 is Four", Emoji: "⭐️⭐️⭐️⭐️", AudioLabel: "Four", Colors: [2]string{"#84fab0", "#8fd3f4"}},
	{ID: "5", Value: "5", Title: "Five", Subtitle: "5 is Five", Emoji: "🍎🍎🍎🍎🍎", AudioLabel: "Five", Colors: [2]string{"#ff9a9e", "#fad0c4"}},
	{ID: "6", Value: "6", Title: "Six", Subtitle: "6 is Six", Emoji: "🎈🎈🎈🎈🎈🎈", AudioLabel: "Six", Colors: [2]string{"#d299c2", "#fef9d7"}},
	{ID: "7", Value: "7", Title: "Seven", Subtitle: "7 is Seven", Emoji: "🐠🐠🐠🐠🐠🐠🐠", AudioLabel: "Seven", Colors: [2]string{"#89f7fe", "#66a6ff"}},
	{ID: "8", Value: "8", Title: "Eight", Subtitle: "8 is Eight", Emoji: "🌼🌼🌼🌼🌼🌼🌼🌼", AudioLabel: "Eight", Colors: [2]string{"#43e97b", "#38f9d7"}},
	{ID: "9", Value: "9", Title: "Nine", Subtitle: "9 is Nine", Emoji: "🍪🍪🍪🍪🍪🍪🍪🍪🍪", AudioLabel: "Nine", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "10", Value: "10", Title: "Ten", Subtitle: "10 is Ten", Emoji: "❤️❤️❤️❤️❤️❤️❤️❤️❤️❤️", AudioLabel: "Ten", Colors: [2]string{"#fa709a", "#fee140"}},
}

var colorCards = []Card{
	{ID: "red", Value: "Red", Title: "Red", Subtitle: "This color is Red", Emoji: "🟥", AudioLabel: "Red", Colors: [2]string{"#ff6a6a", "#ffb199"}},
	{ID: "blue", Value: "Blue", Title: "Blue", Subtitle: "This color is Blue", Emoji: "🟦", AudioLabel: "Blue", Colors: [2]string{"#74ebd5", "#9face6"}},
	{ID: "green", Value: "Green", Title: "Green", Subtitle: "This color is Green", Emoji: "🟩", AudioLabel: "Green", Colors: [2]string{"#8fd3a8", "#5ac18e"}},
	{ID: "yellow", Value: "Yellow", Title: "Yellow", Subtitle: "This color is Yellow", Emoji: "🟨", AudioLabel: "Yellow", Colors: [2]string{"#fbd786", "#f7797d"}},
	{ID: "purple", Value: "Purple", Title: "Purple", Subtitle: "This color is Purple", Emoji: "🟪", AudioLabel: "Purple", Colors: [2]string{"#c471f5", "#fa71cd"}},
	{ID: "orange_color", Value: "Orange", Title: "Orange", Subtitle: "This color is Orange", Emoji: "🟧", AudioLabel: "Orange", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "black", Value: "Black", Title: "Black", Subtitle: "This color is Black", Emoji: "⬛", AudioLabel: "Black", Colors: [2]string{"#606c88", "#3f4c6b"}},
	{ID: "white", Value: "White", Title: "White", Subtitle: "This color is White", Emoji: "⬜", AudioLabel: "White", Colors: [2]string{"#fdfbfb", "#ebedee"}},
	{ID: "pink", Value: "Pink", Title: "Pink", Subtitle: "This color is Pink", Emoji: "🩷", AudioLabel: "Pink", Colors: [2]string{"#ff9a9e", "#fecfef"}},
	{ID: "brown", Value: "Brown", Title: "Brown", Subtitle: "This color is Brown", Emoji: "🟫", AudioLabel: "Brown", Colors: [2]string{"#d1913c", "#ffd194"}},
}

var shapeCards = []Card{
	{ID: "circle", Value: "Circle", Title: "Circle", Subtitle: "This is a Circle", Emoji: "⚪", Image: "/assets/photos/shapes/circle.png", AudioLabel: "Circle", Colors: [2]string{"#e0eafc", "#cfdef3"}},
	{ID: "square", Value: "Square", Title: "Square", Subtitle: "This is a Square", Emoji: "⬜", Image: "/assets/photos/shapes/square.png", AudioLabel: "Square", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "triangle", Value: "Triangle", Title: "Triangle", Subtitle: "This is a Triangle", Emoji: "🔺", Image: "/assets/photos/shapes/triangle.png", AudioLabel: "Triangle", Colors: [2]string{"#1d4ed8", "#60a5fa"}},
	{ID: "rectangle", Value: "Rectangle", Title: "Rectangle", Subtitle: "This is a Rectangle", Emoji: "▬", Image: "/assets/photos/shapes/rectangle.png", AudioLabel: "Rectangle", Colors: [2]string{"#89f7fe", "#66a6ff"}},
	{ID: "star", Value: "Star", Title: "Star", Subtitle: "This is a Star", Emoji: "⭐", Image: "/assets/photos/shapes/star.png", AudioLabel: "Star", Colors: [2]string{"#fddb92", "#d1fdff"}},
	{ID: "oval", Value: "Oval", Title: "Oval", Subtitle: "This is an Oval", Emoji: "🥚", Image: "/assets/photos/shapes/oval.png", AudioLabel: "Oval", Colors: [2]string{"#a1c4fd", "#c2e9fb"}},
	{ID: "heart_shape", Value: "Heart", Title: "Heart", Subtitle: "This is a Heart", Emoji: "❤️", Image: "/assets/photos/shapes/heart_shape.png", AudioLabel: "Heart", Colors: [2]string{"#ff9a9e", "#fad0c4"}},
	{ID: "diamond", Value: "Diamond", Title: "Diamond", Subtitle: "This is a Diamond", Emoji: "🔷", Image: "/assets/photos/shapes/diamond.png", AudioLabel: "Diamond", Colors: [2]string{"#84fab0", "#8fd3f4"}},
	{ID: "pentagon", Value: "Pentagon", Title: "Pentagon", Subtitle: "This is a Pentagon", Emoji: "⬠", Image: "/assets/photos/shapes/pentagon.png", AudioLabel: "Pentagon", Colors: [2]string{"#e0c3fc", "#8ec5fc"}},
	{ID: "hexagon", Value: "Hexagon", Title: "Hexagon", Subtitle: "This is a Hexagon", Emoji: "⬡", Image: "/assets/photos/shapes/hexagon.png", AudioLabel: "Hexagon", Colors: [2]string{"#fbc2eb", "#a6c1ee"}},
}

var sizeCards = []Card{
	{ID: "big", Value: "Big", Title: "Big", Subtitle: "Elephant is Big", Emoji: "🐘", Image: "/assets/photos/sizes/big.png", AudioLabel: "Big", Colors: [2]string{"#e0c3fc", "#8ec5fc"}},
	{ID: "small", Value: "Small", Title: "Small", Subtitle: "Ant is Small", Emoji: "🐭", Image: "/assets/photos/sizes/small.png", AudioLabel: "Small", Colors: [2]string{"#fbc2eb", "#a6c1ee"}},
	{ID: "tall", Value: "Tall", Title: "Tall", Subtitle: "Giraffe is Tall", Emoji: "🦒", Image: "/assets/photos/sizes/tall.png", AudioLabel: "Tall", Colors: [2]string{"#d4fc79", "#96e6a1"}},
	{ID: "short", Value: "Short", Title: "Short", Subtitle: "This Boy is Short", Emoji: "🧍", Image: "/assets/photos/sizes/short.png", AudioLabel: "Short", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "long", Value: "Long", Title: "Long", Subtitle: "This Road is Long", Emoji: "🚌", Image: "/assets/photos/sizes/long.png", AudioLabel: "Long", Colors: [2]string{"#84fab0", "#8fd3f4"}},
	{ID: "heavy", Value: "Heavy", Title: "Heavy", Subtitle: "Rock is Heavy", Emoji: "🪨", Image: "/assets/photos/sizes/heavy.png", AudioLabel: "Heavy", Colors: [2]string{"#cfd9df", "#e2ebf0"}},
	{ID: "light", Value: "Light", Title: "Light", Subtitle: "Feather is Light", Emoji: "🪶", Image: "/assets/photos/sizes/light.png", AudioLabel: "Light", Colors: [2]string{"#ffecd2", "#fcb69f"}},
	{ID: "wide", Value: "Wide", Title: "Wide", Subtitle: "This Road is Wide", Emoji: "🖥️", Image: "/assets/photos/sizes/wide.png", AudioLabel: "Wide", Colors: [2]string{"#89f7fe", "#66a6ff"}},
	{ID: "narrow", Value: "Narrow", Title: "Narrow", Subtitle: "This Lane is Narrow", Emoji: "📏", Image: "/assets/photos/sizes/narrow.png", AudioLabel: "Narrow", Colors: [2]string{"#fddb92", "#d1fdff"}},
	{ID: "thin", Value: "Thin", Title: "Thin", Subtitle: "Paper is Thin", Emoji: "🎗️", Image: "/assets/photos/sizes/thin.png", AudioLabel: "Thin", Colors: [2]string{"#fa709a", "#fee140"}},
}

var vegetableCards = []Card{
	{ID: "carrot", Value: "Carrot", Title: "Carrot", Subtitle: "This is Carrot", Emoji: "🥕", Image: "/assets/photos/vegetables/carrot.png", AudioLabel: "Carrot", Colors: [2]string{"#ffb347", "#ffcc33"}},
	{ID: "tomato", Value: "Tomato", Title: "Tomato", Subtitle: "This is Tomato", Emoji: "🍅", Image: "/assets/photos/vegetables/tomato.png", AudioLabel: "Tomato", Colors: [2]string{"#ff7e5f", "#feb47b"}},
	{ID: "potato", Value: "Potato", Title: "Potato", Subtitle: "This is Potato", Emoji: "🥔", Image: "/assets/photos/vegetables/potato.png", AudioLabel: "Potato", Colors: [2]string{"#d9a066", "#f6d365"}},
	{ID: "broccoli", Value: "Broccoli", Title: "Broccoli", Subtitle: "This is Broccoli", Emoji: "🥦", Image: "/assets/photos/vegetables/broccoli.png", AudioLabel: "Broccoli", Colors: [2]string{"#9be15d", "#00e3ae"}},
	{ID: "corn", Value: "Corn", Title: "Corn", Subtitle: "This is Corn", Emoji: "🌽", Image: "/assets/photos/vegetables/corn.png", AudioLabel: "Corn", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "cucumber", Value: "Cucumber", Title: "Cucumber", Subtitle: "This is Cucumber", Emoji: "🥒", Image: "/assets/photos/vegetables/cucumber.png", AudioLabel: "Cucumber", Colors: [2]string{"#84fab0", "#8fd3f4"}},
	{ID: "onion", Value: "Onion", Title: "Onion", Subtitle: "This is Onion", Emoji: "🧅", Image: "/assets/photos/vegetables/onion.png", AudioLabel: "Onion", Colors: [2]string{"#fbc2eb", "#a6c1ee"}},
	{ID: "peas", Value: "Peas", Title: "Peas", Subtitle: "These are Peas", Emoji: "🫛", Image: "/assets/photos/vegetables/peas.png", AudioLabel: "Peas", Colors: [2]string{"#d4fc79", "#96e6a1"}},
	{ID: "pumpkin", Value: "Pumpkin", Title: "Pumpkin", Subtitle: "This is Pumpkin", Emoji: "🎃", Image: "/assets/photos/vegetables/pumpkin.png", AudioLabel: "Pumpkin", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "eggplant", Value: "Eggplant", Title: "Eggplant", Subtitle: "This is Eggplant", Emoji: "🍆", Image: "/assets/photos/vegetables/eggplant.png", AudioLabel: "Eggplant", Colors: [2]string{"#c471f5", "#fa71cd"}},
}

var fruitCards = []Card{
	{ID: "apple", Value: "Apple", Title: "Apple", Subtitle: "This is Apple", Emoji: "🍎", Image: "/assets/photos/fruits/apple.png", AudioLabel: "Apple", Colors: [2]string{"#ff9a9e", "#fad0c4"}},
	{ID: "banana", Value: "Banana", Title: "Banana", Subtitle: "This is Banana", Emoji: "🍌", Image: "/assets/photos/fruits/banana.png", AudioLabel: "Banana", Colors: [2]string{"#fce38a", "#f38181"}},
	{ID: "orange", Value: "Orange", Title: "Orange", Subtitle: "This is Orange", Emoji: "🍊", Image: "/assets/photos/fruits/orange.png", AudioLabel: "Orange", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "grapes", Value: "Grapes", Title: "Grapes", Subtitle: "This is Grapes", Emoji: "🍇", Image: "/assets/photos/fruits/grapes.png", AudioLabel: "Grapes", Colors: [2]string{"#c471f5", "#fa71cd"}},
	{ID: "watermelon", Value: "Watermelon", Title: "Watermelon", Subtitle: "This is Watermelon", Emoji: "🍉", Image: "/assets/photos/fruits/watermelon.png", AudioLabel: "Watermelon", Colors: [2]string{"#a8e063", "#56ab2f"}},
	{ID: "mango", Value: "Mango", Title: "Mango", Subtitle: "This is Mango", Emoji: "🥭", Image: "/assets/photos/fruits/mango.png", AudioLabel: "Mango", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "pear", Value: "Pear", Title: "Pear", Subtitle: "This is Pear", Emoji: "🍐", Image: "/assets/photos/fruits/pear.png", AudioLabel: "Pear", Colors: [2]string{"#d4fc79", "#96e6a1"}},
	{ID: "pineapple", Value: "Pineapple", Title: "Pineapple", Subtitle: "This is Pineapple", Emoji: "🍍", Image: "/assets/photos/fruits/pineapple.png", AudioLabel: "Pineapple", Colors: [2]string{"#fddb92", "#d1fdff"}},
	{ID: "strawberry", Value: "Strawberry", Title: "Strawberry", Subtitle: "This is Strawberry", Emoji: "🍓", Image: "/assets/photos/fruits/strawberry.png", AudioLabel: "Strawberry", Colors: [2]string{"#ff9a9e", "#fecfef"}},
	{ID: "cherries", Value: "Cherries", Title: "Cherries", Subtitle: "These are Cherries", Emoji: "🍒", Image: "/assets/photos/fruits/cherries.png", AudioLabel: "Cherries", Colors: [2]string{"#ff7e5f", "#feb47b"}},
}

var bodyCards = []Card{
	{ID: "head", Value: "Head", Title: "Head", Subtitle: "This is Head", Emoji: "🧑", Image: "/assets/photos/body/head.png", AudioLabel: "Head", Colors: [2]string{"#fddb92", "#d1fdff"}},
	{ID: "eyes", Value: "Eyes", Title: "Eyes", Subtitle: "These are Eyes", Emoji: "👀", Image: "/assets/photos/body/eyes.png", AudioLabel: "Eyes", Colors: [2]string{"#a1c4fd", "#c2e9fb"}},
	{ID: "nose", Value: "Nose", Title: "Nose", Subtitle: "This is Nose", Emoji: "👃", Image: "/assets/photos/body/nose.png", AudioLabel: "Nose", Colors: [2]string{"#fbc2eb", "#a6c1ee"}},
	{ID: "hands", Value: "Hands", Title: "Hands", Subtitle: "These are Hands", Emoji: "👐", Image: "/assets/photos/body/hands.png", AudioLabel: "Hands", Colors: [2]string{"#84fab0", "#8fd3f4"}},
	{ID: "legs", Value: "Legs", Title: "Legs", Subtitle: "These are Legs", Emoji: "🦵", Image: "/assets/photos/body/legs.png", AudioLabel: "Legs", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "ears", Value: "Ears", Title: "Ears", Subtitle: "These are Ears", Emoji: "👂", Image: "/assets/photos/body/ears.png", AudioLabel: "Ears", Colors: [2]string{"#fbc2eb", "#a6c1ee"}},
	{ID: "mouth", Value: "Mouth", Title: "Mouth", Subtitle: "This is Mouth", Emoji: "👄", Image: "/assets/photos/body/mouth.png", AudioLabel: "Mouth", Colors: [2]string{"#ff9a9e", "#fad0c4"}},
	{ID: "teeth", Value: "Teeth", Title: "Teeth", Subtitle: "These are Teeth", Emoji: "🦷", Image: "/assets/photos/body/teeth.png", AudioLabel: "Teeth", Colors: [2]string{"#fdfbfb", "#ebedee"}},
	{ID: "feet", Value: "Feet", Title: "Feet", Subtitle: "These are Feet", Emoji: "🦶", Image: "/assets/photos/body/feet.png", AudioLabel: "Feet", Colors: [2]string{"#e0c3fc", "#8ec5fc"}},
	{ID: "arms", Value: "Arms", Title: "Arms", Subtitle: "These are Arms", Emoji: "💪", Image: "/assets/photos/body/arms.png", AudioLabel: "Arms", Colors: [2]string{"#84fab0", "#8fd3f4"}},
}

var wildAnimalCards = []Card{
	{ID: "lion", Value: "Lion", Title: "Lion", Subtitle: "This is Lion", Emoji: "🦁", Image: "/assets/photos/wild_animals/lion.png", AudioLabel: "Lion", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "tiger", Value: "Tiger", Title: "Tiger", Subtitle: "This is Tiger", Emoji: "🐯", Image: "/assets/photos/wild_animals/tiger.png", AudioLabel: "Tiger", Colors: [2]string{"#fbc2eb", "#a6c1ee"}},
	{ID: "elephant", Value: "Elephant", Title: "Elephant", Subtitle: "This is Elephant", Emoji: "🐘", Image: "/assets/photos/wild_animals/elephant.png", AudioLabel: "Elephant", Colors: [2]string{"#cfd9df", "#e2ebf0"}},
	{ID: "zebra", Value: "Zebra", Title: "Zebra", Subtitle: "This is Zebra", Emoji: "🦓", Image: "/assets/photos/wild_animals/zebra.png", AudioLabel: "Zebra", Colors: [2]string{"#d4fc79", "#96e6a1"}},
	{ID: "monkey", Value: "Monkey", Title: "Monkey", Subtitle: "This is Monkey", Emoji: "🐒", Image: "/assets/photos/wild_animals/monkey.png", AudioLabel: "Monkey", Colors: [2]string{"#fddb92", "#d1fdff"}},
	{ID: "bear", Value: "Bear", Title: "Bear", Subtitle: "This is Bear", Emoji: "🐻", Image: "/assets/photos/wild_animals/bear.png", AudioLabel: "Bear", Colors: [2]string{"#d1913c", "#ffd194"}},
	{ID: "fox", Value: "Fox", Title: "Fox", Subtitle: "This is Fox", Emoji: "🦊", Image: "/assets/photos/wild_animals/fox.png", AudioLabel: "Fox", Colors: [2]string{"#ffb347", "#ffcc33"}},
	{ID: "wolf", Value: "Wolf", Title: "Wolf", Subtitle: "This is Wolf", Emoji: "🐺", Image: "/assets/photos/wild_animals/wolf.png", AudioLabel: "Wolf", Colors: [2]string{"#cfd9df", "#e2ebf0"}},
	{ID: "deer", Value: "Deer", Title: "Deer", Subtitle: "This is Deer", Emoji: "🦌", Image: "/assets/photos/wild_animals/deer.png", AudioLabel: "Deer", Colors: [2]string{"#fddb92", "#d1fdff"}},
	{ID: "hippo", Value: "Hippo", Title: "Hippo", Subtitle: "This is Hippo", Emoji: "🦛", Image: "/assets/photos/wild_animals/hippo.png", AudioLabel: "Hippo", Colors: [2]string{"#d299c2", "#fef9d7"}},
}

var birdCards = []Card{
	{ID: "parrot", Value: "Parrot", Title: "Parrot", Subtitle: "This is Parrot", Emoji: "🦜", Image: "/assets/photos/birds/parrot.png", AudioLabel: "Parrot", Colors: [2]string{"#84fab0", "#8fd3f4"}},
	{ID: "owl", Value: "Owl", Title: "Owl", Subtitle: "This is Owl", Emoji: "🦉", Image: "/assets/photos/birds/owl.png", AudioLabel: "Owl", Colors: [2]string{"#e0c3fc", "#8ec5fc"}},
	{ID: "penguin", Value: "Penguin", Title: "Penguin", Subtitle: "This is Penguin", Emoji: "🐧", Image: "/assets/photos/birds/penguin.png", AudioLabel: "Penguin", Colors: [2]string{"#4facfe", "#00f2fe"}},
	{ID: "duck", Value: "Duck", Title: "Duck", Subtitle: "This is Duck", Emoji: "🦆", Image: "/assets/photos/birds/duck.png", AudioLabel: "Duck", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "chicken", Value: "Chicken", Title: "Chicken", Subtitle: "This is Chicken", Emoji: "🐔", Image: "/assets/photos/birds/chicken.png", AudioLabel: "Chicken", Colors: [2]string{"#fddb92", "#d1fdff"}},
	{ID: "sparrow", Value: "Sparrow", Title: "Sparrow", Subtitle: "This is Sparrow", Emoji: "🐦", Image: "/assets/photos/birds/sparrow.png", AudioLabel: "Sparrow", Colors: [2]string{"#a1c4fd", "#c2e9fb"}},
	{ID: "eagle", Value: "Eagle", Title: "Eagle", Subtitle: "This is Eagle", Emoji: "🦅", Image: "/assets/photos/birds/eagle.png", AudioLabel: "Eagle", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "peacock", Value: "Peacock", Title: "Peacock", Subtitle: "This is Peacock", Emoji: "🦚", Image: "/assets/photos/birds/peacock.png", AudioLabel: "Peacock", Colors: [2]string{"#43e97b", "#38f9d7"}},
	{ID: "flamingo", Value: "Flamingo", Title: "Flamingo", Subtitle: "This is Flamingo", Emoji: "🦩", Image: "/assets/photos/birds/flamingo.png", AudioLabel: "Flamingo", Colors: [2]string{"#ff9a9e", "#fecfef"}},
	{ID: "swan", Value: "Swan", Title: "Swan", Subtitle: "This is Swan", Emoji: "🦢", Image: "/assets/photos/birds/swan.png", AudioLabel: "Swan", Colors: [2]string{"#e0eafc", "#cfdef3"}},
}

var vehicleCards = []Card{
	{ID: "car", Value: "Car", Title: "Car", Subtitle: "This is Car", Emoji: "🚗", Image: "/assets/photos/vehicles/car.png", AudioLabel: "Car", Colors: [2]string{"#a1c4fd", "#c2e9fb"}},
	{ID: "bus", Value: "Bus", Title: "Bus", Subtitle: "This is Bus", Emoji: "🚌", Image: "/assets/photos/vehicles/bus.png", AudioLabel: "Bus", Colors: [2]string{"#f6d365", "#fda085"}},
	{ID: "train", Value: "Train", Title: "Train", Subtitle: "This is Train", Emoji: "🚆", Image: "/assets/photos/vehicles/train.png", AudioLabel: "Train", Colors: [2]string{"#84fab0", "#8fd3f4"}},
	{ID: "airplane", Value: "Airplane", Title: "Airplane", Subtitle: "This is Airplane", Emoji: "✈️", Image: "/assets/photos/vehicles/airplane.png", AudioLabel: "Airplane", Colors: [2]string{"#89f7fe", "#66a6ff"}},
	{ID: "boat", Value: "Boat", Title: "Boat", Subtitle: "This is Boat", Emoji: "⛵", Image: "/assets/photos/vehicles/boat.png", AudioLabel: "Boat", Colors: [2]string{"#43e97b", "#38f9d7"}},
	{ID: "bicycle", Value: "Bicycle", Title: "Bicycle", Subtitle: "This is Bicycle", Emoji: "🚲", Image: "/assets/photos/vehicles/bicycle.png", AudioLabel: "Bicycle", Colors: [2]string{"#fbc2eb", "#a6c1ee"}},
	{ID: "truck", Value: "Truck", Title: "Truck", Subtitle: "This is Truck", Emoji: "🚚", Image: "/assets/photos/vehicles/truck.png", AudioLabel: "Truck", Colors: [2]string{"#d4fc79", "#96e6a1"}},
	{ID: "helicopter", Value: "Helicopter", Title: "Helicopter", Subtitle: "This is Helicopter", Emoji: "🚁", Image: "/assets/photos/vehicles/helicopter.png", AudioLabel: "Helicopter", Colors: [2]string{"#e0c3fc", "#8ec5fc"}},
	{ID: "motorcycle", Value: "Motorcycle", Title: "Motorcycle", Subtitle: "This is Motorcycle", Emoji: "🏍️", Image: "/assets/photos/vehicles/motorcycle.png", AudioLabel: "Motorcycle", Colors: [2]string{"#fddb92", "#d1fdff"}},
	{ID: "ambulance", Value: "Ambulance", Title: "Ambulance", Subtitle: "This is Ambulance", Emoji: "🚑", Image: "/assets/photos/vehicles/ambulance.png", AudioLabel: "Ambulance", Colors: [2]string{"#ff7e5f", "#feb47b"}},
}
