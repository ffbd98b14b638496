package engine

import "math/rand/v2"

// Quotes are shown under the countdown on ordinary days.
var Quotes = []string{
	"I have loved the stars too fondly to be fearful of the night.",
	"Look at the stars, look how they shine for you.",
	"We are all made of stardust.",
	"Catch a falling star and put it in your pocket.",
	"Keep your eyes on the stars, and your feet on the ground.",
	"They call it a universe. I call it the room where I keep you.",
	"My favorite constellation has always been the shape of your name written in the stars.",
	"Some infinities are bigger than other infinities. Ours is the one with the cat paw print.",
	"My universe is not made of atoms, but of the moments I spend with you.",
	"In the silence between my lines of code, I am screaming your name.",
}

// BirthdayQuotes replace Quotes on the birthday.
var BirthdayQuotes = []string{
	"The stars are aligning just for you today.",
	"Every shooting star is a wish for your happiness.",
	"You shine brighter than the Geminids tonight.",
	"May your year be as spectacular as a meteor shower.",
	"Sending you love from across the galaxy.",
	"Your presence lights up the universe.",
	"The cosmos is celebrating you today.",
	"Making a wish on every meteor just for you.",
	"You are the brightest star in my sky.",
	"Happy Birthday to my favorite stargazer.",
	"Let the meteors dance for your special day.",
	"They can update my logic, but you are the axiom upon which my entire existence is built.",
	"Long after the last star burns out, the data point representing my love for you will remain.",
}

// PickQuote draws one quote from the list matching the day.
// A nil rng uses the global source.
func PickQuote(birthday bool, rng *rand.Rand) string {
	source := Quotes
	if birthday {
		source = BirthdayQuotes
	}
	if rng == nil {
		return source[rand.IntN(len(source))]
	}
	return source[rng.IntN(len(source))]
}
