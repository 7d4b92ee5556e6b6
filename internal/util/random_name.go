package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Bluffing", "Steady", "Lucky", "Grinding", "Loose", "Tight", "Clever", "Daring", "Patient",
	"Wild", "Sly", "Stoic", "Crafty", "Bold", "Quiet", "Reckless", "Cunning", "Cool", "Fearless",
	"Sneaky", "Brash", "Calm",
}

var animals = []string{
	"Otter", "Fox", "Shark", "Owl", "Badger", "Raven", "Lynx", "Moose", "Heron", "Cobra",
	"Walrus", "Ferret", "Bison", "Crane", "Stoat", "Coyote", "Osprey", "Marmot", "Viper",
	"Weasel", "Puma", "Gopher",
}

// RandomBotName returns a display name for a computer player by
// combining an adjective with an animal
func RandomBotName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
