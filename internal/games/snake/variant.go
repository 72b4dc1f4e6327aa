package snake

import "github.com/vovakirdan/tui-snake/internal/registry"

// Variant describes one registered flavour of the game.
type Variant struct {
	ID    string
	Title string
	Rules Rules
	Menus bool // Main menu, difficulty selection, high scores
	Pause bool // Pause key is honored
	Sound bool
}

var (
	// Minimal has walls, flat scoring and nothing but restart.
	Minimal = Variant{
		ID:    "minimal",
		Title: "Snake (Minimal)",
	}

	// Standard wraps around the edges and can be paused.
	Standard = Variant{
		ID:    "standard",
		Title: "Snake",
		Rules: Rules{Wrap: true},
		Pause: true,
	}

	// Enhanced is the full game with menus, difficulties, special food,
	// high scores and sound.
	Enhanced = Variant{
		ID:    "enhanced",
		Title: "Snake (Enhanced)",
		Rules: Rules{Wrap: true, SpecialFood: true},
		Menus: true,
		Pause: true,
		Sound: true,
	}
)

// DefaultVariant is played when none is named.
const DefaultVariant = "enhanced"

// Variants returns every variant in registration order.
func Variants() []Variant {
	return []Variant{Minimal, Standard, Enhanced}
}

func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, v.Title, func(env registry.Env) registry.Game {
			return NewMachine(v, env)
		})
	}
}
