package registry

import "github.com/vovakirdan/neatza-runners/internal/core"

// The Neatza crew, in select-screen order.
func init() {
	Register(Character{
		ID: "ramona", Name: "Ramona", FullName: "Ramona Olaru", Trait: "Eleganta",
		Color: core.ColorRed, Hex: "#E74C3C", Width: 45, Height: 45,
		Special: "Magnetism", SpecialDesc: "Atrage coins automat",
	})
	Register(Character{
		ID: "razvan", Name: "Razvan", FullName: "Razvan Simion", Trait: "Sarmul",
		Color: core.ColorOrange, Hex: "#FF6B35", Width: 45, Height: 45,
		Special: "Sprint", SpecialDesc: "Viteza maxima + invincibil",
	})
	Register(Character{
		ID: "dani", Name: "Dani", FullName: "Dani Otil", Trait: "Umorul",
		Color: core.ColorBlue, Hex: "#3498DB", Width: 45, Height: 45,
		Special: "Scut", SpecialDesc: "Invincibil temporar",
	})
	Register(Character{
		ID: "cuza", Name: "Cuza", FullName: "Cuza", Trait: "Energia",
		Color: core.ColorGreen, Hex: "#2ECC71", Width: 40, Height: 40,
		Special: "Super Salt", SpecialDesc: "Sare mult mai sus",
	})
	Register(Character{
		ID: "ristei", Name: "Ristei", FullName: "Florin Ristei", Trait: "Talentul",
		Color: core.ColorPurple, Hex: "#9B59B6", Width: 45, Height: 45,
		Special: "Slow Motion", SpecialDesc: "Incetineste totul",
	})
	Register(Character{
		ID: "bucatar", Name: "Bucatar", FullName: "Bucatarul", Trait: "Gustul",
		Color: core.ColorBrightYellow, Hex: "#E67E22", Width: 48, Height: 48,
		Special: "Festin", SpecialDesc: "Coins valoreaza dublu",
	})
	Register(Character{
		ID: "bucalae", Name: "Bucalae", FullName: "Bucalae", Trait: "Forta",
		Color: core.ColorBrightRed, Hex: "#C0392B", Width: 42, Height: 42,
		Special: "Zdrobire", SpecialDesc: "Distruge obstacole",
	})
}
