package model

// DefaultMoneySymbol prefixes monetary amounts until the user changes it.
const DefaultMoneySymbol = "$"

type (
	// WindowSettings remembers where the app window was last placed.
	WindowSettings struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
		X      int `yaml:"x"`
		Y      int `yaml:"y"`
	}

	UserPrefs struct {
		MoneySymbol string         `yaml:"money_symbol"`
		Window      WindowSettings `yaml:"window"`
	}
)

func DefaultUserPrefs() UserPrefs {
	return UserPrefs{
		MoneySymbol: DefaultMoneySymbol,
		Window:      WindowSettings{Width: 800, Height: 600},
	}
}
