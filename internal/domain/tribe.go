package domain

// Tribe is a playable people; bonuses are percentages shown to the player
type Tribe struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	WoodBonus   int    `json:"wood_bonus"`
	ClayBonus   int    `json:"clay_bonus"`
	IronBonus   int    `json:"iron_bonus"`
	CropBonus   int    `json:"crop_bonus"`
	IconName    string `json:"icon_name,omitempty"`
	ColorHex    string `json:"color_hex,omitempty"`
}
