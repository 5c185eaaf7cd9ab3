package table

// RawConfig is one table YAML file as written on disk.
type RawConfig struct {
	Version  string            `yaml:"version"`
	Locale   string            `yaml:"locale,omitempty"`
	RollMode string            `yaml:"roll_mode,omitempty"`
	GMUsers  []string          `yaml:"gm_users,omitempty"`
	Presets  map[string]Preset `yaml:"presets,omitempty"`
	Notes    string            `yaml:"notes,omitempty"`
}

// Preset is a named roll a table keeps at hand, e.g. a character's sword attack.
type Preset struct {
	Name  string      `yaml:"name"` // roll name shown in chat, e.g. ACTION.SLASH
	Base  int         `yaml:"base"`
	Skill int         `yaml:"skill"`
	Gear  int         `yaml:"gear"`
	Bonus string      `yaml:"bonus,omitempty"` // "+1 d8" style modifier text
	Item  *ItemConfig `yaml:"item,omitempty"`
}

// ItemConfig is the item a preset is rolled with. Bonus is the item's gear
// bonus field ("+2"), Artifact its artifact die ("d8").
type ItemConfig struct {
	Kind     string `yaml:"kind"` // spell | weapon | armor
	Name     string `yaml:"name,omitempty"`
	Damage   int    `yaml:"damage,omitempty"`
	Bonus    string `yaml:"bonus,omitempty"`
	Artifact string `yaml:"artifact,omitempty"`
}
