package table

// Config configures a Controller or Model.
type Config struct {
	// KeyMap for navigation. The zero value falls back to DefaultKeyMap.
	KeyMap KeyMap

	// Style for Model rendering. The zero value renders unstyled.
	Style Style

	// Host receives input-focus requests. May be nil.
	Host Host

	// OnChange fires after every handled key that mutated the document or
	// moved the caret. May be nil.
	OnChange func(ChangeEvent)

	// ReadOnly suppresses structural mutation. Navigation still works; Tab
	// at the last cell is absorbed without inserting a row.
	ReadOnly bool
}

func normalizeConfig(cfg Config) Config {
	if len(cfg.KeyMap.NextCell.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
