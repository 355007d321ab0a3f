package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Todos
	ToggleTodo     string `yaml:"toggle" json:"toggle"`
	EditTodo       string `yaml:"edit" json:"edit"`
	DeleteTodo     string `yaml:"delete" json:"delete"`
	ClearCompleted string `yaml:"clear_completed" json:"clear_completed"`
	ToggleAll      string `yaml:"toggle_all" json:"toggle_all"`
	CycleFilter    string `yaml:"cycle_filter" json:"cycle_filter"`

	// Input
	NewTodo string `yaml:"new_todo" json:"new_todo"`
	Commit  string `yaml:"commit" json:"commit"`
	Cancel  string `yaml:"cancel" json:"cancel"`

	// Navigation
	PrevTodo string `yaml:"prev_todo" json:"prev_todo"`
	NextTodo string `yaml:"next_todo" json:"next_todo"`

	// Other
	Quit string `yaml:"quit" json:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		ToggleTodo:     "x",
		EditTodo:       "e",
		DeleteTodo:     "d",
		ClearCompleted: "C",
		ToggleAll:      "A",
		CycleFilter:    "f",

		NewTodo: "n",
		Commit:  "enter",
		Cancel:  "esc",

		PrevTodo: "k",
		NextTodo: "j",

		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := []struct {
		dst *string
		def string
	}{
		{&k.ToggleTodo, defaults.ToggleTodo},
		{&k.EditTodo, defaults.EditTodo},
		{&k.DeleteTodo, defaults.DeleteTodo},
		{&k.ClearCompleted, defaults.ClearCompleted},
		{&k.ToggleAll, defaults.ToggleAll},
		{&k.CycleFilter, defaults.CycleFilter},
		{&k.NewTodo, defaults.NewTodo},
		{&k.Commit, defaults.Commit},
		{&k.Cancel, defaults.Cancel},
		{&k.PrevTodo, defaults.PrevTodo},
		{&k.NextTodo, defaults.NextTodo},
		{&k.Quit, defaults.Quit},
	}
	for _, f := range fill {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}
}
