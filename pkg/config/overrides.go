package config

// Overrides holds command-line values that take precedence over the file.
// Nil fields leave the config untouched.
type Overrides struct {
	Width           *int
	Height          *int
	VSync           *bool
	MoveSpeed       *float64
	LookSensitivity *float64
}

// Apply copies every set override into c and revalidates it
func (o Overrides) Apply(c *Config) error {
	if o.Width != nil {
		c.Window.Width = *o.Width
	}
	if o.Height != nil {
		c.Window.Height = *o.Height
	}
	if o.VSync != nil {
		c.Window.VSync = *o.VSync
	}
	if o.MoveSpeed != nil {
		c.Controls.MoveSpeed = *o.MoveSpeed
	}
	if o.LookSensitivity != nil {
		c.Controls.LookSensitivity = *o.LookSensitivity
	}
	return c.Validate()
}
