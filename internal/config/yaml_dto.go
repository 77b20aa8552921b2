package config

// YAMLConfig is the on-disk shape of the configuration file. Pointer
// fields distinguish "unset" from zero values.
type YAMLConfig struct {
	Modes   []string    `yaml:"modes"`
	Compact *bool       `yaml:"compact"`
	Format  string      `yaml:"format"`
	Verify  *YAMLVerify `yaml:"verify"`
	Render  *YAMLRender `yaml:"render"`
	Log     *YAMLLog    `yaml:"log"`
}

type YAMLVerify struct {
	Enabled  *bool `yaml:"enabled"`
	MaxCells *int  `yaml:"max_cells"`
}

type YAMLRender struct {
	MaxCells *int `yaml:"max_cells"`
}

type YAMLLog struct {
	Debug *bool  `yaml:"debug"`
	Path  string `yaml:"path"`
}
